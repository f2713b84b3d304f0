package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodimages"
	"foodimages/config"
	"foodimages/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	if err := logger.InitGlobalLogger(&cfg.Logger); err != nil {
		ExitOnError(err)
	}
	defer func() { _ = logger.Global().Sync() }()

	logger.Info("running foodimages", "version", foodimages.StringVersion(),
		"backend", cfg.Storage.Backend, "container", cfg.Storage.Container)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := Build(ctx, cfg, logger.Global())
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("closing dependencies", "err", err)
		}
	}()

	go func() {
		if err := app.Echo.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Echo.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}
