// Command lambda serves the image endpoint from AWS Lambda behind an API
// Gateway HTTP API. Configuration comes from the environment only.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"foodimages/cmd/commands"
	"foodimages/config"
	"foodimages/pkg/logger"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		commands.ExitOnError(err)
	}

	if err := logger.InitGlobalLogger(&cfg.Logger); err != nil {
		commands.ExitOnError(err)
	}

	ctx := context.Background()

	// clients are built once per cold start and shared by invocations
	app, err := commands.Build(ctx, cfg, logger.Global())
	if err != nil {
		commands.ExitOnError(err)
	}

	lambda.StartWithOptions(httpadapter.NewV2(app.Echo).ProxyWithContext, lambda.WithContext(ctx))
}
