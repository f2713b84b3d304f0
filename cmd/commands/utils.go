package commands

import (
	"fmt"
	"os"

	"foodimages/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("foodimages error", "err", err.Error())
	_ = logger.Global().Sync()
	fmt.Fprintln(os.Stderr, err) //nolint
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Print(`foodimages: signed download links for food item images.

usage:
  foodimages run <config.yml>   start the http server
  foodimages version            print the version
  foodimages help               print this help

environment:
  IMAGE_STORAGE_CONNECTION_STRING  storage credential (required)
  DATABASE_URI                     mongodb uri for the lookup journal (optional)
  BROKER_URI                       redis uri for image miss reports (optional)
`) //nolint
}
