package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nominapp/nominacli/internal/buildinfo"
	"github.com/nominapp/nominacli/internal/cli"
	"github.com/nominapp/nominacli/internal/config"
	"github.com/nominapp/nominacli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
