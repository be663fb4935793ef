package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Takumouse/sales-dashboard2/internal/cli"
	"github.com/Takumouse/sales-dashboard2/internal/cli/web"
	"github.com/Takumouse/sales-dashboard2/internal/config"
	"github.com/Takumouse/sales-dashboard2/internal/logger"
)

func main() {
	configPath := os.Getenv("SALESDASH_CONFIG")
	if configPath == "" {
		configPath = "salesdash.yml"
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration. %s", err.Error())
		os.Exit(1)
	}

	appLogger := logger.New(conf.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, conf, appLogger)
	if err != nil {
		stop()
		appLogger.Fatal("Unable to start", "error", err.Error())
	}

	err = errors.Join(web.Run(ctx, app), app.Close())
	if err != nil {
		stop()
		appLogger.Error("failed to run the salesdash web service", "error", err)
		os.Exit(1)
	}
}
