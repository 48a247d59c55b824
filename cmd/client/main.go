package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskflowhq/taskflow-cli/internal/client/cli"
	"github.com/taskflowhq/taskflow-cli/internal/client/config"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("client exited with error: %v", err)
	}
}
