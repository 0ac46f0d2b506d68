package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hooly/hooly/app"
	"github.com/hooly/hooly/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New()
	if err != nil {
		slog.Error("failed to initialize application", logger.Error(err))
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		a.Logger().Error("application stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
