package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osse101/pizzavalue/internal/analysis"
	"github.com/osse101/pizzavalue/internal/config"
	"github.com/osse101/pizzavalue/internal/domain"
	"github.com/osse101/pizzavalue/internal/logger"
	"github.com/osse101/pizzavalue/internal/menu"
	"github.com/osse101/pizzavalue/internal/report"
)

func main() {
	if err := run(context.Background(), menu.NewLoader(), os.Stdout); err != nil {
		slog.Error("Pizza analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, loader menu.Loader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		// Nothing usable was configured; log the failure with the defaults
		logger.InitLogger(logger.DefaultConfig())
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	ctx = logger.WithRunID(ctx, logger.GenerateRunID())
	log := logger.FromContext(ctx)
	for _, warning := range cfg.Warnings() {
		log.Warn("Configuration warning", "warning", warning)
	}

	pizzas, err := menu.FromLoader(loader, menu.DefaultMenuPath)
	if err != nil {
		return fmt.Errorf("failed to load menu: %w", err)
	}

	svc := analysis.NewService(report.NewFormatter())
	if _, err := svc.Run(ctx, stdout, pizzas, domain.DefaultBudget); err != nil {
		return err
	}

	return nil
}
