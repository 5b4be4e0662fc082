package main

import (
	"github.com/osse101/pizzavalue/internal/config"
	"github.com/osse101/pizzavalue/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.IsDevelopment() && cfg.LogLevel == logger.LogLevelDebug

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
