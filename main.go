package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tmellor/maestro/internal/app"
	"github.com/tmellor/maestro/internal/config"
	"github.com/tmellor/maestro/internal/env"
	"github.com/tmellor/maestro/internal/logger"
	"github.com/tmellor/maestro/internal/version"
)

func main() {
	vlog := log.New(log.Writer(), "", 0)
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.PrintVersionInfo(true, vlog)
		os.Exit(0)
	}

	lcfg := buildLoggerConfig()
	logInstance, styledLogger, cleanup, err := logger.New(lcfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	slog.SetDefault(logInstance)

	store, err := config.Load()
	if err != nil {
		logger.FatalWithLogger(logInstance, "Failed to load configuration", "error", err)
	}

	application, err := app.New(store, styledLogger)
	if err != nil {
		logger.FatalWithLogger(logInstance, "Failed to create application", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.RootCommand().ExecuteContext(ctx); err != nil {
		styledLogger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// buildLoggerConfig creates logger config from environment variables with defaults
func buildLoggerConfig() *logger.Config {
	return &logger.Config{
		Level:      env.GetEnvOrDefault("MAESTRO_LOG_LEVEL", "info"),
		FileOutput: env.GetEnvBoolOrDefault("MAESTRO_FILE_OUTPUT", false),
		LogDir:     env.GetEnvOrDefault("MAESTRO_LOG_DIR", "./logs"),
		MaxSize:    env.GetEnvIntOrDefault("MAESTRO_MAX_SIZE", 100),
		MaxBackups: env.GetEnvIntOrDefault("MAESTRO_MAX_BACKUPS", 5),
		MaxAge:     env.GetEnvIntOrDefault("MAESTRO_MAX_AGE", 30),
	}
}
