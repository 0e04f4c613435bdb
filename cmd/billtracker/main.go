package main

import (
	"context"
	"os"

	"billtracker/internal/backend"
	"billtracker/internal/cli"
	"billtracker/internal/console"
	applog "billtracker/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		return 1
	}

	ctx := context.Background()
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to create backend", applog.FieldError, err, applog.FieldBackend, backendCfg.Type)
		return 1
	}
	defer func() {
		if result.Cleanup == nil {
			return
		}
		if err := result.Cleanup(); err != nil {
			logger.Warn("Cleanup failed", applog.FieldOperation, applog.OpShutdown, applog.FieldError, err)
		}
	}()

	logger.Info("Starting bill tracker", applog.FieldOperation, applog.OpStartup, applog.FieldBackend, backendCfg.Type)

	in := console.NewInput(os.Stdin, os.Stdout, cfg.MaxReadRetries)
	shell := console.NewShell(result.Backend, in, os.Stdout, logger)
	if err := shell.Run(ctx); err != nil {
		logger.Error("Shell stopped", applog.FieldError, err)
		return 1
	}

	return 0
}
