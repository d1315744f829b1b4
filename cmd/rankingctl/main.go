package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/fkl-dashboard/internal/app"
	"github.com/riskibarqy/fkl-dashboard/internal/config"
	"github.com/riskibarqy/fkl-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fkl-dashboard/internal/interfaces/cli"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries command output, so logs go to stderr.
	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: os.Stderr,
		Fields: []any{"service", "rankingctl", "env", cfg.AppEnv},
	})
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	load := func(ctx context.Context) (*usecase.DashboardService, func() error, error) {
		source, closeFn, err := app.NewRecordSource(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return usecase.NewDashboardService(source, memory.NewSelectionStore(0), logger), closeFn, nil
	}

	if err := cli.NewApp(cfg.ServiceVersion, load, os.Stdout).RunContext(ctx, os.Args); err != nil {
		logger.Error("rankingctl failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
