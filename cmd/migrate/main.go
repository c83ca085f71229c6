package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os/signal"
	"syscall"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
)

func main() {
	// флаг регистрируется до dotenv.Load, там вызывается flag.Parse
	down := flag.Bool("down", false, "roll back the latest migration instead of applying pending ones")

	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	err = run(context.Background(), appLogger, cfg, *down)
	if err != nil {
		appLogger.Error("migration failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, down bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	migrateLog := log.With(logger.NewField("down", down))

	if down {
		if err := postgres.Rollback(ctx, pool); err != nil {
			return err
		}
		migrateLog.Info("latest migration rolled back")
		return nil
	}

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}
	migrateLog.Info("migrations applied")
	return nil
}
