package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/repository/ledger"
)

type config struct {
	Driver          string        `long:"ledger-driver" env:"TIPBASE_LEDGER_DRIVER" choice:"mysql" choice:"sqlite" default:"sqlite" description:"Ledger database driver"`
	DSN             string        `long:"ledger-dsn" env:"TIPBASE_LEDGER_DSN" default:"file:tipbase.db?_pragma=busy_timeout(5000)" description:"Ledger database DSN"`
	ConnectAttempts int           `long:"ledger-connect-attempts" env:"TIPBASE_LEDGER_CONNECT_ATTEMPTS" default:"5" description:"Connect attempts before giving up"`
	ConnectBackoff  time.Duration `long:"ledger-connect-backoff" env:"TIPBASE_LEDGER_CONNECT_BACKOFF" default:"1s" description:"Initial backoff between connect attempts"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger migration failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	db, err := ledger.Open(ctx, ledger.Config{
		Driver:          cfg.Driver,
		DSN:             cfg.DSN,
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnectAttempts: cfg.ConnectAttempts,
		ConnectBackoff:  cfg.ConnectBackoff,
	}, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("failed to close ledger", zap.Error(err))
		}
	}()

	if err := ledger.AutoMigrate(db); err != nil {
		return err
	}
	logger.Info("ledger schema up to date", zap.String("driver", cfg.Driver))
	return nil
}
