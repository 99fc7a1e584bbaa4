// Package ledger stores recorded tips and creator profiles in a relational
// database through gorm. MySQL is the production driver; SQLite serves local
// runs and tests.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/clock"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config describes how to reach the ledger database.
type Config struct {
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

// Repository is the tip ledger and profile store.
type Repository struct {
	db      *gorm.DB
	metrics Metrics
	now     func() time.Time
}

// NewRepository wraps an open database handle.
func NewRepository(db *gorm.DB, metrics Metrics) (*Repository, error) {
	if db == nil {
		return nil, errors.New("ledger database is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	return &Repository{
		db:      db,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

// Open connects to the configured database, retrying while it is unreachable.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("ledger dsn is required")
	}

	var db *gorm.DB
	err := clock.Retry(ctx, cfg.ConnectAttempts, cfg.ConnectBackoff, func(ctx context.Context) error {
		dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
		if err != nil {
			return err
		}
		opened, err := gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Error),
		})
		if err != nil {
			logger.Warn("ledger connect failed", zap.String("driver", cfg.Driver), zap.Error(err))
			return fmt.Errorf("open ledger: %w", err)
		}
		sqlDB, err := opened.DB()
		if err != nil {
			return fmt.Errorf("get sql db: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			logger.Warn("ledger ping failed", zap.String("driver", cfg.Driver), zap.Error(err))
			return fmt.Errorf("ping ledger: %w", err)
		}

		maxOpen := cfg.MaxOpenConns
		if cfg.Driver == DriverSQLite {
			maxOpen = 1
		}
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

		db = opened
		return nil
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported ledger driver %q", driver)
	}
}

// AutoMigrate creates or updates the ledger tables and indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&tipRecord{}, &userRecord{}, &profileRecord{}); err != nil {
		return fmt.Errorf("auto migrate ledger: %w", err)
	}
	return nil
}

// Ping checks that the database answers.
func (r *Repository) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ping", err, start)
	}()

	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping ledger: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
