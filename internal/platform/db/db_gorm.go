// Package db opens the GORM database handle for the configured backend.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	analysisadapters "stock_dashboard/internal/feature/analysis/adapters"
	earningsentity "stock_dashboard/internal/feature/earnings/domain/entity"
	pricesadapters "stock_dashboard/internal/feature/prices/adapters"
	stocksentity "stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectRetry    = 3 * time.Second
)

// Opener opens a GORM connection for a dialector. Extracted so retry
// behavior can be tested without a real database.
type Opener func(dial gorm.Dialector) (*gorm.DB, error)

// Dialector returns the GORM dialector selected by DATABASE_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case "sqlite":
		return gsqlite.Open(cfg.SQLitePath), nil
	case "postgres":
		return gpostgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

// ConnectWithRetry keeps trying to connect until the timeout elapses, so
// the server survives a database that is still starting.
func ConnectWithRetry(dial gorm.Dialector, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dial)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(connectRetry)
	}
}

// Open connects to the database selected by DATABASE_DRIVER and, when
// RUN_MIGRATIONS is set, migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(dial, connectDeadline, func(dial gorm.Dialector) (*gorm.DB, error) {
		return gorm.Open(dial, &gorm.Config{})
	})
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&stocksentity.Stock{},
		&pricesadapters.BarModel{},
		&earningsentity.EarningsEvent{},
		&analysisadapters.IndicatorSnapshotModel{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
