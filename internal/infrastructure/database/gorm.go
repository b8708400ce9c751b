package database

import (
	"context"
	"fmt"
	"time"

	"mecanica_workorder/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

// Dialector returns the GORM dialector of the configured relational driver.
func Dialector(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DatabaseDSN), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DatabaseDSN), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLiteDSN()), nil
	}
	return nil, fmt.Errorf("store driver %q is not relational", cfg.StoreDriver)
}

// ConnectGorm opens the relational store, retrying while the server comes up.
//
// SQLite is limited to one open connection: it has no row locks, so work
// order transactions are serialized by the pool instead.
func ConnectGorm(ctx context.Context, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := NewGormLogger(log, logger.Warn)
	if cfg.LogLevel == "debug" {
		gormLogger = gormLogger.LogMode(logger.Info)
	}

	var db *gorm.DB
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
		if err == nil {
			break
		}
		log.Warn("database connection failed",
			zap.String("driver", cfg.StoreDriver),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == connectAttempts {
			return nil, fmt.Errorf("connect %s: %w", cfg.StoreDriver, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.StoreDriver, err)
	}
	if cfg.StoreDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Info("connected to database", zap.String("driver", cfg.StoreDriver))
	return db, nil
}
