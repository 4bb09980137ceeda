package db

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"offboarding-service/internal/config"
	"offboarding-service/internal/models"
)

// Connect opens the Postgres pool, tunes it and verifies connectivity.
// Connection attempts are bounded: the caller must treat an error as fatal
// rather than serving traffic against an unreachable store.
func Connect(cfg config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		database, err := open(cfg)
		if err == nil {
			return database, nil
		}

		lastErr = err
		logger.Warn("database connection failed",
			"attempt", attempt,
			"max_attempts", cfg.DBConnectAttempts,
			"error", err)

		if attempt < cfg.DBConnectAttempts {
			time.Sleep(cfg.DBConnectBackoff)
		}
	}

	return nil, fmt.Errorf("connect after %d attempts: %w", cfg.DBConnectAttempts, lastErr)
}

func open(cfg config.Config) (*gorm.DB, error) {
	gormLogger := gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	database, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return database, nil
}

// Migrate ensures the offboarding_records table exists. AutoMigrate is
// idempotent, so repeated startups are safe.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.OffboardingRecord{}); err != nil {
		return fmt.Errorf("migrate offboarding_records: %w", err)
	}
	return nil
}

// Close releases all pooled connections.
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
