package infra

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"canetrack/internal/apperror"
	"canetrack/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx. Schema creation is
// a separate, explicit step (EnsureSchema) so that a connection failure here
// stays recoverable — the service degrades to local-only mode.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &apperror.ConnectionError{Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &apperror.ConnectionError{Err: err}
	}
	// Single-user interactive tool: one connection is plenty.
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Ping verifies the remote database answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return &apperror.ConnectionError{Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &apperror.ConnectionError{Err: err}
	}
	return nil
}

// EnsureSchema creates the harvests table if absent. AutoMigrate is a no-op
// when the table already matches the model, so invoking it repeatedly is safe.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Harvest{}); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
