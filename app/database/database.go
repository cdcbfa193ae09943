package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mytheresa/product-catalog/app/config"
	"github.com/mytheresa/product-catalog/app/logging"
	"github.com/mytheresa/product-catalog/models"
)

// Open connects to PostgreSQL and configures the connection pool.
// Driver errors are translated so unique and foreign key violations surface
// as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		Logger:         logging.NewGormLogger(log, cfg.DBSlowQueryThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ping verifies the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
