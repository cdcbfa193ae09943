package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{
		"categories",
		"products",
		"product_images",
		"product_variants",
		"variant_attributes",
		"attribute_values",
		"attributes",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestPingAndClose(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Ping(context.Background(), db))
	require.NoError(t, Close(db))
	assert.Error(t, Ping(context.Background(), db))
}
