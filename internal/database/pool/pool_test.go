package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestSetupConnectionPool(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, SetupConnectionPool(db, DefaultPoolConfig()))

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("rejects non-positive MaxOpenConns", func(t *testing.T) {
		db := openTestDB(t)
		assert.Error(t, SetupConnectionPool(db, Config{MaxOpenConns: 0}))
	})

	t.Run("rejects MaxIdleConns above MaxOpenConns", func(t *testing.T) {
		db := openTestDB(t)
		assert.Error(t, SetupConnectionPool(db, Config{MaxOpenConns: 2, MaxIdleConns: 5}))
	})
}
