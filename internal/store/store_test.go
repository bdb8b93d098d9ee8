package store

import (
	"testing"

	"feedback_system/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the schema applied
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool on a single conn
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Feedback{}))
	return db
}

// mustRegister registers a user or fails the test
func mustRegister(t *testing.T, db *gorm.DB, username, password string) *domain.User {
	t.Helper()
	user, err := RegisterUser(db, username, password, username+"@example.com", "Test", "User")
	require.NoError(t, err)
	return user
}

func userCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
	return n
}
