package repository

import (
	"fmt"
	"testing"
	"time"

	"waveline/internal/database"
	"waveline/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB returns a fresh in-memory database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

var userSeq int64

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s_%d_%d@example.com", name, userSeq, time.Now().UnixNano()),
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
