package seed

import (
	"testing"

	"waveline/internal/database"
	"waveline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedTestDB(t)
	opts := Options{NumUsers: 8, NumPosts: 20, SkipBcrypt: true}
	s := NewSeeder(db, opts)

	require.NoError(t, s.Run(opts))

	var userCount, postCount, friendshipCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Friendship{}).Count(&friendshipCount).Error)

	assert.Equal(t, int64(8), userCount)
	assert.Equal(t, int64(20), postCount)
	assert.Greater(t, friendshipCount, int64(0))

	// A seeded post always belongs to a seeded user.
	var orphaned int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphaned).Error)
	assert.Equal(t, int64(0), orphaned)

	// Requester/addressee pairs never repeat.
	type pair struct {
		RequesterID uint
		AddresseeID uint
	}
	var pairs []pair
	require.NoError(t, db.Model(&models.Friendship{}).
		Select("requester_id", "addressee_id").Scan(&pairs).Error)
	seen := make(map[pair]bool, len(pairs))
	for _, p := range pairs {
		assert.False(t, seen[p], "duplicate friendship pair %v", p)
		seen[p] = true
	}
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedTestDB(t)
	opts := Options{NumUsers: 4, NumPosts: 6, SkipBcrypt: true}
	s := NewSeeder(db, opts)

	require.NoError(t, s.Run(opts))
	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{
		&models.User{}, &models.Post{}, &models.Comment{},
		&models.Like{}, &models.Friendship{}, &models.Notification{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Unscoped().Count(&count).Error)
		assert.Equal(t, int64(0), count, "%T not cleared", model)
	}
}

func TestFactoryCreateLikeIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)
	f := NewFactory(db, Options{SkipBcrypt: true})

	user, err := f.CreateUser()
	require.NoError(t, err)
	post := f.BuildPost(user)
	require.NoError(t, f.CreatePostsBatch([]*models.Post{post}))

	require.NoError(t, f.CreateLike(user, post))
	require.NoError(t, f.CreateLike(user, post))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
