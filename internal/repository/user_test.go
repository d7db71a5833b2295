package repository

import (
	"context"
	"testing"
	"time"

	"waveline/internal/cache"
	"waveline/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	got, err = repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	// Unknown email is a nil result, not an error.
	got, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "First", Email: "dup@example.com", Password: "hash"}))

	err := repo.Create(ctx, &models.User{Name: "Second", Email: "dup@example.com", Password: "hash"})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_ResetToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Reset", Email: "reset@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	expires := time.Now().Add(10 * time.Minute)
	user.ResetPasswordToken = "abc123hash"
	user.ResetPasswordExpires = &expires
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByResetToken(ctx, "abc123hash")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByResetToken(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Suggestions(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	me := createTestUser(t, db, "me")
	friend := createTestUser(t, db, "suggfriend")
	pending := createTestUser(t, db, "suggpending")
	fresh := createTestUser(t, db, "suggfresh")

	acceptFriendship(t, db, me.ID, friend.ID)
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: pending.ID,
		AddresseeID: me.ID,
		Status:      models.FriendshipStatusPending,
	}).Error)

	suggestions, err := repo.Suggestions(ctx, me.ID, 5)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, fresh.ID, suggestions[0].ID)
}

func TestUserRepository_CachedReadKeepsCredentials(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	expires := time.Now().Add(time.Hour)
	user := &models.User{
		Name:                 "Cached",
		Email:                "cached@example.com",
		Password:             "$2a$10$fakehashfakehashfakehash",
		ResetPasswordToken:   "tokenhash",
		ResetPasswordExpires: &expires,
	}
	require.NoError(t, repo.Create(ctx, user))

	// First read populates the cache, second read is served from it.
	_, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Password, cached.Password)
	assert.Equal(t, "tokenhash", cached.ResetPasswordToken)
	require.NotNil(t, cached.ResetPasswordExpires)

	// A profile edit flowing through the cached copy must not wipe the hash.
	cached.Bio = "updated bio"
	require.NoError(t, repo.Update(ctx, cached))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, user.Password, stored.Password)
	assert.Equal(t, "updated bio", stored.Bio)
}
