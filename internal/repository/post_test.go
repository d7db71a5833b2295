package repository

import (
	"context"
	"testing"
	"time"

	"waveline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func acceptFriendship(t *testing.T, db *gorm.DB, a, b uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: a,
		AddresseeID: b,
		Status:      models.FriendshipStatusAccepted,
	}).Error)
}

func createPostAt(t *testing.T, db *gorm.DB, userID uint, content string, privacy models.PostPrivacy, at time.Time) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Content: content, Privacy: privacy}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Model(post).UpdateColumn("created_at", at).Error)
	return post
}

func TestPostRepository_FeedVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	viewer := createTestUser(t, db, "viewer")
	friend := createTestUser(t, db, "friend")
	stranger := createTestUser(t, db, "stranger")
	acceptFriendship(t, db, viewer.ID, friend.ID)

	base := time.Now().Add(-time.Hour)
	ownPrivate := createPostAt(t, db, viewer.ID, "own private", models.PostPrivacyPrivate, base.Add(1*time.Minute))
	friendPublic := createPostAt(t, db, friend.ID, "friend public", models.PostPrivacyPublic, base.Add(2*time.Minute))
	friendFriends := createPostAt(t, db, friend.ID, "friend friends-only", models.PostPrivacyFriends, base.Add(3*time.Minute))
	createPostAt(t, db, friend.ID, "friend private", models.PostPrivacyPrivate, base.Add(4*time.Minute))
	createPostAt(t, db, stranger.ID, "stranger public", models.PostPrivacyPublic, base.Add(5*time.Minute))

	posts, total, err := repo.Feed(ctx, viewer.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, posts, 3)

	// Newest first; stranger's and friend's private posts never appear.
	assert.Equal(t, friendFriends.ID, posts[0].ID)
	assert.Equal(t, friendPublic.ID, posts[1].ID)
	assert.Equal(t, ownPrivate.ID, posts[2].ID)
	assert.Equal(t, friend.Name, posts[0].User.Name)
}

func TestPostRepository_FeedPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	viewer := createTestUser(t, db, "pager")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		createPostAt(t, db, viewer.ID, "post", models.PostPrivacyPublic, base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.Feed(ctx, viewer.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, total, err := repo.Feed(ctx, viewer.ID, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)

	beyond, total, err := repo.Feed(ctx, viewer.ID, 2, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, beyond)
}

func TestPostRepository_GetByUserIDPrivacy(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	friend := createTestUser(t, db, "ofriend")
	stranger := createTestUser(t, db, "ostranger")
	acceptFriendship(t, db, owner.ID, friend.ID)

	base := time.Now().Add(-time.Hour)
	createPostAt(t, db, owner.ID, "public", models.PostPrivacyPublic, base.Add(1*time.Minute))
	createPostAt(t, db, owner.ID, "friends", models.PostPrivacyFriends, base.Add(2*time.Minute))
	createPostAt(t, db, owner.ID, "private", models.PostPrivacyPrivate, base.Add(3*time.Minute))

	own, err := repo.GetByUserID(ctx, owner.ID, owner.ID, false, 10, 0)
	require.NoError(t, err)
	assert.Len(t, own, 3)

	asFriend, err := repo.GetByUserID(ctx, owner.ID, friend.ID, true, 10, 0)
	require.NoError(t, err)
	assert.Len(t, asFriend, 2)

	asStranger, err := repo.GetByUserID(ctx, owner.ID, stranger.ID, false, 10, 0)
	require.NoError(t, err)
	require.Len(t, asStranger, 1)
	assert.Equal(t, "public", asStranger[0].Content)
}

func TestPostRepository_Likes(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")
	post := &models.Post{UserID: author.ID, Content: "hello", Privacy: models.PostPrivacyPublic}
	require.NoError(t, repo.Create(ctx, post))

	liked, err := repo.IsLiked(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.Like(ctx, liker.ID, post.ID))
	// Liking twice is a no-op, not an error.
	require.NoError(t, repo.Like(ctx, liker.ID, post.ID))

	liked, err = repo.IsLiked(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := repo.GetByID(ctx, post.ID, liker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikesCount)
	assert.True(t, got.Liked)

	require.NoError(t, repo.Unlike(ctx, liker.ID, post.ID))
	got, err = repo.GetByID(ctx, post.ID, liker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.LikesCount)
	assert.False(t, got.Liked)
}

func TestPostRepository_GetByIDWithComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "cauthor")
	commenter := createTestUser(t, db, "commenter")
	post := &models.Post{UserID: author.ID, Content: "hello", Privacy: models.PostPrivacyPublic}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, comments.Create(ctx, &models.Comment{PostID: post.ID, UserID: commenter.ID, Content: "first"}))
	require.NoError(t, comments.Create(ctx, &models.Comment{PostID: post.ID, UserID: author.ID, Content: "second"}))

	got, err := repo.GetByID(ctx, post.ID, author.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "first", got.Comments[0].Content)
	assert.Equal(t, commenter.Name, got.Comments[0].User.Name)
}

func TestPostRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "deleter")
	post := &models.Post{UserID: author.ID, Content: "gone soon", Privacy: models.PostPrivacyPublic}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID, author.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
