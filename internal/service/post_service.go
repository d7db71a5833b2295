package service

import (
	"context"
	"strings"
	"time"

	"waveline/internal/models"
	"waveline/internal/observability"
	"waveline/internal/repository"
)

// PostService provides post, feed, like and comment business logic.
type PostService struct {
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	friendRepo       repository.FriendRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	friendRepo repository.FriendRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *PostService {
	return &PostService{
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		friendRepo:       friendRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// CreatePost creates a post for the user. A post needs content or an image;
// privacy defaults to public.
func (s *PostService) CreatePost(ctx context.Context, userID uint, content, imageURL string, privacy models.PostPrivacy) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && imageURL == "" {
		return nil, models.NewValidationError("Post must have content or an image")
	}
	if privacy == "" {
		privacy = models.PostPrivacyPublic
	}
	if !models.ValidPrivacy(privacy) {
		return nil, models.NewValidationError("Invalid privacy setting")
	}

	post := &models.Post{
		UserID:   userID,
		Content:  content,
		ImageURL: imageURL,
		Privacy:  privacy,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, userID)
}

// GetFeed returns the page of posts visible to the viewer, newest first,
// along with pagination metadata. Pages past the end are empty, not an error.
func (s *PostService) GetFeed(ctx context.Context, viewerID uint, page, limit int) ([]*models.Post, models.Pagination, error) {
	start := time.Now()
	defer func() {
		observability.FeedAssemblyLatency.Observe(time.Since(start).Seconds())
	}()

	offset := (page - 1) * limit
	posts, total, err := s.postRepo.Feed(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return posts, models.NewPagination(page, limit, total), nil
}

// GetUserPosts returns one user's posts as visible to the viewer.
func (s *PostService) GetUserPosts(ctx context.Context, viewerID, ownerID uint, page, limit int) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	isFriend := false
	if viewerID != ownerID {
		friendship, err := s.friendRepo.GetFriendshipBetweenUsers(ctx, viewerID, ownerID)
		if err != nil {
			return nil, err
		}
		isFriend = friendship != nil && friendship.Status == models.FriendshipStatusAccepted
	}

	offset := (page - 1) * limit
	return s.postRepo.GetByUserID(ctx, ownerID, viewerID, isFriend, limit, offset)
}

// LikeState reports a post's like status after a toggle.
type LikeState struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ToggleLike flips the user's like on the post. Liking notifies the post's
// owner unless the owner is the liker; unliking never notifies.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*LikeState, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
	} else {
		if err := s.postRepo.Like(ctx, userID, postID); err != nil {
			return nil, err
		}
		if post.UserID != userID {
			pid := postID
			if err := s.notificationRepo.Create(ctx, &models.Notification{
				UserID:     post.UserID,
				Type:       models.NotificationLike,
				FromUserID: userID,
				PostID:     &pid,
			}); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &LikeState{Liked: updated.Liked, LikesCount: updated.LikesCount}, nil
}

// AddComment appends a comment to the post and notifies the post's owner
// unless the commenter is the owner.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}

	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		pid := postID
		if err := s.notificationRepo.Create(ctx, &models.Notification{
			UserID:     post.UserID,
			Type:       models.NotificationComment,
			FromUserID: userID,
			PostID:     &pid,
		}); err != nil {
			return nil, err
		}
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeletePost deletes the post if the user owns it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
