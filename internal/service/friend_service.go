// Package service implements the application's business logic.
package service

import (
	"context"

	"waveline/internal/models"
	"waveline/internal/observability"
	"waveline/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo       repository.FriendRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(
	friendRepo repository.FriendRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *FriendService {
	return &FriendService{
		friendRepo:       friendRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// SendRequest sends a friend request to the target user.
func (s *FriendService) SendRequest(ctx context.Context, userID, targetUserID uint) (*models.Friendship, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetFriendshipBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusAccepted:
			return nil, models.NewConflictError("You are already friends")
		default:
			if existing.RequesterID == userID {
				return nil, models.NewConflictError("Friend request already sent")
			}
			return nil, models.NewConflictError("You already have a pending friend request from this user")
		}
	}

	friendship := &models.Friendship{
		RequesterID: userID,
		AddresseeID: targetUserID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}
	observability.FriendRequestsTotal.WithLabelValues("sent").Inc()

	// The request row already stands; a failed notification still surfaces.
	if err := s.notificationRepo.Create(ctx, &models.Notification{
		UserID:     targetUserID,
		Type:       models.NotificationFriendRequest,
		FromUserID: userID,
	}); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// AcceptRequest accepts a pending friend request addressed to the user.
// The status flip on the single friendship row makes the friendship visible
// from both sides at once.
func (s *FriendService) AcceptRequest(ctx context.Context, userID, requestID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if friendship.AddresseeID != userID {
		return nil, models.NewForbiddenError("You can only accept friend requests sent to you")
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, models.NewConflictError("Friend request is not pending")
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, models.FriendshipStatusAccepted); err != nil {
		return nil, err
	}
	observability.FriendRequestsTotal.WithLabelValues("accepted").Inc()

	return s.friendRepo.GetByID(ctx, requestID)
}

// RejectRequest rejects an incoming request, or cancels one the user sent.
// The row is deleted, so the pair may exchange a fresh request later.
func (s *FriendService) RejectRequest(ctx context.Context, userID, requestID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if friendship.AddresseeID != userID && friendship.RequesterID != userID {
		return nil, models.NewForbiddenError("You can only reject or cancel your own pending requests")
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, models.NewConflictError("Friend request is not pending")
	}

	if err := s.friendRepo.Delete(ctx, requestID); err != nil {
		return nil, err
	}
	observability.FriendRequestsTotal.WithLabelValues("rejected").Inc()

	return friendship, nil
}

// PendingRequests returns incoming pending friend requests for the user.
func (s *FriendService) PendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingRequests(ctx, userID)
}

// ListFriends returns the user's friends, each annotated with the number of
// friends shared with the caller.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]models.FriendSummary, error) {
	friends, err := s.friendRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotateMutuals(ctx, userID, friends)
}

// Suggestions returns users with no friendship row with the caller, annotated
// with mutual-friend counts. No further ranking is applied.
func (s *FriendService) Suggestions(ctx context.Context, userID uint, limit int) ([]models.FriendSummary, error) {
	if limit <= 0 {
		limit = 5
	}
	candidates, err := s.userRepo.Suggestions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return s.annotateMutuals(ctx, userID, candidates)
}

func (s *FriendService) annotateMutuals(ctx context.Context, userID uint, users []models.User) ([]models.FriendSummary, error) {
	myFriends, err := s.friendRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	mine := make(map[uint]struct{}, len(myFriends))
	for _, id := range myFriends {
		mine[id] = struct{}{}
	}

	summaries := make([]models.FriendSummary, 0, len(users))
	for i := range users {
		theirFriends, err := s.friendRepo.GetFriendIDs(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		mutual := 0
		for _, id := range theirFriends {
			if id == userID {
				continue
			}
			if _, ok := mine[id]; ok {
				mutual++
			}
		}
		summaries = append(summaries, models.FriendSummary{
			UserSummary:   users[i].Summary(),
			MutualFriends: mutual,
		})
	}
	return summaries, nil
}
