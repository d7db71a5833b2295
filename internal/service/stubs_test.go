package service

import (
	"context"

	"waveline/internal/models"
)

type friendRepoStub struct {
	createFn                    func(context.Context, *models.Friendship) error
	getByIDFn                   func(context.Context, uint) (*models.Friendship, error)
	getFriendshipBetweenUsersFn func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn                func(context.Context, uint) ([]models.User, error)
	getFriendIDsFn              func(context.Context, uint) ([]uint, error)
	getPendingRequestsFn        func(context.Context, uint) ([]models.Friendship, error)
	updateStatusFn              func(context.Context, uint, models.FriendshipStatus) error
	deleteFn                    func(context.Context, uint) error
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getFriendshipBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFriendIDsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, friendshipID uint) error {
	return s.deleteFn(ctx, friendshipID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:  func(context.Context, *models.Friendship) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Friendship, error) { return &models.Friendship{}, nil },
		getFriendshipBetweenUsersFn: func(context.Context, uint, uint) (*models.Friendship, error) {
			return nil, nil
		},
		getFriendsFn:         func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFriendIDsFn:       func(context.Context, uint) ([]uint, error) { return nil, nil },
		getPendingRequestsFn: func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		updateStatusFn:       func(context.Context, uint, models.FriendshipStatus) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByResetTokenFn func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	deleteFn          func(context.Context, uint) error
	listFn            func(context.Context, int, int) ([]models.User, error)
	suggestionsFn     func(context.Context, uint, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByResetToken(ctx context.Context, tokenHash string) (*models.User, error) {
	return s.getByResetTokenFn(ctx, tokenHash)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Suggestions(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.suggestionsFn(ctx, userID, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		getByResetTokenFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:          func(context.Context, *models.User) error { return nil },
		updateFn:          func(context.Context, *models.User) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		listFn:            func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		suggestionsFn:     func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn func(context.Context, uint, uint, bool, int, int) ([]*models.Post, error)
	feedFn        func(context.Context, uint, int, int) ([]*models.Post, int64, error)
	deleteFn      func(context.Context, uint) error
	isLikedFn     func(context.Context, uint, uint) (bool, error)
	likeFn        func(context.Context, uint, uint) error
	unlikeFn      func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID, currentUserID uint, isFriend bool, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, currentUserID, isFriend, limit, offset)
}
func (s *postRepoStub) Feed(ctx context.Context, currentUserID uint, limit, offset int) ([]*models.Post, int64, error) {
	return s.feedFn(ctx, currentUserID, limit, offset)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		getByUserIDFn: func(context.Context, uint, uint, bool, int, int) ([]*models.Post, error) {
			return nil, nil
		},
		feedFn:    func(context.Context, uint, int, int) ([]*models.Post, int64, error) { return nil, 0, nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		isLikedFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeFn:    func(context.Context, uint, uint) error { return nil },
		unlikeFn:  func(context.Context, uint, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
	}
}

type notificationRepoStub struct {
	createFn      func(context.Context, *models.Notification) error
	getByIDFn     func(context.Context, uint) (*models.Notification, error)
	listByUserFn  func(context.Context, uint, int, int) ([]models.Notification, error)
	countUnreadFn func(context.Context, uint) (int64, error)
	markReadFn    func(context.Context, uint) error
	markAllReadFn func(context.Context, uint) error
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id uint) error {
	return s.markReadFn(ctx, id)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:  func(context.Context, *models.Notification) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Notification, error) { return &models.Notification{ID: id}, nil },
		listByUserFn: func(context.Context, uint, int, int) ([]models.Notification, error) {
			return nil, nil
		},
		countUnreadFn: func(context.Context, uint) (int64, error) { return 0, nil },
		markReadFn:    func(context.Context, uint) error { return nil },
		markAllReadFn: func(context.Context, uint) error { return nil },
	}
}
