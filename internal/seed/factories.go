// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"waveline/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// backdate spreads created_at over the configured history window so feeds
// look lived-in instead of everything landing on the same second.
func (f *Factory) backdate() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().Add(-back)
}

// CreateUser constructs and persists a sample user. All seeded users share
// the password "password123" so any of them can be used to log in.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:           gofakeit.Name(),
		Email:          fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Bio:            gofakeit.Sentence(10),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Website:        gofakeit.URL(),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post without persisting it. Useful for batching.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	privacies := []models.PostPrivacy{
		models.PostPrivacyPublic,
		models.PostPrivacyPublic,
		models.PostPrivacyPublic,
		models.PostPrivacyFriends,
		models.PostPrivacyPrivate,
	}

	post := &models.Post{
		UserID:    user.ID,
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Privacy:   privacies[f.rng.Intn(len(privacies))],
		CreatedAt: f.backdate(),
	}

	// Roughly a third of posts carry an image.
	if f.rng.Intn(3) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateFriendship persists a friendship row between two users.
func (f *Factory) CreateFriendship(requester, addressee *models.User, status models.FriendshipStatus) (*models.Friendship, error) {
	friendship := &models.Friendship{
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      status,
		CreatedAt:   f.backdate(),
	}
	if err := f.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// CreateComment persists a comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		UserID:    user.ID,
		Content:   gofakeit.Sentence(f.rng.Intn(12) + 3),
		CreatedAt: post.CreatedAt.Add(time.Duration(f.rng.Intn(48)) * time.Hour),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like by the user on the post. Duplicate likes are
// silently skipped, matching the unique user/post constraint.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	var existing int64
	if err := f.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// CreateNotification persists a notification for the recipient.
func (f *Factory) CreateNotification(recipient, from *models.User, t models.NotificationType, postID *uint) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:     recipient.ID,
		FromUserID: from.ID,
		Type:       t,
		PostID:     postID,
		Read:       f.rng.Intn(2) == 0,
	}
	if err := f.db.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}
