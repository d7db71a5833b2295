package seed

import (
	"fmt"
	"log"

	"waveline/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers int
	NumPosts int
	// MaxDays is how far back seeded content is spread.
	MaxDays int
	// SkipBcrypt stores seeded passwords in plain text. It makes large
	// seed runs much faster but the accounts cannot be logged into.
	SkipBcrypt bool
}

// Seeder populates the database with realistic demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Notification{},
		&models.Like{},
		&models.Comment{},
		&models.Friendship{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users, a friendship mesh, posts, comments, likes and
// notifications.
func (s *Seeder) Run(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	log.Printf("created %d users", len(users))

	friendships, err := s.seedFriendMesh(users)
	if err != nil {
		return fmt.Errorf("seeding friendships: %w", err)
	}
	log.Printf("created %d friendships", friendships)

	posts, err := s.seedPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := s.seedEngagement(users, posts); err != nil {
		return fmt.Errorf("seeding engagement: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// seedFriendMesh links each user to a handful of later users, with most
// links accepted and the rest left pending. Pairing i with i+k only in one
// direction keeps the requester/addressee pair unique.
func (s *Seeder) seedFriendMesh(users []*models.User) (int, error) {
	created := 0
	for i, user := range users {
		links := s.factory.rng.Intn(4) + 2
		for k := 1; k <= links; k++ {
			j := i + k
			if j >= len(users) {
				break
			}
			status := models.FriendshipStatusAccepted
			if s.factory.rng.Intn(5) == 0 {
				status = models.FriendshipStatusPending
			}
			if _, err := s.factory.CreateFriendship(user, users[j], status); err != nil {
				return created, err
			}
			created++
			if status == models.FriendshipStatusPending {
				if _, err := s.factory.CreateNotification(
					users[j], user, models.NotificationFriendRequest, nil); err != nil {
					return created, err
				}
			}
		}
	}
	return created, nil
}

func (s *Seeder) seedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		posts = append(posts, s.factory.BuildPost(author))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// seedEngagement adds comments and likes to a random subset of posts, with
// matching notifications for the post authors.
func (s *Seeder) seedEngagement(users []*models.User, posts []*models.Post) error {
	rng := s.factory.rng
	comments, likes := 0, 0

	for _, post := range posts {
		for c := rng.Intn(4); c > 0; c-- {
			commenter := users[rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
			comments++
			if commenter.ID != post.UserID {
				author := &models.User{ID: post.UserID}
				postID := post.ID
				if _, err := s.factory.CreateNotification(
					author, commenter, models.NotificationComment, &postID); err != nil {
					return err
				}
			}
		}

		for l := rng.Intn(6); l > 0; l-- {
			liker := users[rng.Intn(len(users))]
			if err := s.factory.CreateLike(liker, post); err != nil {
				return err
			}
			likes++
		}
	}

	log.Printf("created %d comments and up to %d likes", comments, likes)
	return nil
}
