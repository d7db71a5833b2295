package server

import (
	"fmt"
	"sync/atomic"
	"testing"

	"waveline/internal/config"
	"waveline/internal/database"
	"waveline/internal/models"
	"waveline/internal/repository"
	"waveline/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testUserSeq atomic.Uint64

// setupHandlerTestDB opens an in-memory SQLite database with the full schema.
func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer wires a Server over real repositories and services backed by
// the given database. Metrics middleware is left unset so repeated test
// servers never fight over the Prometheus registry.
func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:   "test_secret",
		UploadDir:   t.TempDir(),
		ResetURLFmt: "http://localhost:5173/resetpassword/%s",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	s := &Server{
		config:           cfg,
		db:               db,
		userRepo:         userRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		friendRepo:       friendRepo,
		notificationRepo: notificationRepo,
	}
	s.imageService = service.NewImageService(cfg)
	s.userService = service.NewUserService(userRepo, s.imageService)
	s.postService = service.NewPostService(postRepo, commentRepo, friendRepo, userRepo, notificationRepo)
	s.friendService = service.NewFriendService(friendRepo, userRepo, notificationRepo)
	s.notificationService = service.NewNotificationService(notificationRepo)
	return s
}

func createHandlerTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@example.com", name, testUserSeq.Add(1)),
		Password: "hashed-not-used",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

// authedApp returns a Fiber app that behaves as if userID already passed the
// auth middleware. Route registration is left to the caller.
func authedApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}
