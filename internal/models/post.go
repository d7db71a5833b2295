// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// PostPrivacy controls who may see a post in the feed.
type PostPrivacy string

const (
	// PostPrivacyPublic makes a post visible to the author and all friends.
	PostPrivacyPublic PostPrivacy = "public"
	// PostPrivacyFriends makes a post visible to the author and friends.
	PostPrivacyFriends PostPrivacy = "friends"
	// PostPrivacyPrivate makes a post visible to the author only.
	PostPrivacyPrivate PostPrivacy = "private"
)

// ValidPrivacy reports whether p is one of the known privacy values.
func ValidPrivacy(p PostPrivacy) bool {
	switch p {
	case PostPrivacyPublic, PostPrivacyFriends, PostPrivacyPrivate:
		return true
	}
	return false
}

// Post represents a feed entry. Content may be empty when an image is
// attached; content and image must never both be empty.
type Post struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	UserID   uint        `gorm:"not null;index:idx_posts_user_created" json:"user_id"`
	User     User        `gorm:"foreignKey:UserID" json:"user"`
	Content  string      `gorm:"type:text" json:"content"`
	ImageURL string      `json:"image_url"`
	Privacy  PostPrivacy `gorm:"type:varchar(20);not null;default:'public'" json:"privacy"`

	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked bool `gorm:"->" json:"liked"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`

	CreatedAt time.Time      `gorm:"index:idx_posts_user_created" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
