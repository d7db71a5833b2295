// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account.
// Password and reset-token fields are never serialized.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:50;not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	Bio            string `gorm:"size:250" json:"bio"`
	Location       string `json:"location"`
	Website        string `json:"website"`
	ProfilePicture string `json:"profile_picture"`

	// Single active password-reset token, stored as a sha256 hex digest.
	ResetPasswordToken   string     `gorm:"index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UserSummary is the author shape embedded in posts, comments, and friend lists.
type UserSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// Summary returns the public author shape for the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
	}
}

// FriendSummary is a friend or suggestion entry annotated with the number of
// friends the two users share.
type FriendSummary struct {
	UserSummary
	MutualFriends int `json:"mutual_friends"`
}
