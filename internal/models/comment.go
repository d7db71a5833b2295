// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment is an append-only entry on a post. Comments are never edited in
// place; ordering is by creation time with insertion order breaking ties.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
