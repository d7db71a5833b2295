// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// NotificationType identifies the event a notification describes.
type NotificationType string

const (
	// NotificationFriendRequest is enqueued when a friend request arrives.
	NotificationFriendRequest NotificationType = "friend_request"
	// NotificationLike is enqueued when someone likes the recipient's post.
	NotificationLike NotificationType = "like"
	// NotificationComment is enqueued when someone comments on the recipient's post.
	NotificationComment NotificationType = "comment"
	// NotificationShare is enqueued when someone shares the recipient's post.
	NotificationShare NotificationType = "share"
)

// Notification is a pull-only inbox entry. Delivery is at-most-once: a failed
// enqueue surfaces to the caller and is not retried.
type Notification struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index:idx_notifications_user_created" json:"user_id"`
	Type       NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	FromUserID uint             `gorm:"not null" json:"from_user_id"`
	FromUser   User             `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	PostID     *uint            `json:"post_id,omitempty"`
	Read       bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time        `gorm:"index:idx_notifications_user_created" json:"created_at"`
}
