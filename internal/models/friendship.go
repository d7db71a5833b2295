// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendshipStatus represents the state of a friendship row.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates an outstanding friend request.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an established friendship.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// Friendship is both the friend-request queue and the friends adjacency list.
// A pending row is a request from Requester to Addressee; flipping the status
// to accepted establishes the friendship for both users in a single write, so
// the symmetry invariant cannot be observed half-applied. Rejection deletes
// the row; terminal states are not retained.
type Friendship struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"addressee_id"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Normalized pair columns close the race where both users request each
	// other at once. The ordered index above cannot catch the reverse row;
	// the unique index over (least, greatest) rejects it at the database.
	PairMin uint `gorm:"not null;uniqueIndex:idx_friendship_norm_pair" json:"-"`
	PairMax uint `gorm:"not null;uniqueIndex:idx_friendship_norm_pair" json:"-"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// BeforeCreate fills the normalized pair columns from the directed pair.
func (f *Friendship) BeforeCreate(*gorm.DB) error {
	f.PairMin, f.PairMax = f.RequesterID, f.AddresseeID
	if f.PairMin > f.PairMax {
		f.PairMin, f.PairMax = f.PairMax, f.PairMin
	}
	return nil
}

// TableName specifies the table name for GORM.
func (Friendship) TableName() string {
	return "friendships"
}
