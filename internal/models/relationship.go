package models

import "time"

// Relationship represents a directed follow edge from one user to another
type Relationship struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FollowerUserID uint      `json:"follower_user_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedUserID uint      `json:"followed_user_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt      time.Time `json:"created_at"`
}

// RelationshipRequest defines the request body for follow/unfollow actions
type RelationshipRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}
