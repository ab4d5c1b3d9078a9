package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id" gorm:"index"`
	PostID      uint      `json:"post_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	PostID      uint   `json:"post_id" validate:"required"`
	Description string `json:"description" validate:"required,min=1,max=500"`
}

// CommentResponse is a comment joined with its author's display fields
type CommentResponse struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	PostID      uint      `json:"post_id"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	ProfilePic  string    `json:"profile_pic"`
}
