package models

import "time"

// Post represents a social media post
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description"`
	Img         string    `json:"img"`
	UserID      uint      `json:"user_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Description string `json:"description" validate:"required,min=1,max=500"`
	Img         string `json:"img"`
}

// PostResponse is a post joined with its author's display fields
type PostResponse struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Img         string    `json:"img"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	ProfilePic  string    `json:"profile_pic"`
}
