package models

import "time"

// Story represents a user's story
type Story struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Img       string    `json:"img"`
	UserID    uint      `json:"user_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// CreateStoryRequest defines the request body for creating a story
type CreateStoryRequest struct {
	Img string `json:"img" validate:"required"`
}

// StoryResponse is a story joined with its author's display name
type StoryResponse struct {
	ID        uint      `json:"id"`
	Img       string    `json:"img"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
}
