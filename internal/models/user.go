package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Username    string         `json:"username" gorm:"uniqueIndex;size:50"`
	Email       string         `json:"email" gorm:"uniqueIndex"`
	Password    string         `json:"-"` // Store hashed password, ignore for JSON serialization
	Name        string         `json:"name"`
	ProfilePic  string         `json:"profile_pic"`
	CoverPic    string         `json:"cover_pic"`
	City        string         `json:"city"`
	WebsiteName string         `json:"website_name"`
	WebsiteURL  string         `json:"website_url"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// UserResponse is a user enriched with follower/following counts
type UserResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	ProfilePic     string `json:"profile_pic"`
	CoverPic       string `json:"cover_pic"`
	City           string `json:"city"`
	WebsiteName    string `json:"website_name"`
	WebsiteURL     string `json:"website_url"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
}

// ToResponse builds a UserResponse with the given counts
func (u *User) ToResponse(followerCount, followingCount int64) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Name:           u.Name,
		ProfilePic:     u.ProfilePic,
		CoverPic:       u.CoverPic,
		City:           u.City,
		WebsiteName:    u.WebsiteName,
		WebsiteURL:     u.WebsiteURL,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=50"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating profile display fields.
// Identity and credential fields are never updatable here.
type UpdateUserRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Name        string `json:"name" validate:"omitempty,min=2,max=50"`
	City        string `json:"city"`
	ProfilePic  string `json:"profile_pic"`
	CoverPic    string `json:"cover_pic"`
	WebsiteName string `json:"website_name"`
	WebsiteURL  string `json:"website_url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
