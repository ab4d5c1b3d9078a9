package repositories

import (
	"fmt"

	"github.com/AviralMathur02/echo-back/internal/models"
	"gorm.io/gorm"
)

// RelationshipRepository defines the interface for follow-edge data operations
type RelationshipRepository interface {
	CreateRelationship(rel *models.Relationship) error
	DeleteRelationship(followerUserID, followedUserID uint) error
	IsFollowing(followerUserID, followedUserID uint) (bool, error)
	GetFollowerIDs(userID uint) ([]uint, error)
	GetFollowedIDs(userID uint) ([]uint, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowerCount(userID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
}

// PostgresRelationshipRepository implements RelationshipRepository for PostgreSQL
type PostgresRelationshipRepository struct {
	db *gorm.DB
}

// NewPostgresRelationshipRepository creates a new PostgresRelationshipRepository
func NewPostgresRelationshipRepository(db *gorm.DB) *PostgresRelationshipRepository {
	return &PostgresRelationshipRepository{db: db}
}

func (r *PostgresRelationshipRepository) CreateRelationship(rel *models.Relationship) error {
	return r.db.Create(rel).Error
}

func (r *PostgresRelationshipRepository) DeleteRelationship(followerUserID, followedUserID uint) error {
	res := r.db.Where("follower_user_id = ? AND followed_user_id = ?", followerUserID, followedUserID).Delete(&models.Relationship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("relationship not found")
	}
	return nil
}

func (r *PostgresRelationshipRepository) IsFollowing(followerUserID, followedUserID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Relationship{}).Where("follower_user_id = ? AND followed_user_id = ?", followerUserID, followedUserID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowerIDs returns the IDs of users following userID
func (r *PostgresRelationshipRepository) GetFollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Relationship{}).Where("followed_user_id = ?", userID).Pluck("follower_user_id", &ids).Error
	return ids, err
}

// GetFollowedIDs returns the IDs of users that userID follows
func (r *PostgresRelationshipRepository) GetFollowedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Relationship{}).Where("follower_user_id = ?", userID).Pluck("followed_user_id", &ids).Error
	return ids, err
}

func (r *PostgresRelationshipRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("relationships").Select("follower_user_id").Where("followed_user_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresRelationshipRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("relationships").Select("followed_user_id").Where("follower_user_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresRelationshipRepository) GetFollowerCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Relationship{}).Where("followed_user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresRelationshipRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Relationship{}).Where("follower_user_id = ?", userID).Count(&count).Error
	return count, err
}
