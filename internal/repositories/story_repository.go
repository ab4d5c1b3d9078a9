package repositories

import (
	"fmt"

	"github.com/AviralMathur02/echo-back/internal/models"
	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	CreateStory(story *models.Story) error
	GetStoryByID(id uint) (*models.Story, error)
	GetStoriesByUserIDs(userIDs []uint, limit int) ([]models.Story, error)
	DeleteStory(id, userID uint) error
}

// PostgresStoryRepository implements StoryRepository for PostgreSQL
type PostgresStoryRepository struct {
	db *gorm.DB
}

// NewPostgresStoryRepository creates a new PostgresStoryRepository
func NewPostgresStoryRepository(db *gorm.DB) *PostgresStoryRepository {
	return &PostgresStoryRepository{db: db}
}

func (r *PostgresStoryRepository) CreateStory(story *models.Story) error {
	return r.db.Create(story).Error
}

func (r *PostgresStoryRepository) GetStoryByID(id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.First(&story, id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// GetStoriesByUserIDs retrieves the newest stories authored by the given users,
// truncated to limit entries
func (r *PostgresStoryRepository) GetStoriesByUserIDs(userIDs []uint, limit int) ([]models.Story, error) {
	stories := make([]models.Story, 0)
	if len(userIDs) == 0 {
		return stories, nil
	}
	err := r.db.Where("user_id IN ?", userIDs).Order("created_at DESC").Limit(limit).Find(&stories).Error
	return stories, err
}

// DeleteStory deletes a story only when it belongs to userID
func (r *PostgresStoryRepository) DeleteStory(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Story{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("story not found")
	}
	return nil
}
