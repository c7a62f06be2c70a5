package repository

import (
	"github.com/techmaster-vietnam/blogos/models"
	"gorm.io/gorm"
)

// BloggerRepository handles blogger database operations
type BloggerRepository struct {
	db *gorm.DB
}

// NewBloggerRepository creates a new blogger repository
func NewBloggerRepository(db *gorm.DB) *BloggerRepository {
	return &BloggerRepository{db: db}
}

// Create creates a new blogger
func (r *BloggerRepository) Create(blogger *models.Blogger) error {
	return r.db.Create(blogger).Error
}

// GetByID gets a blogger by ID
func (r *BloggerRepository) GetByID(id uint) (*models.Blogger, error) {
	var blogger models.Blogger
	err := r.db.Where("id = ?", id).First(&blogger).Error
	return &blogger, err
}

// GetByUsername gets a blogger by username
func (r *BloggerRepository) GetByUsername(username string) (*models.Blogger, error) {
	var blogger models.Blogger
	err := r.db.Where("username = ?", username).First(&blogger).Error
	return &blogger, err
}
