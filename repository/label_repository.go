package repository

import (
	"github.com/techmaster-vietnam/blogos/models"
	"gorm.io/gorm"
)

// LabelRepository handles label database operations
type LabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new label repository
func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// Create creates a new label
func (r *LabelRepository) Create(label *models.Label) error {
	return r.db.Create(label).Error
}

// GetByIDs lấy labels theo IDs (batch query)
func (r *LabelRepository) GetByIDs(ids []uint) ([]models.Label, error) {
	if len(ids) == 0 {
		return []models.Label{}, nil
	}
	var labels []models.Label
	err := r.db.Where("id IN ?", ids).Find(&labels).Error
	return labels, err
}
