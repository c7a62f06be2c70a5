package core

import "github.com/techmaster-vietnam/blogos/models"

// BlogRepositoryInterface định nghĩa interface cho Blog Repository
// Cho phép mock repository trong tests
type BlogRepositoryInterface interface {
	Create(blog *models.Blog) error
	CreateBatch(blogs []*models.Blog) error
	GetByID(id uint) (*models.Blog, error)
	// Update lưu các cột của blog; associations ("Categories", "Labels") chỉ được thay thế khi có tên trong replace
	Update(blog *models.Blog, replace ...string) error
	Delete(bloggerID, id uint) (int64, error)
	// DeleteByIDs xóa nhiều blog trong một transaction, rollback nếu số dòng bị xóa khác len(ids)
	DeleteByIDs(bloggerID uint, ids []uint) (int64, error)
	Filter(filter *models.BlogFilter) ([]models.Blog, int64, error)
	ListByBlogger(bloggerID uint) ([]models.Blog, error)
}

// CategoryRepositoryInterface định nghĩa interface cho Category Repository
type CategoryRepositoryInterface interface {
	// GetByIDs trả về các category tồn tại trong ids, không kiểm tra chủ sở hữu
	GetByIDs(ids []uint) ([]models.Category, error)
}

// LabelRepositoryInterface định nghĩa interface cho Label Repository
type LabelRepositoryInterface interface {
	GetByIDs(ids []uint) ([]models.Label, error)
}

// BloggerRepositoryInterface định nghĩa interface cho Blogger Repository
type BloggerRepositoryInterface interface {
	GetByID(id uint) (*models.Blogger, error)
}
