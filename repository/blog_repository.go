package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/techmaster-vietnam/blogos/models"
	"gorm.io/gorm"
)

// errPartialDelete rollback transaction khi xóa thiếu blog
var errPartialDelete = errors.New("partial delete")

// BlogRepository handles blog database operations
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create creates a new blog with its category/label references
func (r *BlogRepository) Create(blog *models.Blog) error {
	// Omit "*.": chỉ tạo bản ghi ở bảng nối, không upsert categories/labels
	return r.db.Omit("Categories.*", "Labels.*").Create(blog).Error
}

// CreateBatch creates blogs in one transaction
func (r *BlogRepository) CreateBatch(blogs []*models.Blog) error {
	if len(blogs) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, blog := range blogs {
			if err := tx.Omit("Categories.*", "Labels.*").Create(blog).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets a blog by ID
func (r *BlogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Categories").Preload("Labels").Where("id = ?", id).First(&blog).Error
	return &blog, err
}

// Update updates a blog
func (r *BlogRepository) Update(blog *models.Blog, replace ...string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Labels").Save(blog).Error; err != nil {
			return err
		}
		for _, name := range replace {
			var err error
			switch name {
			case "Categories":
				err = tx.Model(blog).Association("Categories").Replace(blog.Categories)
			case "Labels":
				err = tx.Model(blog).Association("Labels").Replace(blog.Labels)
			default:
				err = fmt.Errorf("unknown association %q", name)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete soft deletes a blog of the blogger
func (r *BlogRepository) Delete(bloggerID, id uint) (int64, error) {
	result := r.db.Where("blogger_id = ?", bloggerID).Delete(&models.Blog{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByIDs soft deletes blogs of the blogger in one transaction
func (r *BlogRepository) DeleteByIDs(bloggerID uint, ids []uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("blogger_id = ? AND id IN ?", bloggerID, ids).Delete(&models.Blog{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected != int64(len(ids)) {
			return errPartialDelete
		}
		return nil
	})
	if errors.Is(err, errPartialDelete) {
		return 0, nil
	}
	return affected, err
}

// Filter lists blogs matching the filter with pagination
func (r *BlogRepository) Filter(filter *models.BlogFilter) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.Model(&models.Blog{}).Where("status = ?", filter.Status)

	if filter.BloggerID != 0 {
		query = query.Where("blogger_id = ?", filter.BloggerID)
	}
	// Blog phải thuộc tất cả category/label được chọn
	for _, cid := range filter.CategoryIDs {
		query = query.Where("id IN (?)", r.db.Table("blog_categories").Select("blog_id").Where("category_id = ?", cid))
	}
	for _, lid := range filter.LabelIDs {
		query = query.Where("id IN (?)", r.db.Table("blog_labels").Select("blog_id").Where("label_id = ?", lid))
	}
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + escapeLike(strings.ToLower(kw)) + "%"
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(summary) LIKE ? ESCAPE '\' OR LOWER(keywords) LIKE ? ESCAPE '\')`,
			like, like, like)
	}

	// Count total với filters
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := filter.Sort.Field.Column()
	if !ok {
		column, _ = models.DefaultSortRule.Field.Column()
	}
	order := filter.Sort.Order
	if !order.Valid() {
		order = models.DefaultSortRule.Order
	}

	err := query.Preload("Categories").Preload("Labels").
		Order(fmt.Sprintf("%s %s, id DESC", column, order)).
		Offset(filter.Offset()).Limit(filter.PageSize).
		Find(&blogs).Error
	return blogs, total, err
}

// ListByBlogger lists every blog of a blogger, newest first
func (r *BlogRepository) ListByBlogger(bloggerID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("blogger_id = ?", bloggerID).Order("release_date DESC, id DESC").Find(&blogs).Error
	return blogs, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so keyword matches literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
