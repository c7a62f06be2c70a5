package service

import (
	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/core"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/goerrorkit"
)

// BlogFilterService lọc và phân trang danh sách blog
type BlogFilterService struct {
	blogRepo core.BlogRepositoryInterface
	cfg      config.BlogConfig
}

// NewBlogFilterService creates a new blog filter service
func NewBlogFilterService(blogRepo core.BlogRepositoryInterface, cfg config.BlogConfig) *BlogFilterService {
	return &BlogFilterService{blogRepo: blogRepo, cfg: cfg}
}

// ListFilterAll lists blogs matching filter
func (s *BlogFilterService) ListFilterAll(filter models.BlogFilter) (*PageResult[BlogListItemDTO], error) {
	if filter.PageNum < 1 {
		filter.PageNum = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && filter.PageSize > s.cfg.MaxPageSize {
		filter.PageSize = s.cfg.MaxPageSize
	}
	if filter.Status == 0 {
		filter.Status = models.BlogStatusPublic
	}
	if filter.Sort.Field == "" {
		filter.Sort = models.DefaultSortRule
	}

	blogs, total, err := s.blogRepo.Filter(&filter)
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách blog")
	}

	list := make([]BlogListItemDTO, len(blogs))
	for i := range blogs {
		list[i] = newBlogListItemDTO(&blogs[i])
	}

	pages := 0
	if filter.PageSize > 0 {
		pages = int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	}

	return &PageResult[BlogListItemDTO]{
		PageNum:  filter.PageNum,
		PageSize: filter.PageSize,
		Total:    total,
		Pages:    pages,
		List:     list,
	}, nil
}
