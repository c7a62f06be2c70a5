package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/core"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

// BlogValidateService kiểm tra tham số trước khi gọi BlogService
type BlogValidateService struct {
	blogRepo     core.BlogRepositoryInterface
	categoryRepo core.CategoryRepositoryInterface
	labelRepo    core.LabelRepositoryInterface
	cfg          config.BlogConfig
}

// NewBlogValidateService creates a new blog validate service
func NewBlogValidateService(
	blogRepo core.BlogRepositoryInterface,
	categoryRepo core.CategoryRepositoryInterface,
	labelRepo core.LabelRepositoryInterface,
	cfg config.BlogConfig,
) *BlogValidateService {
	return &BlogValidateService{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		labelRepo:    labelRepo,
		cfg:          cfg,
	}
}

// IsBlogStatusAllow reports whether a blogger may set this status
func (s *BlogValidateService) IsBlogStatusAllow(code int) bool {
	status, ok := models.BlogStatusOf(code)
	return ok && (status == models.BlogStatusPublic || status == models.BlogStatusPrivate)
}

// CheckSortRule resolves sort/order tokens, rỗng thì dùng mặc định
func (s *BlogValidateService) CheckSortRule(sort, order string) (models.SortRule, error) {
	rule := models.DefaultSortRule

	if sort = strings.ToUpper(strings.TrimSpace(sort)); sort != "" {
		rule.Field = models.SortField(sort)
		if _, ok := rule.Field.Column(); !ok {
			return rule, NewParameterIllegalError("sort", sort)
		}
	}
	if order = strings.ToUpper(strings.TrimSpace(order)); order != "" {
		rule.Order = models.Order(order)
		if !rule.Order.Valid() {
			return rule, NewParameterIllegalError("order", order)
		}
	}

	return rule, nil
}

// CheckCategoryAndLabel kiểm tra categories thuộc blogger và labels tồn tại
// bloggerID = 0 thì chỉ kiểm tra category tồn tại
// Lỗi trả về liệt kê các ID không hợp lệ trong invalid_ids
func (s *BlogValidateService) CheckCategoryAndLabel(bloggerID uint, cids, lids []uint) error {
	if len(cids) > 0 {
		categories, err := s.categoryRepo.GetByIDs(cids)
		if err != nil {
			return goerrorkit.WrapWithMessage(err, "Lỗi khi kiểm tra category")
		}
		found := make([]uint, 0, len(categories))
		for _, c := range categories {
			if bloggerID == 0 || c.BloggerID == bloggerID {
				found = append(found, c.ID)
			}
		}
		if invalid := invalidIDs(cids, found); len(invalid) > 0 {
			return NewInvalidIDsError("categoryIds", cids, invalid)
		}
	}

	if len(lids) > 0 {
		labels, err := s.labelRepo.GetByIDs(lids)
		if err != nil {
			return goerrorkit.WrapWithMessage(err, "Lỗi khi kiểm tra label")
		}
		found := make([]uint, len(labels))
		for i, l := range labels {
			found[i] = l.ID
		}
		if invalid := invalidIDs(lids, found); len(invalid) > 0 {
			return NewInvalidIDsError("labelIds", lids, invalid)
		}
	}

	return nil
}

// invalidIDs trả về các ID trong requested không có trong found, giữ thứ tự
func invalidIDs(requested, found []uint) []uint {
	ok := make(map[uint]bool, len(found))
	for _, id := range found {
		ok[id] = true
	}
	invalid := []uint{}
	for _, id := range requested {
		if !ok[id] {
			invalid = append(invalid, id)
		}
	}
	return invalid
}

// CheckBlogExistAndCreator kiểm tra blog tồn tại và thuộc về blogger
func (s *BlogValidateService) CheckBlogExistAndCreator(bloggerID, blogID uint) error {
	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewEmptyResultError(map[string]interface{}{
				"blog_id": blogID,
			})
		}
		return goerrorkit.WrapWithMessage(err, "Lỗi khi lấy thông tin blog")
	}

	if blog.BloggerID != bloggerID {
		return goerrorkit.NewAuthError(403, "Không có quyền thao tác trên blog này").WithData(map[string]interface{}{
			"blog_id":    blogID,
			"blogger_id": bloggerID,
		})
	}

	return nil
}

// CheckBlogContent kiểm tra nội dung blog, field nil được bỏ qua
func (s *BlogValidateService) CheckBlogContent(title, content, contentMd, summary, keywords *string) error {
	checks := []struct {
		field    string
		value    *string
		maxRunes int
	}{
		{"title", title, s.cfg.TitleMaxLength},
		{"content", content, 0},
		{"contentMd", contentMd, 0},
		{"summary", summary, s.cfg.SummaryMaxLength},
		{"keyWord", keywords, s.cfg.KeywordsMaxLength},
	}

	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if strings.TrimSpace(*c.value) == "" {
			return goerrorkit.NewValidationError("Nội dung không được để trống", map[string]interface{}{
				"field": c.field,
			})
		}
		if c.maxRunes > 0 && utf8.RuneCountInString(*c.value) > c.maxRunes {
			return goerrorkit.NewValidationError("Nội dung vượt quá độ dài cho phép", map[string]interface{}{
				"field":      c.field,
				"max_length": c.maxRunes,
			})
		}
	}

	return nil
}
