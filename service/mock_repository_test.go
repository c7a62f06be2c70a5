package service

import (
	"errors"
	"sort"

	"github.com/techmaster-vietnam/blogos/models"
	"gorm.io/gorm"
)

// MockBlogRepository là mock repository cho testing
type MockBlogRepository struct {
	blogs     map[uint]*models.Blog
	nextID    uint
	replaced  []string
	lastQuery *models.BlogFilter
	failWith  error
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		blogs:  make(map[uint]*models.Blog),
		nextID: 1,
	}
}

func (m *MockBlogRepository) add(blog *models.Blog) *models.Blog {
	if blog.ID == 0 {
		blog.ID = m.nextID
	}
	if blog.ID >= m.nextID {
		m.nextID = blog.ID + 1
	}
	m.blogs[blog.ID] = blog
	return blog
}

func (m *MockBlogRepository) Create(blog *models.Blog) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.add(blog)
	return nil
}

func (m *MockBlogRepository) CreateBatch(blogs []*models.Blog) error {
	if m.failWith != nil {
		return m.failWith
	}
	for _, blog := range blogs {
		m.add(blog)
	}
	return nil
}

func (m *MockBlogRepository) GetByID(id uint) (*models.Blog, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	blog, ok := m.blogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *blog
	return &cp, nil
}

func (m *MockBlogRepository) Update(blog *models.Blog, replace ...string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.replaced = replace
	cp := *blog
	m.blogs[blog.ID] = &cp
	return nil
}

func (m *MockBlogRepository) Delete(bloggerID, id uint) (int64, error) {
	blog, ok := m.blogs[id]
	if !ok || blog.BloggerID != bloggerID {
		return 0, nil
	}
	delete(m.blogs, id)
	return 1, nil
}

func (m *MockBlogRepository) DeleteByIDs(bloggerID uint, ids []uint) (int64, error) {
	for _, id := range ids {
		blog, ok := m.blogs[id]
		if !ok || blog.BloggerID != bloggerID {
			return 0, nil
		}
	}
	for _, id := range ids {
		delete(m.blogs, id)
	}
	return int64(len(ids)), nil
}

func (m *MockBlogRepository) Filter(filter *models.BlogFilter) ([]models.Blog, int64, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	cp := *filter
	m.lastQuery = &cp

	var matched []models.Blog
	for _, blog := range m.blogs {
		if blog.Status != filter.Status {
			continue
		}
		if filter.BloggerID != 0 && blog.BloggerID != filter.BloggerID {
			continue
		}
		matched = append(matched, *blog)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *MockBlogRepository) ListByBlogger(bloggerID uint) ([]models.Blog, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []models.Blog
	for _, blog := range m.blogs {
		if blog.BloggerID == bloggerID {
			result = append(result, *blog)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MockCategoryRepository là mock category repository
type MockCategoryRepository struct {
	categories map[uint]models.Category
}

func NewMockCategoryRepository(categories ...models.Category) *MockCategoryRepository {
	m := &MockCategoryRepository{categories: make(map[uint]models.Category)}
	for _, c := range categories {
		m.categories[c.ID] = c
	}
	return m
}

func (m *MockCategoryRepository) GetByIDs(ids []uint) ([]models.Category, error) {
	result := []models.Category{}
	for _, id := range ids {
		if c, ok := m.categories[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

// MockLabelRepository là mock label repository
type MockLabelRepository struct {
	labels map[uint]models.Label
	err    error
}

func NewMockLabelRepository(labels ...models.Label) *MockLabelRepository {
	m := &MockLabelRepository{labels: make(map[uint]models.Label)}
	for _, l := range labels {
		m.labels[l.ID] = l
	}
	return m
}

func (m *MockLabelRepository) GetByIDs(ids []uint) ([]models.Label, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := []models.Label{}
	for _, id := range ids {
		if l, ok := m.labels[id]; ok {
			result = append(result, l)
		}
	}
	return result, nil
}

var errDatabase = errors.New("database unavailable")
