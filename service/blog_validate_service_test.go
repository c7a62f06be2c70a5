package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/goerrorkit"
)

func testBlogConfig(t *testing.T) config.BlogConfig {
	return config.BlogConfig{
		ArchiveDir:        t.TempDir(),
		DefaultPageSize:   20,
		MaxPageSize:       100,
		MaxImportFiles:    10,
		MaxImportFileSize: 1024,
		SummaryLength:     20,
		TitleMaxLength:    30,
		SummaryMaxLength:  50,
		KeywordsMaxLength: 40,
	}
}

func newTestValidateService(t *testing.T) (*BlogValidateService, *MockBlogRepository) {
	blogRepo := NewMockBlogRepository()
	categoryRepo := NewMockCategoryRepository(
		models.Category{ID: 1, BloggerID: 7, Title: "Go"},
		models.Category{ID: 2, BloggerID: 7, Title: "Rust"},
		models.Category{ID: 3, BloggerID: 8, Title: "Java"},
	)
	labelRepo := NewMockLabelRepository(
		models.Label{ID: 10, Title: "backend"},
		models.Label{ID: 11, Title: "tips"},
	)
	return NewBlogValidateService(blogRepo, categoryRepo, labelRepo, testBlogConfig(t)), blogRepo
}

// assertAppErrorType kiểm tra loại lỗi: "business" hoặc "validation"
func assertAppErrorType(t *testing.T, err error, expectedType string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s error, got nil", expectedType)
	}
	var appErr *goerrorkit.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T: %v", err, err)
	}
	switch expectedType {
	case "business":
		if appErr.Type != goerrorkit.BusinessError {
			t.Errorf("Expected business error, got %v", appErr.Type)
		}
	case "validation":
		if appErr.Type != goerrorkit.ValidationError {
			t.Errorf("Expected validation error, got %v", appErr.Type)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestBlogValidateService_IsBlogStatusAllow(t *testing.T) {
	svc, _ := newTestValidateService(t)

	tests := []struct {
		code     int
		expected bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{4, false},
		{0, false},
		{99, false},
	}

	for _, tt := range tests {
		if got := svc.IsBlogStatusAllow(tt.code); got != tt.expected {
			t.Errorf("IsBlogStatusAllow(%d) = %v, expected %v", tt.code, got, tt.expected)
		}
	}
}

func TestBlogValidateService_CheckSortRule(t *testing.T) {
	svc, _ := newTestValidateService(t)

	tests := []struct {
		name     string
		sort     string
		order    string
		expected models.SortRule
		wantErr  bool
	}{
		{"defaults", "", "", models.SortRule{Field: models.SortViewCount, Order: models.OrderDesc}, false},
		{"lower case tokens", "like_count", "asc", models.SortRule{Field: models.SortLikeCount, Order: models.OrderAsc}, false},
		{"release date", "RELEASE_DATE", "DESC", models.SortRule{Field: models.SortReleaseDate, Order: models.OrderDesc}, false},
		{"unknown field", "TITLE", "ASC", models.SortRule{}, true},
		{"unknown order", "VIEW_COUNT", "UP", models.SortRule{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := svc.CheckSortRule(tt.sort, tt.order)
			if tt.wantErr {
				assertAppErrorType(t, err, "validation")
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if rule != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, rule)
			}
		})
	}
}

func TestBlogValidateService_CheckCategoryAndLabel(t *testing.T) {
	svc, _ := newTestValidateService(t)

	tests := []struct {
		name      string
		bloggerID uint
		cids      []uint
		lids      []uint
		wantErr   bool
	}{
		{"empty lists", 7, nil, nil, false},
		{"owned categories and existing labels", 7, []uint{1, 2}, []uint{10, 11}, false},
		{"category of another blogger", 7, []uint{1, 3}, nil, true},
		{"any blogger when id is zero", 0, []uint{1, 3}, nil, false},
		{"missing category", 0, []uint{99}, nil, true},
		{"missing label", 7, nil, []uint{10, 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckCategoryAndLabel(tt.bloggerID, tt.cids, tt.lids)
			if tt.wantErr {
				assertAppErrorType(t, err, "validation")
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestInvalidIDs(t *testing.T) {
	tests := []struct {
		name      string
		requested []uint
		found     []uint
		expected  []uint
	}{
		{"all found", []uint{1, 2}, []uint{2, 1}, []uint{}},
		{"keeps request order", []uint{9, 1, 5}, []uint{1}, []uint{9, 5}},
		{"nothing found", []uint{3}, nil, []uint{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := invalidIDs(tt.requested, tt.found); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("invalidIDs(%v, %v) = %v, expected %v", tt.requested, tt.found, got, tt.expected)
			}
		})
	}
}

func TestBlogValidateService_CheckCategoryAndLabel_RepositoryError(t *testing.T) {
	labelRepo := NewMockLabelRepository()
	labelRepo.err = errDatabase
	svc := NewBlogValidateService(NewMockBlogRepository(), NewMockCategoryRepository(), labelRepo, testBlogConfig(t))

	if err := svc.CheckCategoryAndLabel(7, nil, []uint{1}); err == nil {
		t.Fatal("Expected error when repository fails")
	}
}

func TestBlogValidateService_CheckBlogExistAndCreator(t *testing.T) {
	svc, blogRepo := newTestValidateService(t)
	blogRepo.add(&models.Blog{ID: 5, BloggerID: 7, Title: "mine"})

	if err := svc.CheckBlogExistAndCreator(7, 5); err != nil {
		t.Errorf("Expected owner check to pass, got %v", err)
	}

	assertAppErrorType(t, svc.CheckBlogExistAndCreator(7, 6), "business")

	err := svc.CheckBlogExistAndCreator(8, 5)
	if err == nil {
		t.Fatal("Expected error for another blogger")
	}
	var appErr *goerrorkit.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Type == goerrorkit.BusinessError || appErr.Type == goerrorkit.ValidationError {
		t.Errorf("Expected auth error, got %v", appErr.Type)
	}
}

func TestBlogValidateService_CheckBlogContent(t *testing.T) {
	svc, _ := newTestValidateService(t)

	tests := []struct {
		name      string
		title     *string
		content   *string
		contentMd *string
		summary   *string
		keywords  *string
		wantErr   bool
	}{
		{"all nil", nil, nil, nil, nil, nil, false},
		{"valid", strPtr("Xin chào"), strPtr("<p>x</p>"), strPtr("x"), strPtr("tóm tắt"), strPtr("go,web"), false},
		{"blank title", strPtr("   "), nil, nil, nil, nil, true},
		{"blank content", nil, strPtr("\n\t"), nil, nil, nil, true},
		{"title counted in runes", strPtr(strings.Repeat("ệ", 30)), nil, nil, nil, nil, false},
		{"title too long", strPtr(strings.Repeat("a", 31)), nil, nil, nil, nil, true},
		{"summary too long", nil, nil, nil, strPtr(strings.Repeat("s", 51)), nil, true},
		{"keywords too long", nil, nil, nil, nil, strPtr(strings.Repeat("k", 41)), true},
		{"content has no limit", nil, strPtr(strings.Repeat("c", 10000)), nil, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckBlogContent(tt.title, tt.content, tt.contentMd, tt.summary, tt.keywords)
			if tt.wantErr {
				assertAppErrorType(t, err, "validation")
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
