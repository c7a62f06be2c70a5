package service

import (
	"time"

	"github.com/techmaster-vietnam/blogos/models"
)

// InsertBlogRequest represents add blog request
type InsertBlogRequest struct {
	Title       string
	Content     string
	ContentMd   string
	Summary     string
	CategoryIDs []uint
	LabelIDs    []uint
	Keywords    []string
}

// UpdateBlogRequest represents update blog request
// Field nil = giữ nguyên; slice rỗng (không nil) = xóa hết
type UpdateBlogRequest struct {
	Title       *string
	Content     *string
	ContentMd   *string
	Summary     *string
	CategoryIDs []uint
	LabelIDs    []uint
	Keywords    []string
	Status      *models.BlogStatus
}

// IsEmpty reports whether the request changes nothing
func (r *UpdateBlogRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil && r.ContentMd == nil && r.Summary == nil &&
		r.CategoryIDs == nil && r.LabelIDs == nil && r.Keywords == nil && r.Status == nil
}

// BlogDTO là blog đầy đủ trả về cho client
type BlogDTO struct {
	ID                uint              `json:"id"`
	BloggerID         uint              `json:"bloggerId"`
	Title             string            `json:"title"`
	Content           string            `json:"content"`
	ContentMd         string            `json:"contentMd"`
	Summary           string            `json:"summary"`
	Keywords          []string          `json:"keywords"`
	Status            models.BlogStatus `json:"status"`
	WordCount         int               `json:"wordCount"`
	ViewCount         int               `json:"viewCount"`
	CommentCount      int               `json:"commentCount"`
	CollectCount      int               `json:"collectCount"`
	LikeCount         int               `json:"likeCount"`
	ShareCount        int               `json:"shareCount"`
	AdmireCount       int               `json:"admireCount"`
	ComplainCount     int               `json:"complainCount"`
	ReleaseDate       time.Time         `json:"releaseDate"`
	NearestModifyDate *time.Time        `json:"nearestModifyDate,omitempty"`
	Categories        []models.Category `json:"categories"`
	Labels            []models.Label    `json:"labels"`
}

// BlogListItemDTO là blog trong danh sách (không có nội dung)
type BlogListItemDTO struct {
	ID           uint              `json:"id"`
	BloggerID    uint              `json:"bloggerId"`
	Title        string            `json:"title"`
	Summary      string            `json:"summary"`
	Keywords     []string          `json:"keywords"`
	Status       models.BlogStatus `json:"status"`
	WordCount    int               `json:"wordCount"`
	ViewCount    int               `json:"viewCount"`
	CommentCount int               `json:"commentCount"`
	LikeCount    int               `json:"likeCount"`
	CollectCount int               `json:"collectCount"`
	ReleaseDate  time.Time         `json:"releaseDate"`
	Categories   []models.Category `json:"categories"`
	Labels       []models.Label    `json:"labels"`
}

// BlogTitleIDDTO là kết quả của import
type BlogTitleIDDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// PageResult là một trang kết quả
type PageResult[T any] struct {
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
	Pages    int   `json:"pages"`
	List     []T   `json:"list"`
}

func newBlogDTO(blog *models.Blog) *BlogDTO {
	return &BlogDTO{
		ID:                blog.ID,
		BloggerID:         blog.BloggerID,
		Title:             blog.Title,
		Content:           blog.Content,
		ContentMd:         blog.ContentMd,
		Summary:           blog.Summary,
		Keywords:          nonNilStrings(blog.Keywords),
		Status:            blog.Status,
		WordCount:         blog.WordCount,
		ViewCount:         blog.ViewCount,
		CommentCount:      blog.CommentCount,
		CollectCount:      blog.CollectCount,
		LikeCount:         blog.LikeCount,
		ShareCount:        blog.ShareCount,
		AdmireCount:       blog.AdmireCount,
		ComplainCount:     blog.ComplainCount,
		ReleaseDate:       blog.ReleaseDate,
		NearestModifyDate: blog.NearestModifyDate,
		Categories:        nonNilCategories(blog.Categories),
		Labels:            nonNilLabels(blog.Labels),
	}
}

func newBlogListItemDTO(blog *models.Blog) BlogListItemDTO {
	return BlogListItemDTO{
		ID:           blog.ID,
		BloggerID:    blog.BloggerID,
		Title:        blog.Title,
		Summary:      blog.Summary,
		Keywords:     nonNilStrings(blog.Keywords),
		Status:       blog.Status,
		WordCount:    blog.WordCount,
		ViewCount:    blog.ViewCount,
		CommentCount: blog.CommentCount,
		LikeCount:    blog.LikeCount,
		CollectCount: blog.CollectCount,
		ReleaseDate:  blog.ReleaseDate,
		Categories:   nonNilCategories(blog.Categories),
		Labels:       nonNilLabels(blog.Labels),
	}
}

// Đảm bảo JSON trả về [] thay vì null
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilCategories(c []models.Category) []models.Category {
	if c == nil {
		return []models.Category{}
	}
	return c
}

func nonNilLabels(l []models.Label) []models.Label {
	if l == nil {
		return []models.Label{}
	}
	return l
}
