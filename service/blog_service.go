package service

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/core"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/blogos/utils"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

// importExtensions là các đuôi file được nhận khi import zip
var importExtensions = []string{".md", ".markdown", ".html", ".htm"}

// BlogService xử lý nghiệp vụ blog của blogger
type BlogService struct {
	blogRepo core.BlogRepositoryInterface
	cfg      config.BlogConfig
	now      func() time.Time
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo core.BlogRepositoryInterface, cfg config.BlogConfig) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// InsertBlog tạo blog mới ở trạng thái PUBLIC, trả về ID
func (s *BlogService) InsertBlog(bloggerID uint, req InsertBlogRequest) (uint, error) {
	blog := &models.Blog{
		BloggerID:   bloggerID,
		Title:       req.Title,
		Content:     req.Content,
		ContentMd:   req.ContentMd,
		Summary:     req.Summary,
		Keywords:    req.Keywords,
		Status:      models.BlogStatusPublic,
		WordCount:   utils.CountWords(utils.PlainText(req.Content)),
		ReleaseDate: s.now(),
		Categories:  categoryRefs(req.CategoryIDs),
		Labels:      labelRefs(req.LabelIDs),
	}

	if err := s.blogRepo.Create(blog); err != nil {
		return 0, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo blog")
	}

	return blog.ID, nil
}

// GetBlog lấy blog của bloggerID
// Blog không công khai chỉ chủ sở hữu xem được; không thấy thì trả về nil
func (s *BlogService) GetBlog(viewerID, bloggerID, blogID uint) (*BlogDTO, error) {
	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy thông tin blog")
	}

	if blog.BloggerID != bloggerID {
		return nil, nil
	}
	if blog.Status != models.BlogStatusPublic && viewerID != bloggerID {
		return nil, nil
	}

	return newBlogDTO(blog), nil
}

// UpdateBlog cập nhật các field khác nil của req
func (s *BlogService) UpdateBlog(bloggerID, blogID uint, req UpdateBlogRequest) (bool, error) {
	if req.IsEmpty() {
		return false, goerrorkit.NewValidationError("Không có dữ liệu cần cập nhật", map[string]interface{}{
			"blog_id": blogID,
		})
	}

	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy thông tin blog")
	}
	if blog.BloggerID != bloggerID {
		return false, nil
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
		blog.WordCount = utils.CountWords(utils.PlainText(blog.Content))
	}
	if req.ContentMd != nil {
		blog.ContentMd = *req.ContentMd
	}
	if req.Summary != nil {
		blog.Summary = *req.Summary
	}
	if req.Keywords != nil {
		blog.Keywords = req.Keywords
	}
	if req.Status != nil {
		blog.Status = *req.Status
	}

	// Bảng nối chỉ ghi lại khi tập ID thay đổi
	var replace []string
	if req.CategoryIDs != nil && !sameIDs(blog.CategoryIDs(), req.CategoryIDs) {
		blog.Categories = categoryRefs(req.CategoryIDs)
		replace = append(replace, "Categories")
	}
	if req.LabelIDs != nil && !sameIDs(blog.LabelIDs(), req.LabelIDs) {
		blog.Labels = labelRefs(req.LabelIDs)
		replace = append(replace, "Labels")
	}

	now := s.now()
	blog.NearestModifyDate = &now

	if err := s.blogRepo.Update(blog, replace...); err != nil {
		return false, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật blog")
	}

	return true, nil
}

// DeleteBlog xóa (soft delete) blog của blogger
func (s *BlogService) DeleteBlog(bloggerID, blogID uint) (bool, error) {
	affected, err := s.blogRepo.Delete(bloggerID, blogID)
	if err != nil {
		return false, goerrorkit.WrapWithMessage(err, "Lỗi khi xóa blog")
	}
	return affected == 1, nil
}

// DeleteBlogPatch xóa nhiều blog trong một transaction
// Trả về false nếu có blog không xóa được, khi đó không blog nào bị xóa
func (s *BlogService) DeleteBlogPatch(bloggerID uint, ids []uint) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	affected, err := s.blogRepo.DeleteByIDs(bloggerID, ids)
	if err != nil {
		return false, goerrorkit.WrapWithMessage(err, "Lỗi khi xóa blog")
	}
	return affected == int64(len(ids)), nil
}

// InsertBlogPatch import blog từ file zip chứa markdown/html
// Blog import ở trạng thái PRIVATE để blogger xem lại trước khi công khai
func (s *BlogService) InsertBlogPatch(bloggerID uint, r io.ReaderAt, size int64) ([]BlogTitleIDDTO, error) {
	entries, skipped, err := utils.ReadZip(r, size, utils.ReadZipOptions{
		MaxFiles:    s.cfg.MaxImportFiles,
		MaxFileSize: s.cfg.MaxImportFileSize,
		Extensions:  importExtensions,
	})
	if err != nil {
		return nil, goerrorkit.NewValidationError("File zip không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if len(skipped) > 0 {
		names := make([]string, len(skipped))
		for i, sk := range skipped {
			names[i] = sk.Name + " (" + sk.Reason + ")"
		}
		goerrorkit.LogError(goerrorkit.NewBusinessError(400, "Bỏ qua file khi import blog").WithData(map[string]interface{}{
			"blogger_id": bloggerID,
			"skipped":    names,
		}), "BlogService.InsertBlogPatch")
	}

	now := s.now()
	blogs := make([]*models.Blog, 0, len(entries))
	for _, entry := range entries {
		blog, err := s.blogFromEntry(bloggerID, entry, now)
		if err != nil {
			return nil, err
		}
		if blog != nil {
			blogs = append(blogs, blog)
		}
	}

	if len(blogs) == 0 {
		return []BlogTitleIDDTO{}, nil
	}

	if err := s.blogRepo.CreateBatch(blogs); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi import blog")
	}

	result := make([]BlogTitleIDDTO, len(blogs))
	for i, blog := range blogs {
		result[i] = BlogTitleIDDTO{ID: blog.ID, Title: blog.Title}
	}
	return result, nil
}

// blogFromEntry chuyển một file trong zip thành blog, nil nếu file rỗng
func (s *BlogService) blogFromEntry(bloggerID uint, entry utils.ArchiveEntry, now time.Time) (*models.Blog, error) {
	body := string(entry.Body)
	if utils.IsBlank(body) {
		return nil, nil
	}

	base := path.Base(entry.Name)
	ext := path.Ext(base)
	title := strings.TrimSpace(strings.TrimSuffix(base, ext))
	if title == "" {
		return nil, nil
	}

	content, contentMd := body, body
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		html, err := utils.MarkdownToHTML(body)
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi chuyển markdown sang html").WithData(map[string]interface{}{
				"file": entry.Name,
			})
		}
		content = html
	}

	text := utils.PlainText(content)
	return &models.Blog{
		BloggerID:   bloggerID,
		Title:       utils.Summarize(title, s.cfg.TitleMaxLength),
		Content:     content,
		ContentMd:   contentMd,
		Summary:     utils.Summarize(text, s.cfg.SummaryLength),
		Keywords:    []string{},
		Status:      models.BlogStatusPrivate,
		WordCount:   utils.CountWords(text),
		ReleaseDate: now,
	}, nil
}

// GetAllBlogForDownload ghi toàn bộ blog của blogger ra file zip tạm, trả về đường dẫn file
// Người gọi chịu trách nhiệm xóa file sau khi dùng
func (s *BlogService) GetAllBlogForDownload(bloggerID uint, format models.BlogFormat) (string, error) {
	blogs, err := s.blogRepo.ListByBlogger(bloggerID)
	if err != nil {
		return "", goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách blog")
	}
	if len(blogs) == 0 {
		return "", NewEmptyResultError(map[string]interface{}{
			"blogger_id": bloggerID,
		})
	}

	entries := make([]utils.ArchiveEntry, len(blogs))
	for i, blog := range blogs {
		body := blog.Content
		if format == models.BlogFormatMarkdown {
			body = blog.ContentMd
		}
		entries[i] = utils.ArchiveEntry{
			Name: fmt.Sprintf("%s-%d%s", utils.SanitizeFileName(blog.Title), blog.ID, format.Extension()),
			Body: []byte(body),
		}
	}

	filePath := filepath.Join(s.cfg.ArchiveDir, fmt.Sprintf("blogos-%d-%s.zip", bloggerID, uuid.NewString()))
	if err := utils.WriteZipFile(filePath, entries); err != nil {
		return "", goerrorkit.WrapWithMessage(err, "Lỗi khi tạo file zip").WithData(map[string]interface{}{
			"blogger_id": bloggerID,
		})
	}

	return filePath, nil
}

// sameIDs so sánh hai tập ID, không quan tâm thứ tự
func sameIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uint]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}

// categoryRefs tạo Category chỉ có ID để gán vào bảng nối
func categoryRefs(ids []uint) []models.Category {
	refs := make([]models.Category, len(ids))
	for i, id := range ids {
		refs[i] = models.Category{ID: id}
	}
	return refs
}

func labelRefs(ids []uint) []models.Label {
	refs := make([]models.Label, len(ids))
	for i, id := range ids {
		refs[i] = models.Label{ID: id}
	}
	return refs
}
