package handlers

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogos/middleware"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/blogos/service"
	"github.com/techmaster-vietnam/blogos/utils"
	"github.com/techmaster-vietnam/goerrorkit"
)

// BlogService là nghiệp vụ blog mà handler cần
type BlogService interface {
	InsertBlog(bloggerID uint, req service.InsertBlogRequest) (uint, error)
	GetBlog(viewerID, bloggerID, blogID uint) (*service.BlogDTO, error)
	UpdateBlog(bloggerID, blogID uint, req service.UpdateBlogRequest) (bool, error)
	DeleteBlog(bloggerID, blogID uint) (bool, error)
	DeleteBlogPatch(bloggerID uint, ids []uint) (bool, error)
	InsertBlogPatch(bloggerID uint, r io.ReaderAt, size int64) ([]service.BlogTitleIDDTO, error)
	GetAllBlogForDownload(bloggerID uint, format models.BlogFormat) (string, error)
}

// BlogFilterService lọc danh sách blog
type BlogFilterService interface {
	ListFilterAll(filter models.BlogFilter) (*service.PageResult[service.BlogListItemDTO], error)
}

// BlogValidateService kiểm tra tham số
type BlogValidateService interface {
	IsBlogStatusAllow(code int) bool
	CheckSortRule(sort, order string) (models.SortRule, error)
	CheckCategoryAndLabel(bloggerID uint, cids, lids []uint) error
	CheckBlogExistAndCreator(bloggerID, blogID uint) error
	CheckBlogContent(title, content, contentMd, summary, keywords *string) error
}

// BlogHandler handles blog endpoints
type BlogHandler struct {
	blogService     BlogService
	filterService   BlogFilterService
	validateService BlogValidateService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService BlogService, filterService BlogFilterService, validateService BlogValidateService) *BlogHandler {
	return &BlogHandler{
		blogService:     blogService,
		filterService:   filterService,
		validateService: validateService,
	}
}

// currentBlogger lấy blogger đang đăng nhập từ context
func currentBlogger(c *fiber.Ctx) (uint, error) {
	bloggerID, ok := middleware.GetBloggerIDFromContext(c)
	if !ok {
		return 0, goerrorkit.NewAuthError(401, "Yêu cầu đăng nhập")
	}
	return bloggerID, nil
}

// Add handles create blog request
// POST /api/blog
func (h *BlogHandler) Add(c *fiber.Ctx) error {
	bloggerID, err := currentBlogger(c)
	if err != nil {
		return err
	}

	title, err := requiredString(c, "title")
	if err != nil {
		return err
	}
	content, err := requiredString(c, "content")
	if err != nil {
		return err
	}
	contentMd, err := requiredString(c, "contentMd")
	if err != nil {
		return err
	}
	summary, err := requiredString(c, "summary")
	if err != nil {
		return err
	}
	keywords := optionalString(c, "keywords")

	// Client gửi nội dung dạng \uXXXX
	content = utils.UnicodeToString(content)
	contentMd = utils.UnicodeToString(contentMd)

	if err := h.validateService.CheckBlogContent(&title, &content, &contentMd, &summary, nonBlank(keywords)); err != nil {
		return err
	}

	cids, err := optionalIDs(c, "cids")
	if err != nil {
		return err
	}
	lids, err := optionalIDs(c, "lids")
	if err != nil {
		return err
	}
	if err := h.validateService.CheckCategoryAndLabel(bloggerID, cids, lids); err != nil {
		return err
	}

	req := service.InsertBlogRequest{
		Title:       title,
		Content:     content,
		ContentMd:   contentMd,
		Summary:     summary,
		CategoryIDs: cids,
		LabelIDs:    lids,
		Keywords:    []string{},
	}
	if keywords != nil {
		req.Keywords = utils.SplitNonBlank(*keywords, idSeparator)
	}

	id, err := h.blogService.InsertBlog(bloggerID, req)
	if err != nil {
		return err
	}
	if id == 0 {
		return service.NewOperateFailError("insert_blog")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    id,
	})
}

// List handles list blogs request
// GET /api/blog
func (h *BlogHandler) List(c *fiber.Ctx) error {
	bloggerID, err := optionalUint(c, "bloggerId")
	if err != nil {
		return err
	}
	cids, err := optionalIDs(c, "categoryIds")
	if err != nil {
		return err
	}
	lids, err := optionalIDs(c, "labelIds")
	if err != nil {
		return err
	}
	pageNum, err := optionalInt(c, "pageNum")
	if err != nil {
		return err
	}
	pageSize, err := optionalInt(c, "pageSize")
	if err != nil {
		return err
	}

	sort, _ := formValue(c, "sort")
	order, _ := formValue(c, "order")
	rule, err := h.validateService.CheckSortRule(sort, order)
	if err != nil {
		return err
	}

	if err := h.validateService.CheckCategoryAndLabel(bloggerID, cids, lids); err != nil {
		return err
	}

	// Status không phải số thì lỗi; mã không tồn tại hoặc không có thì lấy PUBLIC
	code, err := optionalInt(c, "status")
	if err != nil {
		return err
	}
	status := models.BlogStatusPublic
	if code != nil {
		if s, ok := models.BlogStatusOf(*code); ok {
			status = s
		}
	}
	if status != models.BlogStatusPublic {
		viewerID, ok := middleware.GetBloggerIDFromContext(c)
		if !ok || bloggerID == 0 || viewerID != bloggerID {
			return service.NewParameterIllegalError("status", int(status))
		}
	}

	filter := models.BlogFilter{
		CategoryIDs: cids,
		LabelIDs:    lids,
		BloggerID:   bloggerID,
		Sort:        rule,
		Status:      status,
	}
	if keyword := optionalString(c, "keyWord"); keyword != nil {
		filter.Keyword = *keyword
	}
	if pageNum != nil {
		filter.PageNum = *pageNum
	}
	if pageSize != nil {
		filter.PageSize = *pageSize
	}

	page, err := h.filterService.ListFilterAll(filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
	})
}

// Get handles get blog request
// GET /api/blog/:blogId?bloggerId=
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}
	bloggerID, err := optionalUint(c, "bloggerId")
	if err != nil {
		return err
	}
	if bloggerID == 0 {
		return service.NewParameterIllegalError("bloggerId", "")
	}

	viewerID, _ := middleware.GetBloggerIDFromContext(c)
	blog, err := h.blogService.GetBlog(viewerID, bloggerID, blogID)
	if err != nil {
		return err
	}
	if blog == nil {
		return service.NewEmptyResultError(map[string]interface{}{
			"blog_id":    blogID,
			"blogger_id": bloggerID,
		})
	}

	blog.Content = utils.StringToUnicode(blog.Content)
	blog.ContentMd = utils.StringToUnicode(blog.ContentMd)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    blog,
	})
}

// Update handles update blog request
// PUT /api/blog/:blogId
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	bloggerID, err := currentBlogger(c)
	if err != nil {
		return err
	}
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}

	title := optionalString(c, "title")
	content := optionalString(c, "content")
	contentMd := optionalString(c, "contentMd")
	summary := optionalString(c, "summary")
	categoryIDs := optionalString(c, "categoryIds")
	labelIDs := optionalString(c, "labelIds")
	keywords := optionalString(c, "keyWord")
	status, err := optionalInt(c, "status")
	if err != nil {
		return err
	}

	// Không có field nào thì không cập nhật
	if title == nil && content == nil && contentMd == nil && summary == nil &&
		categoryIDs == nil && labelIDs == nil && keywords == nil && status == nil {
		return goerrorkit.NewValidationError("Không có dữ liệu cần cập nhật", map[string]interface{}{
			"blog_id": blogID,
		})
	}

	if status != nil && !h.validateService.IsBlogStatusAllow(*status) {
		return service.NewParameterIllegalError("status", *status)
	}

	if err := h.validateService.CheckBlogExistAndCreator(bloggerID, blogID); err != nil {
		return err
	}

	content = utils.UnicodeToStringPtr(content)
	contentMd = utils.UnicodeToStringPtr(contentMd)

	// keyWord rỗng nghĩa là xóa hết keywords
	if err := h.validateService.CheckBlogContent(title, content, contentMd, summary, nonBlank(keywords)); err != nil {
		return err
	}

	req := service.UpdateBlogRequest{
		Title:     title,
		Content:   content,
		ContentMd: contentMd,
		Summary:   summary,
	}
	if categoryIDs != nil {
		if req.CategoryIDs, err = utils.ParseDistinctIDs(*categoryIDs, idSeparator); err != nil {
			return service.NewParameterIllegalError("categoryIds", *categoryIDs)
		}
	}
	if labelIDs != nil {
		if req.LabelIDs, err = utils.ParseDistinctIDs(*labelIDs, idSeparator); err != nil {
			return service.NewParameterIllegalError("labelIds", *labelIDs)
		}
	}
	if err := h.validateService.CheckCategoryAndLabel(bloggerID, req.CategoryIDs, req.LabelIDs); err != nil {
		return err
	}
	if keywords != nil {
		req.Keywords = utils.SplitNonBlank(*keywords, idSeparator)
	}
	if status != nil {
		s := models.BlogStatus(*status)
		req.Status = &s
	}

	ok, err := h.blogService.UpdateBlog(bloggerID, blogID, req)
	if err != nil {
		return err
	}
	if !ok {
		return service.NewOperateFailError("update_blog")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// Delete handles delete blog request
// DELETE /api/blog/:blogId
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	bloggerID, err := currentBlogger(c)
	if err != nil {
		return err
	}
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}

	if err := h.validateService.CheckBlogExistAndCreator(bloggerID, blogID); err != nil {
		return err
	}

	ok, err := h.blogService.DeleteBlog(bloggerID, blogID)
	if err != nil {
		return err
	}
	if !ok {
		return service.NewOperateFailError("delete_blog")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// DeletePatch handles batch delete request
// DELETE /api/blog/patch?ids=1,2,3
func (h *BlogHandler) DeletePatch(c *fiber.Ctx) error {
	bloggerID, err := currentBlogger(c)
	if err != nil {
		return err
	}

	ids, err := optionalIDs(c, "ids")
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return service.NewParameterIllegalError("ids", "")
	}

	for _, id := range ids {
		if err := h.validateService.CheckBlogExistAndCreator(bloggerID, id); err != nil {
			return err
		}
	}

	ok, err := h.blogService.DeleteBlogPatch(bloggerID, ids)
	if err != nil {
		return err
	}
	if !ok {
		return service.NewOperateFailError("delete_blog_patch")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// PatchImport handles import blogs from zip request
// POST /api/blog/patch (multipart, field zipFile)
func (h *BlogHandler) PatchImport(c *fiber.Ctx) error {
	bloggerID, err := currentBlogger(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("zipFile")
	if err != nil {
		return service.NewParameterIllegalError("zipFile", "")
	}
	if fileHeader.Size == 0 || !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".zip") {
		return service.NewParameterIllegalError("zipFile", fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi đọc file upload")
	}
	defer file.Close()

	blogs, err := h.blogService.InsertBlogPatch(bloggerID, file, fileHeader.Size)
	if err != nil {
		return err
	}
	if len(blogs) == 0 {
		return service.NewOperateFailError("import_blog")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    blogs,
	})
}

// Download handles download all blogs as zip request
// GET /api/blog/download-type=:type
func (h *BlogHandler) Download(c *fiber.Ctx) error {
	bloggerID, err := currentBlogger(c)
	if err != nil {
		return err
	}

	format, ok := models.ParseBlogFormat(c.Params("type"))
	if !ok {
		return service.NewParameterIllegalError("type", c.Params("type"))
	}

	filePath, err := h.blogService.GetAllBlogForDownload(bloggerID, format)
	if err != nil {
		return err
	}
	if filePath == "" {
		return service.NewOperateFailError("download_blog")
	}

	// File zip tạm luôn bị xóa, kể cả khi đọc lỗi
	defer removeTempFile(filePath)

	data, err := os.ReadFile(filePath)
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi đọc file zip").WithData(map[string]interface{}{
			"blogger_id": bloggerID,
		})
	}

	c.Attachment(filepath.Base(filePath))
	c.Set(fiber.HeaderContentType, "application/x-zip-compressed")
	return c.Send(data)
}

func removeTempFile(filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		goerrorkit.LogError(goerrorkit.WrapWithMessage(err, "Lỗi khi xóa file zip tạm").WithData(map[string]interface{}{
			"path": filePath,
		}), "BlogHandler.Download")
	}
}

// nonBlank trả về nil nếu s nil hoặc rỗng
func nonBlank(s *string) *string {
	if s == nil || utils.IsBlank(*s) {
		return nil
	}
	return s
}
