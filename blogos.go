package blogos

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/database"
	"github.com/techmaster-vietnam/blogos/handlers"
	"github.com/techmaster-vietnam/blogos/middleware"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/blogos/repository"
	"github.com/techmaster-vietnam/blogos/router"
	"github.com/techmaster-vietnam/blogos/service"
	"gorm.io/gorm"
)

// Config là alias cho config.Config để tránh conflict với package config khác
type Config = config.Config

// Models - Export các models
type (
	Blog     = models.Blog
	Blogger  = models.Blogger
	Category = models.Category
	Label    = models.Label
)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	return config.LoadConfig()
}

// BlogOS là main struct chứa tất cả dependencies
type BlogOS struct {
	App    *fiber.App
	DB     *gorm.DB
	Config *Config

	// Repositories
	BlogRepo     *repository.BlogRepository
	CategoryRepo *repository.CategoryRepository
	LabelRepo    *repository.LabelRepository
	BloggerRepo  *repository.BloggerRepository

	// Services
	BlogService         *service.BlogService
	BlogFilterService   *service.BlogFilterService
	BlogValidateService *service.BlogValidateService

	// Middleware
	AuthMiddleware *middleware.AuthMiddleware

	// Handlers
	BlogHandler *handlers.BlogHandler

	// Route registry
	RouteRegistry *router.RouteRegistry
}

// Builder là builder để tạo BlogOS
type Builder struct {
	app         *fiber.App
	db          *gorm.DB
	config      *Config
	autoMigrate bool
}

// New tạo mới Builder
func New(app *fiber.App, db *gorm.DB) *Builder {
	return &Builder{
		app: app,
		db:  db,
	}
}

// WithConfig set config cho builder
func (b *Builder) WithConfig(cfg *Config) *Builder {
	b.config = cfg
	return b
}

// WithAutoMigrate bật gorm AutoMigrate khi Initialize
func (b *Builder) WithAutoMigrate(enabled bool) *Builder {
	b.autoMigrate = enabled
	return b
}

// Initialize khởi tạo BlogOS với tất cả dependencies
func (b *Builder) Initialize() (*BlogOS, error) {
	// Load config nếu chưa có
	if b.config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		b.config = cfg
	}

	if b.autoMigrate {
		if err := database.Migrate(b.db); err != nil {
			return nil, err
		}
	}

	// Initialize repositories
	blogRepo := repository.NewBlogRepository(b.db)
	categoryRepo := repository.NewCategoryRepository(b.db)
	labelRepo := repository.NewLabelRepository(b.db)
	bloggerRepo := repository.NewBloggerRepository(b.db)

	// Initialize services
	blogService := service.NewBlogService(blogRepo, b.config.Blog)
	filterService := service.NewBlogFilterService(blogRepo, b.config.Blog)
	validateService := service.NewBlogValidateService(blogRepo, categoryRepo, labelRepo, b.config.Blog)

	authMiddleware := middleware.NewAuthMiddleware(b.config, bloggerRepo)
	blogHandler := handlers.NewBlogHandler(blogService, filterService, validateService)

	return &BlogOS{
		App:                 b.app,
		DB:                  b.db,
		Config:              b.config,
		BlogRepo:            blogRepo,
		CategoryRepo:        categoryRepo,
		LabelRepo:           labelRepo,
		BloggerRepo:         bloggerRepo,
		BlogService:         blogService,
		BlogFilterService:   filterService,
		BlogValidateService: validateService,
		AuthMiddleware:      authMiddleware,
		BlogHandler:         blogHandler,
		RouteRegistry:       router.NewRouteRegistry(),
	}, nil
}

// Router trả về AuthRouter gắn với app của BlogOS
func (bo *BlogOS) Router() *router.AuthRouter {
	return router.NewAuthRouter(bo.App, bo.RouteRegistry, bo.AuthMiddleware)
}

// RegisterRoutes đăng ký các blog routes dưới /api/blog
func (bo *BlogOS) RegisterRoutes() {
	RegisterBlogRoutes(bo.Router().Group("/api"), bo.BlogHandler, bo.RouteRegistry)
}

// RegisterBlogRoutes đăng ký blog routes lên api router
// /patch và /download-type=:type phải đăng ký trước /:blogId
func RegisterBlogRoutes(api *router.AuthRouter, h *handlers.BlogHandler, registry *router.RouteRegistry) {
	blog := api.Group("/blog")

	blog.Post("/", h.Add).
		Protected().
		Description("Tạo blog mới").
		Register()

	blog.Get("/", h.List).
		Public().
		Description("Lọc và phân trang danh sách blog").
		Register()

	blog.Delete("/patch", h.DeletePatch).
		Protected().
		Description("Xóa nhiều blog").
		Register()

	blog.Post("/patch", h.PatchImport).
		Protected().
		Description("Import blog từ file zip").
		Register()

	blog.Get("/download-type=:type", h.Download).
		Protected().
		Description("Download toàn bộ blog dạng zip (html|md)").
		Register()

	blog.Get("/:blogId", h.Get).
		Public().
		Description("Xem blog").
		Register()

	blog.Put("/:blogId", h.Update).
		Protected().
		Description("Cập nhật blog").
		Register()

	blog.Delete("/:blogId", h.Delete).
		Protected().
		Description("Xóa blog").
		Register()

	api.Get("/routes", registry.ListRoutes).
		Public().
		Description("Danh sách routes").
		Register()
}
