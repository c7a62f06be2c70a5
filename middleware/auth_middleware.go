package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/core"
	"github.com/techmaster-vietnam/blogos/utils"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	config      *config.Config
	bloggerRepo core.BloggerRepositoryInterface
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(cfg *config.Config, bloggerRepo core.BloggerRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{
		config:      cfg,
		bloggerRepo: bloggerRepo,
	}
}

// RequireAuth middleware requires authentication
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return goerrorkit.NewAuthError(401, "Token không được cung cấp")
		}

		bloggerID, err := m.authenticate(token)
		if err != nil {
			return err
		}

		c.Locals("bloggerID", bloggerID)
		return c.Next()
	}
}

// OptionalAuth gắn bloggerID vào context nếu có token hợp lệ
// Không có token thì request vẫn đi tiếp như khách; token sai vẫn bị từ chối
func (m *AuthMiddleware) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Next()
		}

		bloggerID, err := m.authenticate(token)
		if err != nil {
			return err
		}

		c.Locals("bloggerID", bloggerID)
		return c.Next()
	}
}

// authenticate validates token and checks the blogger is still active
func (m *AuthMiddleware) authenticate(token string) (uint, error) {
	claims, err := utils.ValidateToken(token, m.config.JWT.Secret)
	if err != nil {
		return 0, goerrorkit.NewAuthError(401, "Token không hợp lệ").WithData(map[string]interface{}{
			"error": err.Error(),
		})
	}

	blogger, err := m.bloggerRepo.GetByID(claims.BloggerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, goerrorkit.NewAuthError(401, "Blogger không tồn tại").WithData(map[string]interface{}{
				"blogger_id": claims.BloggerID,
			})
		}
		return 0, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy thông tin blogger")
	}

	if !blogger.IsActive() {
		return 0, goerrorkit.NewAuthError(403, "Tài khoản đã bị vô hiệu hóa").WithData(map[string]interface{}{
			"blogger_id": blogger.ID,
		})
	}

	return blogger.ID, nil
}

// extractToken extracts token from Authorization header or cookie
func extractToken(c *fiber.Ctx) string {
	// Try Authorization header first
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	// Try cookie
	return c.Cookies("token")
}

// GetBloggerIDFromContext gets blogger ID from context
// ok = false khi request không đăng nhập
func GetBloggerIDFromContext(c *fiber.Ctx) (uint, bool) {
	bloggerID, ok := c.Locals("bloggerID").(uint)
	return bloggerID, ok && bloggerID != 0
}
