package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddlewareInterface là middleware xác thực dùng cho routes
type AuthMiddlewareInterface interface {
	RequireAuth() fiber.Handler
	OptionalAuth() fiber.Handler
}

// AuthRouter wrapper cho fiber.Router với fluent API để cấu hình routes và xác thực
type AuthRouter struct {
	router   fiber.Router
	registry *RouteRegistry
	authMw   AuthMiddlewareInterface
	prefix   string // Prefix path của group (để build full path)
}

// NewAuthRouter tạo mới AuthRouter
func NewAuthRouter(
	router fiber.Router,
	registry *RouteRegistry,
	authMw AuthMiddlewareInterface,
) *AuthRouter {
	return &AuthRouter{
		router:   router,
		registry: registry,
		authMw:   authMw,
		prefix:   "", // Root router không có prefix
	}
}

// Get tạo GET route với fluent API
func (ar *AuthRouter) Get(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodGet, path, handler)
}

// Post tạo POST route với fluent API
func (ar *AuthRouter) Post(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodPost, path, handler)
}

// Put tạo PUT route với fluent API
func (ar *AuthRouter) Put(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodPut, path, handler)
}

// Delete tạo DELETE route với fluent API
func (ar *AuthRouter) Delete(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodDelete, path, handler)
}

// Group tạo router group với middleware tùy chọn
func (ar *AuthRouter) Group(prefix string, handlers ...fiber.Handler) *AuthRouter {
	group := ar.router.Group(prefix, handlers...)
	newRouter := NewAuthRouter(group, ar.registry, ar.authMw)
	// Build full prefix path
	newRouter.prefix = strings.TrimSuffix(ar.prefix, "/") + "/" + strings.TrimPrefix(prefix, "/")
	newRouter.prefix = strings.TrimPrefix(newRouter.prefix, "/")
	if newRouter.prefix != "" {
		newRouter.prefix = "/" + newRouter.prefix
	}
	return newRouter
}

// convertPathToPattern converts path parameters to wildcard pattern
// Ví dụ: /blog/:blogId -> /blog/*, /blog/download-type=:type -> /blog/download-type=*
func convertPathToPattern(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if idx := strings.Index(part, ":"); idx >= 0 {
			parts[i] = part[:idx] + "*"
		}
	}
	return strings.Join(parts, "/")
}

// createRouteBuilder tạo RouteBuilder cho route
func (ar *AuthRouter) createRouteBuilder(method, path string, handler fiber.Handler) *RouteBuilder {
	// Build full path từ prefix và path
	fullPath := strings.TrimSuffix(ar.prefix, "/") + "/" + strings.TrimPrefix(path, "/")
	fullPath = strings.TrimPrefix(fullPath, "/")
	if fullPath != "" {
		fullPath = "/" + strings.TrimSuffix(fullPath, "/")
	}
	if fullPath == "" {
		fullPath = "/"
	}

	return &RouteBuilder{
		metadata: &RouteMetadata{
			Method:   method,
			Path:     path,
			FullPath: convertPathToPattern(fullPath),
			Handler:  handler,
			Access:   AccessProtected, // Mặc định cần đăng nhập
		},
		router:   ar.router,
		registry: ar.registry,
		authMw:   ar.authMw,
	}
}
