package router

import "github.com/gofiber/fiber/v2"

// RouteBuilder cung cấp fluent API để cấu hình route
type RouteBuilder struct {
	metadata *RouteMetadata
	router   fiber.Router
	registry *RouteRegistry
	authMw   AuthMiddlewareInterface
}

// Public đánh dấu route không bắt buộc đăng nhập
// Nếu request có token hợp lệ, bloggerID vẫn được gắn vào context
func (rb *RouteBuilder) Public() *RouteBuilder {
	rb.metadata.Access = AccessPublic
	return rb
}

// Protected đánh dấu route bắt buộc đăng nhập (mặc định)
func (rb *RouteBuilder) Protected() *RouteBuilder {
	rb.metadata.Access = AccessProtected
	return rb
}

// Description thêm mô tả cho route
func (rb *RouteBuilder) Description(desc string) *RouteBuilder {
	rb.metadata.Description = desc
	return rb
}

// Register hoàn tất việc đăng ký route và áp dụng middleware phù hợp
func (rb *RouteBuilder) Register() {
	rb.registry.Register(rb.metadata)

	if rb.metadata.Access == AccessPublic {
		rb.router.Add(rb.metadata.Method, rb.metadata.Path, rb.authMw.OptionalAuth(), rb.metadata.Handler)
		return
	}
	rb.router.Add(rb.metadata.Method, rb.metadata.Path, rb.authMw.RequireAuth(), rb.metadata.Handler)
}
