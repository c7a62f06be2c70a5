package router

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
)

// AccessType là mức truy cập của route
type AccessType string

const (
	AccessPublic    AccessType = "PUBLIC"
	AccessProtected AccessType = "PROTECTED"
)

// RouteMetadata lưu thông tin route được khai báo trong code
type RouteMetadata struct {
	Method      string        `json:"method"`
	Path        string        `json:"-"`    // Relative path (để register vào router)
	FullPath    string        `json:"path"` // Full path pattern bao gồm prefix
	Handler     fiber.Handler `json:"-"`
	Access      AccessType    `json:"access"`
	Description string        `json:"description,omitempty"`
}

// RouteRegistry quản lý tất cả routes được đăng ký từ code
type RouteRegistry struct {
	routes      []*RouteMetadata
	exactMap    map[string]*RouteMetadata // O(1) lookup: "METHOD|PATH" -> RouteMetadata
	patternList []*RouteMetadata          // Routes có wildcard patterns
	mutex       sync.RWMutex
}

// NewRouteRegistry tạo mới RouteRegistry
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{
		routes:      make([]*RouteMetadata, 0),
		exactMap:    make(map[string]*RouteMetadata),
		patternList: make([]*RouteMetadata, 0),
	}
}

// Register đăng ký một route vào registry
func (rr *RouteRegistry) Register(route *RouteMetadata) {
	rr.mutex.Lock()
	defer rr.mutex.Unlock()

	rr.routes = append(rr.routes, route)

	if strings.Contains(route.FullPath, "*") {
		rr.patternList = append(rr.patternList, route)
	} else {
		key := fmt.Sprintf("%s|%s", route.Method, route.FullPath)
		rr.exactMap[key] = route
	}
}

// GetAllRoutes trả về tất cả routes đã đăng ký
func (rr *RouteRegistry) GetAllRoutes() []*RouteMetadata {
	rr.mutex.RLock()
	defer rr.mutex.RUnlock()

	routes := make([]*RouteMetadata, len(rr.routes))
	copy(routes, rr.routes)
	return routes
}

// FindRoute tìm route theo method và path
// Routes khai báo trước được ưu tiên, giống thứ tự match của fiber
func (rr *RouteRegistry) FindRoute(method, path string) *RouteMetadata {
	rr.mutex.RLock()
	defer rr.mutex.RUnlock()

	key := fmt.Sprintf("%s|%s", method, path)
	if route, found := rr.exactMap[key]; found {
		return route
	}

	for _, route := range rr.patternList {
		if route.Method == method && matchPath(route.FullPath, path) {
			return route
		}
	}

	return nil
}

// ListRoutes handles list routes request
// GET /api/routes
// GET /api/routes?path=/api/blog/12&method=PUT trả về route khớp với request đó
func (rr *RouteRegistry) ListRoutes(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    rr.GetAllRoutes(),
		})
	}

	method := strings.ToUpper(c.Query("method", fiber.MethodGet))
	route := rr.FindRoute(method, path)
	if route == nil {
		return goerrorkit.NewBusinessError(404, "Không tìm thấy route").WithData(map[string]interface{}{
			"method": method,
			"path":   path,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    route,
	})
}

// matchPath kiểm tra path có match với pattern không
// "*" khớp một segment bất kỳ, "prefix*" khớp segment bắt đầu bằng prefix
func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i, p := range patternParts {
		if p == pathParts[i] {
			continue
		}
		if strings.HasSuffix(p, "*") {
			prefix := strings.TrimSuffix(p, "*")
			if strings.HasPrefix(pathParts[i], prefix) && len(pathParts[i]) > len(prefix) {
				continue
			}
		}
		return false
	}

	return true
}
