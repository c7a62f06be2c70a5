package middleware

import (
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogos/config"
	"github.com/techmaster-vietnam/blogos/models"
	"github.com/techmaster-vietnam/blogos/utils"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// MockBloggerRepository là mock repository cho testing
type MockBloggerRepository struct {
	bloggers map[uint]*models.Blogger
}

func (m *MockBloggerRepository) GetByID(id uint) (*models.Blogger, error) {
	blogger, ok := m.bloggers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return blogger, nil
}

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, Expiration: time.Hour}}
	repo := &MockBloggerRepository{bloggers: map[uint]*models.Blogger{
		7: {ID: 7, Username: "alice", Active: true},
		8: {ID: 8, Username: "bob", Active: false},
	}}
	mw := NewAuthMiddleware(cfg, repo)

	whoami := func(c *fiber.Ctx) error {
		id, ok := GetBloggerIDFromContext(c)
		if !ok {
			return c.SendString("guest")
		}
		return c.SendString(strconv.FormatUint(uint64(id), 10))
	}

	app := fiber.New()
	app.Get("/required", mw.RequireAuth(), whoami)
	app.Get("/optional", mw.OptionalAuth(), whoami)
	return app
}

func tokenFor(t *testing.T, bloggerID uint) string {
	t.Helper()
	token, err := utils.GenerateToken(bloggerID, "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func readBody(t *testing.T, app *fiber.App, path, header, cookie string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.Header.Set("Cookie", "token="+cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireAuth(t *testing.T) {
	app := setupAuthApp(t)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus bool
		wantBody   string
	}{
		{"no token", "", "", false, ""},
		{"bearer token", "Bearer " + tokenFor(t, 7), "", true, "7"},
		{"cookie token", "", tokenFor(t, 7), true, "7"},
		{"malformed header", "Token " + tokenFor(t, 7), "", false, ""},
		{"garbage token", "Bearer abc.def.ghi", "", false, ""},
		{"inactive blogger", "Bearer " + tokenFor(t, 8), "", false, ""},
		{"unknown blogger", "Bearer " + tokenFor(t, 9), "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := readBody(t, app, "/required", tt.header, tt.cookie)
			if (status == fiber.StatusOK) != tt.wantStatus {
				t.Errorf("Expected ok=%v, got status %d", tt.wantStatus, status)
			}
			if tt.wantStatus && body != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, body)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	app := setupAuthApp(t)

	status, body := readBody(t, app, "/optional", "", "")
	if status != fiber.StatusOK || body != "guest" {
		t.Errorf("Expected guest access, got %d %q", status, body)
	}

	status, body = readBody(t, app, "/optional", "Bearer "+tokenFor(t, 7), "")
	if status != fiber.StatusOK || body != "7" {
		t.Errorf("Expected blogger 7, got %d %q", status, body)
	}

	status, _ = readBody(t, app, "/optional", "Bearer abc.def.ghi", "")
	if status == fiber.StatusOK {
		t.Error("Expected invalid token to be rejected")
	}
}
