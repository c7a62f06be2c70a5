package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogos/service"
	"github.com/techmaster-vietnam/blogos/utils"
)

// idSeparator là ký tự phân tách danh sách ID và keywords
const idSeparator = ","

// formValue lấy tham số từ query string, form urlencoded hoặc multipart
// ok = false khi tham số không có trong request (khác với có nhưng rỗng)
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Context().QueryArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}

	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		if args := c.Context().PostArgs(); args.Has(key) {
			return string(args.Peek(key)), true
		}
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err == nil {
			if values, ok := form.Value[key]; ok && len(values) > 0 {
				return values[0], true
			}
		}
	}

	return "", false
}

// optionalString trả về nil nếu tham số không có
func optionalString(c *fiber.Ctx, key string) *string {
	value, ok := formValue(c, key)
	if !ok {
		return nil
	}
	return &value
}

// requiredString yêu cầu tham số có mặt và không rỗng
func requiredString(c *fiber.Ctx, key string) (string, error) {
	value, ok := formValue(c, key)
	if !ok || utils.IsBlank(value) {
		return "", service.NewParameterIllegalError(key, value)
	}
	return value, nil
}

// optionalInt trả về nil nếu tham số không có hoặc rỗng
func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	value, ok := formValue(c, key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, service.NewParameterIllegalError(key, value)
	}
	return &n, nil
}

// optionalUint trả về 0 nếu tham số không có hoặc rỗng
func optionalUint(c *fiber.Ctx, key string) (uint, error) {
	value, ok := formValue(c, key)
	if !ok || strings.TrimSpace(value) == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || n == 0 {
		return 0, service.NewParameterIllegalError(key, value)
	}
	return uint(n), nil
}

// optionalIDs parse danh sách ID "1,2,3"; nil nếu tham số không có
// Tham số có nhưng rỗng trả về slice rỗng (không nil)
func optionalIDs(c *fiber.Ctx, key string) ([]uint, error) {
	value, ok := formValue(c, key)
	if !ok {
		return nil, nil
	}
	ids, err := utils.ParseDistinctIDs(value, idSeparator)
	if err != nil {
		return nil, service.NewParameterIllegalError(key, value)
	}
	return ids, nil
}

// pathID parse path parameter dạng số dương
func pathID(c *fiber.Ctx, key string) (uint, error) {
	value := c.Params(key)
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil || n == 0 {
		return 0, service.NewParameterIllegalError(key, value)
	}
	return uint(n), nil
}
