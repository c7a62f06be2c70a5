package service

import "github.com/techmaster-vietnam/goerrorkit"

// NewParameterIllegalError là lỗi tham số không hợp lệ (400)
func NewParameterIllegalError(field string, value interface{}) error {
	return goerrorkit.NewValidationError("Tham số không hợp lệ", map[string]interface{}{
		"field": field,
		"value": value,
	})
}

// NewInvalidIDsError là lỗi danh sách ID có phần tử không tồn tại hoặc không thuộc blogger (400)
func NewInvalidIDsError(field string, ids, invalid []uint) error {
	return goerrorkit.NewValidationError("Tham số không hợp lệ", map[string]interface{}{
		"field":       field,
		"value":       ids,
		"invalid_ids": invalid,
	})
}

// NewEmptyResultError là lỗi không tìm thấy dữ liệu (404)
func NewEmptyResultError(data map[string]interface{}) error {
	return goerrorkit.NewBusinessError(404, "Không tìm thấy dữ liệu").WithData(data)
}

// NewOperateFailError là lỗi thao tác thất bại (500)
func NewOperateFailError(operation string) error {
	return goerrorkit.NewBusinessError(500, "Thao tác thất bại").WithData(map[string]interface{}{
		"operation": operation,
	})
}
