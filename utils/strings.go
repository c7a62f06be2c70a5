package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDistinctIDs tách chuỗi ID theo sep, bỏ trùng và giữ thứ tự xuất hiện
// Ví dụ: "3,1,3, 2" -> [3 1 2]. Chuỗi rỗng trả về slice rỗng.
// Token không phải số nguyên dương trả về lỗi.
func ParseDistinctIDs(s, sep string) ([]uint, error) {
	ids := []uint{}
	seen := make(map[uint]bool)

	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil || v == 0 {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		id := uint(v)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}

// SplitNonBlank tách chuỗi theo sep, trim và bỏ phần tử rỗng
func SplitNonBlank(s, sep string) []string {
	result := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
