package utils

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// StringToUnicode mã hóa toàn bộ chuỗi thành dạng \uXXXX
// Mỗi UTF-16 code unit thành một escape 4 chữ số hex (chữ thường),
// ký tự ngoài BMP thành cặp surrogate.
func StringToUnicode(s string) string {
	if s == "" {
		return s
	}

	units := utf16.Encode([]rune(s))
	var sb strings.Builder
	sb.Grow(len(units) * 6)
	for _, u := range units {
		sb.WriteString(`\u`)
		hex := strconv.FormatUint(uint64(u), 16)
		for i := len(hex); i < 4; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(hex)
	}
	return sb.String()
}

// UnicodeToString giải mã các escape \uXXXX trong chuỗi
// Phần không phải escape hợp lệ được giữ nguyên.
func UnicodeToString(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	var pending []uint16 // code units chờ ghép (surrogate pairs)

	flush := func() {
		if len(pending) > 0 {
			sb.WriteString(string(utf16.Decode(pending)))
			pending = pending[:0]
		}
	}

	for i := 0; i < len(s); {
		if u, ok := parseEscape(s, i); ok {
			pending = append(pending, u)
			i += 6
			continue
		}
		flush()
		sb.WriteByte(s[i])
		i++
	}
	flush()

	return sb.String()
}

// parseEscape đọc \uXXXX tại vị trí i
func parseEscape(s string, i int) (uint16, bool) {
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[i+2:i+6], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// UnicodeToStringPtr giống UnicodeToString nhưng giữ nguyên nil
func UnicodeToStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	decoded := UnicodeToString(*s)
	return &decoded
}
