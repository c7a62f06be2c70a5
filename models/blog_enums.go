package models

import "strings"

// BlogStatus là trạng thái của blog
type BlogStatus int

const (
	BlogStatusPublic  BlogStatus = 1 // Công khai
	BlogStatusPrivate BlogStatus = 2 // Riêng tư, chỉ chủ sở hữu xem được
	BlogStatusAudit   BlogStatus = 3 // Đang chờ kiểm duyệt
	BlogStatusDeleted BlogStatus = 4 // Đã bị xóa bởi quản trị
)

// BlogStatusOf converts a status code to BlogStatus
func BlogStatusOf(code int) (BlogStatus, bool) {
	switch s := BlogStatus(code); s {
	case BlogStatusPublic, BlogStatusPrivate, BlogStatusAudit, BlogStatusDeleted:
		return s, true
	}
	return 0, false
}

func (s BlogStatus) String() string {
	switch s {
	case BlogStatusPublic:
		return "PUBLIC"
	case BlogStatusPrivate:
		return "PRIVATE"
	case BlogStatusAudit:
		return "AUDIT"
	case BlogStatusDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

// BlogFormat là định dạng file khi download blog
type BlogFormat string

const (
	BlogFormatHTML     BlogFormat = "html"
	BlogFormatMarkdown BlogFormat = "md"
)

// ParseBlogFormat resolves a download type token (case-insensitive)
func ParseBlogFormat(token string) (BlogFormat, bool) {
	switch BlogFormat(strings.ToLower(strings.TrimSpace(token))) {
	case BlogFormatHTML:
		return BlogFormatHTML, true
	case BlogFormatMarkdown:
		return BlogFormatMarkdown, true
	}
	return "", false
}

// Extension trả về phần mở rộng file tương ứng
func (f BlogFormat) Extension() string {
	return "." + string(f)
}

// SortField là cột dùng để sắp xếp danh sách blog
type SortField string

const (
	SortViewCount         SortField = "VIEW_COUNT"
	SortCommentCount      SortField = "COMMENT_COUNT"
	SortCollectCount      SortField = "COLLECT_COUNT"
	SortLikeCount         SortField = "LIKE_COUNT"
	SortShareCount        SortField = "SHARE_COUNT"
	SortAdmireCount       SortField = "ADMIRE_COUNT"
	SortComplainCount     SortField = "COMPLAIN_COUNT"
	SortWordCount         SortField = "WORD_COUNT"
	SortReleaseDate       SortField = "RELEASE_DATE"
	SortNearestModifyDate SortField = "NEAREST_MODIFY_DATE"
)

// sortColumns maps SortField -> database column
var sortColumns = map[SortField]string{
	SortViewCount:         "view_count",
	SortCommentCount:      "comment_count",
	SortCollectCount:      "collect_count",
	SortLikeCount:         "like_count",
	SortShareCount:        "share_count",
	SortAdmireCount:       "admire_count",
	SortComplainCount:     "complain_count",
	SortWordCount:         "word_count",
	SortReleaseDate:       "release_date",
	SortNearestModifyDate: "nearest_modify_date",
}

// Column trả về tên cột, ok=false nếu field không hợp lệ
func (f SortField) Column() (string, bool) {
	col, ok := sortColumns[f]
	return col, ok
}

// Order là chiều sắp xếp
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// Valid reports whether o is ASC or DESC
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// SortRule kết hợp cột và chiều sắp xếp
type SortRule struct {
	Field SortField
	Order Order
}

// DefaultSortRule: VIEW_COUNT DESC
var DefaultSortRule = SortRule{Field: SortViewCount, Order: OrderDesc}
