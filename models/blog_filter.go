package models

// BlogFilter là điều kiện lọc danh sách blog
// CategoryIDs và LabelIDs kết hợp theo AND: blog phải có đủ tất cả
type BlogFilter struct {
	CategoryIDs []uint
	LabelIDs    []uint
	Keyword     string
	BloggerID   uint // 0 = mọi blogger
	PageNum     int
	PageSize    int
	Sort        SortRule
	Status      BlogStatus
}

// Offset tính offset từ PageNum/PageSize (PageNum bắt đầu từ 1)
func (f *BlogFilter) Offset() int {
	if f.PageNum <= 1 {
		return 0
	}
	return (f.PageNum - 1) * f.PageSize
}
