package models

import "time"

// Category là danh mục blog, thuộc về một blogger
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BloggerID uint      `gorm:"not null;index" json:"blogger_id"`
	Title     string    `gorm:"type:varchar(50);not null" json:"title"`
	Bewrite   string    `gorm:"type:varchar(255)" json:"bewrite"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}
