package models

import "time"

// Label là nhãn dùng chung giữa các blogger
type Label struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID uint      `gorm:"not null;index" json:"creator_id"`
	Title     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Label) TableName() string {
	return "labels"
}
