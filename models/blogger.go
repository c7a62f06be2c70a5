package models

import (
	"time"

	"gorm.io/gorm"
)

// Blogger là tài khoản sở hữu blog
// Quản lý tài khoản (đăng ký, đăng nhập) nằm ngoài service này, ở đây chỉ đọc
type Blogger struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Blogger) TableName() string {
	return "bloggers"
}

// IsActive trả về trạng thái active của blogger
func (b *Blogger) IsActive() bool {
	return b.Active
}
