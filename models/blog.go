package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Blog represents a blog post owned by a blogger
type Blog struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	BloggerID         uint           `gorm:"not null;index" json:"blogger_id"`
	Title             string         `gorm:"type:varchar(255);not null" json:"title"`
	Content           string         `gorm:"type:text;not null" json:"content"`    // HTML
	ContentMd         string         `gorm:"type:text;not null" json:"content_md"` // Markdown gốc
	Summary           string         `gorm:"type:text" json:"summary"`
	Keywords          []string       `gorm:"-" json:"keywords"` // Not stored directly, use KeywordsJSON
	Status            BlogStatus     `gorm:"not null;default:1;index" json:"status"`
	WordCount         int            `gorm:"default:0" json:"word_count"`
	ViewCount         int            `gorm:"default:0" json:"view_count"`
	CommentCount      int            `gorm:"default:0" json:"comment_count"`
	CollectCount      int            `gorm:"default:0" json:"collect_count"`
	LikeCount         int            `gorm:"default:0" json:"like_count"`
	ShareCount        int            `gorm:"default:0" json:"share_count"`
	AdmireCount       int            `gorm:"default:0" json:"admire_count"`
	ComplainCount     int            `gorm:"default:0" json:"complain_count"`
	ReleaseDate       time.Time      `gorm:"index" json:"release_date"`
	NearestModifyDate *time.Time     `json:"nearest_modify_date,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Categories []Category `gorm:"many2many:blog_categories;" json:"categories,omitempty"`
	Labels     []Label    `gorm:"many2many:blog_labels;" json:"labels,omitempty"`

	// Helper field for GORM (stored as JSON in database)
	KeywordsJSON string `gorm:"column:keywords;type:text" json:"-"`
}

// TableName specifies the table name
func (Blog) TableName() string {
	return "blogs"
}

// BeforeSave hook to serialize keywords
func (b *Blog) BeforeSave(tx *gorm.DB) error {
	return b.serializeKeywords()
}

// AfterFind hook to deserialize keywords
func (b *Blog) AfterFind(tx *gorm.DB) error {
	return b.deserializeKeywords()
}

// serializeKeywords converts Keywords slice to JSON string
func (b *Blog) serializeKeywords() error {
	if b.Keywords == nil {
		b.KeywordsJSON = "[]"
		return nil
	}
	data, err := json.Marshal(b.Keywords)
	if err != nil {
		return err
	}
	b.KeywordsJSON = string(data)
	return nil
}

// deserializeKeywords converts JSON string to Keywords slice
func (b *Blog) deserializeKeywords() error {
	if b.KeywordsJSON == "" {
		b.Keywords = []string{}
		return nil
	}
	return json.Unmarshal([]byte(b.KeywordsJSON), &b.Keywords)
}

// CategoryIDs trả về danh sách ID danh mục của blog
func (b *Blog) CategoryIDs() []uint {
	ids := make([]uint, len(b.Categories))
	for i, c := range b.Categories {
		ids[i] = c.ID
	}
	return ids
}

// LabelIDs trả về danh sách ID nhãn của blog
func (b *Blog) LabelIDs() []uint {
	ids := make([]uint, len(b.Labels))
	for i, l := range b.Labels {
		ids[i] = l.ID
	}
	return ids
}
