package models

import (
	"time"
)

// Community post categories (closed enum).
const (
	CategoryDaily     = "daily"
	CategoryHealth    = "health"
	CategoryDIY       = "diy"
	CategoryTips      = "tips"
	CategoryEmergency = "emergency"
	CategoryVideo     = "video"
	CategoryEtc       = "etc"
)

var PostCategories = []string{
	CategoryDaily, CategoryHealth, CategoryDIY, CategoryTips,
	CategoryEmergency, CategoryVideo, CategoryEtc,
}

func ValidPostCategory(c string) bool {
	for _, v := range PostCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Post struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	Pid       string     `gorm:"uniqueIndex;size:8;not null" json:"id"`
	Author    Author     `gorm:"embedded" json:"author"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `gorm:"type:text" json:"content"`
	Category  string     `gorm:"size:20;not null;index" json:"category"`
	Tags      StringList `gorm:"serializer:json" json:"tags"`
	ImageURLs StringList `gorm:"serializer:json" json:"image_urls,omitempty"`
	Likes     UIDSet     `gorm:"serializer:json" json:"likes"`
	Views     int        `gorm:"default:0" json:"view_count"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Filled at query time, not a column
	CommentCount int `gorm:"-" json:"comment_count"`
}
