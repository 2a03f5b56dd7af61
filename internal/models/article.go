package models

import (
	"time"
)

// Knowledge article categories (closed enum).
const (
	ArticleCategoryCare     = "care"
	ArticleCategoryHealth   = "health-care"
	ArticleCategoryReview   = "product-review"
	ArticleCategoryFirstAid = "first-aid"
	ArticleCategoryEtc      = "etc"
)

var ArticleCategories = []string{
	ArticleCategoryCare, ArticleCategoryHealth, ArticleCategoryReview,
	ArticleCategoryFirstAid, ArticleCategoryEtc,
}

func ValidArticleCategory(c string) bool {
	for _, v := range ArticleCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Article is a knowledge-base entry. Same document shape as Post but with
// its own category enum and markdown content rendered on read.
type Article struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	Aid       string     `gorm:"uniqueIndex;size:8;not null" json:"id"`
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
}
