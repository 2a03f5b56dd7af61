package models

import (
	"time"
)

type Comment struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	Cid       string     `gorm:"uniqueIndex;size:8;not null" json:"id"`
	PostID    uint       `gorm:"not null;index" json:"-"`
	PostPid   string     `gorm:"size:8;not null;index" json:"post_id"`
	ParentID  *uint      `gorm:"index" json:"-"` // Nullable for top-level comments
	ParentCid string     `gorm:"size:8" json:"parent_id,omitempty"`
	Author    Author     `gorm:"embedded" json:"author"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Likes     UIDSet     `gorm:"serializer:json" json:"likes"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Replies   []*Comment `gorm:"-" json:"replies"` // Derived at read time, never persisted
}
