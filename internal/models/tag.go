package models

import (
	"time"
)

// Tag is a denormalized per-tag usage counter. The tag string is its own
// primary key. Count tracks currently-existing posts carrying the tag and
// never goes below zero; rows are never deleted once created, a dead tag
// just freezes at zero and stops trending.
type Tag struct {
	Name      string    `gorm:"primaryKey;size:50" json:"id"`
	Count     int       `gorm:"not null;default:0;index" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
