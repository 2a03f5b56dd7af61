package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // Hash; empty for OAuth-only accounts
	Nickname    string    `gorm:"size:30;not null" json:"nickname"`
	Avatar      string    `gorm:"default:🐾" json:"avatar"` // emoji or image URL
	Bio         string    `gorm:"size:200" json:"bio"`
	GoogleID    string    `gorm:"index" json:"-"`
	GoogleEmail string    `gorm:"index" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
