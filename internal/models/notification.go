package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeComment NotificationType = "COMMENT"
	NotificationTypeLike    NotificationType = "LIKE"
	NotificationTypeSystem  NotificationType = "SYSTEM"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // Receiver
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	From      Author           `gorm:"embedded;embeddedPrefix:from_" json:"from_user,omitempty"`
	PostPid   string           `gorm:"size:8" json:"post_id,omitempty"`
	PostTitle string           `json:"post_title,omitempty"`
	Message   string           `gorm:"type:text" json:"message"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
