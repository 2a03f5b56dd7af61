package handlers

import (
	"net/http"

	"petit/internal/db"
	"petit/internal/models"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List returns the current user's latest notifications
// (GET /api/notifications).
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var notifications []models.Notification
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications)

	var unread int64
	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// Read marks one notification as read (POST /api/notifications/:id/read).
func (h *NotificationHandler) Read(c *gin.Context) {
	user := CurrentUser(c)
	id := c.Param("id")

	result := db.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Update("is_read", true)
	if result.RowsAffected == 0 {
		fail(c, http.StatusNotFound, "notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ReadAll marks every unread notification as read
// (POST /api/notifications/read-all).
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := CurrentUser(c)

	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete removes one notification (DELETE /api/notifications/:id).
func (h *NotificationHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := c.Param("id")

	result := db.DB.Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Notification{})
	if result.RowsAffected == 0 {
		fail(c, http.StatusNotFound, "notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
