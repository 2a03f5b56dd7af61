package handlers

import (
	"net/http"

	"petit/internal/middleware"
	"petit/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the session user loaded by middleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// JSON helper injecting the unread notification badge for logged-in users.
func respond(c *gin.Context, code int, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	if _, exists := c.Get(middleware.CheckUserKey); exists {
		if count, ok := c.Get(middleware.UnreadCountKey); ok {
			obj["unread_count"] = count.(int64)
		}
	}
	c.JSON(code, obj)
}

// Error helper
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func failServer(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "something went wrong, please try again")
}
