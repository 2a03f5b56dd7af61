package handlers

import (
	"net/http"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile returns a user's public page: profile fields plus their posts
// and comments (GET /api/users/:id).
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		fail(c, http.StatusNotFound, "user not found")
		return
	}

	var posts []models.Post
	db.DB.Where("author_uid = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&posts)
	fillCommentCounts(posts)

	var comments []models.Comment
	db.DB.Where("author_uid = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&comments)

	respond(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"nickname":    user.Nickname,
			"avatar":      user.Avatar,
			"bio":         user.Bio,
			"created_at":  user.CreatedAt,
			"days_joined": utils.GetDaysSinceJoined(user.CreatedAt),
		},
		"posts":    posts,
		"comments": comments,
	})
}

type settingsRequest struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// UpdateSettings edits the current user's profile (PUT /api/me). Author
// snapshots on existing posts and comments are left as they were written.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user := CurrentUser(c)

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Nickname == "" {
		fail(c, http.StatusBadRequest, "nickname is required")
		return
	}
	if len([]rune(req.Nickname)) > 30 {
		fail(c, http.StatusBadRequest, "nickname is too long")
		return
	}
	if len([]rune(req.Bio)) > 200 {
		fail(c, http.StatusBadRequest, "bio is limited to 200 characters")
		return
	}

	user.Nickname = utils.SanitizeText(req.Nickname)
	user.Bio = utils.SanitizeText(req.Bio)
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := db.DB.Save(user).Error; err != nil {
		failServer(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"emojis": utils.GetCommonEmojis(),
	})
}

// AvatarEmojis returns the emoji palette for the settings page
// (GET /api/me/emojis).
func (h *UserHandler) AvatarEmojis(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"emojis": utils.GetCommonEmojis()})
}
