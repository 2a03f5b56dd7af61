package handlers

import (
	"net/http"
	"strings"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// createUser creates a profile document for a fresh account.
func (h *AuthHandler) createUser(email, password, nickname string) (*models.User, error) {
	hash := ""
	if password != "" {
		var err error
		hash, err = utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
	}

	if nickname == "" {
		// Default nickname from the email local part
		nickname = strings.SplitN(email, "@", 2)[0]
	}

	user := models.User{
		Email:    email,
		Password: hash,
		Nickname: utils.SanitizeText(nickname),
		Avatar:   utils.GetRandomEmoji(),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	parts := strings.Split(req.Email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		fail(c, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < 6 {
		fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if len(req.Nickname) > 30 {
		fail(c, http.StatusBadRequest, "nickname is too long")
		return
	}

	user, err := h.createUser(req.Email, req.Password, req.Nickname)
	if err != nil {
		fail(c, http.StatusConflict, "email already registered")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if user.Password == "" || !utils.CheckPasswordHash(req.Password, user.Password) {
		fail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the current session's profile, the SPA's session bootstrap.
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		fail(c, http.StatusUnauthorized, "not logged in")
		return
	}
	respond(c, http.StatusOK, gin.H{"user": user})
}
