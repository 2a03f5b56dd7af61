package handlers

import (
	"net/http"

	"petit/internal/models"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Categories returns both category enums for the client's pickers
// (GET /api/categories).
func (h *MetaHandler) Categories(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"post_categories":    models.PostCategories,
		"article_categories": models.ArticleCategories,
	})
}
