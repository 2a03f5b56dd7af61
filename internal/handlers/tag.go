package handlers

import (
	"net/http"

	"petit/internal/services"
	"petit/internal/utils"

	"github.com/gin-gonic/gin"
)

type TagHandler struct{}

func NewTagHandler() *TagHandler {
	return &TagHandler{}
}

// Top returns the trending tags, highest count first
// (GET /api/tags/top?limit=).
func (h *TagHandler) Top(c *gin.Context) {
	limit := utils.StringToInt(c.DefaultQuery("limit", "10"))
	if limit > 50 {
		limit = 50
	}

	tags, err := services.TopTags(limit)
	if err != nil {
		failServer(c)
		return
	}

	respond(c, http.StatusOK, gin.H{"tags": tags})
}
