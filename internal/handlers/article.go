package handlers

import (
	"net/http"
	"time"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/services"
	"petit/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct{}

func NewArticleHandler() *ArticleHandler {
	return &ArticleHandler{}
}

// List returns knowledge articles, newest first, with an optional category
// filter (GET /api/articles?page=&limit=&category=).
func (h *ArticleHandler) List(c *gin.Context) {
	page, limit, offset := pageParams(c)
	category := c.Query("category")

	cacheKey := ""
	if category == "" {
		cacheKey = feedCacheKey("articles", page, limit)
	}
	if cacheKey != "" {
		if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
			if hData, ok := cachedData.(gin.H); ok {
				respond(c, http.StatusOK, hData)
				return
			}
		}
	}

	query := db.DB.Model(&models.Article{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var total int64
	query.Count(&total)

	var articles []models.Article
	query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles)

	data := gin.H{
		"articles": articles,
		"page":     page,
		"limit":    limit,
		"total":    total,
	}

	if cacheKey != "" {
		utils.GetCache().Set(cacheKey, data, 30*time.Second)
	}

	respond(c, http.StatusOK, data)
}

// Detail returns one article with the body rendered to sanitized HTML
// (GET /api/articles/:aid).
func (h *ArticleHandler) Detail(c *gin.Context) {
	aid := c.Param("aid")

	var article models.Article
	if err := db.DB.Where("aid = ?", aid).First(&article).Error; err != nil {
		fail(c, http.StatusNotFound, "article not found")
		return
	}

	services.GetViewService().ScheduleHit(services.ViewArticle, article.ID)
	article.Views++

	respond(c, http.StatusOK, gin.H{
		"article":      article,
		"content_html": utils.RenderMarkdown(article.Content),
	})
}

type articleRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	ImageURLs []string `json:"image_urls"`
}

// Create publishes a knowledge article (POST /api/articles).
func (h *ArticleHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		fail(c, http.StatusBadRequest, "title is required")
		return
	}
	if !models.ValidArticleCategory(req.Category) {
		fail(c, http.StatusBadRequest, "unknown category")
		return
	}

	article := models.Article{
		Aid:       utils.RandStringBytesMaskImpr(8),
		Author:    models.Snapshot(user),
		Title:     utils.SanitizeText(req.Title),
		Content:   req.Content, // Markdown, sanitized on render
		Category:  req.Category,
		Tags:      req.Tags,
		ImageURLs: req.ImageURLs,
		Likes:     models.UIDSet{},
	}

	if err := db.DB.Create(&article).Error; err != nil {
		failServer(c)
		return
	}

	invalidateArticleCaches()
	services.GetHub().Publish("articles")

	if len(req.Tags) > 0 {
		if err := services.IncrementTagCounts(req.Tags); err != nil {
			fail(c, http.StatusInternalServerError, "article saved but tag counters failed")
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// Update edits an article; owner only (PUT /api/articles/:aid).
func (h *ArticleHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	aid := c.Param("aid")

	var article models.Article
	if err := db.DB.Where("aid = ?", aid).First(&article).Error; err != nil {
		fail(c, http.StatusNotFound, "article not found")
		return
	}
	if article.Author.UID != user.ID {
		fail(c, http.StatusForbidden, "only the author can edit this article")
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		fail(c, http.StatusBadRequest, "title is required")
		return
	}
	if !models.ValidArticleCategory(req.Category) {
		fail(c, http.StatusBadRequest, "unknown category")
		return
	}

	oldTags := article.Tags

	article.Title = utils.SanitizeText(req.Title)
	article.Content = req.Content
	article.Category = req.Category
	article.Tags = req.Tags

	if err := db.DB.Save(&article).Error; err != nil {
		failServer(c)
		return
	}

	invalidateArticleCaches()
	services.GetHub().Publish("articles")

	if err := services.UpdateTagCounts(oldTags, req.Tags); err != nil {
		fail(c, http.StatusInternalServerError, "article saved but tag counters failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Delete removes an article; owner only (DELETE /api/articles/:aid).
func (h *ArticleHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	aid := c.Param("aid")

	var article models.Article
	if err := db.DB.Where("aid = ?", aid).First(&article).Error; err != nil {
		fail(c, http.StatusNotFound, "article not found")
		return
	}
	if article.Author.UID != user.ID {
		fail(c, http.StatusForbidden, "only the author can delete this article")
		return
	}

	if err := db.DB.Delete(&article).Error; err != nil {
		failServer(c)
		return
	}

	invalidateArticleCaches()
	services.GetHub().Publish("articles")

	if len(article.Tags) > 0 {
		if err := services.DecrementTagCounts(article.Tags); err != nil {
			fail(c, http.StatusInternalServerError, "article deleted but tag counters failed")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func invalidateArticleCaches() {
	for page := 1; page <= cachedFeedPages; page++ {
		utils.GetCache().Delete(feedCacheKey("articles", page, 10))
	}
}
