package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/services"
	"petit/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCommentCounts batch-fills comment counts for a page of posts.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func pageParams(c *gin.Context) (page, limit, offset int) {
	page = 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	limit = 10
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}
	return page, limit, (page - 1) * limit
}

// cachedFeedPages bounds the cached key space: only the first pages at the
// default size get cached, so a write can invalidate every key it may have
// made stale.
const cachedFeedPages = 3

// feedCacheKey returns the cache key for an unfiltered feed page, or ""
// when that page is never cached.
func feedCacheKey(prefix string, page, limit int) string {
	if limit != 10 || page > cachedFeedPages {
		return ""
	}
	return fmt.Sprintf("%s:page:%d:%d", prefix, page, limit)
}

// List returns the community feed, newest first, with optional category and
// tag filters (GET /api/posts?page=&limit=&category=&tag=).
func (h *PostHandler) List(c *gin.Context) {
	page, limit, offset := pageParams(c)
	category := c.Query("category")
	tag := c.Query("tag")

	// Only the unfiltered feed is cached; filtered views are cheap enough
	cacheKey := ""
	if category == "" && tag == "" {
		cacheKey = feedCacheKey("posts", page, limit)
	}
	if cacheKey != "" {
		if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
			if hData, ok := cachedData.(gin.H); ok {
				respond(c, http.StatusOK, hData)
				return
			}
		}
	}

	query := db.DB.Model(&models.Post{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if tag != "" {
		query = query.Where("tags::jsonb @> ?", fmt.Sprintf("[%q]", tag))
	}

	var total int64
	query.Count(&total)

	var posts []models.Post
	query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)

	fillCommentCounts(posts)

	data := gin.H{
		"posts": posts,
		"page":  page,
		"limit": limit,
		"total": total,
	}

	if cacheKey != "" {
		utils.GetCache().Set(cacheKey, data, 30*time.Second)
	}

	respond(c, http.StatusOK, data)
}

// Detail returns one post with its comment forest
// (GET /api/posts/:pid).
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}

	// View hit is batched in the background; the response shows it applied
	services.GetViewService().ScheduleHit(services.ViewPost, post.ID)
	post.Views++

	var comments []models.Comment
	db.DB.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)

	forest := services.BuildCommentTree(comments)
	post.CommentCount = len(comments)

	respond(c, http.StatusOK, gin.H{
		"post":            post,
		"comments":        forest,
		"comment_count":   services.CountCommentTree(forest),
		"top_level_count": len(forest),
	})
}

type postRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	ImageURLs []string `json:"image_urls"`
}

// Create publishes a new community post and bumps its tag counters
// (POST /api/posts).
func (h *PostHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		fail(c, http.StatusBadRequest, "title is required")
		return
	}
	if !models.ValidPostCategory(req.Category) {
		fail(c, http.StatusBadRequest, "unknown category")
		return
	}

	post := models.Post{
		Pid:       utils.RandStringBytesMaskImpr(8),
		Author:    models.Snapshot(user),
		Title:     utils.SanitizeText(req.Title),
		Content:   utils.SanitizeText(req.Content),
		Category:  req.Category,
		Tags:      req.Tags,
		ImageURLs: req.ImageURLs,
		Likes:     models.UIDSet{},
	}

	if err := db.DB.Create(&post).Error; err != nil {
		failServer(c)
		return
	}

	invalidateFeedCaches()
	services.GetHub().Publish("posts")

	// Tag counter maintenance is not transactional with the post write; a
	// partial failure leaves the post committed and surfaces the error.
	if len(req.Tags) > 0 {
		if err := services.IncrementTagCounts(req.Tags); err != nil {
			fail(c, http.StatusInternalServerError, "post saved but tag counters failed")
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Update edits title/content/category/tags; owner only
// (PUT /api/posts/:pid).
func (h *PostHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}
	if post.Author.UID != user.ID {
		fail(c, http.StatusForbidden, "only the author can edit this post")
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		fail(c, http.StatusBadRequest, "title is required")
		return
	}
	if !models.ValidPostCategory(req.Category) {
		fail(c, http.StatusBadRequest, "unknown category")
		return
	}

	oldTags := post.Tags

	post.Title = utils.SanitizeText(req.Title)
	post.Content = utils.SanitizeText(req.Content)
	post.Category = req.Category
	post.Tags = req.Tags

	if err := db.DB.Save(&post).Error; err != nil {
		failServer(c)
		return
	}

	invalidateFeedCaches()
	services.GetHub().Publish("posts")
	services.GetHub().Publish("post:" + pid)

	if err := services.UpdateTagCounts(oldTags, req.Tags); err != nil {
		fail(c, http.StatusInternalServerError, "post saved but tag counters failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete removes a post, its comments, and lowers its tag counters; owner
// only (DELETE /api/posts/:pid). Attached images are not garbage-collected.
func (h *PostHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}
	if post.Author.UID != user.ID {
		fail(c, http.StatusForbidden, "only the author can delete this post")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		failServer(c)
		return
	}
	// The post is the owning aggregate of its comment thread
	db.DB.Where("post_id = ?", post.ID).Delete(&models.Comment{})

	invalidateFeedCaches()
	services.GetHub().Publish("posts")
	services.GetHub().Publish("post:" + pid)
	services.GetHub().Publish("comments:" + pid)

	if len(post.Tags) > 0 {
		if err := services.DecrementTagCounts(post.Tags); err != nil {
			fail(c, http.StatusInternalServerError, "post deleted but tag counters failed")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func invalidateFeedCaches() {
	// Deletes exactly the key space feedCacheKey can produce
	for page := 1; page <= cachedFeedPages; page++ {
		utils.GetCache().Delete(feedCacheKey("posts", page, 10))
	}
}
