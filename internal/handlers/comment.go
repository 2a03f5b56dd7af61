package handlers

import (
	"fmt"
	"net/http"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/services"
	"petit/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxCommentLength = 500

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List returns the post's comments as a reply forest
// (GET /api/posts/:pid/comments).
func (h *CommentHandler) List(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Select("id, pid").Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}

	var comments []models.Comment
	db.DB.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)

	forest := services.BuildCommentTree(comments)

	respond(c, http.StatusOK, gin.H{
		"comments":        forest,
		"comment_count":   len(comments),
		"top_level_count": len(forest),
	})
}

type commentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id"`
}

// Create adds a comment or a reply (POST /api/posts/:pid/comments).
func (h *CommentHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		fail(c, http.StatusBadRequest, "comment content is required")
		return
	}
	if len([]rune(req.Content)) > maxCommentLength {
		fail(c, http.StatusBadRequest, "comment is limited to 500 characters")
		return
	}

	comment := models.Comment{
		Cid:     utils.RandStringBytesMaskImpr(8),
		PostID:  post.ID,
		PostPid: post.Pid,
		Author:  models.Snapshot(user),
		Content: utils.SanitizeText(req.Content),
		Likes:   models.UIDSet{},
	}

	// A reply must point at a comment of the same post
	var parent *models.Comment
	if req.ParentID != "" {
		var p models.Comment
		if err := db.DB.Where("cid = ? AND post_id = ?", req.ParentID, post.ID).First(&p).Error; err != nil {
			fail(c, http.StatusBadRequest, "parent comment not found")
			return
		}
		parent = &p
		comment.ParentID = &p.ID
		comment.ParentCid = p.Cid
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		failServer(c)
		return
	}

	services.GetHub().Publish("comments:" + pid)
	services.GetHub().Publish("post:" + pid)

	// Notify the replied-to author, or the post author for top-level comments
	go func() {
		if parent != nil {
			if parent.Author.UID != user.ID {
				notification := models.Notification{
					UserID:    parent.Author.UID,
					Type:      models.NotificationTypeComment,
					From:      models.Snapshot(user),
					PostPid:   post.Pid,
					PostTitle: post.Title,
					Message:   fmt.Sprintf("%s replied to your comment on \"%s\"", user.Nickname, post.Title),
				}
				db.DB.Create(&notification)
			}
		} else if post.Author.UID != user.ID {
			notification := models.Notification{
				UserID:    post.Author.UID,
				Type:      models.NotificationTypeComment,
				From:      models.Snapshot(user),
				PostPid:   post.Pid,
				PostTitle: post.Title,
				Message:   fmt.Sprintf("%s commented on your post \"%s\"", user.Nickname, post.Title),
			}
			db.DB.Create(&notification)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Update edits a comment's content; owner only (PUT /api/comments/:cid).
func (h *CommentHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	var comment models.Comment
	if err := db.DB.Where("cid = ?", cid).First(&comment).Error; err != nil {
		fail(c, http.StatusNotFound, "comment not found")
		return
	}
	if comment.Author.UID != user.ID {
		fail(c, http.StatusForbidden, "only the author can edit this comment")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		fail(c, http.StatusBadRequest, "comment content is required")
		return
	}
	if len([]rune(req.Content)) > maxCommentLength {
		fail(c, http.StatusBadRequest, "comment is limited to 500 characters")
		return
	}

	comment.Content = utils.SanitizeText(req.Content)
	if err := db.DB.Save(&comment).Error; err != nil {
		failServer(c)
		return
	}

	services.GetHub().Publish("comments:" + comment.PostPid)

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete removes a comment; owner only (DELETE /api/comments/:cid).
// Replies are not deleted with it: they resurface as roots in the tree,
// keeping orphaned replies visible.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	var comment models.Comment
	if err := db.DB.Where("cid = ?", cid).First(&comment).Error; err != nil {
		fail(c, http.StatusNotFound, "comment not found")
		return
	}
	if comment.Author.UID != user.ID {
		fail(c, http.StatusForbidden, "only the author can delete this comment")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		failServer(c)
		return
	}

	services.GetHub().Publish("comments:" + comment.PostPid)
	services.GetHub().Publish("post:" + comment.PostPid)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
