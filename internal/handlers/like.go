package handlers

import (
	"fmt"
	"net/http"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// Toggle flips the current user's like on a post, comment, or article
// (POST /api/like/:type/:id). Responds with the authoritative state so
// the client can reconcile an optimistic flip.
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := CurrentUser(c)
	kind := c.Param("type")
	id := c.Param("id")

	switch kind {
	case "post":
		h.togglePost(c, user, id)
	case "comment":
		h.toggleComment(c, user, id)
	case "article":
		h.toggleArticle(c, user, id)
	default:
		fail(c, http.StatusBadRequest, "unknown like target")
	}
}

func (h *LikeHandler) togglePost(c *gin.Context, user *models.User, pid string) {
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}

	if !services.AllowLikeToggle(user.ID, "post", post.ID) {
		c.JSON(http.StatusOK, gin.H{
			"liked": post.Likes.Contains(user.ID),
			"count": len(post.Likes),
		})
		return
	}

	wasLiked := post.Likes.Contains(user.ID)
	post.Likes = post.Likes.Toggle(user.ID)

	if err := db.DB.Model(&post).Update("likes", post.Likes).Error; err != nil {
		failServer(c)
		return
	}

	services.GetHub().Publish("post:" + pid)
	services.GetHub().Publish("posts")

	if !wasLiked && post.Author.UID != user.ID {
		go func() {
			notification := models.Notification{
				UserID:    post.Author.UID,
				Type:      models.NotificationTypeLike,
				From:      models.Snapshot(user),
				PostPid:   post.Pid,
				PostTitle: post.Title,
				Message:   fmt.Sprintf("%s liked your post \"%s\"", user.Nickname, post.Title),
			}
			db.DB.Create(&notification)
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": !wasLiked,
		"count": len(post.Likes),
	})
}

func (h *LikeHandler) toggleComment(c *gin.Context, user *models.User, cid string) {
	var comment models.Comment
	if err := db.DB.Where("cid = ?", cid).First(&comment).Error; err != nil {
		fail(c, http.StatusNotFound, "comment not found")
		return
	}

	if !services.AllowLikeToggle(user.ID, "comment", comment.ID) {
		c.JSON(http.StatusOK, gin.H{
			"liked": comment.Likes.Contains(user.ID),
			"count": len(comment.Likes),
		})
		return
	}

	wasLiked := comment.Likes.Contains(user.ID)
	comment.Likes = comment.Likes.Toggle(user.ID)

	if err := db.DB.Model(&comment).Update("likes", comment.Likes).Error; err != nil {
		failServer(c)
		return
	}

	services.GetHub().Publish("comments:" + comment.PostPid)

	if !wasLiked && comment.Author.UID != user.ID {
		go func() {
			notification := models.Notification{
				UserID:  comment.Author.UID,
				Type:    models.NotificationTypeLike,
				From:    models.Snapshot(user),
				PostPid: comment.PostPid,
				Message: fmt.Sprintf("%s liked your comment", user.Nickname),
			}
			var post models.Post
			if err := db.DB.Select("title").Where("pid = ?", comment.PostPid).First(&post).Error; err == nil {
				notification.PostTitle = post.Title
				notification.Message = fmt.Sprintf("%s liked your comment on \"%s\"", user.Nickname, post.Title)
			}
			db.DB.Create(&notification)
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": !wasLiked,
		"count": len(comment.Likes),
	})
}

func (h *LikeHandler) toggleArticle(c *gin.Context, user *models.User, aid string) {
	var article models.Article
	if err := db.DB.Where("aid = ?", aid).First(&article).Error; err != nil {
		fail(c, http.StatusNotFound, "article not found")
		return
	}

	if !services.AllowLikeToggle(user.ID, "article", article.ID) {
		c.JSON(http.StatusOK, gin.H{
			"liked": article.Likes.Contains(user.ID),
			"count": len(article.Likes),
		})
		return
	}

	wasLiked := article.Likes.Contains(user.ID)
	article.Likes = article.Likes.Toggle(user.ID)

	if err := db.DB.Model(&article).Update("likes", article.Likes).Error; err != nil {
		failServer(c)
		return
	}

	services.GetHub().Publish("articles")

	if !wasLiked && article.Author.UID != user.ID {
		go func() {
			notification := models.Notification{
				UserID:  article.Author.UID,
				Type:    models.NotificationTypeLike,
				From:    models.Snapshot(user),
				Message: fmt.Sprintf("%s liked your article \"%s\"", user.Nickname, article.Title),
			}
			db.DB.Create(&notification)
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": !wasLiked,
		"count": len(article.Likes),
	})
}
