package handlers

import (
	"log"
	"net/http"
	"time"

	"petit/internal/db"
	"petit/internal/models"
	"petit/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Session cookie auth, same origin as the SPA
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

type StreamHandler struct{}

func NewStreamHandler() *StreamHandler {
	return &StreamHandler{}
}

// serve upgrades the connection, sends one snapshot immediately, then
// re-queries and resends whenever any of the topics signals a change. The
// connection closes when the client goes away.
func (h *StreamHandler) serve(c *gin.Context, topics []string, snapshot func() (gin.H, error)) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events := make(chan struct{}, 1)
	var cancels []func()
	for _, topic := range topics {
		ch, cancel := services.GetHub().Subscribe(topic)
		cancels = append(cancels, cancel)
		go func(ch <-chan struct{}) {
			for range ch {
				select {
				case events <- struct{}{}:
				default:
				}
			}
		}(ch)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	// Reader drains control frames and detects disconnect
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		data, err := snapshot()
		if err != nil {
			log.Printf("stream snapshot failed: %v", err)
			return false
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(data) == nil
	}

	if !send() {
		return
	}

	for {
		select {
		case <-events:
			if !send() {
				return
			}
		case <-done:
			return
		}
	}
}

// PostFeed streams the first feed page on every post change (GET /ws/posts).
func (h *StreamHandler) PostFeed(c *gin.Context) {
	h.serve(c, []string{"posts"}, func() (gin.H, error) {
		var posts []models.Post
		err := db.DB.Order("created_at DESC").Limit(20).Find(&posts).Error
		if err != nil {
			return nil, err
		}
		fillCommentCounts(posts)
		return gin.H{"posts": posts}, nil
	})
}

// PostDetail streams one post document (GET /ws/posts/:pid).
func (h *StreamHandler) PostDetail(c *gin.Context) {
	pid := c.Param("pid")
	h.serve(c, []string{"post:" + pid}, func() (gin.H, error) {
		var post models.Post
		if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
			// Deleted while watching; tell the client and stop
			return gin.H{"post": nil, "deleted": true}, nil
		}
		return gin.H{"post": post}, nil
	})
}

// Comments streams a post's comment forest (GET /ws/posts/:pid/comments).
func (h *StreamHandler) Comments(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Select("id, pid").Where("pid = ?", pid).First(&post).Error; err != nil {
		fail(c, http.StatusNotFound, "post not found")
		return
	}

	h.serve(c, []string{"comments:" + pid}, func() (gin.H, error) {
		var comments []models.Comment
		err := db.DB.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments).Error
		if err != nil {
			return nil, err
		}
		forest := services.BuildCommentTree(comments)
		return gin.H{
			"comments":      forest,
			"comment_count": len(comments),
		}, nil
	})
}

// ArticleFeed streams the first page of articles (GET /ws/articles).
func (h *StreamHandler) ArticleFeed(c *gin.Context) {
	h.serve(c, []string{"articles"}, func() (gin.H, error) {
		var articles []models.Article
		err := db.DB.Order("created_at DESC").Limit(20).Find(&articles).Error
		if err != nil {
			return nil, err
		}
		return gin.H{"articles": articles}, nil
	})
}
