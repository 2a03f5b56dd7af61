package handlers

import (
	"net/http"
	"testing"
	"time"

	"petit/internal/db"
	"petit/internal/middleware"
	"petit/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB swaps the global connection for an in-memory database.
func setupTestDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// In-memory sqlite lives per connection; keep the pool at one
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Notification{},
	))

	db.DB = gdb
	t.Cleanup(func() {
		sqlDB.Close()
		db.DB = nil
	})
}

func seedCommentFixture(t *testing.T) (author, liker models.User, post models.Post, comment models.Comment) {
	author = models.User{Email: "mina@example.com", Password: "x", Nickname: "Mina", Avatar: "🐱"}
	liker = models.User{Email: "juno@example.com", Password: "x", Nickname: "Juno", Avatar: "🐶"}
	require.NoError(t, db.DB.Create(&author).Error)
	require.NoError(t, db.DB.Create(&liker).Error)

	post = models.Post{
		Pid:      "p1234567",
		Author:   models.Snapshot(&author),
		Title:    "Hairball help",
		Category: models.CategoryHealth,
		Likes:    models.UIDSet{},
	}
	require.NoError(t, db.DB.Create(&post).Error)

	comment = models.Comment{
		Cid:     "c1234567",
		PostID:  post.ID,
		PostPid: post.Pid,
		Author:  models.Snapshot(&author),
		Content: "same here",
		Likes:   models.UIDSet{},
	}
	require.NoError(t, db.DB.Create(&comment).Error)
	return author, liker, post, comment
}

func toggleComment(c *gin.Context, user *models.User, cid string) {
	c.Set(middleware.CheckUserKey, user)
	c.Params = gin.Params{
		{Key: "type", Value: "comment"},
		{Key: "id", Value: cid},
	}
	NewLikeHandler().Toggle(c)
}

func TestCommentLikeNotifiesAuthor(t *testing.T) {
	setupTestDB(t)
	author, liker, post, comment := seedCommentFixture(t)

	c, w := testContext(http.MethodPost, "/api/like/comment/"+comment.Cid)
	toggleComment(c, &liker, comment.Cid)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Comment
	require.NoError(t, db.DB.Where("cid = ?", comment.Cid).First(&got).Error)
	assert.True(t, got.Likes.Contains(liker.ID))

	// The notification is written in the background
	require.Eventually(t, func() bool {
		var n int64
		db.DB.Model(&models.Notification{}).Where("user_id = ?", author.ID).Count(&n)
		return n == 1
	}, 2*time.Second, 20*time.Millisecond)

	var notification models.Notification
	require.NoError(t, db.DB.Where("user_id = ?", author.ID).First(&notification).Error)
	assert.Equal(t, models.NotificationTypeLike, notification.Type)
	assert.Equal(t, liker.ID, notification.From.UID)
	assert.Equal(t, post.Pid, notification.PostPid)
	assert.Contains(t, notification.Message, post.Title)

	// Unliking does not notify again
	c2, w2 := testContext(http.MethodPost, "/api/like/comment/"+comment.Cid)
	toggleComment(c2, &liker, comment.Cid)
	require.Equal(t, http.StatusOK, w2.Code)

	var n int64
	db.DB.Model(&models.Notification{}).Where("user_id = ?", author.ID).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestCommentSelfLikeDoesNotNotify(t *testing.T) {
	setupTestDB(t)
	author, _, _, comment := seedCommentFixture(t)

	c, w := testContext(http.MethodPost, "/api/like/comment/"+comment.Cid)
	toggleComment(c, &author, comment.Cid)

	require.Equal(t, http.StatusOK, w.Code)

	// Liking your own comment starts no background write at all
	time.Sleep(50 * time.Millisecond)
	var n int64
	db.DB.Model(&models.Notification{}).Count(&n)
	assert.Zero(t, n)
}
