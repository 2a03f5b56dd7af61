package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestPageParamsDefaults(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/api/posts")

	page, limit, offset := pageParams(c)

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
}

func TestPageParams(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/api/posts?page=3&limit=20")

	page, limit, offset := pageParams(c)

	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)
}

func TestPageParamsRejectsBadValues(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/api/posts?page=-1&limit=999")

	page, limit, offset := pageParams(c)

	// Out-of-range values fall back to the defaults
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
}

func TestFeedCacheKeySpaceIsClosed(t *testing.T) {
	// Every key List may cache is one invalidateFeedCaches deletes; any
	// other page/limit combination is never cached at all
	assert.Equal(t, "posts:page:1:10", feedCacheKey("posts", 1, 10))
	assert.Equal(t, "posts:page:3:10", feedCacheKey("posts", 3, 10))
	assert.Equal(t, "articles:page:2:10", feedCacheKey("articles", 2, 10))

	assert.Empty(t, feedCacheKey("posts", 4, 10))
	assert.Empty(t, feedCacheKey("posts", 1, 20))
	assert.Empty(t, feedCacheKey("articles", 1, 50))
}

func TestMetaCategories(t *testing.T) {
	c, w := testContext(http.MethodGet, "/api/categories")

	NewMetaHandler().Categories(c)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		PostCategories    []string `json:"post_categories"`
		ArticleCategories []string `json:"article_categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.PostCategories, "daily")
	assert.Contains(t, body.ArticleCategories, "first-aid")
}

func TestLikeToggleUnknownTarget(t *testing.T) {
	c, w := testContext(http.MethodPost, "/api/like/banana/abc")
	c.Params = gin.Params{
		{Key: "type", Value: "banana"},
		{Key: "id", Value: "abc"},
	}

	NewLikeHandler().Toggle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutStorage(t *testing.T) {
	// No S3 env configured in tests, storage reports unavailable
	c, w := testContext(http.MethodPost, "/api/upload/images")

	NewUploadHandler().Images(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestFailHelper(t *testing.T) {
	c, w := testContext(http.MethodGet, "/")

	fail(c, http.StatusTeapot, "nope")

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"nope"}`, w.Body.String())
}
