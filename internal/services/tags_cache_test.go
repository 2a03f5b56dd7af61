package services

import (
	"fmt"
	"testing"

	"petit/internal/cache"
	"petit/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Client = nil })
}

func cachedTagFixture(n int) []models.Tag {
	tags := make([]models.Tag, n)
	for i := range tags {
		tags[i] = models.Tag{Name: fmt.Sprintf("tag-%02d", i), Count: n - i}
	}
	return tags
}

func TestTopTagsCacheServesLargerLimit(t *testing.T) {
	setupTestRedis(t)

	// The cache always holds the full superset, whatever limit warmed it
	cacheTopTags(cachedTagFixture(topTagsCacheLimit))

	got, err := TopTags(5)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	// A bigger limit right after a small one still gets its full slice
	got, err = TopTags(20)
	require.NoError(t, err)
	assert.Len(t, got, 20)
	assert.Equal(t, "tag-00", got[0].Name)
}

func TestTopTagsCacheShortListIsComplete(t *testing.T) {
	setupTestRedis(t)

	// Fewer qualifying tags than asked for: the cached list is all there is
	cacheTopTags(cachedTagFixture(3))

	got, err := TopTags(10)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestInvalidateTopTags(t *testing.T) {
	setupTestRedis(t)

	cacheTopTags(cachedTagFixture(3))
	invalidateTopTags()

	_, ok := topTagsFromRedis()
	assert.False(t, ok)
}
