package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandStringBytesMaskImpr(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := RandStringBytesMaskImpr(8)
		assert.Len(t, s, 8)
		for _, r := range s {
			assert.Contains(t, letterBytes, string(r))
		}
		seen[s] = true
	}
	// Not a strict uniqueness guarantee, but 100 collisions would mean a bug
	assert.Greater(t, len(seen), 90)
}

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, 0, StringToInt("abc"))
	assert.Equal(t, 0, StringToInt(""))
	assert.Equal(t, -7, StringToInt("-7"))
}

func TestSanitizeTextStripsMarkup(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold", SanitizeText("<b>bold</b>"))
	assert.Equal(t, "plain text", SanitizeText("plain text"))
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# Title\n\nSome **bold** text.")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")

	// Script injection inside markdown must not survive
	html = RenderMarkdown("hi <script>alert(1)</script>")
	assert.NotContains(t, html, "<script>")
}

func TestCacheSetGetExpiry(t *testing.T) {
	c := GetCache()

	c.Set("k", "v", time.Minute)
	assert.Equal(t, "v", c.Get("k"))

	c.Set("gone", "v", -time.Second)
	assert.Nil(t, c.Get("gone"))

	c.Delete("k")
	assert.Nil(t, c.Get("k"))
}

func TestGetDaysSinceJoined(t *testing.T) {
	assert.Equal(t, 0, GetDaysSinceJoined(time.Now()))
	assert.Equal(t, 3, GetDaysSinceJoined(time.Now().Add(-73*time.Hour)))
}
