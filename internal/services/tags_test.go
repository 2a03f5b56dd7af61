package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffTags(t *testing.T) {
	removed, added := DiffTags(
		[]string{"cat", "dog", "hamster"},
		[]string{"dog", "parrot"},
	)

	assert.Equal(t, []string{"cat", "hamster"}, removed)
	assert.Equal(t, []string{"parrot"}, added)
}

func TestDiffTagsNoChange(t *testing.T) {
	removed, added := DiffTags([]string{"cat", "dog"}, []string{"cat", "dog"})

	assert.Empty(t, removed)
	assert.Empty(t, added)
}

func TestDiffTagsFromEmpty(t *testing.T) {
	removed, added := DiffTags(nil, []string{"cat"})

	assert.Empty(t, removed)
	assert.Equal(t, []string{"cat"}, added)
}

func TestDiffTagsToEmpty(t *testing.T) {
	removed, added := DiffTags([]string{"cat"}, nil)

	assert.Equal(t, []string{"cat"}, removed)
	assert.Empty(t, added)
}
