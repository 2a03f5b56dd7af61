package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIDSetToggle(t *testing.T) {
	var likes UIDSet

	likes = likes.Toggle(7)
	assert.True(t, likes.Contains(7))
	assert.Len(t, likes, 1)

	likes = likes.Toggle(7)
	assert.False(t, likes.Contains(7))
	assert.Len(t, likes, 0)
}

func TestUIDSetToggleKeepsOthers(t *testing.T) {
	likes := UIDSet{1, 2, 3}

	likes = likes.Toggle(2)

	assert.False(t, likes.Contains(2))
	assert.True(t, likes.Contains(1))
	assert.True(t, likes.Contains(3))
	assert.Len(t, likes, 2)
}

func TestUIDSetToggleDoesNotMutate(t *testing.T) {
	likes := UIDSet{1, 2}

	_ = likes.Toggle(3)
	_ = likes.Toggle(1)

	assert.Equal(t, UIDSet{1, 2}, likes)
}

func TestStringListContains(t *testing.T) {
	tags := StringList{"cat", "dog"}

	assert.True(t, tags.Contains("cat"))
	assert.False(t, tags.Contains("parrot"))
	assert.False(t, StringList(nil).Contains("cat"))
}
