package services

import (
	"testing"
	"time"

	"petit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comment(id uint, parentID *uint, createdAt time.Time) models.Comment {
	return models.Comment{
		ID:        id,
		Cid:       "c" + string(rune('0'+id)),
		PostID:    1,
		ParentID:  parentID,
		Content:   "hello",
		CreatedAt: createdAt,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestBuildCommentTreeNesting(t *testing.T) {
	base := time.Now()

	// A, reply B to A, reply C to B, plus an unrelated root D
	flat := []models.Comment{
		comment(1, nil, base),
		comment(2, uintPtr(1), base.Add(time.Minute)),
		comment(3, uintPtr(2), base.Add(2*time.Minute)),
		comment(4, nil, base.Add(3*time.Minute)),
	}

	forest := BuildCommentTree(flat)

	require.Len(t, forest, 2)
	assert.Equal(t, uint(1), forest[0].ID)
	assert.Equal(t, uint(4), forest[1].ID)

	require.Len(t, forest[0].Replies, 1)
	assert.Equal(t, uint(2), forest[0].Replies[0].ID)
	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, uint(3), forest[0].Replies[0].Replies[0].ID)

	assert.Empty(t, forest[1].Replies)
	assert.Equal(t, len(flat), CountCommentTree(forest))
}

func TestBuildCommentTreeSiblingOrder(t *testing.T) {
	base := time.Now()

	flat := []models.Comment{
		comment(1, nil, base),
		comment(2, uintPtr(1), base.Add(time.Minute)),
		comment(3, uintPtr(1), base.Add(2*time.Minute)),
		comment(4, uintPtr(1), base.Add(3*time.Minute)),
	}

	forest := BuildCommentTree(flat)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Replies, 3)
	// Input order (created_at ascending) is preserved among siblings
	assert.Equal(t, uint(2), forest[0].Replies[0].ID)
	assert.Equal(t, uint(3), forest[0].Replies[1].ID)
	assert.Equal(t, uint(4), forest[0].Replies[2].ID)
}

func TestBuildCommentTreeOrphanBecomesRoot(t *testing.T) {
	base := time.Now()

	// Parent 99 was deleted; its reply must stay visible at the top level
	flat := []models.Comment{
		comment(1, nil, base),
		comment(2, uintPtr(99), base.Add(time.Minute)),
	}

	forest := BuildCommentTree(flat)

	require.Len(t, forest, 2)
	assert.Equal(t, uint(2), forest[1].ID)
	assert.Equal(t, len(flat), CountCommentTree(forest))
}

func TestBuildCommentTreeSelfParent(t *testing.T) {
	flat := []models.Comment{
		comment(1, uintPtr(1), time.Now()),
	}

	forest := BuildCommentTree(flat)

	require.Len(t, forest, 1)
	assert.Equal(t, uint(1), forest[0].ID)
	assert.Empty(t, forest[0].Replies)
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	forest := BuildCommentTree(nil)
	assert.Empty(t, forest)
	assert.Zero(t, CountCommentTree(forest))
}

func TestBuildCommentTreeDoesNotMutateInput(t *testing.T) {
	base := time.Now()
	flat := []models.Comment{
		comment(1, nil, base),
		comment(2, uintPtr(1), base.Add(time.Minute)),
	}

	BuildCommentTree(flat)

	// The flat slice keeps its nil Replies; the tree works on copies
	assert.Nil(t, flat[0].Replies)
	assert.Nil(t, flat[1].Replies)
}
