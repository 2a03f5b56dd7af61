package services

import (
	"petit/internal/models"
)

// BuildCommentTree reshapes a flat comment list (expected in created_at
// ascending order) into a forest of reply trees. Two passes: first a lookup
// from id to a copy with an empty reply list, then each comment is appended
// to its parent's replies, or to the root list when it has no parent or the
// parent is not in the set. Orphaned replies stay visible as roots instead
// of silently disappearing; that includes a comment naming itself as parent.
func BuildCommentTree(flat []models.Comment) []*models.Comment {
	nodes := make(map[uint]*models.Comment, len(flat))
	order := make([]*models.Comment, 0, len(flat))
	for i := range flat {
		c := flat[i]
		c.Replies = []*models.Comment{}
		nodes[c.ID] = &c
		order = append(order, &c)
	}

	roots := make([]*models.Comment, 0, len(flat))
	for _, c := range order {
		if c.ParentID != nil && *c.ParentID != c.ID {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		roots = append(roots, c)
	}
	return roots
}

// CountCommentTree returns the total number of comments in the forest,
// replies included. For any input this equals the flat list length.
func CountCommentTree(forest []*models.Comment) int {
	total := 0
	for _, c := range forest {
		total += 1 + CountCommentTree(c.Replies)
	}
	return total
}
