package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"petit/internal/cache"
	"petit/internal/db"
	"petit/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const topTagsCacheKey = "tags:top"

// IncrementTagCount bumps a tag's usage counter, creating the row at 1 when
// the tag is seen for the first time. A single upsert keeps concurrent
// increments atomic.
func IncrementTagCount(name string) error {
	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&models.Tag{Name: name, Count: 1}).Error
	if err != nil {
		log.Printf("Failed to increment tag %q: %v", name, err)
		return err
	}
	invalidateTopTags()
	return nil
}

// DecrementTagCount lowers a tag's counter, clamped at zero. The row is kept
// once the count hits zero; dead tags just stop appearing in trending reads.
// Rows already at zero (and missing rows) are left untouched.
func DecrementTagCount(name string) error {
	err := db.DB.Model(&models.Tag{}).
		Where("name = ? AND count > 0", name).
		Updates(map[string]interface{}{
			"count":      gorm.Expr("count - 1"),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		log.Printf("Failed to decrement tag %q: %v", name, err)
		return err
	}
	invalidateTopTags()
	return nil
}

// IncrementTagCounts applies IncrementTagCount to each tag concurrently.
// Tag counters are independent, so no cross-tag transaction is attempted;
// a partial failure leaves the already-applied increments committed.
func IncrementTagCounts(names []string) error {
	var g errgroup.Group
	for _, name := range names {
		name := name
		g.Go(func() error { return IncrementTagCount(name) })
	}
	return g.Wait()
}

// DecrementTagCounts applies DecrementTagCount to each tag concurrently.
func DecrementTagCounts(names []string) error {
	var g errgroup.Group
	for _, name := range names {
		name := name
		g.Go(func() error { return DecrementTagCount(name) })
	}
	return g.Wait()
}

// DiffTags splits an old/new tag-set pair into removed and added tags.
// Unchanged tags appear in neither list.
func DiffTags(oldTags, newTags []string) (removed, added []string) {
	oldSet := make(map[string]bool, len(oldTags))
	for _, t := range oldTags {
		oldSet[t] = true
	}
	newSet := make(map[string]bool, len(newTags))
	for _, t := range newTags {
		newSet[t] = true
	}
	for _, t := range oldTags {
		if !newSet[t] {
			removed = append(removed, t)
		}
	}
	for _, t := range newTags {
		if !oldSet[t] {
			added = append(added, t)
		}
	}
	return removed, added
}

// UpdateTagCounts reconciles counters after a post's tag set was edited:
// removed tags are decremented, added tags incremented, both in parallel.
func UpdateTagCounts(oldTags, newTags []string) error {
	removed, added := DiffTags(oldTags, newTags)

	var g errgroup.Group
	g.Go(func() error { return DecrementTagCounts(removed) })
	g.Go(func() error { return IncrementTagCounts(added) })
	return g.Wait()
}

// topTagsCacheLimit is how many tags a DB read fetches for the cache. The
// cached list is a superset for every limit up to this size: a shorter cached
// list means the table genuinely holds fewer qualifying tags.
const topTagsCacheLimit = 50

// TopTags returns up to limit tags ordered by count descending, ties broken
// by most recent update. Zero-count tags never appear regardless of recency.
func TopTags(limit int) ([]models.Tag, error) {
	if limit <= 0 {
		limit = 10
	}

	if limit <= topTagsCacheLimit {
		if cached, ok := topTagsFromRedis(); ok {
			if len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		}
	}

	fetch := limit
	if fetch < topTagsCacheLimit {
		fetch = topTagsCacheLimit
	}

	var tags []models.Tag
	err := db.DB.Where("count > 0").
		Order("count DESC, updated_at DESC").
		Limit(fetch).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}

	cacheTopTags(tags)
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

func topTagsFromRedis() ([]models.Tag, bool) {
	client := cache.GetClient()
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(context.Background(), topTagsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var tags []models.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, false
	}
	return tags, true
}

func cacheTopTags(tags []models.Tag) {
	client := cache.GetClient()
	if client == nil {
		return
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}
	client.Set(context.Background(), topTagsCacheKey, raw, time.Minute)
}

func invalidateTopTags() {
	if client := cache.GetClient(); client != nil {
		client.Del(context.Background(), topTagsCacheKey)
	}
}
