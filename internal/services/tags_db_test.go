package services

import (
	"testing"

	"petit/internal/db"
	"petit/internal/models"

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

	require.NoError(t, gdb.AutoMigrate(&models.Tag{}))

	db.DB = gdb
	t.Cleanup(func() {
		sqlDB.Close()
		db.DB = nil
	})
}

func tagCount(t *testing.T, name string) int {
	var tag models.Tag
	require.NoError(t, db.DB.Where("name = ?", name).First(&tag).Error)
	return tag.Count
}

func TestTagCounterLifecycle(t *testing.T) {
	setupTestDB(t)

	// Two posts carry the tag, then both get deleted
	require.NoError(t, IncrementTagCount("hamster"))
	assert.Equal(t, 1, tagCount(t, "hamster"))

	require.NoError(t, IncrementTagCount("hamster"))
	assert.Equal(t, 2, tagCount(t, "hamster"))

	require.NoError(t, DecrementTagCount("hamster"))
	assert.Equal(t, 1, tagCount(t, "hamster"))

	require.NoError(t, DecrementTagCount("hamster"))
	assert.Equal(t, 0, tagCount(t, "hamster"))

	// Clamped at zero, and the row survives
	require.NoError(t, DecrementTagCount("hamster"))
	assert.Equal(t, 0, tagCount(t, "hamster"))
}

func TestDecrementUnknownTagIsNoop(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, DecrementTagCount("ghost"))

	var n int64
	db.DB.Model(&models.Tag{}).Count(&n)
	assert.Zero(t, n)
}

func TestTopTagsFiltersZeroCounts(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, db.DB.Create(&models.Tag{Name: "busy", Count: 5}).Error)
	require.NoError(t, db.DB.Create(&models.Tag{Name: "alive", Count: 3}).Error)
	require.NoError(t, db.DB.Create(&models.Tag{Name: "dead", Count: 0}).Error)

	tags, err := TopTags(10)
	require.NoError(t, err)

	require.Len(t, tags, 2)
	assert.Equal(t, "busy", tags[0].Name)
	assert.Equal(t, "alive", tags[1].Name)
}

func TestUpdateTagCountsReconciles(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, IncrementTagCounts([]string{"cat", "dog"}))
	require.NoError(t, UpdateTagCounts([]string{"cat", "dog"}, []string{"dog", "bird"}))

	assert.Equal(t, 0, tagCount(t, "cat"))
	assert.Equal(t, 1, tagCount(t, "dog"))
	assert.Equal(t, 1, tagCount(t, "bird"))
}
