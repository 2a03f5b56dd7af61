package db

import (
	"log"
	"os"

	"petit/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=petit port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Article{},
		&models.Tag{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	backfillTagCounts()
}

// backfillTagCounts rebuilds the tag usage counters from existing posts and
// articles when the tags table is empty (fresh install or restored dump).
func backfillTagCounts() {
	var count int64
	DB.Model(&models.Tag{}).Count(&count)
	if count > 0 {
		return
	}

	counts := make(map[string]int)

	var posts []models.Post
	DB.Select("tags").Find(&posts)
	for _, p := range posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}

	var articles []models.Article
	DB.Select("tags").Find(&articles)
	for _, a := range articles {
		for _, t := range a.Tags {
			counts[t]++
		}
	}

	if len(counts) == 0 {
		return
	}

	for name, n := range counts {
		if err := DB.Create(&models.Tag{Name: name, Count: n}).Error; err != nil {
			log.Printf("Failed to backfill tag %s: %v", name, err)
		}
	}
	log.Printf("Backfilled %d tag counters", len(counts))
}
