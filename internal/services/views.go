package services

import (
	"log"
	"sync"
	"time"

	"petit/internal/db"
	"petit/internal/models"

	"gorm.io/gorm"
)

// ViewKind selects which collection a view hit belongs to.
type ViewKind string

const (
	ViewPost    ViewKind = "post"
	ViewArticle ViewKind = "article"
)

type viewKey struct {
	kind ViewKind
	id   uint
}

// ViewService batches view-count increments so a hot post does not turn
// every page load into its own UPDATE. Hits are accumulated in memory and
// flushed as a single `views = views + n` per entity. Counts only ever grow.
type ViewService struct {
	queue chan viewKey
	hits  map[viewKey]int
	mu    sync.Mutex
}

var (
	viewService *ViewService
	viewOnce    sync.Once
)

// GetViewService returns the singleton view counter.
func GetViewService() *ViewService {
	viewOnce.Do(func() {
		viewService = &ViewService{
			queue: make(chan viewKey, 1000),
			hits:  make(map[viewKey]int),
		}
		go viewService.worker()
	})
	return viewService
}

// ScheduleHit records one view for the entity (asynchronous, non-blocking).
// When the queue is full the hit is counted directly into the pending map so
// no increment is lost.
func (s *ViewService) ScheduleHit(kind ViewKind, id uint) {
	key := viewKey{kind: kind, id: id}
	select {
	case s.queue <- key:
	default:
		s.mu.Lock()
		s.hits[key]++
		s.mu.Unlock()
	}
}

func (s *ViewService) worker() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case key := <-s.queue:
			s.mu.Lock()
			s.hits[key]++
			s.mu.Unlock()
		case <-ticker.C:
			s.flush()
		}
	}
}

// Flush writes all pending increments immediately. Exposed for shutdown.
func (s *ViewService) Flush() {
	s.flush()
}

func (s *ViewService) flush() {
	s.mu.Lock()
	if len(s.hits) == 0 {
		s.mu.Unlock()
		return
	}
	pending := s.hits
	s.hits = make(map[viewKey]int)
	s.mu.Unlock()

	for key, n := range pending {
		var err error
		switch key.kind {
		case ViewPost:
			err = db.DB.Model(&models.Post{}).Where("id = ?", key.id).
				UpdateColumn("views", gorm.Expr("views + ?", n)).Error
		case ViewArticle:
			err = db.DB.Model(&models.Article{}).Where("id = ?", key.id).
				UpdateColumn("views", gorm.Expr("views + ?", n)).Error
		}
		if err != nil {
			log.Printf("Failed to flush %d views for %s %d: %v", n, key.kind, key.id, err)
		}
	}
}
