package services

import (
	"sync"
)

// Hub is a minimal in-process change notifier: writers publish on a topic
// after every successful mutation and subscribers re-query their snapshot.
// Events carry no payload; a pending signal is coalesced per subscriber so a
// slow reader sees at most one wakeup for a burst of writes.
//
// Topics in use: "posts", "articles", "post:<pid>", "comments:<pid>".
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan struct{}]struct{}
}

var (
	hub     *Hub
	hubOnce sync.Once
)

// GetHub returns the singleton hub.
func GetHub() *Hub {
	hubOnce.Do(func() {
		hub = &Hub{subs: make(map[string]map[chan struct{}]struct{})}
	})
	return hub
}

// Subscribe registers for change events on a topic. The returned cancel func
// must be invoked exactly once when the consumer is torn down; after cancel
// the channel is closed and no further events arrive.
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	m, ok := h.subs[topic]
	if !ok {
		m = make(map[chan struct{}]struct{})
		h.subs[topic] = m
	}
	m[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if m, ok := h.subs[topic]; ok {
				delete(m, ch)
				if len(m) == 0 {
					delete(h.subs, topic)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish signals every subscriber of the topic. Never blocks: a subscriber
// that already has a pending signal is skipped.
func (h *Hub) Publish(topic string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
