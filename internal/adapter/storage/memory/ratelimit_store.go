package memory

import (
	"context"
	"sync"
	"time"

	"roundup-saver/internal/core/ports"
)

// RateLimitStore implements ports.RateLimitStore with in-process fixed windows.
type RateLimitStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	id    int64
	count int64
}

func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{windows: make(map[string]*window), now: time.Now}
}

// Allow counts one request against key in the current window.
func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, d time.Duration) (*ports.RateLimitResult, error) {
	windowSecs := int64(d / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	id := s.now().Unix() / windowSecs

	s.mu.Lock()
	w, ok := s.windows[key]
	if !ok || w.id != id {
		w = &window{id: id}
		s.windows[key] = w
	}
	w.count++
	count := w.count
	s.mu.Unlock()

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (id + 1) * windowSecs,
	}, nil
}
