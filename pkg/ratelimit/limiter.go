// Package ratelimit implements fixed-window request counting per client key.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type Limiter interface {
	// Allow counts one hit for key and reports whether it fits the current window.
	Allow(ctx context.Context, key string) (Result, error)
}

type window struct {
	count     int
	expiresAt time.Time
}

// MemoryLimiter keeps counters in process. Windows start at a key's first hit
// and are not shared between replicas.
type MemoryLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	data   map[string]*window
	now    func() time.Time
}

const sweepThreshold = 10000

func NewMemoryLimiter(limit int, windowSize time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:  limit,
		window: windowSize,
		data:   make(map[string]*window),
		now:    time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.data[key]
	if !ok || !now.Before(w.expiresAt) {
		w = &window{expiresAt: now.Add(m.window)}
		m.data[key] = w
	}
	w.count++

	if len(m.data) > sweepThreshold {
		m.sweep(now)
	}

	return result(m.limit, w.count, w.expiresAt), nil
}

func (m *MemoryLimiter) sweep(now time.Time) {
	for k, w := range m.data {
		if !now.Before(w.expiresAt) {
			delete(m.data, k)
		}
	}
}

func result(limit, count int, resetAt time.Time) Result {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
