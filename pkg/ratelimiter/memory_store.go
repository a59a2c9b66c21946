package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
	ends  time.Time
}

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired windows are evicted.
// Set to 0 to disable automatic cleanup.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithStoreClock replaces the store's time source. Intended for tests.
func WithStoreClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.now = now
	}
}

// NewMemoryStore creates a new in-memory store with optional cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		windows:         make(map[string]*window),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// Increment implements Store.
func (ms *MemoryStore) Increment(ctx context.Context, key string, length time.Duration) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	w, ok := ms.windows[key]
	if !ok || now.Sub(w.start) >= length {
		w = &window{start: now, count: 1, ends: now.Add(length)}
		ms.windows[key] = w
		return w.count, w.ends, nil
	}

	w.count++
	return w.count, w.ends, nil
}

// Reset implements Store.
func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.windows, key)
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.windows)
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.RemoveExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

// RemoveExpired evicts every window that has already ended.
func (ms *MemoryStore) RemoveExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, w := range ms.windows {
		if !now.Before(w.ends) {
			delete(ms.windows, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() {
		close(ms.stopCleanup)
	})
}
