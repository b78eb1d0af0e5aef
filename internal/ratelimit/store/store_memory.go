package store

import (
	"context"
	"sync"
	"time"

	"roster/internal/ratelimit/models"
)

// InMemoryStore is a process-local sliding window limiter. Replicas do not share
// counts; use RedisStore when running more than one.
type InMemoryStore struct {
	mu        sync.Mutex
	windows   map[string]*slidingWindow
	now       func() time.Time
	lastSweep time.Time
}

// sweepInterval bounds how often Allow scans every key for expired windows.
const sweepInterval = time.Minute

type slidingWindow struct {
	timestamps []time.Time
	window     time.Duration
}

// MemoryOption configures an InMemoryStore.
type MemoryOption func(*InMemoryStore)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *InMemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewInMemoryStore(opts ...MemoryOption) *InMemoryStore {
	s := &InMemoryStore{
		windows: make(map[string]*slidingWindow),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow records one request for key when it fits inside policy.
func (s *InMemoryStore) Allow(_ context.Context, key string, policy models.Policy) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	sw := s.windowFor(key, policy.Window)
	sw.cleanup(now)

	if len(sw.timestamps) >= policy.Limit {
		resetAt := sw.timestamps[0].Add(sw.window)
		return &models.Result{
			Allowed:    false,
			Limit:      policy.Limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: models.RetryAfterSeconds(now, resetAt),
		}, nil
	}

	sw.timestamps = append(sw.timestamps, now)
	return &models.Result{
		Allowed:   true,
		Limit:     policy.Limit,
		Remaining: policy.Limit - len(sw.timestamps),
		ResetAt:   sw.timestamps[0].Add(sw.window),
	}, nil
}

// Reset clears the window for key.
func (s *InMemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

func (sw *slidingWindow) cleanup(now time.Time) {
	cutoff := now.Add(-sw.window)
	i := 0
	for ; i < len(sw.timestamps); i++ {
		if sw.timestamps[i].After(cutoff) {
			break
		}
	}
	sw.timestamps = sw.timestamps[i:]
}

// sweep drops keys whose windows hold no live requests. It must be called with
// s.mu held.
func (s *InMemoryStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now
	for key, sw := range s.windows {
		sw.cleanup(now)
		if len(sw.timestamps) == 0 {
			delete(s.windows, key)
		}
	}
}

// windowFor must be called with s.mu held.
func (s *InMemoryStore) windowFor(key string, window time.Duration) *slidingWindow {
	if sw := s.windows[key]; sw != nil {
		sw.window = window
		return sw
	}
	sw := &slidingWindow{window: window}
	s.windows[key] = sw
	return sw
}
