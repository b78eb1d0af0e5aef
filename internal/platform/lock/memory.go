package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is the in-process fallback used when Redis is not configured.
// It only serializes callers within one process.
type MemoryLocker struct {
	mu    sync.Mutex
	held  map[string]memoryEntry
	seq   uint64
	clock func() time.Time
}

type memoryEntry struct {
	token     uint64
	expiresAt time.Time
}

// MemoryOption configures a MemoryLocker.
type MemoryOption func(*MemoryLocker)

// WithClock overrides time.Now, for expiry tests.
func WithClock(clock func() time.Time) MemoryOption {
	return func(l *MemoryLocker) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// NewMemory constructs an in-process locker.
func NewMemory(opts ...MemoryOption) *MemoryLocker {
	l := &MemoryLocker{
		held:  make(map[string]memoryEntry),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (Lease, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if entry, ok := l.held[key]; ok && now.Before(entry.expiresAt) {
		return nil, ErrNotAcquired
	}
	l.seq++
	l.held[key] = memoryEntry{token: l.seq, expiresAt: now.Add(ttl)}
	return &memoryLease{locker: l, key: key, token: l.seq}, nil
}

type memoryLease struct {
	locker *MemoryLocker
	key    string
	token  uint64
}

func (m *memoryLease) Release(_ context.Context) error {
	m.locker.mu.Lock()
	defer m.locker.mu.Unlock()
	if entry, ok := m.locker.held[m.key]; ok && entry.token == m.token {
		delete(m.locker.held, m.key)
	}
	return nil
}
