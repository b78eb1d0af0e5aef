package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"roster/internal/servicerecord/models"
	"roster/pkg/domain"
)

// InMemoryStore keeps entries in insertion order.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, entry *models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *InMemoryStore) ListBySoldier(_ context.Context, soldierID domain.SoldierID, visibilities []models.Visibility) ([]*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Entry
	for i := range s.entries {
		e := s.entries[i]
		if e.SoldierID == soldierID && slices.Contains(visibilities, e.Visibility) {
			out = append(out, &e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out, nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Entry, 0, len(s.entries))
	for i := range s.entries {
		e := s.entries[i]
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
