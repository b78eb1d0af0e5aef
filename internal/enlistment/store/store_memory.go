package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"roster/internal/enlistment/models"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// InMemoryStore holds enlistments for tests and local runs.
type InMemoryStore struct {
	mu          sync.RWMutex
	enlistments map[domain.EnlistmentID]models.Enlistment
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{enlistments: make(map[domain.EnlistmentID]models.Enlistment)}
}

func (s *InMemoryStore) Create(_ context.Context, e *models.Enlistment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.enlistments[e.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.enlistments[e.ID] = *e
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.EnlistmentID) (*models.Enlistment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.enlistments[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &e, nil
}

// Transition moves the enlistment from one status to another and stamps the review
// fields. It returns ErrConflict when the persisted status is no longer from.
func (s *InMemoryStore) Transition(_ context.Context, id domain.EnlistmentID, from, to models.Status, reviewer *domain.UserID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.enlistments[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if e.Status != from {
		return sentinel.ErrConflict
	}
	e.Status = to
	e.ReviewedAt = &at
	e.ReviewedBy = reviewer
	s.enlistments[id] = e
	return nil
}

// MarkAccepted records the conversion. It only succeeds while the enlistment is
// still in status from and has no soldier.
func (s *InMemoryStore) MarkAccepted(_ context.Context, id domain.EnlistmentID, from models.Status, soldierID domain.SoldierID, reviewer *domain.UserID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.enlistments[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if e.Status != from || e.IsConverted() {
		return sentinel.ErrConflict
	}
	e.Status = models.StatusAccepted
	e.ReviewedAt = &at
	e.ReviewedBy = reviewer
	e.SoldierID = &soldierID
	s.enlistments[id] = e
	return nil
}

// EnsureAccepted repairs a converted enlistment whose status update was lost.
// Review fields already set are kept.
func (s *InMemoryStore) EnsureAccepted(_ context.Context, id domain.EnlistmentID, reviewer *domain.UserID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.enlistments[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if !e.IsConverted() {
		return sentinel.ErrConflict
	}
	e.Status = models.StatusAccepted
	if e.ReviewedAt == nil {
		e.ReviewedAt = &at
	}
	if e.ReviewedBy == nil {
		e.ReviewedBy = reviewer
	}
	s.enlistments[id] = e
	return nil
}

// List returns enlistments in the given statuses, oldest submission first. An empty
// filter returns every enlistment.
func (s *InMemoryStore) List(_ context.Context, statuses []models.Status) ([]*models.Enlistment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Enlistment
	for _, e := range s.enlistments {
		if len(statuses) > 0 && !slices.Contains(statuses, e.Status) {
			continue
		}
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

func (s *InMemoryStore) CountByStatus(_ context.Context) (map[models.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, e := range s.enlistments {
		counts[e.Status]++
	}
	return counts, nil
}
