package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"roster/internal/attendance/models"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

type attendanceKey struct {
	soldierID   domain.SoldierID
	operationID domain.OperationID
}

// InMemoryStore keeps operations and attendance for tests and local runs.
type InMemoryStore struct {
	mu         sync.RWMutex
	operations map[domain.OperationID]models.Operation
	attendance map[attendanceKey]models.Attendance
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		operations: make(map[domain.OperationID]models.Operation),
		attendance: make(map[attendanceKey]models.Attendance),
	}
}

// RunInTx runs fn directly; the in-memory store has no rollback.
func (s *InMemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *InMemoryStore) CreateOperation(_ context.Context, op *models.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.operations[op.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.operations[op.ID] = *op
	return nil
}

func (s *InMemoryStore) FindOperation(_ context.Context, id domain.OperationID) (*models.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if op, ok := s.operations[id]; ok {
		return &op, nil
	}
	return nil, sentinel.ErrNotFound
}

// ListCompletedOperations returns up to limit completed operations, newest first.
func (s *InMemoryStore) ListCompletedOperations(_ context.Context, limit int) ([]*models.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Operation
	for _, op := range s.operations {
		if op.Status == models.OperationCompleted {
			out = append(out, &op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OperationDate.After(out[j].OperationDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemoryStore) CountCompletedOperations(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, op := range s.operations {
		if op.Status == models.OperationCompleted {
			n++
		}
	}
	return n, nil
}

// Upsert inserts or replaces the row for (SoldierID, OperationID), keeping the
// original id and CreatedAt on replace.
func (s *InMemoryStore) Upsert(_ context.Context, row *models.Attendance) (*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.operations[row.OperationID]; !ok {
		return nil, sentinel.ErrNotFound
	}
	key := attendanceKey{soldierID: row.SoldierID, operationID: row.OperationID}
	stored := *row
	if existing, ok := s.attendance[key]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	}
	s.attendance[key] = stored
	return &stored, nil
}

func (s *InMemoryStore) ListByOperation(_ context.Context, operationID domain.OperationID) ([]*models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Attendance
	for _, row := range s.attendance {
		if row.OperationID == operationID {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) ListByOperations(_ context.Context, ids []domain.OperationID) ([]*models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[domain.OperationID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []*models.Attendance
	for _, row := range s.attendance {
		if _, ok := wanted[row.OperationID]; ok {
			out = append(out, &row)
		}
	}
	return out, nil
}

// SoldierPresence counts a soldier's present rows and returns when the latest one
// was recorded.
func (s *InMemoryStore) SoldierPresence(_ context.Context, soldierID domain.SoldierID) (int, *time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		count int
		last  *time.Time
	)
	for _, row := range s.attendance {
		if row.SoldierID != soldierID || row.Status != models.StatusPresent {
			continue
		}
		count++
		if last == nil || row.CreatedAt.After(*last) {
			t := row.CreatedAt
			last = &t
		}
	}
	return count, last, nil
}

// CombatRecord joins a soldier's attendance with operations, newest first.
func (s *InMemoryStore) CombatRecord(_ context.Context, soldierID domain.SoldierID) ([]*models.CombatEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CombatEntry
	for _, row := range s.attendance {
		if row.SoldierID != soldierID {
			continue
		}
		op, ok := s.operations[row.OperationID]
		if !ok {
			continue
		}
		out = append(out, &models.CombatEntry{
			Operation:  op,
			Status:     row.Status,
			RoleHeld:   row.RoleHeld,
			Notes:      row.Notes,
			RecordedAt: row.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}
