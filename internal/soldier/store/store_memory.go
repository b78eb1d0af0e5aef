package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"roster/internal/soldier/models"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// InMemoryStore holds soldiers, reference data and grants for tests and local runs.
type InMemoryStore struct {
	mu             sync.RWMutex
	soldiers       map[domain.SoldierID]models.Soldier
	ranks          map[domain.RankID]models.Rank
	units          map[domain.UnitID]models.Unit
	qualifications map[domain.QualificationID]models.Qualification
	awards         map[domain.AwardID]models.Award
	heldQuals      []models.SoldierQualification
	heldAwards     []models.SoldierAward
	discipline     []models.DisciplinaryAction
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		soldiers:       make(map[domain.SoldierID]models.Soldier),
		ranks:          make(map[domain.RankID]models.Rank),
		units:          make(map[domain.UnitID]models.Unit),
		qualifications: make(map[domain.QualificationID]models.Qualification),
		awards:         make(map[domain.AwardID]models.Award),
	}
}

// -----------------------------------------------------------------------------
// Soldiers
// -----------------------------------------------------------------------------

func (s *InMemoryStore) Create(_ context.Context, soldier *models.Soldier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.soldiers[soldier.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	for _, existing := range s.soldiers {
		if soldier.UserID != nil && existing.UserID != nil && *existing.UserID == *soldier.UserID {
			return sentinel.ErrAlreadyUsed
		}
		if soldier.EnlistmentID != nil && existing.EnlistmentID != nil && *existing.EnlistmentID == *soldier.EnlistmentID {
			return sentinel.ErrAlreadyUsed
		}
	}
	s.soldiers[soldier.ID] = *soldier
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.SoldierID) (*models.Soldier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if soldier, ok := s.soldiers[id]; ok {
		return &soldier, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID domain.UserID) (*models.Soldier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, soldier := range s.soldiers {
		if soldier.IsLinkedTo(userID) {
			return &soldier, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// FindByEnlistment returns the soldier created from an enlistment.
func (s *InMemoryStore) FindByEnlistment(_ context.Context, enlistmentID domain.EnlistmentID) (*models.Soldier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, soldier := range s.soldiers {
		if soldier.EnlistmentID != nil && *soldier.EnlistmentID == enlistmentID {
			return &soldier, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// UpdateRank sets the rank only if it still equals from.
func (s *InMemoryStore) UpdateRank(_ context.Context, id domain.SoldierID, from, to domain.RankID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	soldier, ok := s.soldiers[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if soldier.RankID != from {
		return sentinel.ErrConflict
	}
	soldier.RankID = to
	soldier.UpdatedAt = at
	s.soldiers[id] = soldier
	return nil
}

// UpdateUnit sets the unit only if the current assignment still equals from.
func (s *InMemoryStore) UpdateUnit(_ context.Context, id domain.SoldierID, from *domain.UnitID, to domain.UnitID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	soldier, ok := s.soldiers[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if !sameUnit(soldier.UnitID, from) {
		return sentinel.ErrConflict
	}
	soldier.UnitID = &to
	soldier.UpdatedAt = at
	s.soldiers[id] = soldier
	return nil
}

// UpdateStatus sets the status only if it still equals from.
func (s *InMemoryStore) UpdateStatus(_ context.Context, id domain.SoldierID, from, to models.Status, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	soldier, ok := s.soldiers[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if soldier.Status != from {
		return sentinel.ErrConflict
	}
	soldier.Status = to
	soldier.UpdatedAt = at
	s.soldiers[id] = soldier
	return nil
}

// ListByStatus returns soldiers with status, most senior rank first, then by name.
func (s *InMemoryStore) ListByStatus(_ context.Context, status models.Status) ([]*models.Soldier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Soldier
	for _, soldier := range s.soldiers {
		if soldier.Status == status {
			out = append(out, &soldier)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := s.ranks[out[i].RankID].SortOrder, s.ranks[out[j].RankID].SortOrder
		if ri != rj {
			return ri > rj
		}
		return out[i].DisplayName < out[j].DisplayName
	})
	return out, nil
}

func (s *InMemoryStore) CountByStatus(_ context.Context) (map[models.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, soldier := range s.soldiers {
		counts[soldier.Status]++
	}
	return counts, nil
}

func (s *InMemoryStore) DisplayNames(_ context.Context, ids []domain.SoldierID) (map[domain.SoldierID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.SoldierID]string, len(ids))
	for _, id := range ids {
		if soldier, ok := s.soldiers[id]; ok {
			out[id] = soldier.DisplayName
		}
	}
	return out, nil
}

func sameUnit(a, b *domain.UnitID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// -----------------------------------------------------------------------------
// Reference data
// -----------------------------------------------------------------------------

func (s *InMemoryStore) SaveRank(_ context.Context, rank *models.Rank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranks[rank.ID] = *rank
	return nil
}

func (s *InMemoryStore) SaveUnit(_ context.Context, unit *models.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[unit.ID] = *unit
	return nil
}

func (s *InMemoryStore) SaveQualification(_ context.Context, q *models.Qualification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qualifications[q.ID] = *q
	return nil
}

func (s *InMemoryStore) SaveAward(_ context.Context, a *models.Award) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awards[a.ID] = *a
	return nil
}

func (s *InMemoryStore) FindRank(_ context.Context, id domain.RankID) (*models.Rank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rank, ok := s.ranks[id]; ok {
		return &rank, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindUnit(_ context.Context, id domain.UnitID) (*models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if unit, ok := s.units[id]; ok {
		return &unit, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindQualification(_ context.Context, id domain.QualificationID) (*models.Qualification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if q, ok := s.qualifications[id]; ok {
		return &q, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindAward(_ context.Context, id domain.AwardID) (*models.Award, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.awards[id]; ok {
		return &a, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListUnits(_ context.Context) ([]*models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Unit, 0, len(s.units))
	for _, unit := range s.units {
		out = append(out, &unit)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) ListRanks(_ context.Context) ([]*models.Rank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Rank, 0, len(s.ranks))
	for _, rank := range s.ranks {
		out = append(out, &rank)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// -----------------------------------------------------------------------------
// Grants
// -----------------------------------------------------------------------------

func (s *InMemoryStore) GrantQualification(_ context.Context, grant *models.SoldierQualification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, held := range s.heldQuals {
		if held.SoldierID == grant.SoldierID && held.QualificationID == grant.QualificationID {
			return sentinel.ErrAlreadyUsed
		}
	}
	s.heldQuals = append(s.heldQuals, *grant)
	return nil
}

func (s *InMemoryStore) GrantAward(_ context.Context, grant *models.SoldierAward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heldAwards = append(s.heldAwards, *grant)
	return nil
}

func (s *InMemoryStore) RecordDiscipline(_ context.Context, action *models.DisciplinaryAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discipline = append(s.discipline, *action)
	return nil
}

func (s *InMemoryStore) ListQualifications(_ context.Context, soldierID domain.SoldierID) ([]*models.HeldQualification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.HeldQualification
	for _, held := range s.heldQuals {
		if held.SoldierID != soldierID {
			continue
		}
		out = append(out, &models.HeldQualification{
			Qualification: s.qualifications[held.QualificationID],
			AwardedAt:     held.AwardedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AwardedAt.Before(out[j].AwardedAt) })
	return out, nil
}

func (s *InMemoryStore) ListAwards(_ context.Context, soldierID domain.SoldierID) ([]*models.HeldAward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.HeldAward
	for _, held := range s.heldAwards {
		if held.SoldierID != soldierID {
			continue
		}
		out = append(out, &models.HeldAward{
			Award:     s.awards[held.AwardID],
			Citation:  held.Citation,
			AwardedAt: held.AwardedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AwardedAt.Before(out[j].AwardedAt) })
	return out, nil
}

// ListDiscipline returns a soldier's disciplinary actions, oldest first.
func (s *InMemoryStore) ListDiscipline(_ context.Context, soldierID domain.SoldierID) ([]*models.DisciplinaryAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.DisciplinaryAction
	for _, action := range s.discipline {
		if action.SoldierID == soldierID {
			out = append(out, &action)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.Before(out[j].IssuedAt) })
	return out, nil
}
