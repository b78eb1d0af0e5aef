package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"roster/internal/servicerecord/models"
	"roster/pkg/domain"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	base  time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
	s.base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) appendEntry(soldierID domain.SoldierID, action models.ActionType, vis models.Visibility, offset time.Duration) *models.Entry {
	entry, err := models.NewEntry(soldierID, action, map[string]string{}, nil, vis, s.base.Add(offset))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Append(s.ctx, entry))
	return entry
}

func (s *InMemoryStoreSuite) TestListBySoldier() {
	soldier := domain.SoldierID(uuid.New())
	other := domain.SoldierID(uuid.New())

	late := s.appendEntry(soldier, models.ActionPromotion, models.VisibilityPublic, 2*time.Hour)
	early := s.appendEntry(soldier, models.ActionEnlistment, models.VisibilityPublic, time.Hour)
	hidden := s.appendEntry(soldier, models.ActionNote, models.VisibilityLeadershipOnly, 3*time.Hour)
	s.appendEntry(other, models.ActionNote, models.VisibilityPublic, 0)

	s.Run("ordered ascending by occurred_at", func() {
		got, err := s.store.ListBySoldier(s.ctx, soldier, []models.Visibility{models.VisibilityPublic})
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(early.ID, got[0].ID)
		s.Equal(late.ID, got[1].ID)
	})

	s.Run("leadership entries included when allowed", func() {
		got, err := s.store.ListBySoldier(s.ctx, soldier, []models.Visibility{models.VisibilityPublic, models.VisibilityLeadershipOnly})
		s.Require().NoError(err)
		s.Require().Len(got, 3)
		s.Equal(hidden.ID, got[2].ID)
	})
}

func (s *InMemoryStoreSuite) TestListRecent() {
	soldier := domain.SoldierID(uuid.New())
	for i := 0; i < 12; i++ {
		s.appendEntry(soldier, models.ActionNote, models.VisibilityPublic, time.Duration(i)*time.Minute)
	}

	got, err := s.store.ListRecent(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 10)
	s.Equal(s.base.Add(11*time.Minute), got[0].OccurredAt)
	s.True(got[0].OccurredAt.After(got[9].OccurredAt))
}
