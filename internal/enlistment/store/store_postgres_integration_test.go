//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"roster/internal/enlistment/models"
	"roster/internal/enlistment/store"
	soldiermodels "roster/internal/soldier/models"
	soldierstore "roster/internal/soldier/store"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
	"roster/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg       *containers.PostgresContainer
	store    *store.PostgresStore
	soldiers *soldierstore.PostgresStore
	ctx      context.Context
	now      time.Time
	reviewer domain.UserID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.pg.DB)
	s.soldiers = soldierstore.NewPostgres(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.now = time.Now().UTC().Truncate(time.Microsecond)
	s.reviewer = domain.UserID(uuid.New())
	s.Require().NoError(s.pg.TruncateTables(s.ctx,
		"operation_attendance", "service_records", "soldier_qualifications", "soldier_awards",
		"disciplinary_actions", "enlistments", "soldiers"))
}

func (s *PostgresStoreSuite) submit(name string, at time.Time) *models.Enlistment {
	e, err := models.NewEnlistment(models.Submission{
		DisplayName:     name,
		DiscordUsername: name + "#0001",
		Age:             24,
		Timezone:        "UTC",
		WhyJoin:         "Looking for a serious unit",
	}, at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, e))
	return e
}

func (s *PostgresStoreSuite) TestRoundTripAndTransition() {
	e := s.submit("Vasquez", s.now)

	found, err := s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(e.DisplayName, found.DisplayName)
	s.Equal(e.DiscordUsername, found.DiscordUsername)
	s.Equal(models.StatusPending, found.Status)
	s.Nil(found.ReviewedAt)
	s.Nil(found.SoldierID)

	s.Require().NoError(s.store.Transition(s.ctx, e.ID, models.StatusPending, models.StatusReviewing, &s.reviewer, s.now))
	s.ErrorIs(s.store.Transition(s.ctx, e.ID, models.StatusPending, models.StatusReviewing, &s.reviewer, s.now), sentinel.ErrConflict)
	s.ErrorIs(s.store.Transition(s.ctx, domain.EnlistmentID(uuid.New()), models.StatusPending, models.StatusReviewing, nil, s.now), sentinel.ErrNotFound)

	found, err = s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusReviewing, found.Status)
	s.Require().NotNil(found.ReviewedBy)
	s.Equal(s.reviewer, *found.ReviewedBy)
}

func (s *PostgresStoreSuite) TestMarkAcceptedOnce() {
	e := s.submit("Vasquez", s.now)
	s.Require().NoError(s.store.Transition(s.ctx, e.ID, models.StatusPending, models.StatusInterviewScheduled, &s.reviewer, s.now))

	soldier, err := soldiermodels.NewSoldier(e.DisplayName, soldierstore.RankRecruit, nil, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.soldiers.Create(s.ctx, soldier))

	s.Require().NoError(s.store.MarkAccepted(s.ctx, e.ID, models.StatusInterviewScheduled, soldier.ID, &s.reviewer, s.now))
	s.ErrorIs(s.store.MarkAccepted(s.ctx, e.ID, models.StatusInterviewScheduled, soldier.ID, &s.reviewer, s.now), sentinel.ErrConflict)

	later := s.now.Add(time.Hour)
	s.Require().NoError(s.store.EnsureAccepted(s.ctx, e.ID, nil, later))
	found, err := s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusAccepted, found.Status)
	s.Equal(soldier.ID, *found.SoldierID)
	s.Equal(s.now, found.ReviewedAt.UTC())
}

func (s *PostgresStoreSuite) TestListAndCount() {
	older := s.submit("Older", s.now.Add(-2*time.Hour))
	s.submit("Newer", s.now.Add(-time.Hour))
	rejected := s.submit("Rejected", s.now.Add(-3*time.Hour))
	s.Require().NoError(s.store.Transition(s.ctx, rejected.ID, models.StatusPending, models.StatusRejected, &s.reviewer, s.now))

	open, err := s.store.List(s.ctx, models.OpenStatuses)
	s.Require().NoError(err)
	s.Require().Len(open, 2)
	s.Equal(older.ID, open[0].ID)

	all, err := s.store.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 3)

	counts, err := s.store.CountByStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, counts[models.StatusPending])
	s.Equal(1, counts[models.StatusRejected])
}
