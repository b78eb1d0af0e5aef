//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"roster/internal/platform/postgres"
	"roster/internal/soldier/models"
	"roster/internal/soldier/store"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
	"roster/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.PostgresStore
	ctx   context.Context
	now   time.Time
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
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.now = time.Now().UTC().Truncate(time.Microsecond)
	s.Require().NoError(s.pg.TruncateTables(s.ctx,
		"operation_attendance", "service_records", "soldier_qualifications", "soldier_awards",
		"disciplinary_actions", "enlistments", "soldiers"))
}

func (s *PostgresStoreSuite) createSoldier(name string, rank domain.RankID) *models.Soldier {
	unit := store.UnitFirstPlatoon
	soldier, err := models.NewSoldier(name, rank, &unit, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, soldier))
	return soldier
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	userID := domain.UserID(uuid.New())
	discord := "reyes#0001"
	soldier, err := models.NewSoldier("Reyes", store.RankPrivate, nil, s.now)
	s.Require().NoError(err)
	soldier.UserID = &userID
	soldier.DiscordID = &discord
	s.Require().NoError(s.store.Create(s.ctx, soldier))

	got, err := s.store.FindByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(soldier.ID, got.ID)
	s.Nil(got.UnitID)
	s.Require().NotNil(got.DiscordID)
	s.Equal(discord, *got.DiscordID)
	s.True(s.now.Equal(got.JoinedAt))

	dup, err := models.NewSoldier("Reyes again", store.RankPrivate, nil, s.now)
	s.Require().NoError(err)
	dup.UserID = &userID
	s.ErrorIs(s.store.Create(s.ctx, dup), sentinel.ErrAlreadyUsed)
}

func (s *PostgresStoreSuite) TestEnlistmentBackReference() {
	enlistmentID := domain.EnlistmentID(uuid.New())
	_, err := s.pg.DB.ExecContext(s.ctx, `
		INSERT INTO enlistments (id, display_name, age, status, submitted_at)
		VALUES ($1, 'Vasquez', 21, 'interview_scheduled', $2)
	`, uuid.UUID(enlistmentID), s.now)
	s.Require().NoError(err)

	soldier, err := models.NewSoldier("Vasquez", store.RankRecruit, nil, s.now)
	s.Require().NoError(err)
	soldier.EnlistmentID = &enlistmentID
	s.Require().NoError(s.store.Create(s.ctx, soldier))

	got, err := s.store.FindByEnlistment(s.ctx, enlistmentID)
	s.Require().NoError(err)
	s.Equal(soldier.ID, got.ID)
	s.Equal(&enlistmentID, got.EnlistmentID)

	dup, err := models.NewSoldier("Vasquez", store.RankRecruit, nil, s.now)
	s.Require().NoError(err)
	dup.EnlistmentID = &enlistmentID
	s.ErrorIs(s.store.Create(s.ctx, dup), sentinel.ErrAlreadyUsed)
}

func (s *PostgresStoreSuite) TestCompareAndSet() {
	soldier := s.createSoldier("Miller", store.RankPrivate)

	s.Require().NoError(s.store.UpdateRank(s.ctx, soldier.ID, store.RankPrivate, store.RankCorporal, s.now))
	s.ErrorIs(s.store.UpdateRank(s.ctx, soldier.ID, store.RankPrivate, store.RankSergeant, s.now), sentinel.ErrConflict)
	s.ErrorIs(s.store.UpdateRank(s.ctx, domain.SoldierID(uuid.New()), store.RankPrivate, store.RankSergeant, s.now), sentinel.ErrNotFound)

	from := store.UnitFirstPlatoon
	s.Require().NoError(s.store.UpdateUnit(s.ctx, soldier.ID, &from, store.UnitSecondPlatoon, s.now))
	s.ErrorIs(s.store.UpdateUnit(s.ctx, soldier.ID, nil, store.UnitHeadquarters, s.now), sentinel.ErrConflict)

	s.Require().NoError(s.store.UpdateStatus(s.ctx, soldier.ID, models.StatusActive, models.StatusLOA, s.now))
	got, err := s.store.FindByID(s.ctx, soldier.ID)
	s.Require().NoError(err)
	s.Equal(store.RankCorporal, got.RankID)
	s.Equal(models.StatusLOA, got.Status)
}

func (s *PostgresStoreSuite) TestCreateJoinsTransaction() {
	soldier, err := models.NewSoldier("Rolled Back", store.RankRecruit, nil, s.now)
	s.Require().NoError(err)

	err = postgres.RunInTx(s.ctx, s.pg.DB, func(ctx context.Context) error {
		if err := s.store.Create(ctx, soldier); err != nil {
			return err
		}
		return sentinel.ErrConflict
	})
	s.ErrorIs(err, sentinel.ErrConflict)

	_, err = s.store.FindByID(s.ctx, soldier.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListAndNames() {
	a := s.createSoldier("Alpha", store.RankPrivate)
	s.createSoldier("Bravo", store.RankCaptain)

	list, err := s.store.ListByStatus(s.ctx, models.StatusActive)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Bravo", list[0].DisplayName)

	names, err := s.store.DisplayNames(s.ctx, []domain.SoldierID{a.ID})
	s.Require().NoError(err)
	s.Equal("Alpha", names[a.ID])

	counts, err := s.store.CountByStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, counts[models.StatusActive])
}

func (s *PostgresStoreSuite) TestGrants() {
	soldier := s.createSoldier("Alpha", store.RankPrivate)

	grant := &models.SoldierQualification{ID: uuid.New(), SoldierID: soldier.ID, QualificationID: store.QualificationCLS, AwardedAt: s.now}
	s.Require().NoError(s.store.GrantQualification(s.ctx, grant))
	grant.ID = uuid.New()
	s.ErrorIs(s.store.GrantQualification(s.ctx, grant), sentinel.ErrAlreadyUsed)

	s.Require().NoError(s.store.GrantAward(s.ctx, &models.SoldierAward{
		ID: uuid.New(), SoldierID: soldier.ID, AwardID: store.AwardAchievement, Citation: "Op Anvil", AwardedAt: s.now,
	}))

	quals, err := s.store.ListQualifications(s.ctx, soldier.ID)
	s.Require().NoError(err)
	s.Require().Len(quals, 1)
	s.Equal("CLS", quals[0].Qualification.Abbreviation)

	awards, err := s.store.ListAwards(s.ctx, soldier.ID)
	s.Require().NoError(err)
	s.Require().Len(awards, 1)
	s.Equal("Op Anvil", awards[0].Citation)
}
