package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"roster/internal/enlistment/models"
	"roster/internal/enlistment/service/mocks"
	"roster/internal/enlistment/store"
	"roster/internal/platform/lock"
	srmodels "roster/internal/servicerecord/models"
	servicerecord "roster/internal/servicerecord/service"
	srstore "roster/internal/servicerecord/store"
	soldiermodels "roster/internal/soldier/models"
	soldierservice "roster/internal/soldier/service"
	soldierstore "roster/internal/soldier/store"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	logger   *slog.Logger
	store    *store.InMemoryStore
	soldiers *soldierstore.InMemoryStore
	records  *srstore.InMemoryStore
	locker   *lock.MemoryLocker
	service  *Service

	command domain.Actor
	nco     domain.Actor
	admin   domain.Actor
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.store = store.NewInMemoryStore()
	s.soldiers = soldierstore.NewInMemoryStore()
	soldierstore.SeedReferenceData(s.soldiers)
	s.records = srstore.NewInMemoryStore()
	s.locker = lock.NewMemory()

	ledger := servicerecord.New(s.records, servicerecord.WithLogger(s.logger))
	personnel := soldierservice.New(s.soldiers, ledger, soldierservice.WithLogger(s.logger))
	s.service = New(s.store, s.soldiers, ledger,
		WithLogger(s.logger),
		WithLocker(s.locker, time.Minute),
		WithPerformerNamer(personnel),
	)

	s.command = domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleCommand}
	s.nco = domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleNCO}
	s.admin = domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}

	officer, err := soldiermodels.NewSoldier("Cpt. Hale", soldierstore.RankCaptain, nil, s.now.Add(-24*time.Hour))
	s.Require().NoError(err)
	officer.UserID = &s.command.ID
	s.Require().NoError(s.soldiers.Create(s.ctx, officer))
}

func (s *ServiceSuite) submit(name string) *models.Enlistment {
	e, err := s.service.Submit(s.ctx, models.Submission{
		DisplayName:     name,
		DiscordUsername: name + "#1234",
		Age:             21,
		Timezone:        "UTC",
		ArmaExperience:  "Two years of milsim",
		WhyJoin:         "Structured operations",
	})
	s.Require().NoError(err)
	return e
}

func (s *ServiceSuite) advanceTo(id domain.EnlistmentID, path ...models.Status) {
	for _, target := range path {
		_, err := s.service.Advance(s.ctx, s.command, id, target)
		s.Require().NoError(err)
	}
}

func (s *ServiceSuite) activeSoldiers() []*soldiermodels.Soldier {
	active, err := s.soldiers.ListByStatus(s.ctx, soldiermodels.StatusActive)
	s.Require().NoError(err)
	return active
}

func (s *ServiceSuite) TestSubmit() {
	e := s.submit("Vasquez")
	s.Equal(models.StatusPending, e.Status)
	s.Equal(s.now, e.SubmittedAt)

	_, err := s.service.Submit(s.ctx, models.Submission{Age: 20})
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func (s *ServiceSuite) TestAdvance() {
	s.Run("follows the transition table", func() {
		e := s.submit("Vasquez")
		got, err := s.service.Advance(s.ctx, s.command, e.ID, models.StatusReviewing)
		s.Require().NoError(err)
		s.Equal(models.StatusReviewing, got.Status)
		s.Equal(&s.command.ID, got.ReviewedBy)
		s.Equal(s.now, *got.ReviewedAt)

		stored, err := s.store.FindByID(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusReviewing, stored.Status)
	})

	s.Run("invalid transition names both statuses", func() {
		e := s.submit("Hudson")
		_, err := s.service.Advance(s.ctx, s.command, e.ID, models.StatusInterviewScheduled)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
		s.Contains(err.Error(), "pending")
		s.Contains(err.Error(), "interview_scheduled")
	})

	s.Run("accepted is only reachable through accept", func() {
		e := s.submit("Hicks")
		_, err := s.service.Advance(s.ctx, s.command, e.ID, models.StatusAccepted)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition), "pending to accepted is not an edge")

		_, err = s.service.Advance(s.ctx, s.command, domain.EnlistmentID(uuid.New()), models.StatusAccepted)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
		_, err = s.service.Advance(s.ctx, s.command, e.ID, models.StatusAccepted)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "a legal accept still needs a rank")

		stored, err := s.store.FindByID(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusInterviewScheduled, stored.Status)
	})

	s.Run("nco cannot decide", func() {
		e := s.submit("Apone")
		_, err := s.service.Advance(s.ctx, s.nco, e.ID, models.StatusReviewing)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		stored, err := s.store.FindByID(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusPending, stored.Status)
	})

	s.Run("anonymous actor is forbidden", func() {
		e := s.submit("Drake")
		_, err := s.service.Advance(s.ctx, domain.Actor{}, e.ID, models.StatusReviewing)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("missing application", func() {
		_, err := s.service.Advance(s.ctx, s.command, domain.EnlistmentID(uuid.New()), models.StatusReviewing)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestReject() {
	e := s.submit("Vasquez")
	_, err := s.service.Reject(s.ctx, s.command, e.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition), "pending cannot be rejected directly")

	s.advanceTo(e.ID, models.StatusReviewing)
	got, err := s.service.Reject(s.ctx, s.admin, e.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusRejected, got.Status)

	_, err = s.service.Advance(s.ctx, s.command, e.ID, models.StatusReviewing)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition), "rejected is terminal")
}

func (s *ServiceSuite) TestAcceptEndToEnd() {
	e := s.submit("Vasquez")
	s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
	unit := soldierstore.UnitSecondPlatoon

	result, err := s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{
		EnlistmentID: e.ID,
		RankID:       soldierstore.RankRecruit,
		UnitID:       &unit,
	})
	s.Require().NoError(err)
	s.True(result.Converted)

	stored, err := s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusAccepted, stored.Status)
	s.Require().NotNil(stored.SoldierID)
	s.Equal(result.SoldierID, *stored.SoldierID)
	s.Equal(&s.command.ID, stored.ReviewedBy)

	soldier, err := s.soldiers.FindByID(s.ctx, result.SoldierID)
	s.Require().NoError(err)
	s.Equal("Vasquez", soldier.DisplayName)
	s.Equal(soldiermodels.StatusActive, soldier.Status)
	s.Equal(soldierstore.RankRecruit, soldier.RankID)
	s.Equal(&unit, soldier.UnitID)
	s.Nil(soldier.DiscordID, "discord username is never copied into discord_id")
	s.Equal(&e.ID, soldier.EnlistmentID)
	s.Len(s.activeSoldiers(), 2)

	entries, err := s.records.ListBySoldier(s.ctx, result.SoldierID, []srmodels.Visibility{srmodels.VisibilityPublic})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(srmodels.ActionEnlistment, entries[0].ActionType)
	s.Equal(&s.command.ID, entries[0].PerformedBy)
	var payload srmodels.EnlistmentPayload
	s.Require().NoError(entries[0].DecodePayload(&payload))
	s.Equal(e.ID.String(), payload.EnlistmentID)
	s.Equal("Vasquez", payload.DisplayName)
	s.Equal("Cpt. Hale", payload.PerformedByName)
}

func (s *ServiceSuite) TestAcceptTwiceCreatesOneSoldier() {
	e := s.submit("Vasquez")
	s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
	cmd := AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit}

	first, err := s.service.AcceptApplication(s.ctx, s.command, cmd)
	s.Require().NoError(err)

	later := requestcontext.WithTime(s.ctx, s.now.Add(time.Hour))
	second, err := s.service.AcceptApplication(later, s.admin, cmd)
	s.Require().NoError(err)
	s.False(second.Converted)
	s.Equal(first.SoldierID, second.SoldierID)
	s.Len(s.activeSoldiers(), 2)

	stored, err := s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(s.now, *stored.ReviewedAt, "repeat accept keeps the original review time")
	s.Equal(&s.command.ID, stored.ReviewedBy)

	entries, err := s.records.ListBySoldier(s.ctx, first.SoldierID, []srmodels.Visibility{srmodels.VisibilityPublic})
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *ServiceSuite) TestAcceptRules() {
	s.Run("pending cannot be accepted", func() {
		e := s.submit("Vasquez")
		_, err := s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
		s.Len(s.activeSoldiers(), 1)
	})

	s.Run("nco is forbidden", func() {
		e := s.submit("Hudson")
		s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
		_, err := s.service.AcceptApplication(s.ctx, s.nco, AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("rank is required and must exist", func() {
		e := s.submit("Hicks")
		s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
		_, err := s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{EnlistmentID: e.ID})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{EnlistmentID: e.ID, RankID: domain.RankID(uuid.New())})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		unit := domain.UnitID(uuid.New())
		_, err = s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit, UnitID: &unit})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Len(s.activeSoldiers(), 1)
	})

	s.Run("performer without a soldier record is Unknown", func() {
		e := s.submit("Apone")
		s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
		result, err := s.service.AcceptApplication(s.ctx, s.admin, AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit})
		s.Require().NoError(err)

		entries, err := s.records.ListBySoldier(s.ctx, result.SoldierID, []srmodels.Visibility{srmodels.VisibilityPublic})
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		var payload srmodels.EnlistmentPayload
		s.Require().NoError(entries[0].DecodePayload(&payload))
		s.Equal("Unknown", payload.PerformedByName)
	})
}

func (s *ServiceSuite) TestAcceptWhileLocked() {
	e := s.submit("Vasquez")
	s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)

	lease, err := s.locker.Acquire(s.ctx, "enlistment:decision:"+e.ID.String(), time.Minute)
	s.Require().NoError(err)

	_, err = s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Len(s.activeSoldiers(), 1)

	s.Require().NoError(lease.Release(s.ctx))
	_, err = s.service.AcceptApplication(s.ctx, s.command, AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit})
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestConcurrentAcceptsCreateOneSoldier() {
	e := s.submit("Vasquez")
	s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
	cmd := AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.AcceptApplication(s.ctx, s.command, cmd)
			if err != nil && !dErrors.HasCode(err, dErrors.CodeConflict) {
				s.Failf("unexpected error", "%v", err)
			}
		}()
	}
	wg.Wait()
	s.Len(s.activeSoldiers(), 2)
}

// failingAccepts fails the next MarkAccepted calls after the soldier insert.
type failingAccepts struct {
	*store.InMemoryStore
	failures int
}

func (f *failingAccepts) MarkAccepted(ctx context.Context, id domain.EnlistmentID, from models.Status, soldierID domain.SoldierID, reviewer *domain.UserID, at time.Time) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("connection reset")
	}
	return f.InMemoryStore.MarkAccepted(ctx, id, from, soldierID, reviewer, at)
}

func (s *ServiceSuite) TestRetryAfterEnlistmentUpdateFailure() {
	flaky := &failingAccepts{InMemoryStore: s.store, failures: 1}
	ledger := servicerecord.New(s.records, servicerecord.WithLogger(s.logger))
	svc := New(flaky, s.soldiers, ledger, WithLogger(s.logger), WithLocker(s.locker, time.Minute))

	e := s.submit("Vasquez")
	s.advanceTo(e.ID, models.StatusReviewing, models.StatusInterviewScheduled)
	cmd := AcceptCommand{EnlistmentID: e.ID, RankID: soldierstore.RankRecruit}

	_, err := svc.AcceptApplication(s.ctx, s.command, cmd)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Contains(err.Error(), "retry")
	s.Len(s.activeSoldiers(), 2)

	stored, err := s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusInterviewScheduled, stored.Status)
	s.False(stored.IsConverted())

	result, err := svc.AcceptApplication(s.ctx, s.command, cmd)
	s.Require().NoError(err)
	s.True(result.Converted)
	s.Len(s.activeSoldiers(), 2, "retry reuses the soldier from the failed attempt")

	created, err := s.soldiers.FindByEnlistment(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, result.SoldierID)

	stored, err = s.store.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusAccepted, stored.Status)
	s.Equal(&created.ID, stored.SoldierID)

	entries, err := s.records.ListBySoldier(s.ctx, created.ID, []srmodels.Visibility{srmodels.VisibilityPublic})
	s.Require().NoError(err)
	s.Len(entries, 1, "one enlistment record across both attempts")
}

type AcceptFailureSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	now      time.Time
	store    *mocks.MockStore
	soldiers *mocks.MockSoldierWriter
	ledger   *mocks.MockLedger
	service  *Service
	actor    domain.Actor
	pending  *models.Enlistment
}

func TestAcceptFailureSuite(t *testing.T) {
	suite.Run(t, new(AcceptFailureSuite))
}

func (s *AcceptFailureSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.now = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = mocks.NewMockStore(s.ctrl)
	s.soldiers = mocks.NewMockSoldierWriter(s.ctrl)
	s.ledger = mocks.NewMockLedger(s.ctrl)
	s.service = New(s.store, s.soldiers, s.ledger, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.actor = domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleCommand}

	e, err := models.NewEnlistment(models.Submission{DisplayName: "Vasquez", Age: 21}, s.now.Add(-time.Hour))
	s.Require().NoError(err)
	e.Status = models.StatusInterviewScheduled
	s.pending = e
}

func (s *AcceptFailureSuite) expectReferences() {
	s.soldiers.EXPECT().FindRank(gomock.Any(), soldierstore.RankRecruit).Return(&soldiermodels.Rank{ID: soldierstore.RankRecruit}, nil)
	s.soldiers.EXPECT().FindByEnlistment(gomock.Any(), s.pending.ID).Return(nil, sentinel.ErrNotFound)
}

func (s *AcceptFailureSuite) TestLedgerFailureIsNotFatal() {
	s.store.EXPECT().FindByID(gomock.Any(), s.pending.ID).Return(s.pending, nil)
	s.expectReferences()
	s.soldiers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(domain.RecordID{}, errors.New("ledger down"))
	s.store.EXPECT().MarkAccepted(gomock.Any(), s.pending.ID, models.StatusInterviewScheduled, gomock.Any(), &s.actor.ID, s.now).Return(nil)

	result, err := s.service.AcceptApplication(s.ctx, s.actor, AcceptCommand{EnlistmentID: s.pending.ID, RankID: soldierstore.RankRecruit})
	s.Require().NoError(err)
	s.True(result.Converted)
	s.Equal(models.StatusAccepted, result.Enlistment.Status)
}

func (s *AcceptFailureSuite) TestSoldierCreateFailureIsSurfaced() {
	s.store.EXPECT().FindByID(gomock.Any(), s.pending.ID).Return(s.pending, nil)
	s.expectReferences()
	s.soldiers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := s.service.AcceptApplication(s.ctx, s.actor, AcceptCommand{EnlistmentID: s.pending.ID, RankID: soldierstore.RankRecruit})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *AcceptFailureSuite) TestSoldierLookupFailureIsSurfaced() {
	s.store.EXPECT().FindByID(gomock.Any(), s.pending.ID).Return(s.pending, nil)
	s.soldiers.EXPECT().FindRank(gomock.Any(), soldierstore.RankRecruit).Return(&soldiermodels.Rank{ID: soldierstore.RankRecruit}, nil)
	s.soldiers.EXPECT().FindByEnlistment(gomock.Any(), s.pending.ID).Return(nil, errors.New("connection reset"))

	_, err := s.service.AcceptApplication(s.ctx, s.actor, AcceptCommand{EnlistmentID: s.pending.ID, RankID: soldierstore.RankRecruit})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *AcceptFailureSuite) TestDuplicateSoldierInsertIsConflict() {
	s.store.EXPECT().FindByID(gomock.Any(), s.pending.ID).Return(s.pending, nil)
	s.expectReferences()
	s.soldiers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, soldier *soldiermodels.Soldier) error {
		s.Equal(&s.pending.ID, soldier.EnlistmentID)
		return sentinel.ErrAlreadyUsed
	})

	_, err := s.service.AcceptApplication(s.ctx, s.actor, AcceptCommand{EnlistmentID: s.pending.ID, RankID: soldierstore.RankRecruit})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
