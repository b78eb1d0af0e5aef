// Package service runs enlistment review: public submission, the review state
// machine, and the conversion of an accepted application into a soldier.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"roster/internal/enlistment/metrics"
	"roster/internal/enlistment/models"
	"roster/internal/platform/lock"
	srmodels "roster/internal/servicerecord/models"
	soldiermodels "roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,SoldierWriter,Ledger,PerformerNamer

const (
	// ReviewRole is required to view applications.
	ReviewRole = domain.RoleNCO
	// DecisionRole is required to move, accept or reject applications.
	DecisionRole = domain.RoleCommand

	defaultLockTTL = 30 * time.Second
	unknownName    = "Unknown"
)

var tracer = otel.Tracer("roster/internal/enlistment/service")

// Store persists enlistments. Status writes are compare-and-set on the persisted status.
type Store interface {
	Create(ctx context.Context, e *models.Enlistment) error
	FindByID(ctx context.Context, id domain.EnlistmentID) (*models.Enlistment, error)
	Transition(ctx context.Context, id domain.EnlistmentID, from, to models.Status, reviewer *domain.UserID, at time.Time) error
	MarkAccepted(ctx context.Context, id domain.EnlistmentID, from models.Status, soldierID domain.SoldierID, reviewer *domain.UserID, at time.Time) error
	EnsureAccepted(ctx context.Context, id domain.EnlistmentID, reviewer *domain.UserID, at time.Time) error
	List(ctx context.Context, statuses []models.Status) ([]*models.Enlistment, error)
	CountByStatus(ctx context.Context) (map[models.Status]int, error)
}

// SoldierWriter creates the soldier for an accepted application.
type SoldierWriter interface {
	Create(ctx context.Context, soldier *soldiermodels.Soldier) error
	FindByEnlistment(ctx context.Context, enlistmentID domain.EnlistmentID) (*soldiermodels.Soldier, error)
	FindRank(ctx context.Context, id domain.RankID) (*soldiermodels.Rank, error)
	FindUnit(ctx context.Context, id domain.UnitID) (*soldiermodels.Unit, error)
}

// Ledger receives the enlistment service record entry.
type Ledger interface {
	Append(ctx context.Context, entry *srmodels.Entry) (domain.RecordID, error)
}

// PerformerNamer resolves the acting user's own soldier name.
type PerformerNamer interface {
	PerformerName(ctx context.Context, actor domain.Actor) string
}

// AcceptCommand converts an application into a soldier.
type AcceptCommand struct {
	EnlistmentID domain.EnlistmentID
	RankID       domain.RankID
	UnitID       *domain.UnitID
}

// AcceptResult reports the outcome of an acceptance. Converted is false when the
// application was already accepted with a soldier and the call only repaired
// its status.
type AcceptResult struct {
	Enlistment *models.Enlistment
	SoldierID  domain.SoldierID
	Converted  bool
}

type Service struct {
	store      Store
	soldiers   SoldierWriter
	ledger     Ledger
	performers PerformerNamer
	locker     lock.Locker
	lockTTL    time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLocker serializes decisions on one application across replicas.
func WithLocker(locker lock.Locker, ttl time.Duration) Option {
	return func(s *Service) {
		s.locker = locker
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithPerformerNamer names the acting user in the enlistment service record.
func WithPerformerNamer(p PerformerNamer) Option {
	return func(s *Service) {
		s.performers = p
	}
}

func New(store Store, soldiers SoldierWriter, ledger Ledger, opts ...Option) *Service {
	s := &Service{
		store:    store,
		soldiers: soldiers,
		ledger:   ledger,
		lockTTL:  defaultLockTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit records a new pending application. No role is required.
func (s *Service) Submit(ctx context.Context, sub models.Submission) (*models.Enlistment, error) {
	e, err := models.NewEnlistment(sub, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit application")
	}
	s.metrics.IncrementSubmissions()
	s.logAudit(ctx, "enlistment_submitted", "enlistment_id", e.ID)
	return e, nil
}

// Get returns one application.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id domain.EnlistmentID) (*models.Enlistment, error) {
	if err := actor.Authorize(ReviewRole); err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

// List returns applications in the given statuses, oldest first. With no statuses it
// returns the open applications.
func (s *Service) List(ctx context.Context, actor domain.Actor, statuses []models.Status) ([]*models.Enlistment, error) {
	if err := actor.Authorize(ReviewRole); err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		statuses = models.OpenStatuses
	}
	out, err := s.store.List(ctx, statuses)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applications")
	}
	return out, nil
}

// Counts returns the number of applications per status.
func (s *Service) Counts(ctx context.Context, actor domain.Actor) (map[models.Status]int, error) {
	if err := actor.Authorize(ReviewRole); err != nil {
		return nil, err
	}
	return s.OpenCounts(ctx)
}

// OpenCounts returns the number of applications per status without a role check,
// for read models that have already authorized the caller.
func (s *Service) OpenCounts(ctx context.Context) (map[models.Status]int, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count applications")
	}
	return counts, nil
}

// Advance moves an application to target. Accepting goes through AcceptApplication
// because it needs a rank.
func (s *Service) Advance(ctx context.Context, actor domain.Actor, id domain.EnlistmentID, target models.Status) (*models.Enlistment, error) {
	if err := actor.Authorize(DecisionRole); err != nil {
		return nil, err
	}
	if !target.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid enlistment status: "+string(target))
	}

	var out *models.Enlistment
	err := s.withLock(ctx, id, func(ctx context.Context) error {
		current, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if err := current.CanTransitionTo(target); err != nil {
			return err
		}
		if target == models.StatusAccepted {
			return dErrors.New(dErrors.CodeValidation, "accepting an application requires a rank; use accept")
		}
		now := requestcontext.Now(ctx)
		if err := s.store.Transition(ctx, id, current.Status, target, actor.UserRef(), now); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return s.staleTransition(ctx, id, target)
			}
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "application not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update application status")
		}
		s.metrics.IncrementTransition(string(current.Status), string(target))
		s.logAudit(ctx, "enlistment_transitioned",
			"enlistment_id", id,
			"from", current.Status,
			"to", target,
			"user_id", actor.ID,
		)
		current.Status = target
		current.ReviewedAt = &now
		current.ReviewedBy = actor.UserRef()
		out = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject is Advance with the target fixed to rejected.
func (s *Service) Reject(ctx context.Context, actor domain.Actor, id domain.EnlistmentID) (*models.Enlistment, error) {
	return s.Advance(ctx, actor, id, models.StatusRejected)
}

// AcceptApplication converts an application into a soldier. It is safe to retry:
// the soldier carries a unique back-reference to its application, so a repeated
// call reuses it instead of converting twice.
//
// The soldier insert, the service record append and the enlistment update are
// separate writes. A failed append is logged and ignored. A failed enlistment
// update leaves a soldier behind and returns an internal error; calling again
// finds that soldier and completes the acceptance.
func (s *Service) AcceptApplication(ctx context.Context, actor domain.Actor, cmd AcceptCommand) (*AcceptResult, error) {
	if err := actor.Authorize(DecisionRole); err != nil {
		s.logger.WarnContext(ctx, "enlistment acceptance denied",
			"enlistment_id", cmd.EnlistmentID,
			"role", actor.Role.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, err
	}
	if cmd.RankID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "rank_id is required")
	}

	ctx, span := tracer.Start(ctx, "enlistment.accept")
	defer span.End()
	span.SetAttributes(
		attribute.String("roster.enlistment_id", cmd.EnlistmentID.String()),
		attribute.String("roster.actor_role", actor.Role.String()),
	)

	start := time.Now()
	var result *AcceptResult
	err := s.withLock(ctx, cmd.EnlistmentID, func(ctx context.Context) error {
		var err error
		result, err = s.accept(ctx, actor, cmd)
		return err
	})
	s.metrics.ObserveAcceptanceLatency(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		s.metrics.IncrementAcceptance("failed")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("roster.soldier_id", result.SoldierID.String()),
		attribute.Bool("roster.converted", result.Converted),
	)
	if result.Converted {
		s.metrics.IncrementAcceptance("converted")
	} else {
		s.metrics.IncrementAcceptance("already_converted")
	}
	return result, nil
}

func (s *Service) accept(ctx context.Context, actor domain.Actor, cmd AcceptCommand) (*AcceptResult, error) {
	e, err := s.load(ctx, cmd.EnlistmentID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)

	if e.IsConverted() {
		return s.completeConverted(ctx, actor, e, now)
	}
	if err := e.CanTransitionTo(models.StatusAccepted); err != nil {
		return nil, err
	}
	if err := s.checkAssignment(ctx, cmd); err != nil {
		return nil, err
	}

	soldierID, err := s.ensureSoldier(ctx, actor, e, cmd, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.MarkAccepted(ctx, e.ID, e.Status, soldierID, actor.UserRef(), now); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, s.staleTransition(ctx, e.ID, models.StatusAccepted)
		}
		s.logger.ErrorContext(ctx, "enlistment update failed after soldier creation",
			"enlistment_id", e.ID,
			"soldier_id", soldierID,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal,
			"soldier created but failed to update application status; retry to complete")
	}

	s.logAudit(ctx, "enlistment_accepted",
		"enlistment_id", e.ID,
		"soldier_id", soldierID,
		"user_id", actor.ID,
	)
	e.Status = models.StatusAccepted
	e.ReviewedAt = &now
	e.ReviewedBy = actor.UserRef()
	e.SoldierID = &soldierID
	return &AcceptResult{Enlistment: e, SoldierID: soldierID, Converted: true}, nil
}

// ensureSoldier returns the soldier for an application, creating it and its
// enlistment record unless an earlier attempt already did.
func (s *Service) ensureSoldier(ctx context.Context, actor domain.Actor, e *models.Enlistment, cmd AcceptCommand, now time.Time) (domain.SoldierID, error) {
	existing, err := s.soldiers.FindByEnlistment(ctx, e.ID)
	if err == nil {
		s.logger.InfoContext(ctx, "resuming acceptance with existing soldier",
			"enlistment_id", e.ID,
			"soldier_id", existing.ID,
			"request_id", requestcontext.RequestID(ctx),
		)
		return existing.ID, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return domain.SoldierID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up soldier for application")
	}

	performerName := unknownName
	if s.performers != nil {
		performerName = s.performers.PerformerName(ctx, actor)
	}

	soldier, err := soldiermodels.NewSoldier(e.DisplayName, cmd.RankID, cmd.UnitID, now)
	if err != nil {
		return domain.SoldierID{}, err
	}
	soldier.EnlistmentID = &e.ID
	if err := s.soldiers.Create(ctx, soldier); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return domain.SoldierID{}, dErrors.New(dErrors.CodeConflict, "application is being processed; retry shortly")
		}
		return domain.SoldierID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create soldier profile")
	}
	s.metrics.IncrementSoldiersCreated()

	s.appendEnlistmentRecord(ctx, actor, e, soldier.ID, performerName, now)
	return soldier.ID, nil
}

// completeConverted handles an application that already has a soldier: it is only
// brought to accepted with review fields set. Existing review fields are kept.
func (s *Service) completeConverted(ctx context.Context, actor domain.Actor, e *models.Enlistment, now time.Time) (*AcceptResult, error) {
	if e.Status != models.StatusAccepted || !e.IsReviewed() {
		if err := s.store.EnsureAccepted(ctx, e.ID, actor.UserRef(), now); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update application status")
		}
		e.Status = models.StatusAccepted
		if e.ReviewedAt == nil {
			e.ReviewedAt = &now
		}
		if e.ReviewedBy == nil {
			e.ReviewedBy = actor.UserRef()
		}
	}
	s.logAudit(ctx, "enlistment_accept_repeated",
		"enlistment_id", e.ID,
		"soldier_id", *e.SoldierID,
		"user_id", actor.ID,
	)
	return &AcceptResult{Enlistment: e, SoldierID: *e.SoldierID, Converted: false}, nil
}

func (s *Service) checkAssignment(ctx context.Context, cmd AcceptCommand) error {
	if _, err := s.soldiers.FindRank(ctx, cmd.RankID); err != nil {
		return referenceError(err, "rank")
	}
	if cmd.UnitID != nil {
		if _, err := s.soldiers.FindUnit(ctx, *cmd.UnitID); err != nil {
			return referenceError(err, "unit")
		}
	}
	return nil
}

func (s *Service) appendEnlistmentRecord(ctx context.Context, actor domain.Actor, e *models.Enlistment, soldierID domain.SoldierID, performerName string, now time.Time) {
	entry, err := srmodels.NewEntry(soldierID, srmodels.ActionEnlistment, srmodels.EnlistmentPayload{
		EnlistmentID:    e.ID.String(),
		DisplayName:     e.DisplayName,
		PerformedByName: performerName,
	}, actor.UserRef(), srmodels.VisibilityPublic, now)
	if err == nil {
		_, err = s.ledger.Append(ctx, entry)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "service record append failed",
			"soldier_id", soldierID,
			"enlistment_id", e.ID,
			"action_type", srmodels.ActionEnlistment,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

// withLock runs fn while holding the decision lock for one application. Without a
// locker fn runs unguarded and the store's compare-and-set is the only protection.
func (s *Service) withLock(ctx context.Context, id domain.EnlistmentID, fn func(ctx context.Context) error) error {
	if s.locker == nil {
		return fn(ctx)
	}
	lease, err := s.locker.Acquire(ctx, "enlistment:decision:"+id.String(), s.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return dErrors.New(dErrors.CodeConflict, "application is being processed; retry shortly")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to acquire application lock")
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "application lock release failed",
				"enlistment_id", id,
				"error", err,
			)
		}
	}()
	return fn(ctx)
}

// staleTransition reports a lost compare-and-set against the status now persisted.
func (s *Service) staleTransition(ctx context.Context, id domain.EnlistmentID, target models.Status) error {
	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return models.TransitionError(current.Status, target)
}

func (s *Service) load(ctx context.Context, id domain.EnlistmentID) (*models.Enlistment, error) {
	e, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	return e, nil
}

func referenceError(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeValidation, what+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+what)
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, args...)
	}
}
