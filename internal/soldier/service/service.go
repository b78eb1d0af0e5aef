// Package service applies personnel actions to soldiers and assembles the
// profile and roster read models.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	attmodels "roster/internal/attendance/models"
	srmodels "roster/internal/servicerecord/models"
	"roster/internal/soldier/metrics"
	"roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Ledger,AttendanceReader

// UnknownPerformer is recorded when the acting user has no soldier record.
const UnknownPerformer = "Unknown"

var tracer = otel.Tracer("roster/internal/soldier/service")

// Store persists soldiers, reference data and grants.
type Store interface {
	FindByID(ctx context.Context, id domain.SoldierID) (*models.Soldier, error)
	FindByUserID(ctx context.Context, userID domain.UserID) (*models.Soldier, error)
	UpdateRank(ctx context.Context, id domain.SoldierID, from, to domain.RankID, at time.Time) error
	UpdateUnit(ctx context.Context, id domain.SoldierID, from *domain.UnitID, to domain.UnitID, at time.Time) error
	UpdateStatus(ctx context.Context, id domain.SoldierID, from, to models.Status, at time.Time) error
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Soldier, error)

	FindRank(ctx context.Context, id domain.RankID) (*models.Rank, error)
	FindUnit(ctx context.Context, id domain.UnitID) (*models.Unit, error)
	FindQualification(ctx context.Context, id domain.QualificationID) (*models.Qualification, error)
	FindAward(ctx context.Context, id domain.AwardID) (*models.Award, error)
	ListRanks(ctx context.Context) ([]*models.Rank, error)
	ListUnits(ctx context.Context) ([]*models.Unit, error)

	GrantQualification(ctx context.Context, grant *models.SoldierQualification) error
	GrantAward(ctx context.Context, grant *models.SoldierAward) error
	RecordDiscipline(ctx context.Context, action *models.DisciplinaryAction) error
	ListQualifications(ctx context.Context, soldierID domain.SoldierID) ([]*models.HeldQualification, error)
	ListAwards(ctx context.Context, soldierID domain.SoldierID) ([]*models.HeldAward, error)
	ListDiscipline(ctx context.Context, soldierID domain.SoldierID) ([]*models.DisciplinaryAction, error)
}

// Ledger is the service record the personnel actions append to.
type Ledger interface {
	Append(ctx context.Context, entry *srmodels.Entry) (domain.RecordID, error)
	History(ctx context.Context, soldierID domain.SoldierID, viewer domain.Actor, owner *domain.UserID) ([]*srmodels.Entry, error)
}

// AttendanceReader supplies the attendance parts of a soldier profile.
type AttendanceReader interface {
	SoldierSummary(ctx context.Context, soldierID domain.SoldierID) (attmodels.SoldierSummary, error)
	CombatRecord(ctx context.Context, soldierID domain.SoldierID) ([]*attmodels.CombatEntry, error)
}

// Service applies personnel actions. Every action is a primary write followed by a
// best-effort service record append.
type Service struct {
	store      Store
	ledger     Ledger
	attendance AttendanceReader
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

// WithAttendance adds attendance summary and combat record to profiles.
func WithAttendance(reader AttendanceReader) Option {
	return func(s *Service) {
		s.attendance = reader
	}
}

func New(store Store, ledger Ledger, opts ...Option) *Service {
	s := &Service{store: store, ledger: ledger, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns one soldier. Any member may look up a soldier.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id domain.SoldierID) (*models.Soldier, error) {
	if err := actor.Authorize(domain.RoleMember); err != nil {
		return nil, err
	}
	return s.loadSoldier(ctx, id)
}

// PerformerName is the display name of the actor's own soldier record, or
// UnknownPerformer when there is none. Lookup failures are logged and absorbed.
func (s *Service) PerformerName(ctx context.Context, actor domain.Actor) string {
	if actor.IsAnonymous() {
		return UnknownPerformer
	}
	soldier, err := s.store.FindByUserID(ctx, actor.ID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "performer name lookup failed",
				"user_id", actor.ID,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		return UnknownPerformer
	}
	return soldier.DisplayName
}

func (s *Service) loadSoldier(ctx context.Context, id domain.SoldierID) (*models.Soldier, error) {
	soldier, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "soldier not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load soldier")
	}
	return soldier, nil
}

// run gates an action on role and wraps it in a span with latency and outcome metrics.
func (s *Service) run(ctx context.Context, action string, required domain.Role, actor domain.Actor, soldierID domain.SoldierID, fn func(ctx context.Context) error) error {
	if err := actor.Authorize(required); err != nil {
		s.logger.WarnContext(ctx, "personnel action denied",
			"action", action,
			"soldier_id", soldierID,
			"role", actor.Role.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		return err
	}

	ctx, span := tracer.Start(ctx, "soldier."+action)
	defer span.End()
	span.SetAttributes(
		attribute.String("roster.soldier_id", soldierID.String()),
		attribute.String("roster.actor_role", actor.Role.String()),
	)

	start := time.Now()
	err := fn(ctx)
	s.metrics.ObserveLatency(action, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		s.metrics.IncrementFailed(action)
		return err
	}
	s.metrics.IncrementApplied(action)
	return nil
}

// record appends a service record entry. Failures are logged and never returned.
func (s *Service) record(ctx context.Context, actor domain.Actor, soldierID domain.SoldierID, action srmodels.ActionType, payload any, visibility srmodels.Visibility) {
	if _, err := s.appendEntry(ctx, actor, soldierID, action, payload, visibility); err != nil {
		s.logger.WarnContext(ctx, "service record append failed",
			"soldier_id", soldierID,
			"action_type", action,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func (s *Service) appendEntry(ctx context.Context, actor domain.Actor, soldierID domain.SoldierID, action srmodels.ActionType, payload any, visibility srmodels.Visibility) (domain.RecordID, error) {
	entry, err := srmodels.NewEntry(soldierID, action, payload, actor.UserRef(), visibility, requestcontext.Now(ctx))
	if err != nil {
		return domain.RecordID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build service record entry")
	}
	return s.ledger.Append(ctx, entry)
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

func conflictOnStale(err error, what string) error {
	switch {
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, what+" changed concurrently; reload and retry")
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "soldier not found")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update "+what)
	}
}
