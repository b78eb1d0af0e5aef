// Package service records operations and attendance and projects the attendance
// statistics shown on profiles and the dashboard.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"roster/internal/attendance/metrics"
	"roster/internal/attendance/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,SoldierDirectory

// ManageRole is required to create operations and record attendance.
const ManageRole = domain.RoleNCO

// Store persists operations and attendance.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateOperation(ctx context.Context, op *models.Operation) error
	FindOperation(ctx context.Context, id domain.OperationID) (*models.Operation, error)
	ListCompletedOperations(ctx context.Context, limit int) ([]*models.Operation, error)
	CountCompletedOperations(ctx context.Context) (int, error)
	Upsert(ctx context.Context, row *models.Attendance) (*models.Attendance, error)
	ListByOperation(ctx context.Context, operationID domain.OperationID) ([]*models.Attendance, error)
	ListByOperations(ctx context.Context, ids []domain.OperationID) ([]*models.Attendance, error)
	SoldierPresence(ctx context.Context, soldierID domain.SoldierID) (int, *time.Time, error)
	CombatRecord(ctx context.Context, soldierID domain.SoldierID) ([]*models.CombatEntry, error)
}

// SoldierDirectory resolves soldier ids to display names. Ids it does not return
// are treated as unknown soldiers.
type SoldierDirectory interface {
	DisplayNames(ctx context.Context, ids []domain.SoldierID) (map[domain.SoldierID]string, error)
}

type CreateOperationCommand struct {
	Title         string
	OperationDate time.Time
	OperationType models.OperationType
	Status        models.OperationStatus
	Description   string
}

// RecordEntry is one soldier's attendance in a batch.
type RecordEntry struct {
	SoldierID domain.SoldierID
	Status    models.Status
	RoleHeld  string
	Notes     string
}

// NamedAttendance is an attendance row with the soldier's display name.
type NamedAttendance struct {
	*models.Attendance
	SoldierName string
}

// OperationDetail is an operation with its attendance and trend.
type OperationDetail struct {
	Operation  *models.Operation
	Attendance []NamedAttendance
	Trend      models.Trend
}

// OperationTrend pairs a completed operation with its attendance trend.
type OperationTrend struct {
	Operation *models.Operation
	Trend     models.Trend
}

type Service struct {
	store    Store
	soldiers SoldierDirectory
	logger   *slog.Logger
	metrics  *metrics.Metrics
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

func New(store Store, soldiers SoldierDirectory, opts ...Option) *Service {
	s := &Service{store: store, soldiers: soldiers, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOperation records a new operation.
func (s *Service) CreateOperation(ctx context.Context, actor domain.Actor, cmd CreateOperationCommand) (*models.Operation, error) {
	if err := actor.Authorize(ManageRole); err != nil {
		return nil, err
	}
	op, err := models.NewOperation(cmd.Title, cmd.OperationDate, cmd.OperationType, cmd.Status, cmd.Description, actor.UserRef(), requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateOperation(ctx, op); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create operation")
	}
	s.metrics.IncrementOperationsCreated()
	s.logAudit(ctx, "operation_created",
		"operation_id", op.ID,
		"operation_type", op.OperationType,
		"user_id", actor.ID,
	)
	return op, nil
}

// GetOperation returns an operation with its attendance and trend.
func (s *Service) GetOperation(ctx context.Context, actor domain.Actor, id domain.OperationID) (*OperationDetail, error) {
	if err := actor.Authorize(ManageRole); err != nil {
		return nil, err
	}
	op, err := s.loadOperation(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListByOperation(ctx, id)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load attendance")
	}
	named, err := s.withNames(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &OperationDetail{
		Operation:  op,
		Attendance: named,
		Trend:      models.PerOperationTrend(op.ID, rows),
	}, nil
}

// RecordAttendance upserts a batch of attendance for one operation. Each soldier
// keeps a single row per operation; recording again replaces its status. The
// batch is applied atomically where the store supports it.
func (s *Service) RecordAttendance(ctx context.Context, actor domain.Actor, operationID domain.OperationID, entries []RecordEntry) ([]*models.Attendance, error) {
	if err := actor.Authorize(ManageRole); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one attendance record is required")
	}
	seen := make(map[domain.SoldierID]struct{}, len(entries))
	ids := make([]domain.SoldierID, 0, len(entries))
	for _, e := range entries {
		if e.SoldierID.IsNil() {
			return nil, dErrors.New(dErrors.CodeValidation, "soldier_id is required")
		}
		if _, dup := seen[e.SoldierID]; dup {
			return nil, dErrors.New(dErrors.CodeValidation, "soldier listed twice: "+e.SoldierID.String())
		}
		seen[e.SoldierID] = struct{}{}
		ids = append(ids, e.SoldierID)
	}
	if _, err := s.loadOperation(ctx, operationID); err != nil {
		return nil, err
	}
	if err := s.requireSoldiers(ctx, ids); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	stored := make([]*models.Attendance, 0, len(entries))
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		for _, e := range entries {
			row, err := s.store.Upsert(ctx, &models.Attendance{
				ID:          uuid.New(),
				OperationID: operationID,
				SoldierID:   e.SoldierID,
				Status:      e.Status,
				RoleHeld:    e.RoleHeld,
				Notes:       e.Notes,
				RecordedBy:  actor.UserRef(),
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
			stored = append(stored, row)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeValidation, "operation or soldier no longer exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record attendance")
	}

	for _, row := range stored {
		s.metrics.IncrementAttendanceRecorded(string(row.Status))
	}
	s.logAudit(ctx, "attendance_recorded",
		"operation_id", operationID,
		"records", len(stored),
		"user_id", actor.ID,
	)
	return stored, nil
}

// SoldierSummary is a soldier's attendance against every completed operation.
func (s *Service) SoldierSummary(ctx context.Context, soldierID domain.SoldierID) (models.SoldierSummary, error) {
	total, err := s.store.CountCompletedOperations(ctx)
	if err != nil {
		return models.SoldierSummary{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count operations")
	}
	present, last, err := s.store.SoldierPresence(ctx, soldierID)
	if err != nil {
		return models.SoldierSummary{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load attendance")
	}
	return models.PerSoldierSummary(soldierID, total, present, last), nil
}

// CombatRecord is a soldier's attendance joined with operations, newest first.
func (s *Service) CombatRecord(ctx context.Context, soldierID domain.SoldierID) ([]*models.CombatEntry, error) {
	record, err := s.store.CombatRecord(ctx, soldierID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load combat record")
	}
	return record, nil
}

// RecentTrends returns the attendance trend for the newest completed operations.
func (s *Service) RecentTrends(ctx context.Context, limit int) ([]OperationTrend, error) {
	ops, err := s.store.ListCompletedOperations(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load operations")
	}
	if len(ops) == 0 {
		return []OperationTrend{}, nil
	}
	ids := make([]domain.OperationID, len(ops))
	for i, op := range ops {
		ids[i] = op.ID
	}
	rows, err := s.store.ListByOperations(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load attendance")
	}
	out := make([]OperationTrend, len(ops))
	for i, op := range ops {
		out[i] = OperationTrend{Operation: op, Trend: models.PerOperationTrend(op.ID, rows)}
	}
	return out, nil
}

func (s *Service) loadOperation(ctx context.Context, id domain.OperationID) (*models.Operation, error) {
	op, err := s.store.FindOperation(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "operation not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load operation")
	}
	return op, nil
}

func (s *Service) requireSoldiers(ctx context.Context, ids []domain.SoldierID) error {
	if s.soldiers == nil {
		return nil
	}
	names, err := s.soldiers.DisplayNames(ctx, ids)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load soldiers")
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return dErrors.New(dErrors.CodeValidation, "unknown soldier: "+id.String())
		}
	}
	return nil
}

func (s *Service) withNames(ctx context.Context, rows []*models.Attendance) ([]NamedAttendance, error) {
	out := make([]NamedAttendance, len(rows))
	names := map[domain.SoldierID]string{}
	if s.soldiers != nil && len(rows) > 0 {
		ids := make([]domain.SoldierID, len(rows))
		for i, row := range rows {
			ids[i] = row.SoldierID
		}
		var err error
		if names, err = s.soldiers.DisplayNames(ctx, ids); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load soldier names")
		}
	}
	for i, row := range rows {
		name, ok := names[row.SoldierID]
		if !ok {
			name = "Unknown"
		}
		out[i] = NamedAttendance{Attendance: row, SoldierName: name}
	}
	return out, nil
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
