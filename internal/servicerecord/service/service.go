// Package service is the service record ledger: an append-only audit trail of
// personnel actions, mirrored best-effort onto the event stream.
package service

import (
	"context"
	"log/slog"

	"roster/internal/servicerecord/metrics"
	"roster/internal/servicerecord/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Publisher

// Store persists ledger entries. It has no update or delete operations.
type Store interface {
	Append(ctx context.Context, entry *models.Entry) error
	ListBySoldier(ctx context.Context, soldierID domain.SoldierID, visibilities []models.Visibility) ([]*models.Entry, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Entry, error)
}

// Publisher forwards appended entries to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, entry *models.Entry) error
}

// Ledger appends and reads service record entries.
type Ledger struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Ledger)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// WithPublisher mirrors appended entries onto an event stream.
func WithPublisher(p Publisher) Option {
	return func(l *Ledger) {
		l.publisher = p
	}
}

// New constructs a Ledger.
func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append stores entry and returns its id. Publishing happens after the store write
// and never fails the append; callers treat an Append error as non-fatal.
func (l *Ledger) Append(ctx context.Context, entry *models.Entry) (domain.RecordID, error) {
	if entry == nil || entry.SoldierID.IsNil() {
		return domain.RecordID{}, dErrors.New(dErrors.CodeValidation, "service record entry requires a soldier")
	}
	if err := l.store.Append(ctx, entry); err != nil {
		l.metrics.IncrementAppendFailure(string(entry.ActionType))
		return domain.RecordID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to append service record")
	}
	l.metrics.IncrementAppended(string(entry.ActionType))
	l.logger.InfoContext(ctx, "service record appended",
		"record_id", entry.ID,
		"soldier_id", entry.SoldierID,
		"action_type", entry.ActionType,
		"visibility", entry.Visibility,
		"request_id", requestcontext.RequestID(ctx),
	)

	l.publish(ctx, entry)
	return entry.ID, nil
}

func (l *Ledger) publish(ctx context.Context, entry *models.Entry) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, entry); err != nil {
		l.metrics.IncrementPublishFailure()
		l.logger.WarnContext(ctx, "service record publish failed",
			"record_id", entry.ID,
			"action_type", entry.ActionType,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return
	}
	l.metrics.IncrementPublished()
}

// History returns a soldier's entries, oldest first, filtered to what viewer may read.
// owner is the soldier's linked identity, if any.
func (l *Ledger) History(ctx context.Context, soldierID domain.SoldierID, viewer domain.Actor, owner *domain.UserID) ([]*models.Entry, error) {
	entries, err := l.store.ListBySoldier(ctx, soldierID, models.VisibleTo(viewer, owner))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load service record")
	}
	return entries, nil
}

// Recent returns the newest entries across all soldiers. It is a leadership view and
// is not visibility filtered; callers gate it on role.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]*models.Entry, error) {
	entries, err := l.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recent service records")
	}
	return entries, nil
}

// AssignmentHistory extracts the transfer entries from a history.
func AssignmentHistory(history []*models.Entry) []*models.Entry {
	var out []*models.Entry
	for _, e := range history {
		if e.ActionType == models.ActionTransfer {
			out = append(out, e)
		}
	}
	return out
}
