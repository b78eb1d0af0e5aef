// Package service assembles the leadership dashboard from the soldier, enlistment,
// service record and attendance read paths.
package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	attservice "roster/internal/attendance/service"
	enlmodels "roster/internal/enlistment/models"
	srmodels "roster/internal/servicerecord/models"
	soldiermodels "roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Soldiers,Enlistments,Ledger,Attendance

const (
	// MetricsRole is required to see the dashboard metrics.
	MetricsRole = domain.RoleCommand

	recentLimit = 10
	unknownName = "Unknown"
)

type Soldiers interface {
	CountByStatus(ctx context.Context) (map[soldiermodels.Status]int, error)
	DisplayNames(ctx context.Context, ids []domain.SoldierID) (map[domain.SoldierID]string, error)
}

type Enlistments interface {
	OpenCounts(ctx context.Context) (map[enlmodels.Status]int, error)
}

type Ledger interface {
	Recent(ctx context.Context, limit int) ([]*srmodels.Entry, error)
}

type Attendance interface {
	RecentTrends(ctx context.Context, limit int) ([]attservice.OperationTrend, error)
}

// Metrics are the headline counts.
type Metrics struct {
	Active           int
	LOA              int
	AWOL             int
	OpenApplications int
}

// RecentAction is a service record entry with its soldier's name.
type RecentAction struct {
	Entry       *srmodels.Entry
	SoldierName string
}

// Dashboard is the dashboard read model. Metrics, RecentActions and Trends are nil
// for viewers below MetricsRole.
type Dashboard struct {
	Role          domain.Role
	Metrics       *Metrics
	RecentActions []RecentAction
	Trends        []attservice.OperationTrend
}

type Service struct {
	soldiers    Soldiers
	enlistments Enlistments
	ledger      Ledger
	attendance  Attendance
	logger      *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(soldiers Soldiers, enlistments Enlistments, ledger Ledger, attendance Attendance, opts ...Option) *Service {
	s := &Service{
		soldiers:    soldiers,
		enlistments: enlistments,
		ledger:      ledger,
		attendance:  attendance,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds the dashboard for viewer. Any authenticated member gets a dashboard;
// the metric blocks are only filled for command and above. The queries run in
// parallel and the first failure cancels the rest.
func (s *Service) Load(ctx context.Context, viewer domain.Actor) (*Dashboard, error) {
	if err := viewer.Authorize(domain.RoleMember); err != nil {
		return nil, err
	}
	out := &Dashboard{Role: viewer.Role}
	if !viewer.Can(MetricsRole) {
		return out, nil
	}

	var (
		soldierCounts    map[soldiermodels.Status]int
		enlistmentCounts map[enlmodels.Status]int
		entries          []*srmodels.Entry
		trends           []attservice.OperationTrend
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		soldierCounts, err = s.soldiers.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		enlistmentCounts, err = s.enlistments.OpenCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		entries, err = s.ledger.Recent(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		trends, err = s.attendance.RecentTrends(gctx, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "dashboard load failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load dashboard")
	}

	open := 0
	for _, st := range enlmodels.OpenStatuses {
		open += enlistmentCounts[st]
	}
	out.Metrics = &Metrics{
		Active:           soldierCounts[soldiermodels.StatusActive],
		LOA:              soldierCounts[soldiermodels.StatusLOA],
		AWOL:             soldierCounts[soldiermodels.StatusAWOL],
		OpenApplications: open,
	}
	out.RecentActions = s.nameEntries(ctx, entries)
	out.Trends = trends
	return out, nil
}

// nameEntries attaches soldier names. A failed lookup leaves every name Unknown.
func (s *Service) nameEntries(ctx context.Context, entries []*srmodels.Entry) []RecentAction {
	out := make([]RecentAction, len(entries))
	if len(entries) == 0 {
		return out
	}
	ids := make([]domain.SoldierID, len(entries))
	for i, e := range entries {
		ids[i] = e.SoldierID
	}
	names, err := s.soldiers.DisplayNames(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard soldier name lookup failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	for i, e := range entries {
		name, ok := names[e.SoldierID]
		if !ok {
			name = unknownName
		}
		out[i] = RecentAction{Entry: e, SoldierName: name}
	}
	return out
}
