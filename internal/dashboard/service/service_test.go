package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	attmodels "roster/internal/attendance/models"
	attservice "roster/internal/attendance/service"
	"roster/internal/dashboard/service/mocks"
	enlmodels "roster/internal/enlistment/models"
	srmodels "roster/internal/servicerecord/models"
	soldiermodels "roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	soldiers    *mocks.MockSoldiers
	enlistments *mocks.MockEnlistments
	ledger      *mocks.MockLedger
	attendance  *mocks.MockAttendance
	service     *Service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.soldiers = mocks.NewMockSoldiers(s.ctrl)
	s.enlistments = mocks.NewMockEnlistments(s.ctrl)
	s.ledger = mocks.NewMockLedger(s.ctrl)
	s.attendance = mocks.NewMockAttendance(s.ctrl)
	s.service = New(s.soldiers, s.enlistments, s.ledger, s.attendance,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.ctx = context.Background()
}

func actor(role domain.Role) domain.Actor {
	return domain.Actor{ID: domain.UserID(uuid.New()), Role: role}
}

func (s *ServiceSuite) TestLowerRolesGetNoMetrics() {
	for _, role := range []domain.Role{domain.RoleMember, domain.RoleNCO} {
		d, err := s.service.Load(s.ctx, actor(role))
		s.Require().NoError(err)
		s.Equal(role, d.Role)
		s.Nil(d.Metrics)
		s.Nil(d.RecentActions)
		s.Nil(d.Trends)
	}
}

func (s *ServiceSuite) TestAnonymousIsForbidden() {
	_, err := s.service.Load(s.ctx, domain.Actor{})
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *ServiceSuite) TestCommandDashboard() {
	named := domain.SoldierID(uuid.New())
	orphan := domain.SoldierID(uuid.New())
	entries := []*srmodels.Entry{
		{ID: domain.RecordID(uuid.New()), SoldierID: named, ActionType: srmodels.ActionPromotion, OccurredAt: time.Now()},
		{ID: domain.RecordID(uuid.New()), SoldierID: orphan, ActionType: srmodels.ActionNote, OccurredAt: time.Now()},
	}
	opID := domain.OperationID(uuid.New())
	trends := []attservice.OperationTrend{{
		Operation: &attmodels.Operation{ID: opID, Title: "Op Nightfall"},
		Trend:     attmodels.Trend{OperationID: opID, Present: 3, Absent: 1, Total: 4, Percentage: 75},
	}}

	s.soldiers.EXPECT().CountByStatus(gomock.Any()).Return(map[soldiermodels.Status]int{
		soldiermodels.StatusActive: 12, soldiermodels.StatusLOA: 2, soldiermodels.StatusRetired: 4,
	}, nil)
	s.enlistments.EXPECT().OpenCounts(gomock.Any()).Return(map[enlmodels.Status]int{
		enlmodels.StatusPending: 2, enlmodels.StatusInterviewScheduled: 1, enlmodels.StatusRejected: 9,
	}, nil)
	s.ledger.EXPECT().Recent(gomock.Any(), 10).Return(entries, nil)
	s.attendance.EXPECT().RecentTrends(gomock.Any(), 10).Return(trends, nil)
	s.soldiers.EXPECT().DisplayNames(gomock.Any(), []domain.SoldierID{named, orphan}).
		Return(map[domain.SoldierID]string{named: "Reyes"}, nil)

	d, err := s.service.Load(s.ctx, actor(domain.RoleCommand))
	s.Require().NoError(err)
	s.Equal(&Metrics{Active: 12, LOA: 2, AWOL: 0, OpenApplications: 3}, d.Metrics)
	s.Require().Len(d.RecentActions, 2)
	s.Equal("Reyes", d.RecentActions[0].SoldierName)
	s.Equal("Unknown", d.RecentActions[1].SoldierName)
	s.Equal(trends, d.Trends)
}

func (s *ServiceSuite) TestNameLookupFailureIsAbsorbed() {
	entry := &srmodels.Entry{ID: domain.RecordID(uuid.New()), SoldierID: domain.SoldierID(uuid.New())}
	s.soldiers.EXPECT().CountByStatus(gomock.Any()).Return(map[soldiermodels.Status]int{}, nil)
	s.enlistments.EXPECT().OpenCounts(gomock.Any()).Return(map[enlmodels.Status]int{}, nil)
	s.ledger.EXPECT().Recent(gomock.Any(), 10).Return([]*srmodels.Entry{entry}, nil)
	s.attendance.EXPECT().RecentTrends(gomock.Any(), 10).Return(nil, nil)
	s.soldiers.EXPECT().DisplayNames(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	d, err := s.service.Load(s.ctx, actor(domain.RoleAdmin))
	s.Require().NoError(err)
	s.Equal("Unknown", d.RecentActions[0].SoldierName)
}

func (s *ServiceSuite) TestQueryFailure() {
	s.soldiers.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("db down"))
	s.enlistments.EXPECT().OpenCounts(gomock.Any()).Return(map[enlmodels.Status]int{}, nil).AnyTimes()
	s.ledger.EXPECT().Recent(gomock.Any(), 10).Return(nil, nil).AnyTimes()
	s.attendance.EXPECT().RecentTrends(gomock.Any(), 10).Return(nil, nil).AnyTimes()

	_, err := s.service.Load(s.ctx, actor(domain.RoleCommand))
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
