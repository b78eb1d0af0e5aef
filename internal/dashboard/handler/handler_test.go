package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	attservice "roster/internal/attendance/service"
	attstore "roster/internal/attendance/store"
	"roster/internal/dashboard/service"
	enlmodels "roster/internal/enlistment/models"
	enlservice "roster/internal/enlistment/service"
	enlstore "roster/internal/enlistment/store"
	"roster/internal/identity"
	"roster/internal/platform/middleware"
	srmodels "roster/internal/servicerecord/models"
	servicerecord "roster/internal/servicerecord/service"
	srstore "roster/internal/servicerecord/store"
	soldiermodels "roster/internal/soldier/models"
	soldierstore "roster/internal/soldier/store"
	"roster/pkg/domain"
)

type HandlerSuite struct {
	suite.Suite
	router http.Handler
	jwt    *identity.JWTService
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctx := s.T().Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.jwt = identity.NewJWTService("handler-test-key", "roster-identity", "roster")

	soldiers := soldierstore.NewInMemoryStore()
	soldierstore.SeedReferenceData(soldiers)
	reyes, err := soldiermodels.NewSoldier("Reyes", soldierstore.RankPrivate, nil, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(soldiers.Create(ctx, reyes))

	records := srstore.NewInMemoryStore()
	ledger := servicerecord.New(records, servicerecord.WithLogger(logger))
	entry, err := srmodels.NewEntry(reyes.ID, srmodels.ActionPromotion, srmodels.PromotionPayload{ToRankName: "Private"}, nil, srmodels.VisibilityPublic, time.Now())
	s.Require().NoError(err)
	_, err = ledger.Append(ctx, entry)
	s.Require().NoError(err)

	enlistments := enlservice.New(enlstore.NewInMemoryStore(), soldiers, ledger, enlservice.WithLogger(logger))
	_, err = enlistments.Submit(ctx, enlmodels.Submission{DisplayName: "Vasquez", Age: 20})
	s.Require().NoError(err)

	attendance := attservice.New(attstore.NewInMemoryStore(), soldiers, attservice.WithLogger(logger))

	svc := service.New(soldiers, enlistments, ledger, attendance, service.WithLogger(logger))
	r := chi.NewRouter()
	r.Use(middleware.RequireIdentity(s.jwt, logger))
	New(svc, logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) get(role domain.Role) (*httptest.ResponseRecorder, DashboardResponse) {
	tok, err := s.jwt.GenerateToken(domain.UserID(uuid.New()), role, time.Hour)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	var resp DashboardResponse
	if rec.Code == http.StatusOK {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (s *HandlerSuite) TestCommandSeesMetrics() {
	rec, resp := s.get(domain.RoleCommand)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(resp.Metrics)
	s.Equal(1, resp.Metrics.Active)
	s.Equal(1, resp.Metrics.OpenApplications)
	s.Require().Len(resp.RecentActions, 1)
	s.Equal("Reyes", resp.RecentActions[0].SoldierName)
	s.Equal("promotion", resp.RecentActions[0].ActionType)
	s.Empty(resp.AttendanceTrends)
}

func (s *HandlerSuite) TestMemberGetsEmptyMetrics() {
	rec, resp := s.get(domain.RoleMember)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("member", resp.Role)
	s.Nil(resp.Metrics)
	s.Contains(rec.Body.String(), `"metrics":null`)
}
