package handler

import (
	"bytes"
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

	"roster/internal/attendance/service"
	"roster/internal/attendance/store"
	"roster/internal/identity"
	"roster/internal/platform/middleware"
	soldiermodels "roster/internal/soldier/models"
	soldierstore "roster/internal/soldier/store"
	"roster/pkg/domain"
)

type HandlerSuite struct {
	suite.Suite
	router  http.Handler
	jwt     *identity.JWTService
	soldier *soldiermodels.Soldier
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.jwt = identity.NewJWTService("handler-test-key", "roster-identity", "roster")

	soldiers := soldierstore.NewInMemoryStore()
	soldierstore.SeedReferenceData(soldiers)
	soldier, err := soldiermodels.NewSoldier("Reyes", soldierstore.RankPrivate, nil, time.Now().Add(-time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(soldiers.Create(s.T().Context(), soldier))
	s.soldier = soldier

	svc := service.New(store.NewInMemoryStore(), soldiers, service.WithLogger(logger))

	r := chi.NewRouter()
	r.Use(middleware.RequireIdentity(s.jwt, logger))
	New(svc, logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, path string, role domain.Role, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	tok, err := s.jwt.GenerateToken(domain.UserID(uuid.New()), role, time.Hour)
	s.Require().NoError(err)
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) createOperation() OperationResponse {
	rec := s.do(http.MethodPost, "/operations", domain.RoleNCO, map[string]string{
		"title":          "Op Nightfall",
		"operation_date": "2025-05-10",
		"operation_type": "training",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var op OperationResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &op))
	return op
}

func (s *HandlerSuite) TestCreateOperation() {
	s.Run("defaults status to completed", func() {
		op := s.createOperation()
		s.Equal("training", op.OperationType)
		s.Equal("completed", op.Status)
		s.NotNil(op.CreatedBy)
	})

	s.Run("member is forbidden", func() {
		rec := s.do(http.MethodPost, "/operations", domain.RoleMember, map[string]string{
			"title": "Op", "operation_date": "2025-05-10",
		})
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("bad date is rejected", func() {
		rec := s.do(http.MethodPost, "/operations", domain.RoleNCO, map[string]string{
			"title": "Op", "operation_date": "10/05/2025",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestRecordAndGet() {
	op := s.createOperation()
	path := "/operations/" + op.ID

	rec := s.do(http.MethodPut, path+"/attendance", domain.RoleNCO, map[string]any{
		"records": []map[string]string{
			{"soldier_id": s.soldier.ID.String(), "status": "present", "role_held": "Medic"},
		},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, path, domain.RoleNCO, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var detail OperationDetailResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &detail))
	s.Require().Len(detail.Attendance, 1)
	s.Equal("Reyes", detail.Attendance[0].SoldierName)
	s.Equal("Medic", detail.Attendance[0].RoleHeld)
	s.Equal(100, detail.Trend.Percentage)

	s.Run("unknown soldier is rejected", func() {
		rec := s.do(http.MethodPut, path+"/attendance", domain.RoleNCO, map[string]any{
			"records": []map[string]string{{"soldier_id": uuid.NewString(), "status": "present"}},
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid status is rejected", func() {
		rec := s.do(http.MethodPut, path+"/attendance", domain.RoleNCO, map[string]any{
			"records": []map[string]string{{"soldier_id": s.soldier.ID.String(), "status": "late"}},
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown operation is not found", func() {
		rec := s.do(http.MethodGet, "/operations/"+uuid.NewString(), domain.RoleNCO, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id is rejected", func() {
		rec := s.do(http.MethodGet, "/operations/not-a-uuid", domain.RoleNCO, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
