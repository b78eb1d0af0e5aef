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

	"roster/internal/enlistment/service"
	"roster/internal/enlistment/store"
	"roster/internal/identity"
	"roster/internal/platform/lock"
	"roster/internal/platform/middleware"
	servicerecord "roster/internal/servicerecord/service"
	srstore "roster/internal/servicerecord/store"
	soldierstore "roster/internal/soldier/store"
	"roster/pkg/domain"
)

type HandlerSuite struct {
	suite.Suite
	router   http.Handler
	jwt      *identity.JWTService
	soldiers *soldierstore.InMemoryStore
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.jwt = identity.NewJWTService("handler-test-key", "roster-identity", "roster")
	s.soldiers = soldierstore.NewInMemoryStore()
	soldierstore.SeedReferenceData(s.soldiers)

	ledger := servicerecord.New(srstore.NewInMemoryStore(), servicerecord.WithLogger(logger))
	svc := service.New(store.NewInMemoryStore(), s.soldiers, ledger,
		service.WithLogger(logger),
		service.WithLocker(lock.NewMemory(), time.Minute),
	)
	h := New(svc, logger)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalIdentity(s.jwt, logger))
		h.RegisterPublic(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity(s.jwt, logger))
		h.Register(r)
	})
	s.router = r
}

func (s *HandlerSuite) do(method, path string, role *domain.Role, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != nil {
		tok, err := s.jwt.GenerateToken(domain.UserID(uuid.New()), *role, time.Hour)
		s.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func role(r domain.Role) *domain.Role { return &r }

func validApplication() map[string]any {
	return map[string]any{
		"display_name":     "Vasquez",
		"discord_username": "vasquez",
		"age":              22,
		"timezone":         "Europe/London",
		"arma_experience":  "Three years in a realism unit",
		"why_join":         "Looking for regular structured operations",
	}
}

func (s *HandlerSuite) submit() string {
	rec := s.do(http.MethodPost, "/enlistments", nil, validApplication())
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp SubmitResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("pending", resp.Status)
	return resp.ID
}

func (s *HandlerSuite) advance(id, target string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/enlistments/"+id+"/advance", role(domain.RoleCommand), map[string]string{"target_status": target})
}

func (s *HandlerSuite) TestSubmitIsPublic() {
	s.submit()

	body := validApplication()
	body["age"] = 12
	rec := s.do(http.MethodPost, "/enlistments", nil, body)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestReviewRequiresIdentity() {
	id := s.submit()
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/enlistments/"+id, nil, nil).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodGet, "/enlistments/"+id, role(domain.RoleMember), nil).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/enlistments/"+id, role(domain.RoleNCO), nil).Code)
}

func (s *HandlerSuite) TestListWithStatusFilter() {
	first := s.submit()
	s.submit()
	s.Require().Equal(http.StatusOK, s.advance(first, "reviewing").Code)

	rec := s.do(http.MethodGet, "/enlistments?status=reviewing", role(domain.RoleNCO), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var resp ListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Enlistments, 1)
	s.Equal(first, resp.Enlistments[0].ID)
	s.Equal(1, resp.Counts["reviewing"])
	s.Equal(1, resp.Counts["pending"])

	rec = s.do(http.MethodGet, "/enlistments", role(domain.RoleNCO), nil)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Enlistments, 2)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/enlistments?status=hired", role(domain.RoleNCO), nil).Code)
}

func (s *HandlerSuite) TestAdvanceAndAccept() {
	id := s.submit()

	rec := s.advance(id, "accepted")
	s.Equal(http.StatusConflict, rec.Code, "pending cannot be accepted")

	rec = s.advance(id, "interview_scheduled")
	s.Equal(http.StatusConflict, rec.Code, "pending cannot skip review")

	s.Require().Equal(http.StatusOK, s.advance(id, "reviewing").Code)
	rec = s.advance(id, "interview_scheduled")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(http.StatusBadRequest, s.advance(id, "accepted").Code, "accepting needs a rank")
	var e EnlistmentResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &e))
	s.Equal("Interview Scheduled", e.StatusLabel)
	s.Len(e.NextStatuses, 2)

	rec = s.do(http.MethodPost, "/enlistments/"+id+"/accept", role(domain.RoleNCO), map[string]string{"rank_id": soldierstore.RankRecruit.String()})
	s.Equal(http.StatusForbidden, rec.Code)

	accept := map[string]string{"rank_id": soldierstore.RankRecruit.String()}
	rec = s.do(http.MethodPost, "/enlistments/"+id+"/accept", role(domain.RoleCommand), accept)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var first AcceptResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &first))
	s.True(first.Converted)
	s.Equal("accepted", first.Enlistment.Status)
	s.Empty(first.Enlistment.NextStatuses)

	rec = s.do(http.MethodPost, "/enlistments/"+id+"/accept", role(domain.RoleCommand), accept)
	s.Require().Equal(http.StatusOK, rec.Code)
	var second AcceptResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &second))
	s.False(second.Converted)
	s.Equal(first.SoldierID, second.SoldierID)

	rec = s.do(http.MethodPost, "/enlistments/"+id+"/reject", role(domain.RoleCommand), nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerSuite) TestAcceptRequiresRank() {
	id := s.submit()
	rec := s.do(http.MethodPost, "/enlistments/"+id+"/accept", role(domain.RoleCommand), map[string]string{})
	s.Equal(http.StatusBadRequest, rec.Code)
}
