package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"roster/internal/dashboard/service"
	"roster/pkg/domain"
	"roster/pkg/platform/httputil"
	"roster/pkg/requestcontext"
)

type Service interface {
	Load(ctx context.Context, viewer domain.Actor) (*service.Dashboard, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts GET /dashboard. The router is expected to require identity.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard", h.HandleDashboard)
}

type MetricsResponse struct {
	Active           int `json:"active_count"`
	LOA              int `json:"loa_count"`
	AWOL             int `json:"awol_count"`
	OpenApplications int `json:"pending_apps_count"`
}

type RecentActionResponse struct {
	ID          string          `json:"id"`
	ActionType  string          `json:"action_type"`
	Payload     json.RawMessage `json:"payload"`
	OccurredAt  time.Time       `json:"occurred_at"`
	SoldierID   string          `json:"soldier_id"`
	SoldierName string          `json:"soldier_name"`
}

type TrendOperation struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	OperationDate time.Time `json:"operation_date"`
	OperationType string    `json:"operation_type"`
}

type TrendResponse struct {
	Operation  TrendOperation `json:"operation"`
	Present    int            `json:"present"`
	Excused    int            `json:"excused"`
	Absent     int            `json:"absent"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
}

type DashboardResponse struct {
	Role             string                 `json:"user_role"`
	Metrics          *MetricsResponse       `json:"metrics"`
	RecentActions    []RecentActionResponse `json:"recent_actions"`
	AttendanceTrends []TrendResponse        `json:"attendance_trends"`
}

// HandleDashboard handles GET /dashboard.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := h.service.Load(ctx, requestcontext.Actor(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "dashboard failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponse(d))
}

func toResponse(d *service.Dashboard) DashboardResponse {
	resp := DashboardResponse{Role: d.Role.String()}
	if d.Metrics == nil {
		return resp
	}
	resp.Metrics = &MetricsResponse{
		Active:           d.Metrics.Active,
		LOA:              d.Metrics.LOA,
		AWOL:             d.Metrics.AWOL,
		OpenApplications: d.Metrics.OpenApplications,
	}
	resp.RecentActions = make([]RecentActionResponse, len(d.RecentActions))
	for i, a := range d.RecentActions {
		resp.RecentActions[i] = RecentActionResponse{
			ID:          a.Entry.ID.String(),
			ActionType:  string(a.Entry.ActionType),
			Payload:     a.Entry.Payload,
			OccurredAt:  a.Entry.OccurredAt,
			SoldierID:   a.Entry.SoldierID.String(),
			SoldierName: a.SoldierName,
		}
	}
	resp.AttendanceTrends = make([]TrendResponse, len(d.Trends))
	for i, t := range d.Trends {
		resp.AttendanceTrends[i] = TrendResponse{
			Operation: TrendOperation{
				ID:            t.Operation.ID.String(),
				Title:         t.Operation.Title,
				OperationDate: t.Operation.OperationDate,
				OperationType: string(t.Operation.OperationType),
			},
			Present:    t.Trend.Present,
			Excused:    t.Trend.Excused,
			Absent:     t.Trend.Absent,
			Total:      t.Trend.Total,
			Percentage: t.Trend.Percentage,
		}
	}
	return resp
}
