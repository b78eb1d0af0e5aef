package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roster/internal/attendance/models"
	"roster/internal/attendance/service"
	"roster/pkg/domain"
	"roster/pkg/platform/httputil"
	"roster/pkg/requestcontext"
)

// Service defines the attendance operations exposed over HTTP.
type Service interface {
	CreateOperation(ctx context.Context, actor domain.Actor, cmd service.CreateOperationCommand) (*models.Operation, error)
	GetOperation(ctx context.Context, actor domain.Actor, id domain.OperationID) (*service.OperationDetail, error)
	RecordAttendance(ctx context.Context, actor domain.Actor, operationID domain.OperationID, entries []service.RecordEntry) ([]*models.Attendance, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts operation endpoints. The router is expected to require identity.
func (h *Handler) Register(r chi.Router) {
	r.Post("/operations", h.HandleCreateOperation)
	r.Get("/operations/{id}", h.HandleGetOperation)
	r.Put("/operations/{id}/attendance", h.HandleRecordAttendance)
}

// HandleCreateOperation handles POST /operations.
func (h *Handler) HandleCreateOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateOperationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	op, err := h.service.CreateOperation(ctx, requestcontext.Actor(ctx), req.parsed)
	if err != nil {
		h.fail(ctx, w, "operation create failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toOperationResponse(op))
}

// HandleGetOperation handles GET /operations/{id}.
func (h *Handler) HandleGetOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.operationID(w, r)
	if !ok {
		return
	}
	detail, err := h.service.GetOperation(ctx, requestcontext.Actor(ctx), id)
	if err != nil {
		h.fail(ctx, w, "operation load failed", err, "operation_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOperationDetailResponse(detail))
}

// HandleRecordAttendance handles PUT /operations/{id}/attendance.
func (h *Handler) HandleRecordAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.operationID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RecordAttendanceRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	rows, err := h.service.RecordAttendance(ctx, requestcontext.Actor(ctx), id, req.parsed)
	if err != nil {
		h.fail(ctx, w, "attendance record failed", err, "operation_id", id)
		return
	}
	out := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		out[i] = toAttendanceResponse(row, "")
	}
	httputil.WriteJSON(w, http.StatusOK, RecordAttendanceResponse{OperationID: id.String(), Records: out})
}

func (h *Handler) operationID(w http.ResponseWriter, r *http.Request) (domain.OperationID, bool) {
	id, err := domain.ParseOperationID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return domain.OperationID{}, false
	}
	return id, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", requestcontext.RequestID(ctx))
	h.logger.WarnContext(ctx, msg, attrs...)
	httputil.WriteError(w, err)
}
