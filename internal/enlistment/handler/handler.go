package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roster/internal/enlistment/models"
	"roster/internal/enlistment/service"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/httputil"
	pstrings "roster/pkg/platform/strings"
	"roster/pkg/requestcontext"
)

// Service defines the enlistment operations exposed over HTTP.
type Service interface {
	Submit(ctx context.Context, sub models.Submission) (*models.Enlistment, error)
	Get(ctx context.Context, actor domain.Actor, id domain.EnlistmentID) (*models.Enlistment, error)
	List(ctx context.Context, actor domain.Actor, statuses []models.Status) ([]*models.Enlistment, error)
	Counts(ctx context.Context, actor domain.Actor) (map[models.Status]int, error)
	Advance(ctx context.Context, actor domain.Actor, id domain.EnlistmentID, target models.Status) (*models.Enlistment, error)
	Reject(ctx context.Context, actor domain.Actor, id domain.EnlistmentID) (*models.Enlistment, error)
	AcceptApplication(ctx context.Context, actor domain.Actor, cmd service.AcceptCommand) (*service.AcceptResult, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the application form. Identity is optional.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/enlistments", h.HandleSubmit)
}

// Register mounts the review endpoints. The router is expected to require identity.
func (h *Handler) Register(r chi.Router) {
	r.Get("/enlistments", h.HandleList)
	r.Route("/enlistments/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Post("/advance", h.HandleAdvance)
		r.Post("/accept", h.HandleAccept)
		r.Post("/reject", h.HandleReject)
	})
}

// HandleSubmit handles POST /enlistments.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	e, err := h.service.Submit(ctx, req.submission(requestcontext.Actor(ctx).UserRef()))
	if err != nil {
		h.fail(ctx, w, "enlistment submit failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, SubmitResponse{
		ID:          e.ID.String(),
		Status:      string(e.Status),
		StatusLabel: e.Status.Label(),
		SubmittedAt: e.SubmittedAt,
	})
}

// HandleList handles GET /enlistments?status=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := requestcontext.Actor(ctx)
	var statuses []models.Status
	for _, raw := range pstrings.SplitList(r.URL.Query()["status"]...) {
		st, err := models.ParseStatus(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		statuses = append(statuses, st)
	}
	list, err := h.service.List(ctx, actor, statuses)
	if err != nil {
		h.fail(ctx, w, "enlistment list failed", err)
		return
	}
	counts, err := h.service.Counts(ctx, actor)
	if err != nil {
		h.fail(ctx, w, "enlistment counts failed", err)
		return
	}
	out := make([]EnlistmentResponse, len(list))
	for i, e := range list {
		out[i] = toEnlistmentResponse(e)
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Enlistments: out, Counts: toCounts(counts)})
}

// HandleGet handles GET /enlistments/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.enlistmentID(w, r)
	if !ok {
		return
	}
	e, err := h.service.Get(ctx, requestcontext.Actor(ctx), id)
	if err != nil {
		h.fail(ctx, w, "enlistment load failed", err, "enlistment_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEnlistmentResponse(e))
}

// HandleAdvance handles POST /enlistments/{id}/advance.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.enlistmentID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AdvanceRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	e, err := h.service.Advance(ctx, requestcontext.Actor(ctx), id, req.parsedTarget)
	if err != nil {
		h.fail(ctx, w, "enlistment advance failed", err, "enlistment_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEnlistmentResponse(e))
}

// HandleAccept handles POST /enlistments/{id}/accept.
func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.enlistmentID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AcceptRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	result, err := h.service.AcceptApplication(ctx, requestcontext.Actor(ctx), service.AcceptCommand{
		EnlistmentID: id,
		RankID:       req.parsedRankID,
		UnitID:       req.parsedUnitID,
	})
	if err != nil {
		h.fail(ctx, w, "enlistment accept failed", err, "enlistment_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AcceptResponse{
		Enlistment: toEnlistmentResponse(result.Enlistment),
		SoldierID:  result.SoldierID.String(),
		Converted:  result.Converted,
	})
}

// HandleReject handles POST /enlistments/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.enlistmentID(w, r)
	if !ok {
		return
	}
	e, err := h.service.Reject(ctx, requestcontext.Actor(ctx), id)
	if err != nil {
		h.fail(ctx, w, "enlistment reject failed", err, "enlistment_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEnlistmentResponse(e))
}

func (h *Handler) enlistmentID(w http.ResponseWriter, r *http.Request) (domain.EnlistmentID, bool) {
	id, err := domain.ParseEnlistmentID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return domain.EnlistmentID{}, false
	}
	return id, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", requestcontext.RequestID(ctx))
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
