package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roster/internal/soldier/models"
	"roster/internal/soldier/service"
	"roster/pkg/domain"
	"roster/pkg/platform/httputil"
	"roster/pkg/requestcontext"
)

// Service defines the soldier operations exposed over HTTP.
type Service interface {
	Profile(ctx context.Context, viewer domain.Actor, id domain.SoldierID) (*service.Profile, error)
	Roster(ctx context.Context, viewer domain.Actor) (*service.Roster, error)
	Orbat(ctx context.Context) (*service.Orbat, error)
	Promote(ctx context.Context, actor domain.Actor, cmd service.PromoteCommand) (*models.Soldier, error)
	Transfer(ctx context.Context, actor domain.Actor, cmd service.TransferCommand) (*models.Soldier, error)
	ChangeStatus(ctx context.Context, actor domain.Actor, cmd service.StatusChangeCommand) (*models.Soldier, error)
	GrantQualification(ctx context.Context, actor domain.Actor, cmd service.QualificationCommand) (*models.SoldierQualification, error)
	GrantAward(ctx context.Context, actor domain.Actor, cmd service.AwardCommand) (*models.SoldierAward, error)
	RecordDiscipline(ctx context.Context, actor domain.Actor, cmd service.DisciplineCommand) (*models.DisciplinaryAction, error)
	AddNote(ctx context.Context, actor domain.Actor, cmd service.NoteCommand) (domain.RecordID, error)
}

// Handler wires soldier endpoints to the soldier service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts soldier endpoints. The router is expected to require identity.
func (h *Handler) Register(r chi.Router) {
	r.Get("/roster", h.HandleRoster)
	r.Route("/soldiers/{id}", func(r chi.Router) {
		r.Get("/", h.HandleProfile)
		r.Post("/promotions", h.HandlePromote)
		r.Post("/transfers", h.HandleTransfer)
		r.Post("/status", h.HandleStatusChange)
		r.Post("/qualifications", h.HandleGrantQualification)
		r.Post("/awards", h.HandleGrantAward)
		r.Post("/discipline", h.HandleDiscipline)
		r.Post("/notes", h.HandleNote)
	})
}

// RegisterPublic mounts the order of battle, which anonymous visitors may read.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/orbat", h.HandleOrbat)
}

// HandleOrbat handles GET /orbat.
func (h *Handler) HandleOrbat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orbat, err := h.service.Orbat(ctx)
	if err != nil {
		h.fail(ctx, w, "orbat load failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOrbatResponse(orbat))
}

// HandleRoster handles GET /roster.
func (h *Handler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roster, err := h.service.Roster(ctx, requestcontext.Actor(ctx))
	if err != nil {
		h.fail(ctx, w, "roster load failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRosterResponse(roster))
}

// HandleProfile handles GET /soldiers/{id}.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	profile, err := h.service.Profile(ctx, requestcontext.Actor(ctx), soldierID)
	if err != nil {
		h.fail(ctx, w, "profile load failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

// HandlePromote handles POST /soldiers/{id}/promotions.
func (h *Handler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PromoteRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	soldier, err := h.service.Promote(ctx, requestcontext.Actor(ctx), service.PromoteCommand{
		SoldierID: soldierID,
		RankID:    req.parsedRankID,
		Reason:    req.Reason,
	})
	if err != nil {
		h.fail(ctx, w, "promotion failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSoldierResponse(soldier, nil, nil))
}

// HandleTransfer handles POST /soldiers/{id}/transfers.
func (h *Handler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[TransferRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	soldier, err := h.service.Transfer(ctx, requestcontext.Actor(ctx), service.TransferCommand{
		SoldierID:     soldierID,
		UnitID:        req.parsedUnitID,
		EffectiveDate: req.parsedEffectiveDate,
		Reason:        req.Reason,
	})
	if err != nil {
		h.fail(ctx, w, "transfer failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSoldierResponse(soldier, nil, nil))
}

// HandleStatusChange handles POST /soldiers/{id}/status.
func (h *Handler) HandleStatusChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusChangeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	soldier, err := h.service.ChangeStatus(ctx, requestcontext.Actor(ctx), service.StatusChangeCommand{
		SoldierID: soldierID,
		Status:    req.parsedStatus,
		Reason:    req.Reason,
	})
	if err != nil {
		h.fail(ctx, w, "status change failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSoldierResponse(soldier, nil, nil))
}

// HandleGrantQualification handles POST /soldiers/{id}/qualifications.
func (h *Handler) HandleGrantQualification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[QualificationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	grant, err := h.service.GrantQualification(ctx, requestcontext.Actor(ctx), service.QualificationCommand{
		SoldierID:       soldierID,
		QualificationID: req.parsedQualificationID,
		AwardedAt:       req.parsedAwardedAt,
		Notes:           req.Notes,
	})
	if err != nil {
		h.fail(ctx, w, "qualification grant failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, GrantResponse{
		ID:        grant.ID.String(),
		SoldierID: grant.SoldierID.String(),
		AwardedAt: grant.AwardedAt,
	})
}

// HandleGrantAward handles POST /soldiers/{id}/awards.
func (h *Handler) HandleGrantAward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AwardRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	grant, err := h.service.GrantAward(ctx, requestcontext.Actor(ctx), service.AwardCommand{
		SoldierID: soldierID,
		AwardID:   req.parsedAwardID,
		Citation:  req.Citation,
		AwardedAt: req.parsedAwardedAt,
	})
	if err != nil {
		h.fail(ctx, w, "award grant failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, GrantResponse{
		ID:        grant.ID.String(),
		SoldierID: grant.SoldierID.String(),
		AwardedAt: grant.AwardedAt,
	})
}

// HandleDiscipline handles POST /soldiers/{id}/discipline.
func (h *Handler) HandleDiscipline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DisciplineRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	action, err := h.service.RecordDiscipline(ctx, requestcontext.Actor(ctx), service.DisciplineCommand{
		SoldierID:  soldierID,
		ActionType: req.parsedType,
		Reason:     req.Reason,
	})
	if err != nil {
		h.fail(ctx, w, "disciplinary action failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, DisciplineResponse{
		ID:         action.ID.String(),
		ActionType: string(action.ActionType),
		Reason:     action.Reason,
		IssuedBy:   userString(action.IssuedBy),
		IssuedAt:   action.IssuedAt,
	})
}

// HandleNote handles POST /soldiers/{id}/notes.
func (h *Handler) HandleNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	soldierID, ok := h.soldierID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[NoteRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	recordID, err := h.service.AddNote(ctx, requestcontext.Actor(ctx), service.NoteCommand{
		SoldierID: soldierID,
		Note:      req.Note,
	})
	if err != nil {
		h.fail(ctx, w, "note failed", err, "soldier_id", soldierID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, NoteResponse{RecordID: recordID.String()})
}

func (h *Handler) soldierID(w http.ResponseWriter, r *http.Request) (domain.SoldierID, bool) {
	id, err := domain.ParseSoldierID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return domain.SoldierID{}, false
	}
	return id, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", requestcontext.RequestID(ctx))
	h.logger.WarnContext(ctx, msg, attrs...)
	httputil.WriteError(w, err)
}
