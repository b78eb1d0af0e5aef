package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	srmodels "roster/internal/servicerecord/models"
	"roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

const (
	actionPromotion     = "promotion"
	actionTransfer      = "transfer"
	actionStatusChange  = "status_change"
	actionQualification = "qualification"
	actionAward         = "award"
	actionDiscipline    = "discipline"
	actionNote          = "note"

	dateLayout = "2006-01-02"

	NoteMinLength = 10
	NoteMaxLength = 2000
)

// Role thresholds for personnel actions.
var (
	PromoteRole       = domain.RoleCommand
	TransferRole      = domain.RoleCommand
	StatusChangeRole  = domain.RoleCommand
	QualificationRole = domain.RoleNCO
	AwardRole         = domain.RoleCommand
	DisciplineRole    = domain.RoleCommand
	NoteRole          = domain.RoleNCO
)

type PromoteCommand struct {
	SoldierID domain.SoldierID
	RankID    domain.RankID
	Reason    string
}

type TransferCommand struct {
	SoldierID     domain.SoldierID
	UnitID        domain.UnitID
	EffectiveDate time.Time
	Reason        string
}

type StatusChangeCommand struct {
	SoldierID domain.SoldierID
	Status    models.Status
	Reason    string
}

type QualificationCommand struct {
	SoldierID       domain.SoldierID
	QualificationID domain.QualificationID
	AwardedAt       time.Time
	Notes           string
}

type AwardCommand struct {
	SoldierID domain.SoldierID
	AwardID   domain.AwardID
	Citation  string
	AwardedAt time.Time
}

type DisciplineCommand struct {
	SoldierID  domain.SoldierID
	ActionType models.DisciplineType
	Reason     string
}

type NoteCommand struct {
	SoldierID domain.SoldierID
	Note      string
}

// Promote moves a soldier to a different rank. The from-rank is read from the
// persisted soldier and the update only applies if it is still current.
func (s *Service) Promote(ctx context.Context, actor domain.Actor, cmd PromoteCommand) (*models.Soldier, error) {
	var result *models.Soldier
	err := s.run(ctx, actionPromotion, PromoteRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}
		to, err := s.store.FindRank(ctx, cmd.RankID)
		if err != nil {
			return referenceError(err, "rank")
		}
		if !soldier.CanPromoteTo(to.ID) {
			return dErrors.New(dErrors.CodeValidation, "soldier already holds rank "+to.Abbreviation)
		}
		fromName := "Unknown"
		if from, err := s.store.FindRank(ctx, soldier.RankID); err == nil {
			fromName = from.Name
		}

		now := requestcontext.Now(ctx)
		if err := s.store.UpdateRank(ctx, soldier.ID, soldier.RankID, to.ID, now); err != nil {
			return conflictOnStale(err, "rank")
		}
		fromID := soldier.RankID
		soldier.RankID = to.ID
		soldier.UpdatedAt = now

		s.record(ctx, actor, soldier.ID, srmodels.ActionPromotion, srmodels.PromotionPayload{
			FromRankID:      fromID.String(),
			FromRankName:    fromName,
			ToRankID:        to.ID.String(),
			ToRankName:      to.Name,
			Reason:          cmd.Reason,
			PerformedByName: s.PerformerName(ctx, actor),
		}, srmodels.VisibilityPublic)
		s.logAudit(ctx, "soldier_promoted",
			"soldier_id", soldier.ID,
			"from_rank_id", fromID,
			"to_rank_id", to.ID,
			"user_id", actor.ID,
		)
		result = soldier
		return nil
	})
	return result, err
}

// Transfer assigns a soldier to a different unit.
func (s *Service) Transfer(ctx context.Context, actor domain.Actor, cmd TransferCommand) (*models.Soldier, error) {
	var result *models.Soldier
	err := s.run(ctx, actionTransfer, TransferRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}
		to, err := s.store.FindUnit(ctx, cmd.UnitID)
		if err != nil {
			return referenceError(err, "unit")
		}
		if !soldier.CanTransferTo(to.ID) {
			return dErrors.New(dErrors.CodeValidation, "soldier is already assigned to "+to.Name)
		}

		payload := srmodels.TransferPayload{
			ToUnitID:      to.ID.String(),
			ToUnitName:    to.Name,
			EffectiveDate: cmd.EffectiveDate.Format(dateLayout),
			Reason:        cmd.Reason,
		}
		if soldier.UnitID != nil {
			fromID := soldier.UnitID.String()
			payload.FromUnitID = &fromID
			if from, err := s.store.FindUnit(ctx, *soldier.UnitID); err == nil {
				payload.FromUnitName = &from.Name
			}
		}

		now := requestcontext.Now(ctx)
		if err := s.store.UpdateUnit(ctx, soldier.ID, soldier.UnitID, to.ID, now); err != nil {
			return conflictOnStale(err, "unit")
		}
		unitID := to.ID
		soldier.UnitID = &unitID
		soldier.UpdatedAt = now

		payload.PerformedByName = s.PerformerName(ctx, actor)
		s.record(ctx, actor, soldier.ID, srmodels.ActionTransfer, payload, srmodels.VisibilityPublic)
		s.logAudit(ctx, "soldier_transferred",
			"soldier_id", soldier.ID,
			"to_unit_id", to.ID,
			"user_id", actor.ID,
		)
		result = soldier
		return nil
	})
	return result, err
}

// ChangeStatus moves a soldier to a different duty status.
func (s *Service) ChangeStatus(ctx context.Context, actor domain.Actor, cmd StatusChangeCommand) (*models.Soldier, error) {
	var result *models.Soldier
	err := s.run(ctx, actionStatusChange, StatusChangeRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		if !cmd.Status.IsValid() {
			return dErrors.New(dErrors.CodeValidation, "invalid soldier status: "+string(cmd.Status))
		}
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}
		if !soldier.CanChangeStatus(cmd.Status) {
			return dErrors.New(dErrors.CodeValidation, "soldier status is already "+string(cmd.Status))
		}

		now := requestcontext.Now(ctx)
		from := soldier.Status
		if err := s.store.UpdateStatus(ctx, soldier.ID, from, cmd.Status, now); err != nil {
			return conflictOnStale(err, "status")
		}
		soldier.Status = cmd.Status
		soldier.UpdatedAt = now

		s.record(ctx, actor, soldier.ID, srmodels.ActionStatusChange, srmodels.StatusChangePayload{
			FromStatus:      string(from),
			ToStatus:        string(cmd.Status),
			Reason:          cmd.Reason,
			PerformedByName: s.PerformerName(ctx, actor),
		}, srmodels.VisibilityPublic)
		s.logAudit(ctx, "soldier_status_changed",
			"soldier_id", soldier.ID,
			"from_status", from,
			"to_status", cmd.Status,
			"user_id", actor.ID,
		)
		result = soldier
		return nil
	})
	return result, err
}

// GrantQualification records that a soldier holds a qualification.
func (s *Service) GrantQualification(ctx context.Context, actor domain.Actor, cmd QualificationCommand) (*models.SoldierQualification, error) {
	var result *models.SoldierQualification
	err := s.run(ctx, actionQualification, QualificationRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}
		qual, err := s.store.FindQualification(ctx, cmd.QualificationID)
		if err != nil {
			return referenceError(err, "qualification")
		}

		awardedAt := cmd.AwardedAt
		if awardedAt.IsZero() {
			awardedAt = requestcontext.Now(ctx)
		}
		grant := &models.SoldierQualification{
			ID:              uuid.New(),
			SoldierID:       soldier.ID,
			QualificationID: qual.ID,
			AwardedBy:       actor.UserRef(),
			AwardedAt:       awardedAt,
		}
		if err := s.store.GrantQualification(ctx, grant); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "soldier already holds "+qual.Name)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant qualification")
		}

		s.record(ctx, actor, soldier.ID, srmodels.ActionQualification, srmodels.QualificationPayload{
			QualificationID:   qual.ID.String(),
			QualificationName: qual.Name,
			AwardedDate:       awardedAt.Format(dateLayout),
			Notes:             cmd.Notes,
			PerformedByName:   s.PerformerName(ctx, actor),
		}, srmodels.VisibilityPublic)
		s.logAudit(ctx, "qualification_granted",
			"soldier_id", soldier.ID,
			"qualification_id", qual.ID,
			"user_id", actor.ID,
		)
		result = grant
		return nil
	})
	return result, err
}

// GrantAward presents an award to a soldier. The same award may be presented again.
func (s *Service) GrantAward(ctx context.Context, actor domain.Actor, cmd AwardCommand) (*models.SoldierAward, error) {
	var result *models.SoldierAward
	err := s.run(ctx, actionAward, AwardRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}
		award, err := s.store.FindAward(ctx, cmd.AwardID)
		if err != nil {
			return referenceError(err, "award")
		}

		awardedAt := cmd.AwardedAt
		if awardedAt.IsZero() {
			awardedAt = requestcontext.Now(ctx)
		}
		grant := &models.SoldierAward{
			ID:        uuid.New(),
			SoldierID: soldier.ID,
			AwardID:   award.ID,
			Citation:  strings.TrimSpace(cmd.Citation),
			AwardedBy: actor.UserRef(),
			AwardedAt: awardedAt,
		}
		if err := s.store.GrantAward(ctx, grant); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant award")
		}

		s.record(ctx, actor, soldier.ID, srmodels.ActionAward, srmodels.AwardPayload{
			AwardID:         award.ID.String(),
			AwardName:       award.Name,
			AwardedDate:     awardedAt.Format(dateLayout),
			Citation:        grant.Citation,
			PerformedByName: s.PerformerName(ctx, actor),
		}, srmodels.VisibilityPublic)
		s.logAudit(ctx, "award_granted",
			"soldier_id", soldier.ID,
			"award_id", award.ID,
			"user_id", actor.ID,
		)
		result = grant
		return nil
	})
	return result, err
}

// RecordDiscipline files a disciplinary action. Its service record entry is
// leadership only.
func (s *Service) RecordDiscipline(ctx context.Context, actor domain.Actor, cmd DisciplineCommand) (*models.DisciplinaryAction, error) {
	var result *models.DisciplinaryAction
	err := s.run(ctx, actionDiscipline, DisciplineRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		reason := strings.TrimSpace(cmd.Reason)
		if reason == "" {
			return dErrors.New(dErrors.CodeValidation, "reason is required")
		}
		if _, err := models.ParseDisciplineType(string(cmd.ActionType)); err != nil {
			return err
		}
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}

		action := &models.DisciplinaryAction{
			ID:         uuid.New(),
			SoldierID:  soldier.ID,
			ActionType: cmd.ActionType,
			Reason:     reason,
			IssuedBy:   actor.UserRef(),
			IssuedAt:   requestcontext.Now(ctx),
		}
		if err := s.store.RecordDiscipline(ctx, action); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record disciplinary action")
		}

		s.record(ctx, actor, soldier.ID, srmodels.ActionDiscipline, srmodels.DisciplinePayload{
			ActionType:      string(action.ActionType),
			Reason:          reason,
			PerformedByName: s.PerformerName(ctx, actor),
		}, srmodels.VisibilityLeadershipOnly)
		s.logAudit(ctx, "discipline_recorded",
			"soldier_id", soldier.ID,
			"action_type", action.ActionType,
			"user_id", actor.ID,
		)
		result = action
		return nil
	})
	return result, err
}

// AddNote writes a leadership-only note. The service record entry is the only
// write, so an append failure is returned.
func (s *Service) AddNote(ctx context.Context, actor domain.Actor, cmd NoteCommand) (domain.RecordID, error) {
	var result domain.RecordID
	err := s.run(ctx, actionNote, NoteRole, actor, cmd.SoldierID, func(ctx context.Context) error {
		note := strings.TrimSpace(cmd.Note)
		if n := utf8.RuneCountInString(note); n < NoteMinLength || n > NoteMaxLength {
			return dErrors.New(dErrors.CodeValidation, "note must be between 10 and 2000 characters")
		}
		soldier, err := s.loadSoldier(ctx, cmd.SoldierID)
		if err != nil {
			return err
		}
		id, err := s.appendEntry(ctx, actor, soldier.ID, srmodels.ActionNote, srmodels.NotePayload{
			Note:            note,
			PerformedByName: s.PerformerName(ctx, actor),
		}, srmodels.VisibilityLeadershipOnly)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add note")
		}
		s.logAudit(ctx, "note_added",
			"soldier_id", soldier.ID,
			"record_id", id,
			"user_id", actor.ID,
		)
		result = id
		return nil
	})
	return result, err
}

func referenceError(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeValidation, what+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+what)
}
