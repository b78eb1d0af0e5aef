package handler

import (
	"strings"
	"time"
	"unicode/utf8"

	"roster/internal/soldier/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

const (
	maxReasonLength   = 1000
	maxCitationLength = 2000
	dateLayout        = "2006-01-02"
)

// PromoteRequest is the body for POST /soldiers/{id}/promotions.
type PromoteRequest struct {
	RankID string `json:"rank_id"`
	Reason string `json:"reason"`

	parsedRankID domain.RankID
}

func (r *PromoteRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if utf8.RuneCountInString(r.Reason) > maxReasonLength {
		return dErrors.New(dErrors.CodeValidation, "reason must be at most 1000 characters")
	}
	rankID, err := domain.ParseRankID(strings.TrimSpace(r.RankID))
	if err != nil {
		return err
	}
	r.parsedRankID = rankID
	return nil
}

// TransferRequest is the body for POST /soldiers/{id}/transfers.
type TransferRequest struct {
	UnitID        string `json:"unit_id"`
	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason"`

	parsedUnitID        domain.UnitID
	parsedEffectiveDate time.Time
}

func (r *TransferRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if utf8.RuneCountInString(r.Reason) > maxReasonLength {
		return dErrors.New(dErrors.CodeValidation, "reason must be at most 1000 characters")
	}
	unitID, err := domain.ParseUnitID(strings.TrimSpace(r.UnitID))
	if err != nil {
		return err
	}
	r.parsedUnitID = unitID

	effective, err := time.Parse(dateLayout, strings.TrimSpace(r.EffectiveDate))
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "effective_date must be YYYY-MM-DD")
	}
	r.parsedEffectiveDate = effective
	return nil
}

// StatusChangeRequest is the body for POST /soldiers/{id}/status.
type StatusChangeRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`

	parsedStatus models.Status
}

func (r *StatusChangeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if utf8.RuneCountInString(r.Reason) > maxReasonLength {
		return dErrors.New(dErrors.CodeValidation, "reason must be at most 1000 characters")
	}
	status, err := models.ParseStatus(r.Status)
	if err != nil {
		return err
	}
	r.parsedStatus = status
	return nil
}

// QualificationRequest is the body for POST /soldiers/{id}/qualifications.
type QualificationRequest struct {
	QualificationID string `json:"qualification_id"`
	AwardedDate     string `json:"awarded_date,omitempty"`
	Notes           string `json:"notes,omitempty"`

	parsedQualificationID domain.QualificationID
	parsedAwardedAt       time.Time
}

func (r *QualificationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	qualID, err := domain.ParseQualificationID(strings.TrimSpace(r.QualificationID))
	if err != nil {
		return err
	}
	r.parsedQualificationID = qualID
	r.Notes = strings.TrimSpace(r.Notes)

	awardedAt, err := parseOptionalDate(r.AwardedDate, "awarded_date")
	if err != nil {
		return err
	}
	r.parsedAwardedAt = awardedAt
	return nil
}

// AwardRequest is the body for POST /soldiers/{id}/awards.
type AwardRequest struct {
	AwardID     string `json:"award_id"`
	Citation    string `json:"citation"`
	AwardedDate string `json:"awarded_date,omitempty"`

	parsedAwardID   domain.AwardID
	parsedAwardedAt time.Time
}

func (r *AwardRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if utf8.RuneCountInString(r.Citation) > maxCitationLength {
		return dErrors.New(dErrors.CodeValidation, "citation must be at most 2000 characters")
	}
	awardID, err := domain.ParseAwardID(strings.TrimSpace(r.AwardID))
	if err != nil {
		return err
	}
	r.parsedAwardID = awardID

	awardedAt, err := parseOptionalDate(r.AwardedDate, "awarded_date")
	if err != nil {
		return err
	}
	r.parsedAwardedAt = awardedAt
	return nil
}

// DisciplineRequest is the body for POST /soldiers/{id}/discipline.
type DisciplineRequest struct {
	ActionType string `json:"action_type"`
	Reason     string `json:"reason"`

	parsedType models.DisciplineType
}

func (r *DisciplineRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		return dErrors.New(dErrors.CodeValidation, "reason is required")
	}
	if utf8.RuneCountInString(r.Reason) > maxReasonLength {
		return dErrors.New(dErrors.CodeValidation, "reason must be at most 1000 characters")
	}
	kind, err := models.ParseDisciplineType(r.ActionType)
	if err != nil {
		return err
	}
	r.parsedType = kind
	return nil
}

// NoteRequest is the body for POST /soldiers/{id}/notes. Length is checked by
// the service.
type NoteRequest struct {
	Note string `json:"note"`
}

func (r *NoteRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Note) == "" {
		return dErrors.New(dErrors.CodeValidation, "note is required")
	}
	return nil
}

func parseOptionalDate(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, field+" must be YYYY-MM-DD")
	}
	return t, nil
}
