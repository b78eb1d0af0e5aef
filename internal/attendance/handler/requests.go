package handler

import (
	"strings"
	"time"
	"unicode/utf8"

	"roster/internal/attendance/models"
	"roster/internal/attendance/service"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

const (
	maxTitleLength       = 200
	maxBatchSize         = 500
	maxAttendanceTextLen = 500
	dateLayout           = "2006-01-02"
)

// CreateOperationRequest is the body for POST /operations.
type CreateOperationRequest struct {
	Title         string `json:"title"`
	OperationDate string `json:"operation_date"`
	OperationType string `json:"operation_type"`
	Status        string `json:"status"`
	Description   string `json:"description"`

	parsed service.CreateOperationCommand
}

func (r *CreateOperationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if utf8.RuneCountInString(r.Title) > maxTitleLength {
		return dErrors.New(dErrors.CodeValidation, "title must be at most 200 characters")
	}
	date, err := parseOperationDate(r.OperationDate)
	if err != nil {
		return err
	}
	kind, err := models.ParseOperationType(strings.TrimSpace(r.OperationType))
	if err != nil {
		return err
	}
	status, err := models.ParseOperationStatus(strings.TrimSpace(r.Status))
	if err != nil {
		return err
	}
	r.parsed = service.CreateOperationCommand{
		Title:         r.Title,
		OperationDate: date,
		OperationType: kind,
		Status:        status,
		Description:   strings.TrimSpace(r.Description),
	}
	return nil
}

// parseOperationDate accepts RFC 3339 timestamps or plain dates.
func parseOperationDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "operation_date is required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "operation_date must be RFC 3339 or YYYY-MM-DD")
	}
	return t, nil
}

type AttendanceEntryRequest struct {
	SoldierID string `json:"soldier_id"`
	Status    string `json:"status"`
	RoleHeld  string `json:"role_held"`
	Notes     string `json:"notes"`
}

// RecordAttendanceRequest is the body for PUT /operations/{id}/attendance.
type RecordAttendanceRequest struct {
	Records []AttendanceEntryRequest `json:"records"`

	parsed []service.RecordEntry
}

func (r *RecordAttendanceRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Records) == 0 {
		return dErrors.New(dErrors.CodeValidation, "records must not be empty")
	}
	if len(r.Records) > maxBatchSize {
		return dErrors.New(dErrors.CodeValidation, "at most 500 records per request")
	}
	r.parsed = make([]service.RecordEntry, 0, len(r.Records))
	for _, rec := range r.Records {
		soldierID, err := domain.ParseSoldierID(rec.SoldierID)
		if err != nil {
			return err
		}
		status, err := models.ParseStatus(strings.TrimSpace(rec.Status))
		if err != nil {
			return err
		}
		role := strings.TrimSpace(rec.RoleHeld)
		notes := strings.TrimSpace(rec.Notes)
		if utf8.RuneCountInString(role) > maxAttendanceTextLen || utf8.RuneCountInString(notes) > maxAttendanceTextLen {
			return dErrors.New(dErrors.CodeValidation, "role_held and notes must be at most 500 characters")
		}
		r.parsed = append(r.parsed, service.RecordEntry{
			SoldierID: soldierID,
			Status:    status,
			RoleHeld:  role,
			Notes:     notes,
		})
	}
	return nil
}
