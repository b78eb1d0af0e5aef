package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// OperationType classifies an operation.
type OperationType string

const (
	OperationTypeOperation OperationType = "operation"
	OperationTypeTraining  OperationType = "training"
	OperationTypeFTX       OperationType = "ftx"
)

func ParseOperationType(s string) (OperationType, error) {
	t := OperationType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case OperationTypeOperation, OperationTypeTraining, OperationTypeFTX:
		return t, nil
	case "":
		return OperationTypeOperation, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "invalid operation type: "+s)
}

// OperationStatus is the lifecycle state of an operation.
type OperationStatus string

const (
	OperationScheduled OperationStatus = "scheduled"
	OperationCompleted OperationStatus = "completed"
	OperationCancelled OperationStatus = "cancelled"
)

// ParseOperationStatus defaults an empty value to completed: operations are
// usually logged after they have run.
func ParseOperationStatus(s string) (OperationStatus, error) {
	st := OperationStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case OperationScheduled, OperationCompleted, OperationCancelled:
		return st, nil
	case "":
		return OperationCompleted, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "invalid operation status: "+s)
}

// Status is a soldier's attendance at one operation.
type Status string

const (
	StatusPresent Status = "present"
	StatusExcused Status = "excused"
	StatusAbsent  Status = "absent"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPresent, StatusExcused, StatusAbsent:
		return st, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "invalid attendance status: "+s)
}

// Operation is a scheduled or completed unit event.
type Operation struct {
	ID            domain.OperationID
	Title         string
	OperationDate time.Time
	OperationType OperationType
	Status        OperationStatus
	Description   string
	CreatedBy     *domain.UserID
	CreatedAt     time.Time
}

// NewOperation builds an operation with a fresh id.
func NewOperation(title string, date time.Time, kind OperationType, status OperationStatus, description string, createdBy *domain.UserID, now time.Time) (*Operation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "operation title is required")
	}
	if date.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "operation date is required")
	}
	return &Operation{
		ID:            domain.OperationID(uuid.New()),
		Title:         title,
		OperationDate: date,
		OperationType: kind,
		Status:        status,
		Description:   description,
		CreatedBy:     createdBy,
		CreatedAt:     now,
	}, nil
}

// Attendance is one soldier's record for one operation.
//
// Invariants:
//   - At most one row per (SoldierID, OperationID); re-recording replaces it
//   - CreatedAt is kept across re-recording, UpdatedAt moves
type Attendance struct {
	ID          uuid.UUID
	OperationID domain.OperationID
	SoldierID   domain.SoldierID
	Status      Status
	RoleHeld    string
	Notes       string
	RecordedBy  *domain.UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CombatEntry is an attendance row joined with its operation, for the profile view.
type CombatEntry struct {
	Operation  Operation
	Status     Status
	RoleHeld   string
	Notes      string
	RecordedAt time.Time
}
