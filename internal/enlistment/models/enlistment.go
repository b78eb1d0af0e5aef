package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// Enlistment is an application to join the roster.
//
// Invariants:
//   - Status only moves along AllowedTargets; accepted and rejected are terminal
//   - SoldierID is set exactly once, when the application is accepted
//   - ReviewedAt and ReviewedBy are set by every review transition
type Enlistment struct {
	ID              domain.EnlistmentID
	UserID          *domain.UserID
	DisplayName     string
	DiscordUsername string
	Age             int
	Timezone        string
	ArmaExperience  string
	WhyJoin         string
	ReferredBy      string
	Notes           string
	Status          Status
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *domain.UserID
	SoldierID       *domain.SoldierID
}

// Submission holds the applicant-supplied fields.
type Submission struct {
	UserID          *domain.UserID
	DisplayName     string
	DiscordUsername string
	Age             int
	Timezone        string
	ArmaExperience  string
	WhyJoin         string
	ReferredBy      string
}

// NewEnlistment builds a pending application with a fresh id.
func NewEnlistment(sub Submission, now time.Time) (*Enlistment, error) {
	name := strings.TrimSpace(sub.DisplayName)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "display name is required")
	}
	if sub.Age <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "age must be positive")
	}
	return &Enlistment{
		ID:              domain.EnlistmentID(uuid.New()),
		UserID:          sub.UserID,
		DisplayName:     name,
		DiscordUsername: strings.TrimSpace(sub.DiscordUsername),
		Age:             sub.Age,
		Timezone:        strings.TrimSpace(sub.Timezone),
		ArmaExperience:  strings.TrimSpace(sub.ArmaExperience),
		WhyJoin:         strings.TrimSpace(sub.WhyJoin),
		ReferredBy:      strings.TrimSpace(sub.ReferredBy),
		Status:          StatusPending,
		SubmittedAt:     now,
	}, nil
}

// IsConverted reports whether a soldier has already been created from the application.
func (e *Enlistment) IsConverted() bool {
	return e.SoldierID != nil && !e.SoldierID.IsNil()
}

// IsReviewed reports whether the review fields are populated.
func (e *Enlistment) IsReviewed() bool {
	return e.ReviewedAt != nil && e.ReviewedBy != nil
}

// CanTransitionTo checks target against the persisted status.
func (e *Enlistment) CanTransitionTo(target Status) error {
	if !e.Status.CanTransitionTo(target) {
		return TransitionError(e.Status, target)
	}
	return nil
}
