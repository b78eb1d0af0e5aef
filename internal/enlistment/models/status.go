package models

import (
	"strings"

	dErrors "roster/pkg/domain-errors"
)

// Status is the review state of an enlistment.
type Status string

const (
	StatusPending            Status = "pending"
	StatusReviewing          Status = "reviewing"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusAccepted           Status = "accepted"
	StatusRejected           Status = "rejected"
)

// Statuses lists every status in review order.
var Statuses = []Status{StatusPending, StatusReviewing, StatusInterviewScheduled, StatusAccepted, StatusRejected}

// OpenStatuses are the statuses still awaiting a decision.
var OpenStatuses = []Status{StatusPending, StatusReviewing, StatusInterviewScheduled}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterviewScheduled, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(s.AllowedTargets()) == 0
}

// AllowedTargets returns the statuses reachable from s in one step.
func (s Status) AllowedTargets() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusReviewing}
	case StatusReviewing:
		return []Status{StatusInterviewScheduled, StatusRejected}
	case StatusInterviewScheduled:
		return []Status{StatusAccepted, StatusRejected}
	case StatusAccepted, StatusRejected:
		return nil
	}
	return nil
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range s.AllowedTargets() {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending Review"
	case StatusReviewing:
		return "Under Review"
	case StatusInterviewScheduled:
		return "Interview Scheduled"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Denied"
	}
	return string(s)
}

// ParseStatus validates a client-supplied status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid enlistment status: "+s)
	}
	return status, nil
}

// TransitionError builds the error returned when current cannot move to target.
func TransitionError(current, target Status) error {
	return dErrors.New(dErrors.CodeInvalidTransition,
		`cannot move application from "`+string(current)+`" to "`+string(target)+`"`)
}
