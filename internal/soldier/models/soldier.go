package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// Status is a soldier's duty status.
type Status string

const (
	StatusActive     Status = "active"
	StatusLOA        Status = "loa"
	StatusAWOL       Status = "awol"
	StatusDischarged Status = "discharged"
	StatusRetired    Status = "retired"
)

// Statuses lists every duty status in display order.
var Statuses = []Status{StatusActive, StatusLOA, StatusAWOL, StatusDischarged, StatusRetired}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusLOA, StatusAWOL, StatusDischarged, StatusRetired:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusLOA:
		return "Leave of Absence"
	case StatusAWOL:
		return "AWOL"
	case StatusDischarged:
		return "Discharged"
	case StatusRetired:
		return "Retired"
	}
	return string(s)
}

// ParseStatus validates a client-supplied status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid soldier status: "+s)
	}
	return status, nil
}

// Soldier is a member of the roster.
//
// Invariants:
//   - Created exactly once per accepted enlistment, with status active; EnlistmentID
//     points back at that enlistment and is unique
//   - DiscordID is never populated from an enlistment's discord username
//   - RankID is always set; UnitID may be nil (unassigned)
type Soldier struct {
	ID          domain.SoldierID
	UserID      *domain.UserID
	DiscordID   *string
	DisplayName string
	Callsign    string
	MOS         string
	RankID      domain.RankID
	UnitID      *domain.UnitID
	Status      Status
	JoinedAt    time.Time
	UpdatedAt   time.Time

	EnlistmentID *domain.EnlistmentID
}

// NewSoldier builds an active soldier with a fresh id.
func NewSoldier(displayName string, rankID domain.RankID, unitID *domain.UnitID, joinedAt time.Time) (*Soldier, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "soldier display name is required")
	}
	if rankID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "soldier rank is required")
	}
	return &Soldier{
		ID:          domain.SoldierID(uuid.New()),
		DisplayName: displayName,
		RankID:      rankID,
		UnitID:      unitID,
		Status:      StatusActive,
		JoinedAt:    joinedAt,
		UpdatedAt:   joinedAt,
	}, nil
}

// CanChangeStatus reports whether a status change to target is meaningful.
func (s *Soldier) CanChangeStatus(target Status) bool {
	return target.IsValid() && target != s.Status
}

// CanPromoteTo reports whether rankID differs from the current rank.
func (s *Soldier) CanPromoteTo(rankID domain.RankID) bool {
	return !rankID.IsNil() && rankID != s.RankID
}

// CanTransferTo reports whether unitID differs from the current assignment.
func (s *Soldier) CanTransferTo(unitID domain.UnitID) bool {
	if unitID.IsNil() {
		return false
	}
	return s.UnitID == nil || *s.UnitID != unitID
}

// IsLinkedTo reports whether the soldier belongs to the given identity.
func (s *Soldier) IsLinkedTo(userID domain.UserID) bool {
	return s.UserID != nil && !userID.IsNil() && *s.UserID == userID
}
