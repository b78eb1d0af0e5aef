package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"roster/pkg/domain"
)

// ActionType classifies a service record entry.
type ActionType string

const (
	ActionEnlistment    ActionType = "enlistment"
	ActionPromotion     ActionType = "promotion"
	ActionTransfer      ActionType = "transfer"
	ActionStatusChange  ActionType = "status_change"
	ActionQualification ActionType = "qualification"
	ActionAward         ActionType = "award"
	ActionDiscipline    ActionType = "discipline"
	ActionNote          ActionType = "note"
)

func (a ActionType) IsValid() bool {
	switch a {
	case ActionEnlistment, ActionPromotion, ActionTransfer, ActionStatusChange,
		ActionQualification, ActionAward, ActionDiscipline, ActionNote:
		return true
	}
	return false
}

// Visibility controls who may read an entry.
type Visibility string

const (
	VisibilityPublic         Visibility = "public"
	VisibilityLeadershipOnly Visibility = "leadership_only"
)

func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityLeadershipOnly
}

// Entry is one immutable line of a soldier's service record.
//
// Invariants:
//   - Entries are only ever appended; no operation updates or deletes one
//   - Payload is a JSON object whose shape depends on ActionType
//   - PerformedBy is nil only for entries written by the system
type Entry struct {
	ID          domain.RecordID
	SoldierID   domain.SoldierID
	ActionType  ActionType
	Payload     json.RawMessage
	PerformedBy *domain.UserID
	Visibility  Visibility
	OccurredAt  time.Time
}

// NewEntry builds an entry with a fresh id, marshaling payload to JSON.
func NewEntry(soldierID domain.SoldierID, action ActionType, payload any, performedBy *domain.UserID, visibility Visibility, occurredAt time.Time) (*Entry, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action type %q", action)
	}
	if !visibility.IsValid() {
		return nil, fmt.Errorf("invalid visibility %q", visibility)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", action, err)
	}
	return &Entry{
		ID:          domain.RecordID(uuid.New()),
		SoldierID:   soldierID,
		ActionType:  action,
		Payload:     raw,
		PerformedBy: performedBy,
		Visibility:  visibility,
		OccurredAt:  occurredAt,
	}, nil
}

// DecodePayload unmarshals the entry payload into target.
func (e *Entry) DecodePayload(target any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(e.Payload, target)
}

// VisibleTo returns the visibilities a viewer may read for a soldier whose linked
// identity is owner (nil when the soldier has no linked identity). Everyone reads
// public entries; nco and above, and the soldier themself, also read leadership_only.
func VisibleTo(viewer domain.Actor, owner *domain.UserID) []Visibility {
	if viewer.Can(domain.RoleNCO) {
		return []Visibility{VisibilityPublic, VisibilityLeadershipOnly}
	}
	if owner != nil && !viewer.IsAnonymous() && viewer.ID == *owner {
		return []Visibility{VisibilityPublic, VisibilityLeadershipOnly}
	}
	return []Visibility{VisibilityPublic}
}
