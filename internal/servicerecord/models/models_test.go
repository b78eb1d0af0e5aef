package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/pkg/domain"
)

func TestNewEntry(t *testing.T) {
	soldierID := domain.SoldierID(uuid.New())
	performer := domain.UserID(uuid.New())
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("payload is marshaled", func(t *testing.T) {
		entry, err := NewEntry(soldierID, ActionEnlistment, EnlistmentPayload{
			EnlistmentID:    "e-1",
			DisplayName:     "Doe",
			PerformedByName: "Unknown",
		}, &performer, VisibilityPublic, at)
		require.NoError(t, err)
		assert.False(t, entry.ID.IsNil())
		assert.JSONEq(t, `{"enlistment_id":"e-1","display_name":"Doe","performed_by_name":"Unknown"}`, string(entry.Payload))

		var decoded EnlistmentPayload
		require.NoError(t, entry.DecodePayload(&decoded))
		assert.Equal(t, "Doe", decoded.DisplayName)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		_, err := NewEntry(soldierID, ActionType("medal"), nil, nil, VisibilityPublic, at)
		require.Error(t, err)
	})

	t.Run("unknown visibility is rejected", func(t *testing.T) {
		_, err := NewEntry(soldierID, ActionNote, NotePayload{}, nil, Visibility("secret"), at)
		require.Error(t, err)
	})
}

func TestVisibleTo(t *testing.T) {
	owner := domain.UserID(uuid.New())
	all := []Visibility{VisibilityPublic, VisibilityLeadershipOnly}
	public := []Visibility{VisibilityPublic}

	tests := []struct {
		name   string
		viewer domain.Actor
		owner  *domain.UserID
		want   []Visibility
	}{
		{"anonymous sees public", domain.Anonymous, &owner, public},
		{"member sees public", domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleMember}, &owner, public},
		{"member sees own leadership entries", domain.Actor{ID: owner, Role: domain.RoleMember}, &owner, all},
		{"nco sees everything", domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleNCO}, nil, all},
		{"admin sees everything", domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}, &owner, all},
		{"unlinked soldier hides leadership entries", domain.Actor{ID: owner, Role: domain.RoleMember}, nil, public},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleTo(tt.viewer, tt.owner))
		})
	}
}
