package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/servicerecord/models"
	"roster/pkg/domain"
)

func TestToEvent(t *testing.T) {
	performer := domain.UserID(uuid.New())
	at := time.Date(2025, 2, 1, 8, 30, 0, 0, time.FixedZone("EST", -5*3600))
	entry, err := models.NewEntry(domain.SoldierID(uuid.New()), models.ActionPromotion,
		models.PromotionPayload{ToRankName: "Corporal"}, &performer, models.VisibilityPublic, at)
	require.NoError(t, err)

	ev := ToEvent(entry)
	assert.Equal(t, entry.ID.String(), ev.RecordID)
	assert.Equal(t, "promotion", ev.ActionType)
	require.NotNil(t, ev.PerformedBy)
	assert.Equal(t, performer.String(), *ev.PerformedBy)
	assert.Equal(t, time.UTC, ev.OccurredAt.Location())

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"to_rank_name":"Corporal"`)
}

func TestToEventSystemEntry(t *testing.T) {
	entry := &models.Entry{ActionType: models.ActionNote, Visibility: models.VisibilityLeadershipOnly}
	ev := ToEvent(entry)
	assert.Nil(t, ev.PerformedBy)
	assert.JSONEq(t, `{}`, string(ev.Payload))
}

func TestNewKafkaRequiresBrokers(t *testing.T) {
	_, err := NewKafka(nil, "topic")
	require.Error(t, err)
}
