package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"roster/pkg/domain"
)

func TestActor(t *testing.T) {
	t.Run("missing actor is anonymous", func(t *testing.T) {
		actor := Actor(context.Background())
		assert.True(t, actor.IsAnonymous())
		assert.Equal(t, domain.RoleNone, actor.Role)
	})

	t.Run("injected actor round trips", func(t *testing.T) {
		want := domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleNCO}
		ctx := WithActor(context.Background(), want)
		assert.Equal(t, want, Actor(ctx))
	})
}

func TestNow(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, Now(WithTime(context.Background(), fixed)))
	assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Second)
}

func TestRequestMetadata(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithClientIP(ctx, "10.0.0.1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Empty(t, RequestID(context.Background()))
}
