package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestID(ctx))
}

func TestClientIP(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ClientIP(ctx))

	ctx = WithClientIP(ctx, "203.0.113.7")
	assert.Equal(t, "203.0.113.7", ClientIP(ctx))
}

func TestNow(t *testing.T) {
	t.Run("returns injected time", func(t *testing.T) {
		fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithTime(context.Background(), fixed)

		assert.True(t, HasTime(ctx))
		assert.Equal(t, fixed, Now(ctx))
	})

	t.Run("falls back to wall clock", func(t *testing.T) {
		ctx := context.Background()
		before := time.Now()

		assert.False(t, HasTime(ctx))
		assert.False(t, Now(ctx).Before(before))
	})
}
