//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	l := NewLocalLimiter(3, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}
	ok, _ := l.Allow(ctx, "client-a")
	assert.False(t, ok, "burst exhausted")

	ok, _ = l.Allow(ctx, "client-b")
	assert.True(t, ok, "keys are independent")

	now = now.Add(20 * time.Second)
	ok, _ = l.Allow(ctx, "client-a")
	assert.True(t, ok, "one token refilled")
}
