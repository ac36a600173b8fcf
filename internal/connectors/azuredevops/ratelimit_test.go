package azuredevops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RateLimitConfig
		wantNil bool
	}{
		{name: "default", cfg: DefaultRateLimit},
		{name: "custom", cfg: RateLimitConfig{RequestsPerSecond: 1.0, BurstSize: 2}},
		{name: "zero burst", cfg: RateLimitConfig{RequestsPerSecond: 1.0}},
		{name: "disabled", cfg: RateLimitConfig{}, wantNil: true},
		{name: "negative rate", cfg: RateLimitConfig{RequestsPerSecond: -1}, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.cfg)
			if tt.wantNil {
				assert.Nil(t, rl)
				return
			}
			require.NotNil(t, rl)
			assert.NotNil(t, rl.limiter)
		})
	}
}

func TestRateLimiter_ZeroBurstRaisedToOne(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1.0})

	require.NotNil(t, rl)
	assert.Equal(t, 1, rl.limiter.Burst())
}

func TestRateLimiter_Wait(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	err := rl.Wait(context.Background())

	assert.NoError(t, err)
}

func TestRateLimiter_Wait_ContextCancelled(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := rl.Wait(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiter_NilNeverBlocks(t *testing.T) {
	var rl *RateLimiter

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, rl.Wait(ctx))
}
