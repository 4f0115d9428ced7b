package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	assert.Zero(t, backoff(0, 3))

	base := 10 * time.Millisecond
	for attempt := 1; attempt <= 4; attempt++ {
		d := backoff(base, attempt)
		floor := base * time.Duration(1<<(attempt-1))
		assert.GreaterOrEqual(t, d, floor)
		assert.Less(t, d, floor+base)
	}

	capped := backoff(base, 50)
	assert.Less(t, capped, base*time.Duration(1<<maxBackoffShift)+base)
}

func TestSleepCtxCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, sleepCtx(ctx, 0), context.Canceled)
}
