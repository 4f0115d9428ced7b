package inventory

import (
	"context"
	"math/rand/v2"
	"time"
)

// maxBackoffShift acota el crecimiento exponencial de la espera.
const maxBackoffShift = 10

// backoff devuelve la espera antes del intento attempt+1: base·2^(attempt-1) más jitter en [0, base).
func backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	shift := attempt - 1
	if shift < 0 {
		shift = 0
	}
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	d := base * time.Duration(1<<shift)
	return d + time.Duration(rand.Int64N(int64(base)))
}

// sleepCtx espera d o hasta que ctx se cancele.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
