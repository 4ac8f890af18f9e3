package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// Token expiry checks and trend windows depend on it, so tests can
// substitute a fixed clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
