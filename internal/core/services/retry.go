// internal/core/services/retry.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/tecops/assetdesk/internal/core/domain"
)

// RetryPolicy bounds how often a write-conflicted operation is replayed.
// Backoff grows linearly: attempt n sleeps n*Backoff before retrying.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy is used by the allocation engine for seat updates
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	Backoff:     100 * time.Millisecond,
}

// withRetry runs fn up to p.MaxAttempts times, replaying only on
// domain.ErrWriteConflict. Any other error, including context cancellation,
// returns immediately. The final conflict surfaces to the caller.
func withRetry(ctx context.Context, p RetryPolicy, fn func() error) error {
	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, domain.ErrWriteConflict) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * p.Backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
