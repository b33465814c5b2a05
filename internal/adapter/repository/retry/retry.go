// Package retry wraps storage operations in an exponential-backoff
// retry loop. It sits below the business services: validation and
// not-found conditions pass through untouched, everything else is
// treated as a transient storage failure.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/bfb/corebank/internal/domain"
)

// Policy retries failed storage calls with exponential backoff. The
// delay before attempt n+1 is BaseDelay * 2^(n-1).
type Policy struct {
	maxAttempts int
	baseDelay   time.Duration
	logger      zerolog.Logger
}

// NewPolicy creates a retry policy. maxAttempts counts total executions,
// not just retries; the defaults elsewhere are 3 attempts and a 500ms
// base delay.
func NewPolicy(maxAttempts int, baseDelay time.Duration, logger zerolog.Logger) *Policy {
	return &Policy{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		logger:      logger,
	}
}

// Do executes fn, retrying on failure until maxAttempts is exhausted.
// Domain-categorized errors (not found, validation) are never retried.
// After exhaustion the last failure is wrapped as a storage error.
func (p *Policy) Do(ctx context.Context, operation string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = p.baseDelay << uint(p.maxAttempts)
	b.MaxElapsedTime = 0

	attempt := 0

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}

		if !Retryable(err) {
			var perm *permanentError
			if errors.As(err, &perm) {
				err = perm.err
			}

			return backoff.Permanent(err)
		}

		attempt++
		if attempt >= p.maxAttempts {
			return backoff.Permanent(domain.StorageError(operation, err))
		}

		p.logger.Warn().
			Str("operation", operation).
			Int("attempt", attempt).
			Int("max_attempts", p.maxAttempts).
			Dur("delay", p.baseDelay<<uint(attempt-1)).
			Err(err).
			Msg("storage operation failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

// Retryable reports whether an error may be retried. Not-found and
// validation outcomes are terminal results, not transient failures.
func Retryable(err error) bool {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var perm *permanentError
	return !errors.As(err, &perm)
}

// Permanent marks err as non-retryable regardless of its category.
// Repositories use it for failures that retrying cannot fix, like a
// rejected request to a remote API.
func Permanent(err error) error {
	return &permanentError{err: err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }
