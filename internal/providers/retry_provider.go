package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-worm-tracker/internal/domain"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff on the
// scoreboard path. The scoreboard drives the whole fetch cycle, so a
// transient failure there is worth a couple of retries; the sub-resource
// fetches already degrade gracefully and pass through untouched.
type retryingProvider struct {
	DataProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with scoreboard retries.
// If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		DataProvider: inner,
		logger:       logger,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context) (domain.Scoreboard, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		scoreboard, err := r.DataProvider.FetchScoreboard(ctx)
		if err == nil {
			return scoreboard, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "scoreboard fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return domain.Scoreboard{}, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "scoreboard fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return domain.Scoreboard{}, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	_ = ctx
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
