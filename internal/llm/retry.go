package llm

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultMaxAttempts bounds retries of transient transport failures.
	DefaultMaxAttempts = 3

	// defaultBaseDelay is the initial backoff delay, doubled per attempt.
	defaultBaseDelay = 500 * time.Millisecond
)

// CompleteWithRetry runs a completion with bounded retry. Only errors
// classified as retryable (network, timeout, rate limiting) are retried;
// malformed-content and auth failures surface immediately.
func CompleteWithRetry(ctx context.Context, provider Provider, req CompletionRequest, logger *slog.Logger) (*CompletionResponse, error) {
	var lastErr error
	delay := defaultBaseDelay

	for attempt := 1; attempt <= DefaultMaxAttempts; attempt++ {
		resp, err := provider.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}

		if attempt == DefaultMaxAttempts {
			break
		}

		logger.Warn("retrying LLM completion",
			"provider", provider.Name(),
			"attempt", attempt,
			"delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, lastErr
}
