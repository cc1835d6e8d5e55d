package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// LLM error codes
const (
	ErrProviderNotFound     types.ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	ErrProviderInitFailed   types.ErrorCode = "LLM_PROVIDER_INIT_FAILED"
	ErrProviderUnauthorized types.ErrorCode = "LLM_PROVIDER_UNAUTHORIZED"
	ErrProviderRateLimited  types.ErrorCode = "LLM_PROVIDER_RATE_LIMITED"
	ErrInvalidRequest       types.ErrorCode = "LLM_INVALID_REQUEST"
	ErrCompletionFailed     types.ErrorCode = "LLM_COMPLETION_FAILED"
	ErrResponseParseFailed  types.ErrorCode = "LLM_RESPONSE_PARSE_FAILED"
	ErrNetworkFailed        types.ErrorCode = "LLM_NETWORK_FAILED"
	ErrNetworkTimeout       types.ErrorCode = "LLM_NETWORK_TIMEOUT"
)

// IsRetryable determines if an error is transient and may succeed on retry.
// Malformed-content errors are never retryable; only transport-level
// failures (network, timeout, rate limiting) are.
func IsRetryable(err error) bool {
	var plannerErr *types.PlannerError
	if !errors.As(err, &plannerErr) {
		return false
	}

	if plannerErr.Retryable {
		return true
	}

	switch plannerErr.Code {
	case ErrNetworkFailed, ErrNetworkTimeout, ErrProviderRateLimited:
		return true
	default:
		return false
	}
}

// NewAuthError creates an error for missing or rejected provider credentials.
func NewAuthError(provider string, cause error) error {
	return types.WrapError(
		ErrProviderUnauthorized,
		fmt.Sprintf("%s: missing or invalid API key", provider),
		cause,
	)
}

// TranslateError converts a raw provider or transport error into a typed
// PlannerError, classifying transient failures as retryable.
func TranslateError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var plannerErr *types.PlannerError
	if errors.As(err, &plannerErr) {
		return err
	}

	msg := fmt.Sprintf("%s completion failed", provider)

	if errors.Is(err, context.DeadlineExceeded) {
		return types.WrapRetryableError(ErrNetworkTimeout, msg, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return types.WrapRetryableError(ErrNetworkTimeout, msg, err)
		}
		return types.WrapRetryableError(ErrNetworkFailed, msg, err)
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "rate limit"), strings.Contains(lower, "429"):
		return types.WrapRetryableError(ErrProviderRateLimited, msg, err)
	case strings.Contains(lower, "unauthorized"), strings.Contains(lower, "401"),
		strings.Contains(lower, "invalid api key"):
		return types.WrapError(ErrProviderUnauthorized, msg, err)
	case strings.Contains(lower, "timeout"), strings.Contains(lower, "connection refused"),
		strings.Contains(lower, "connection reset"):
		return types.WrapRetryableError(ErrNetworkFailed, msg, err)
	default:
		return types.WrapError(ErrCompletionFailed, msg, err)
	}
}
