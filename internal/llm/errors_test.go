package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// errCodeOf extracts the planner error code, failing the test when the error
// carries none.
func errCodeOf(t *testing.T, err error) types.ErrorCode {
	t.Helper()
	code := types.ErrorCodeOf(err)
	require.NotEmpty(t, code, "expected a typed planner error, got %v", err)
	return code
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      types.ErrorCode
		wantRetryable bool
	}{
		{
			name:          "deadline exceeded",
			err:           context.DeadlineExceeded,
			wantCode:      ErrNetworkTimeout,
			wantRetryable: true,
		},
		{
			name:          "rate limit message",
			err:           fmt.Errorf("API returned 429: rate limit exceeded"),
			wantCode:      ErrProviderRateLimited,
			wantRetryable: true,
		},
		{
			name:          "unauthorized",
			err:           fmt.Errorf("401 unauthorized"),
			wantCode:      ErrProviderUnauthorized,
			wantRetryable: false,
		},
		{
			name:          "connection refused",
			err:           fmt.Errorf("dial tcp: connection refused"),
			wantCode:      ErrNetworkFailed,
			wantRetryable: true,
		},
		{
			name:          "generic failure",
			err:           fmt.Errorf("model exploded"),
			wantCode:      ErrCompletionFailed,
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := TranslateError("openai", tt.err)

			var plannerErr *types.PlannerError
			require.True(t, errors.As(translated, &plannerErr))
			assert.Equal(t, tt.wantCode, plannerErr.Code)
			assert.Equal(t, tt.wantRetryable, IsRetryable(translated))
			assert.True(t, errors.Is(translated, tt.err), "cause should be preserved")
		})
	}
}

func TestTranslateError_NilAndAlreadyTyped(t *testing.T) {
	assert.NoError(t, TranslateError("openai", nil))

	typed := types.NewError(ErrResponseParseFailed, "bad json")
	assert.Equal(t, typed, TranslateError("openai", typed))
}

func TestIsRetryable_PlainError(t *testing.T) {
	assert.False(t, IsRetryable(fmt.Errorf("plain error")))
	assert.False(t, IsRetryable(types.NewError(ErrResponseParseFailed, "malformed output")))
}
