package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// MockCall records one call made to the mock provider
type MockCall struct {
	Request llm.CompletionRequest
}

// MockProvider implements llm.Provider for testing. Responses are returned
// in order, cycling when exhausted.
type MockProvider struct {
	mu            sync.RWMutex
	responses     []string
	responseIndex int
	calls         []MockCall
	err           error
}

// NewMockProvider creates a new mock provider
func NewMockProvider(responses []string) *MockProvider {
	return &MockProvider{
		responses: responses,
		calls:     make([]MockCall, 0),
	}
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// SetError makes every subsequent Complete call return err.
func (p *MockProvider) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Complete returns the next configured response
func (p *MockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, MockCall{Request: req})

	if p.err != nil {
		return nil, p.err
	}

	if len(p.responses) == 0 {
		return nil, types.NewError(llm.ErrCompletionFailed, "mock: no responses configured")
	}

	response := p.responses[p.responseIndex%len(p.responses)]
	p.responseIndex++

	return &llm.CompletionResponse{
		ID:      uuid.New().String(),
		Model:   req.Model,
		Content: response,
		Usage: llm.Usage{
			PromptTokens:     10,
			CompletionTokens: len(response) / 4,
		},
	}, nil
}

// Calls returns a copy of all recorded calls
func (p *MockProvider) Calls() []MockCall {
	p.mu.RLock()
	defer p.mu.RUnlock()

	calls := make([]MockCall, len(p.calls))
	copy(calls, p.calls)
	return calls
}

// LastPrompt returns the content of the last user message of the last call,
// or an error when no calls were recorded.
func (p *MockProvider) LastPrompt() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.calls) == 0 {
		return "", fmt.Errorf("no calls recorded")
	}

	msgs := p.calls[len(p.calls)-1].Request.Messages
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == llm.RoleUser {
			return msgs[i].Content, nil
		}
	}
	return "", fmt.Errorf("no user message in last call")
}
