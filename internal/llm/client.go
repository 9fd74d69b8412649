package llm

import (
	"context"
)

// LLMClient is one model backend. Rounds call InvokeModelWithRetry when
// their catalogue entry asks for retries and InvokeModel otherwise.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
