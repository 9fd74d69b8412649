package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Client generates text with Google's Gemini API.
type Client struct {
	client  *genai.Client
	ModelID string
	Retry   llm.RetryPolicy
}

// NewClient creates a Gemini client. baseURL is only set in tests.
func NewClient(ctx context.Context, apiKey, model, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	if model == "" {
		model = defaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		client:  client,
		ModelID: model,
		Retry:   llm.DefaultRetryPolicy(),
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(request.Temperature)),
		MaxOutputTokens: int32(request.MaxTokens),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.ModelID, genai.Text(request.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	model := c.ModelID
	if result.ModelVersion != "" {
		model = result.ModelVersion
	}

	return &llm.LLMResponse{
		Content:    result.Text(),
		StopReason: strings.ToLower(string(result.Candidates[0].FinishReason)),
		Model:      model,
	}, nil
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return llm.InvokeWithRetry(ctx, c.Retry, request, c.InvokeModel)
}
