package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
)

// DefaultAPIURL serves google/flan-t5-base through the hosted inference API.
const DefaultAPIURL = "https://api-inference.huggingface.co/models/google/flan-t5-base"

type ClientConfig struct {
	APIURL              string
	Token               string
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// Client talks to a Hugging Face text-generation endpoint (hosted inference
// API or a self-hosted text-generation-inference server).
type Client struct {
	httpClient *http.Client
	apiURL     string
	token      string
	Retry      llm.RetryPolicy
}

type generationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationResult struct {
	GeneratedText string `json:"generated_text"`
	Details       *struct {
		FinishReason string `json:"finish_reason"`
	} `json:"details,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		apiURL: cfg.APIURL,
		token:  cfg.Token,
		Retry:  llm.DefaultRetryPolicy(),
	}
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	payload := generationRequest{
		Inputs: request.Prompt,
		Parameters: generationParameters{
			MaxNewTokens: request.MaxTokens,
			Temperature:  request.Temperature,
			DoSample:     request.Temperature > 0,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to create generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read generation response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		statusErr := &llm.StatusError{Provider: "huggingface", Code: httpResp.StatusCode}
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil {
			statusErr.Message = apiErr.Error
		}
		return nil, statusErr
	}

	result, err := decodeResult(respBody)
	if err != nil {
		return nil, err
	}

	stopReason := "end"
	if result.Details != nil && result.Details.FinishReason != "" {
		stopReason = result.Details.FinishReason
	}

	return &llm.LLMResponse{
		Content:    result.GeneratedText,
		StopReason: stopReason,
		Model:      modelFromURL(c.apiURL),
	}, nil
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return llm.InvokeWithRetry(ctx, c.Retry, request, c.InvokeModel)
}

// decodeResult accepts both the inference API list form and the
// text-generation-inference object form.
func decodeResult(body []byte) (generationResult, error) {
	trimmed := bytes.TrimSpace(body)

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var results []generationResult
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return generationResult{}, fmt.Errorf("failed to unmarshal generation response: %w", err)
		}
		if len(results) == 0 {
			return generationResult{}, fmt.Errorf("no generations in response")
		}
		return results[0], nil
	}

	var result generationResult
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return generationResult{}, fmt.Errorf("failed to unmarshal generation response: %w", err)
	}
	return result, nil
}

func modelFromURL(apiURL string) string {
	if _, model, ok := strings.Cut(apiURL, "/models/"); ok {
		return strings.TrimSuffix(model, "/")
	}
	return apiURL
}
