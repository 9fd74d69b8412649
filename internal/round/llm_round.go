package round

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/config"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/rs/zerolog"
)

// LLMRound renders a configured prompt template and sends it to the model.
type LLMRound struct {
	name           string
	path           string
	kind           models.InputKind
	description    string
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	llmClient      llm.LLMClient
	logger         *zerolog.Logger
}

func NewLLMRound(
	roundCfg config.RoundConfiguration,
	llmClient llm.LLMClient,
	logger *zerolog.Logger,
) (*LLMRound, error) {
	tmpl, err := template.New(roundCfg.Name).Option("missingkey=error").Parse(roundCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for round %s: %w", roundCfg.Name, err)
	}

	if roundCfg.Model == nil {
		return nil, fmt.Errorf("round %s has nil model config (should be populated by config loader)", roundCfg.Name)
	}

	return &LLMRound{
		name:           roundCfg.Name,
		path:           roundCfg.Path,
		kind:           models.InputKind(roundCfg.Input),
		description:    roundCfg.Description,
		promptTemplate: tmpl,
		modelConfig:    *roundCfg.Model,
		llmClient:      llmClient,
		logger:         logger,
	}, nil
}

func (r *LLMRound) Generate(ctx context.Context, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error) {
	start := time.Now()

	prompt, err := r.buildPrompt(input)
	if err != nil {
		return nil, err
	}

	request := r.buildRequest(prompt, overrides)

	var resp *llm.LLMResponse
	if r.modelConfig.Retry {
		resp, err = r.llmClient.InvokeModelWithRetry(ctx, request)
	} else {
		resp, err = r.llmClient.InvokeModel(ctx, request)
	}
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("round", r.name).
			Msg("LLM call failed")
		return nil, fmt.Errorf("round %s: %w", r.name, err)
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		r.logger.Warn().
			Str("round", r.name).
			Str("stop_reason", resp.StopReason).
			Msg("LLM returned empty content")
		return nil, ErrEmptyGeneration
	}

	r.logger.Info().
		Str("round", r.name).
		Int("max_tokens", request.MaxTokens).
		Float64("temperature", request.Temperature).
		Str("stop_reason", resp.StopReason).
		Dur("duration", time.Since(start)).
		Msg("round completed")

	return &models.RoundResponse{
		Type:       r.name,
		Response:   content,
		Model:      resp.Model,
		StopReason: resp.StopReason,
	}, nil
}

func (r *LLMRound) Name() string {
	return r.name
}

func (r *LLMRound) Path() string {
	return r.path
}

func (r *LLMRound) Kind() models.InputKind {
	return r.kind
}

func (r *LLMRound) Description() string {
	return r.description
}

func (r *LLMRound) Info() models.RoundInfo {
	return models.RoundInfo{
		Name:        r.name,
		Path:        r.path,
		Input:       r.kind,
		Description: r.description,
	}
}

func (r *LLMRound) buildPrompt(input models.PromptInput) (string, error) {
	var buf bytes.Buffer
	if err := r.promptTemplate.Execute(&buf, input); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// buildRequest lays request overrides over the round's model settings.
func (r *LLMRound) buildRequest(prompt string, overrides models.GenerationOverrides) llm.LLMRequest {
	request := llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   r.modelConfig.MaxTokens,
		Temperature: r.modelConfig.Temperature,
	}
	if overrides.MaxTokens > 0 {
		request.MaxTokens = overrides.MaxTokens
	}
	if overrides.Temperature != nil {
		request.Temperature = *overrides.Temperature
	}
	return request
}
