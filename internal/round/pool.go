package round

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/config"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
	"github.com/rs/zerolog"
)

// Pool builds rounds from the catalogue.
type Pool struct {
	llmClient llm.LLMClient
	logger    *zerolog.Logger
}

func NewPool(llmClient llm.LLMClient, logger *zerolog.Logger) *Pool {
	return &Pool{
		llmClient: llmClient,
		logger:    logger,
	}
}

// BuildFromConfig returns the enabled rounds in catalogue order.
func (p *Pool) BuildFromConfig(cfg *config.RoundsConfig) ([]Round, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rounds config is nil")
	}

	var rounds []Round

	for _, roundCfg := range cfg.Rounds.Definitions {
		if !roundCfg.IsEnabled() {
			p.logger.Info().
				Str("round", roundCfg.Name).
				Msg("round disabled in config, skipping")
			continue
		}

		r, err := NewLLMRound(roundCfg, p.llmClient, p.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create round %s: %w", roundCfg.Name, err)
		}

		rounds = append(rounds, r)

		p.logger.Debug().
			Str("round", roundCfg.Name).
			Str("path", roundCfg.Path).
			Int("max_tokens", roundCfg.Model.MaxTokens).
			Float64("temperature", roundCfg.Model.Temperature).
			Bool("retry", roundCfg.Model.Retry).
			Msg("round created")
	}

	if len(rounds) == 0 {
		return nil, fmt.Errorf("no enabled rounds found in config")
	}

	p.logger.Info().
		Int("total_rounds", len(rounds)).
		Msg("round pool built successfully")

	return rounds, nil
}
