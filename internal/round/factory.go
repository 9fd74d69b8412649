package round

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/config"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
	"github.com/rs/zerolog"
)

// Factory looks rounds up by name. It is read-only after construction.
type Factory struct {
	rounds map[string]Round
	order  []Round
}

// NewFactory builds every enabled round of cfg.
func NewFactory(cfg *config.RoundsConfig, llmClient llm.LLMClient, logger *zerolog.Logger) (*Factory, error) {
	rounds, err := NewPool(llmClient, logger).BuildFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	roundsMap := make(map[string]Round, len(rounds))
	for _, r := range rounds {
		roundsMap[r.Name()] = r
	}

	logger.Info().Int("round_count", len(roundsMap)).Msg("Round factory initialized from config")

	return &Factory{
		rounds: roundsMap,
		order:  rounds,
	}, nil
}

func (f *Factory) Get(roundName string) (Round, error) {
	r, exist := f.rounds[roundName]
	if !exist {
		return nil, fmt.Errorf("round %q not found", roundName)
	}

	return r, nil
}

// List returns the rounds in catalogue order.
func (f *Factory) List() []Round {
	out := make([]Round, len(f.order))
	copy(out, f.order)
	return out
}
