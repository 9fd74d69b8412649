package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/round"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_round.go -package=mocks . RoundFactory,Round

type RoundFactory interface {
	Get(roundName string) (round.Round, error)
	List() []round.Round
}

// Round mirrors round.Round so mocks can be generated in this package.
type Round interface {
	round.Round
}

type RoundExecutor struct {
	rounds  RoundFactory
	timeout time.Duration
	logger  *zerolog.Logger
}

type Option func(*RoundExecutor)

// WithTimeout bounds every generation, retries included.
func WithTimeout(timeout time.Duration) Option {
	return func(e *RoundExecutor) {
		e.timeout = timeout
	}
}

func NewRoundExecutor(rounds RoundFactory, logger *zerolog.Logger, opts ...Option) *RoundExecutor {
	e := &RoundExecutor{
		rounds: rounds,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	ErrRoundNotFound = errors.New("round not found")
	ErrGeneration    = errors.New("generation failed")
)

// Execute runs one round. Model failures are wrapped with ErrGeneration.
func (e *RoundExecutor) Execute(ctx context.Context, roundName string, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error) {
	start := time.Now()
	id := models.RequestIDFromContext(ctx)

	r, err := e.rounds.Get(roundName)
	if err != nil {
		e.logger.Error().Err(err).Str("requestID", id).Str("round", roundName).Msg("Round not found")
		return nil, ErrRoundNotFound
	}

	e.logger.Info().Str("requestID", id).Str("round", roundName).Msg("starting generation")

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	resp, err := r.Generate(ctx, input, overrides)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("requestID", id).
			Str("round", roundName).
			Dur("duration", time.Since(start)).
			Msg("generation failed")
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	e.logger.Info().
		Str("requestID", id).
		Str("round", roundName).
		Int("response_chars", len(resp.Response)).
		Dur("duration", time.Since(start)).
		Msg("generation completed")

	return resp, nil
}

// Rounds lists the served rounds in catalogue order.
func (e *RoundExecutor) Rounds() []models.RoundInfo {
	list := e.rounds.List()
	infos := make([]models.RoundInfo, 0, len(list))
	for _, r := range list {
		infos = append(infos, r.Info())
	}
	return infos
}
