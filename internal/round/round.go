package round

import (
	"context"
	"errors"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
)

// ErrEmptyGeneration is returned when the model produced only whitespace.
var ErrEmptyGeneration = errors.New("model returned an empty response")

type Round interface {
	Name() string
	Path() string
	Kind() models.InputKind
	Description() string
	Info() models.RoundInfo
	Generate(ctx context.Context, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error)
}
