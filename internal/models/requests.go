package models

import (
	"errors"
	"strings"
)

var (
	ErrEmptyQuestion      = errors.New("question is required")
	ErrEmptyCode          = errors.New("code is required")
	ErrEmptyLanguage      = errors.New("language is required")
	ErrInvalidMaxTokens   = errors.New("max_tokens must be between 0 and 4096")
	ErrInvalidTemperature = errors.New("temperature must be between 0.0 and 1.0")
)

// IsValidationError reports whether err comes from request validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyQuestion) ||
		errors.Is(err, ErrEmptyCode) ||
		errors.Is(err, ErrEmptyLanguage) ||
		errors.Is(err, ErrInvalidMaxTokens) ||
		errors.Is(err, ErrInvalidTemperature)
}

func (r *InterviewRequest) SetDefaults() {
	r.Question = strings.TrimSpace(r.Question)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
}

func (r *InterviewRequest) Validate() error {
	if r.Question == "" {
		return ErrEmptyQuestion
	}

	return validateGeneration(r.MaxTokens, r.Temperature)
}

func (r *InterviewRequest) PromptInput() PromptInput {
	return PromptInput{
		Question:   r.Question,
		Difficulty: r.Difficulty,
	}
}

func (r *InterviewRequest) Overrides() GenerationOverrides {
	return GenerationOverrides{MaxTokens: r.MaxTokens, Temperature: r.Temperature}
}

func (r *CodeReviewRequest) SetDefaults() {
	r.Language = strings.TrimSpace(r.Language)
	if strings.TrimSpace(r.Code) == "" {
		r.Code = ""
	}
}

func (r *CodeReviewRequest) Validate() error {
	if r.Code == "" {
		return ErrEmptyCode
	}
	if r.Language == "" {
		return ErrEmptyLanguage
	}

	return validateGeneration(r.MaxTokens, r.Temperature)
}

func (r *CodeReviewRequest) PromptInput() PromptInput {
	return PromptInput{
		Code:     r.Code,
		Language: r.Language,
	}
}

func (r *CodeReviewRequest) Overrides() GenerationOverrides {
	return GenerationOverrides{MaxTokens: r.MaxTokens, Temperature: r.Temperature}
}

func validateGeneration(maxTokens int, temperature *float64) error {
	if maxTokens < 0 || maxTokens > MaxTokensLimit {
		return ErrInvalidMaxTokens
	}
	if temperature != nil && (*temperature < 0.0 || *temperature > 1.0) {
		return ErrInvalidTemperature
	}
	return nil
}
