package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownRound = errors.New("unknown round")

type RoundExecutor interface {
	Execute(ctx context.Context, roundName string, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error)
	Rounds() []models.RoundInfo
}

// Validator checks records against the round catalogue without calling a model.
type Validator struct {
	kinds map[string]models.InputKind
}

func NewValidator(rounds []models.RoundInfo) *Validator {
	kinds := make(map[string]models.InputKind, len(rounds))
	for _, r := range rounds {
		kinds[r.Name] = r.Input
	}
	return &Validator{kinds: kinds}
}

// Prepare validates a record and returns the prompt input and overrides for it.
func (v *Validator) Prepare(record RoundRecord) (models.PromptInput, models.GenerationOverrides, error) {
	kind, ok := v.kinds[record.Round]
	if !ok {
		return models.PromptInput{}, models.GenerationOverrides{}, fmt.Errorf("%w: %q", ErrUnknownRound, record.Round)
	}

	if kind == models.InputKindCode {
		body := models.CodeReviewRequest{
			Code:        record.Code,
			Language:    record.Language,
			MaxTokens:   record.MaxTokens,
			Temperature: record.Temperature,
		}
		body.SetDefaults()
		if err := body.Validate(); err != nil {
			return models.PromptInput{}, models.GenerationOverrides{}, err
		}
		return body.PromptInput(), body.Overrides(), nil
	}

	body := models.InterviewRequest{
		Question:    record.Question,
		Difficulty:  record.Difficulty,
		MaxTokens:   record.MaxTokens,
		Temperature: record.Temperature,
	}
	body.SetDefaults()
	if err := body.Validate(); err != nil {
		return models.PromptInput{}, models.GenerationOverrides{}, err
	}
	return body.PromptInput(), body.Overrides(), nil
}

type Processor struct {
	executor    RoundExecutor
	validator   *Validator
	workers     int
	stopOnError bool
	logger      *zerolog.Logger
}

func NewProcessor(executor RoundExecutor, workers int, stopOnError bool, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		executor:    executor,
		validator:   NewValidator(executor.Rounds()),
		workers:     workers,
		stopOnError: stopOnError,
		logger:      logger,
	}
}

// Process runs records with at most p.workers in flight and streams results
// in completion order. With stopOnError, the first failed record stops
// records that have not started yet.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan Result {
	out := make(chan Result, p.workers)

	go func() {
		defer close(out)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if gctx.Err() != nil {
				break
			}

			g.Go(func() error {
				result := p.processOne(gctx, record)
				out <- result

				if result.Failed() && p.stopOnError {
					return fmt.Errorf("record %s failed: %s", result.ID, result.Error)
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			p.logger.Warn().Err(err).Msg("batch stopped early")
		}
	}()

	return out
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) Result {
	start := time.Now()
	result := Result{
		ID:         record.Request.ID,
		Round:      record.Request.Round,
		LineNumber: record.LineNumber,
	}

	if record.Error != nil {
		result.Error = record.Error.Error()
		return result
	}

	input, overrides, err := p.validator.Prepare(record.Request)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if err := ctx.Err(); err != nil {
		result.Error = fmt.Sprintf("skipped: %v", err)
		return result
	}

	resp, err := p.executor.Execute(ctx, record.Request.Round, input, overrides)
	result.Duration = time.Since(start)
	if err != nil {
		p.logger.Error().Err(err).Str("id", result.ID).Str("round", result.Round).Msg("record failed")
		result.Error = err.Error()
		return result
	}

	result.Type = resp.Type
	result.Response = resp.Response
	result.Model = resp.Model
	result.StopReason = resp.StopReason
	return result
}
