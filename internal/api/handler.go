package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/rs/zerolog"
)

const indexMessage = "AI Interview Agent API"

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks . RoundExecutor

type RoundExecutor interface {
	Execute(ctx context.Context, roundName string, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error)
	Rounds() []models.RoundInfo
}

// roundRequest is implemented by every request body a round accepts.
type roundRequest interface {
	SetDefaults()
	Validate() error
	PromptInput() models.PromptInput
	Overrides() models.GenerationOverrides
}

type Handler struct {
	executor RoundExecutor
	logger   *zerolog.Logger
}

func NewHandler(executor RoundExecutor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		logger:   logger,
	}
}

// Round returns the route function serving one round. The body type
// follows the round's input kind.
func (h *Handler) Round(info models.RoundInfo) restful.RouteFunction {
	return func(req *restful.Request, resp *restful.Response) {
		var body roundRequest
		switch info.Input {
		case models.InputKindCode:
			body = &models.CodeReviewRequest{}
		default:
			body = &models.InterviewRequest{}
		}

		// a body sent without Content-Type is read as JSON
		if req.Request.Header.Get(restful.HEADER_ContentType) == "" {
			req.Request.Header.Set(restful.HEADER_ContentType, restful.MIME_JSON)
		}

		if err := req.ReadEntity(body); err != nil {
			h.logger.Error().Err(err).Str("round", info.Name).Msg("Failed to parse request body")
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}

		body.SetDefaults()
		if err := body.Validate(); err != nil {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}

		overrides := body.Overrides()
		h.logger.Info().
			Str("round", info.Name).
			Int("max_tokens", overrides.MaxTokens).
			Msg("Process round")

		ctx := req.Request.Context()

		roundResponse, err := h.executor.Execute(ctx, info.Name, body.PromptInput(), overrides)
		if err != nil {
			middleware.HandleError(resp, err, statusFor(err))
			return
		}

		resp.WriteHeaderAndEntity(http.StatusOK, roundResponse)
	}
}

// GET /
func (h *Handler) Index(req *restful.Request, resp *restful.Response) {
	rounds := h.executor.Rounds()

	endpoints := make([]string, 0, len(rounds))
	for _, r := range rounds {
		endpoints = append(endpoints, r.Path)
	}

	resp.WriteHeaderAndEntity(http.StatusOK, models.IndexResponse{
		Message:   indexMessage,
		Endpoints: endpoints,
		Rounds:    rounds,
	})
}

// GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
		Rounds:  len(h.executor.Rounds()),
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case models.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, executor.ErrRoundNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
