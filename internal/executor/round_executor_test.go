package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/executor/mocks"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/round"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestRoundExecutor_Execute(t *testing.T) {
	tests := []struct {
		name        string
		roundName   string
		input       models.PromptInput
		overrides   models.GenerationOverrides
		factoryErr  error
		genResp     *models.RoundResponse
		genErr      error
		expectErr   error
		expectCause error
	}{
		{
			name:      "coding round succeeds",
			roundName: "coding",
			input:     models.PromptInput{Question: "Implement quicksort algorithm", Difficulty: "medium"},
			genResp: &models.RoundResponse{
				Type:     "coding",
				Response: "Pick a pivot and partition.",
				Model:    "claude-test",
			},
		},
		{
			name:      "code review with overrides",
			roundName: "code_review",
			input:     models.PromptInput{Code: "print(1)", Language: "python"},
			overrides: models.GenerationOverrides{MaxTokens: 64},
			genResp: &models.RoundResponse{
				Type:     "code_review",
				Response: "Looks fine.",
			},
		},
		{
			name:       "round not found",
			roundName:  "unknown",
			input:      models.PromptInput{Question: "q"},
			factoryErr: errors.New("round \"unknown\" not found"),
			expectErr:  ErrRoundNotFound,
		},
		{
			name:        "model failure is wrapped",
			roundName:   "hr",
			input:       models.PromptInput{Question: "Tell me about yourself"},
			genErr:      errors.New("ThrottlingException"),
			expectErr:   ErrGeneration,
			expectCause: nil,
		},
		{
			name:        "empty generation keeps its cause",
			roundName:   "behavioral",
			input:       models.PromptInput{Question: "Describe a challenge"},
			genErr:      round.ErrEmptyGeneration,
			expectErr:   ErrGeneration,
			expectCause: round.ErrEmptyGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFactory := mocks.NewMockRoundFactory(ctrl)
			mockRound := mocks.NewMockRound(ctrl)

			if tt.factoryErr != nil {
				mockFactory.EXPECT().Get(tt.roundName).Return(nil, tt.factoryErr)
			} else {
				mockFactory.EXPECT().Get(tt.roundName).Return(mockRound, nil)
				mockRound.EXPECT().Generate(gomock.Any(), tt.input, tt.overrides).Return(tt.genResp, tt.genErr)
			}

			executor := NewRoundExecutor(mockFactory, testLogger())
			ctx := models.WithRequestID(context.Background(), "req-001")
			resp, err := executor.Execute(ctx, tt.roundName, tt.input, tt.overrides)

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Errorf("expected error %v, got %v", tt.expectErr, err)
				}
				if tt.expectCause != nil && !errors.Is(err, tt.expectCause) {
					t.Errorf("expected cause %v, got %v", tt.expectCause, err)
				}
				if resp != nil {
					t.Errorf("expected nil response on error, got %+v", resp)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp != tt.genResp {
				t.Errorf("expected response %+v, got %+v", tt.genResp, resp)
			}
		})
	}
}

func TestRoundExecutor_Execute_PassesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockRoundFactory(ctrl)
	mockRound := mocks.NewMockRound(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockFactory.EXPECT().Get("coding").Return(mockRound, nil)
	mockRound.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.PromptInput, _ models.GenerationOverrides) (*models.RoundResponse, error) {
			return nil, ctx.Err()
		})

	executor := NewRoundExecutor(mockFactory, testLogger())
	_, err := executor.Execute(ctx, "coding", models.PromptInput{Question: "q"}, models.GenerationOverrides{})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestRoundExecutor_Rounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockRoundFactory(ctrl)
	coding := mocks.NewMockRound(ctrl)
	review := mocks.NewMockRound(ctrl)

	coding.EXPECT().Info().Return(models.RoundInfo{Name: "coding", Path: "/coding/", Input: models.InputKindQuestion})
	review.EXPECT().Info().Return(models.RoundInfo{Name: "code_review", Path: "/code-review/", Input: models.InputKindCode})
	mockFactory.EXPECT().List().Return([]round.Round{coding, review})

	infos := NewRoundExecutor(mockFactory, testLogger()).Rounds()

	if len(infos) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(infos))
	}
	if infos[0].Name != "coding" || infos[1].Input != models.InputKindCode {
		t.Errorf("unexpected infos: %+v", infos)
	}
}

func TestRoundExecutor_Execute_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := mocks.NewMockRoundFactory(ctrl)
	mockRound := mocks.NewMockRound(ctrl)

	mockFactory.EXPECT().Get("system_design").Return(mockRound, nil)
	mockRound.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.PromptInput, _ models.GenerationOverrides) (*models.RoundResponse, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected a deadline on the generation context")
			}
			<-ctx.Done()
			return nil, ctx.Err()
		})

	executor := NewRoundExecutor(mockFactory, testLogger(), WithTimeout(10*time.Millisecond))
	_, err := executor.Execute(context.Background(), "system_design", models.PromptInput{Question: "Design Twitter"}, models.GenerationOverrides{})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("expected ErrGeneration, got %v", err)
	}
}
