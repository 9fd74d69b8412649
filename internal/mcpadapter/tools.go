package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
)

const ListRoundsTool = "list_rounds"

type RoundExecutor interface {
	Execute(ctx context.Context, roundName string, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error)
	Rounds() []models.RoundInfo
}

// InterviewInput is the tool input for question rounds (matches HTTP API field names).
type InterviewInput struct {
	Question    string   `json:"question" jsonschema:"interview question to answer"`
	Difficulty  string   `json:"difficulty,omitempty" jsonschema:"question difficulty, free text (default: medium)"`
	MaxTokens   int      `json:"max_tokens,omitempty" jsonschema:"maximum tokens to generate (default: round setting)"`
	Temperature *float64 `json:"temperature,omitempty" jsonschema:"sampling temperature 0.0-1.0 (default: round setting)"`
}

// CodeReviewInput is the tool input for code rounds.
type CodeReviewInput struct {
	Code        string   `json:"code" jsonschema:"source code to review"`
	Language    string   `json:"language" jsonschema:"programming language of the code"`
	MaxTokens   int      `json:"max_tokens,omitempty" jsonschema:"maximum tokens to generate (default: round setting)"`
	Temperature *float64 `json:"temperature,omitempty" jsonschema:"sampling temperature 0.0-1.0 (default: round setting)"`
}

type ListRoundsInput struct{}

type ListRoundsOutput struct {
	Rounds []models.RoundInfo `json:"rounds" jsonschema:"served interview rounds"`
}

// ToolName is the MCP tool name serving a round.
func ToolName(roundName string) string {
	return roundName + "_round"
}

// RegisterTools adds one tool per round plus list_rounds.
func RegisterTools(server *mcp.Server, exec RoundExecutor) {
	for _, info := range exec.Rounds() {
		tool := &mcp.Tool{
			Name:        ToolName(info.Name),
			Description: toolDescription(info),
		}

		if info.Input == models.InputKindCode {
			mcp.AddTool(server, tool, NewCodeReviewHandler(exec, info.Name))
		} else {
			mcp.AddTool(server, tool, NewInterviewHandler(exec, info.Name))
		}
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        ListRoundsTool,
		Description: "List the interview rounds this server can answer",
	}, NewListRoundsHandler(exec))
}

// NewInterviewHandler returns a tool handler for a question round.
// Pass the returned function to mcp.AddTool.
func NewInterviewHandler(exec RoundExecutor, roundName string) func(context.Context, *mcp.CallToolRequest, InterviewInput) (*mcp.CallToolResult, models.RoundResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input InterviewInput) (*mcp.CallToolResult, models.RoundResponse, error) {
		body := models.InterviewRequest{
			Question:    input.Question,
			Difficulty:  input.Difficulty,
			MaxTokens:   input.MaxTokens,
			Temperature: input.Temperature,
		}
		body.SetDefaults()
		if err := body.Validate(); err != nil {
			return nil, models.RoundResponse{}, err
		}

		return run(ctx, exec, roundName, body.PromptInput(), body.Overrides())
	}
}

// NewCodeReviewHandler returns a tool handler for a code round.
func NewCodeReviewHandler(exec RoundExecutor, roundName string) func(context.Context, *mcp.CallToolRequest, CodeReviewInput) (*mcp.CallToolResult, models.RoundResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CodeReviewInput) (*mcp.CallToolResult, models.RoundResponse, error) {
		body := models.CodeReviewRequest{
			Code:        input.Code,
			Language:    input.Language,
			MaxTokens:   input.MaxTokens,
			Temperature: input.Temperature,
		}
		body.SetDefaults()
		if err := body.Validate(); err != nil {
			return nil, models.RoundResponse{}, err
		}

		return run(ctx, exec, roundName, body.PromptInput(), body.Overrides())
	}
}

func NewListRoundsHandler(exec RoundExecutor) func(context.Context, *mcp.CallToolRequest, ListRoundsInput) (*mcp.CallToolResult, ListRoundsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListRoundsInput) (*mcp.CallToolResult, ListRoundsOutput, error) {
		return nil, ListRoundsOutput{Rounds: exec.Rounds()}, nil
	}
}

func run(ctx context.Context, exec RoundExecutor, roundName string, input models.PromptInput, overrides models.GenerationOverrides) (*mcp.CallToolResult, models.RoundResponse, error) {
	resp, err := exec.Execute(ctx, roundName, input, overrides)
	if err != nil {
		return nil, models.RoundResponse{}, err
	}
	return nil, *resp, nil
}

func toolDescription(info models.RoundInfo) string {
	if info.Description != "" {
		return info.Description
	}
	return fmt.Sprintf("Answer a %s interview question", info.Name)
}
