package mcpadapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
)

type fakeExecutor struct {
	rounds    []models.RoundInfo
	err       error
	lastRound string
	lastInput models.PromptInput
	lastOver  models.GenerationOverrides
}

func (f *fakeExecutor) Execute(ctx context.Context, roundName string, input models.PromptInput, overrides models.GenerationOverrides) (*models.RoundResponse, error) {
	f.lastRound = roundName
	f.lastInput = input
	f.lastOver = overrides
	if f.err != nil {
		return nil, f.err
	}
	return &models.RoundResponse{Type: roundName, Response: "answer for " + roundName, Model: "fake"}, nil
}

func (f *fakeExecutor) Rounds() []models.RoundInfo {
	return f.rounds
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		rounds: []models.RoundInfo{
			{Name: "coding", Path: "/coding/", Input: models.InputKindQuestion, Description: "Coding round"},
			{Name: "code_review", Path: "/code-review/", Input: models.InputKindCode},
		},
	}
}

func connect(t *testing.T, exec RoundExecutor) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "interview-agent", Version: "test"}, nil)
	RegisterTools(server, exec)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect failed: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func TestRegisterTools_ListsOneToolPerRound(t *testing.T) {
	session := connect(t, newFakeExecutor())

	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}

	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"coding_round", "code_review_round", ListRoundsTool} {
		if !names[want] {
			t.Errorf("Expected tool %s, got %v", want, names)
		}
	}
	if len(res.Tools) != 3 {
		t.Errorf("Expected 3 tools, got %d", len(res.Tools))
	}
}

func TestInterviewTool_Success(t *testing.T) {
	exec := newFakeExecutor()
	session := connect(t, exec)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "coding_round",
		Arguments: map[string]any{
			"question":   "Implement quicksort algorithm",
			"difficulty": "Easy",
			"max_tokens": 64,
		},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Unexpected tool error: %+v", res.Content)
	}

	if exec.lastRound != "coding" {
		t.Errorf("Expected coding round, got %s", exec.lastRound)
	}
	if exec.lastInput.Difficulty != "Easy" || exec.lastOver.MaxTokens != 64 {
		t.Errorf("Unexpected input: %+v %+v", exec.lastInput, exec.lastOver)
	}

	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok || !strings.Contains(text.Text, "answer for coding") {
		t.Errorf("Unexpected content: %+v", res.Content)
	}
}

func TestCodeReviewTool_Success(t *testing.T) {
	exec := newFakeExecutor()
	session := connect(t, exec)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "code_review_round",
		Arguments: map[string]any{"code": "print(1)", "language": "python"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Unexpected tool error: %+v", res.Content)
	}
	if exec.lastInput.Language != "python" || exec.lastInput.Code != "print(1)" {
		t.Errorf("Unexpected input: %+v", exec.lastInput)
	}
}

func TestInterviewTool_ValidationError(t *testing.T) {
	exec := newFakeExecutor()
	session := connect(t, exec)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "coding_round",
		Arguments: map[string]any{"question": "q", "max_tokens": 5000},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Error("Expected tool error for max_tokens above the limit")
	}
	if exec.lastRound != "" {
		t.Error("Executor should not be called for invalid input")
	}
}

func TestInterviewTool_ExecutorError(t *testing.T) {
	exec := newFakeExecutor()
	exec.err = errors.New("generation failed")
	session := connect(t, exec)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "coding_round",
		Arguments: map[string]any{"question": "q"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Error("Expected tool error when generation fails")
	}
}

func TestListRoundsHandler(t *testing.T) {
	exec := newFakeExecutor()

	_, out, err := NewListRoundsHandler(exec)(context.Background(), nil, ListRoundsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Rounds) != 2 || out.Rounds[1].Input != models.InputKindCode {
		t.Errorf("Unexpected rounds: %+v", out.Rounds)
	}
}
