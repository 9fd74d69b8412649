package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/api"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/setup"
	"github.com/rs/zerolog"
)

// Custom flag for running integration tests with real LLM calls
var runIntegration = flag.Bool("integration", false, "Run integration tests with real LLM API calls")

// echoLLMClient answers with the prompt it was given.
type echoLLMClient struct {
	mu       sync.Mutex
	requests []llm.LLMRequest
	content  string
}

func (c *echoLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	c.mu.Lock()
	c.requests = append(c.requests, request)
	c.mu.Unlock()

	content := c.content
	if content == "" {
		content = "answer to: " + request.Prompt
	}
	return &llm.LLMResponse{Content: content, StopReason: "end_turn", Model: "echo"}, nil
}

func (c *echoLLMClient) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.InvokeModel(ctx, request)
}

func (c *echoLLMClient) last() llm.LLMRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests[len(c.requests)-1]
}

func setupTestAPI(t *testing.T, client llm.LLMClient) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &setup.Config{RoundsConfigPath: "../../configs/rounds.yaml"}

	deps, err := setup.WireWithClient(cfg, client, &logger)
	if err != nil {
		t.Fatalf("Failed to wire dependencies: %v", err)
	}

	restful.TrimRightSlashEnabled = true
	container := restful.NewContainer()
	container.ServiceErrorHandler(middleware.ServiceErrorHandler)
	container.Filter(middleware.RequestID)
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, api.NewHandler(deps.Executor, &logger))

	return container
}

/*
Every shipped round answers on its path with its own type.
*/
func TestAPI_AllRounds(t *testing.T) {
	client := &echoLLMClient{}
	container := setupTestAPI(t, client)

	tests := []struct {
		path     string
		wantType string
		body     string
		prompt   string
	}{
		{"/coding/", "coding", `{"question": "Implement quicksort algorithm", "difficulty": "medium"}`, "Coding Interview Question (medium): Implement quicksort algorithm."},
		{"/technical/", "technical", `{"question": "Explain REST vs GraphQL"}`, "Technical Interview Question: Explain REST vs GraphQL."},
		{"/system-design/", "system_design", `{"question": "Design Twitter"}`, "System Design Question: Design Twitter."},
		{"/hr/", "hr", `{"question": "Tell me about yourself"}`, "HR Interview Question: Tell me about yourself."},
		{"/behavioral/", "behavioral", `{"question": "Describe a challenge"}`, "Behavioral Interview Question: Describe a challenge."},
		{"/database/", "database", `{"question": "Explain database normalization"}`, "Database Interview Question: Explain database normalization."},
		{"/frontend/", "frontend", `{"question": "What is React Virtual DOM?"}`, "Frontend Interview Question: What is React Virtual DOM?."},
		{"/backend/", "backend", `{"question": "Explain microservices architecture"}`, "Backend Interview Question: Explain microservices architecture."},
		{"/code-review/", "code_review", `{"code": "for i in range(10): print(i)", "language": "python"}`, "Review this python code and suggest improvements: for i in range(10): print(i)"},
		{"/mock-interview/", "mock_interview", `{"question": "Tell me about Go channels"}`, "Act as interviewer. Ask follow-up questions for: Tell me about Go channels"},
	}

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			container.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
			}

			var response models.RoundResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if response.Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, response.Type)
			}
			if !strings.HasPrefix(client.last().Prompt, tt.prompt) {
				t.Errorf("Unexpected prompt: %s", client.last().Prompt)
			}
		})
	}
}

/*
Round settings reach the model, and request overrides replace them.
*/
func TestAPI_GenerationSettings(t *testing.T) {
	client := &echoLLMClient{}
	container := setupTestAPI(t, client)

	post := func(path, body string) {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		container.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", recorder.Code)
		}
	}

	post("/code-review/", `{"code": "x = 1", "language": "python"}`)
	if got := client.last(); got.MaxTokens != 100 || got.Temperature != 0.5 {
		t.Errorf("Expected code review defaults 100/0.5, got %d/%f", got.MaxTokens, got.Temperature)
	}

	post("/system-design/", `{"question": "Design a URL shortener"}`)
	if got := client.last(); got.MaxTokens != 150 || got.Temperature != 0.8 {
		t.Errorf("Expected system design defaults 150/0.8, got %d/%f", got.MaxTokens, got.Temperature)
	}

	post("/hr/", `{"question": "Why us?", "max_tokens": 300, "temperature": 0}`)
	if got := client.last(); got.MaxTokens != 300 || got.Temperature != 0 {
		t.Errorf("Expected overrides 300/0, got %d/%f", got.MaxTokens, got.Temperature)
	}
}

/*
Difficulty is free text and reaches the prompt as sent.
*/
func TestAPI_DifficultyPassesThrough(t *testing.T) {
	client := &echoLLMClient{}
	container := setupTestAPI(t, client)

	tests := []struct {
		difficulty string
		prompt     string
	}{
		{"expert", "Coding Interview Question (expert): Implement quicksort algorithm."},
		{"medium-hard", "Coding Interview Question (medium-hard): Implement quicksort algorithm."},
		{"Hard", "Coding Interview Question (Hard): Implement quicksort algorithm."},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			body := `{"question": "Implement quicksort algorithm", "difficulty": "` + tt.difficulty + `"}`
			req := httptest.NewRequest(http.MethodPost, "/coding/", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			container.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
			}
			if !strings.HasPrefix(client.last().Prompt, tt.prompt) {
				t.Errorf("Unexpected prompt: %s", client.last().Prompt)
			}
		})
	}
}

/*
A model that only returns whitespace is a server error.
*/
func TestAPI_EmptyGeneration(t *testing.T) {
	container := setupTestAPI(t, &echoLLMClient{content: "  \n "})

	req := httptest.NewRequest(http.MethodPost, "/coding/", bytes.NewBufferString(`{"question": "Implement quicksort algorithm"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", recorder.Code)
	}
}

func TestAPI_UnknownPath(t *testing.T) {
	container := setupTestAPI(t, &echoLLMClient{})

	req := httptest.NewRequest(http.MethodPost, "/judge-code/", bytes.NewBufferString(`{"question": "q"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", recorder.Code)
	}
}

/*
Real provider round trip, enabled with -integration.
*/
func TestAPI_RealProvider(t *testing.T) {
	if !*runIntegration {
		t.Skip("Skipping integration test - use 'go test -integration' to run with real LLM API calls")
	}

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: No .env file found, using environment variables")
	}

	cfg := setup.LoadConfig()
	cfg.RoundsConfigPath = "../../configs/rounds.yaml"

	client, err := setup.NewLLMClient(context.Background(), cfg)
	if err != nil {
		t.Skipf("Skipping real %s integration: %v", cfg.DefaultProvider, err)
	}
	t.Logf("Using REAL provider: %s", cfg.DefaultProvider)

	container := setupTestAPI(t, client)

	req := httptest.NewRequest(http.MethodPost, "/technical/", bytes.NewBufferString(`{"question": "Explain REST vs GraphQL"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response models.RoundResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Response == "" {
		t.Error("Expected a non-empty answer")
	}
	t.Logf("Model %s answered: %s", response.Model, response.Response)
}
