package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/interview-agent/internal/config"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/llm/huggingface"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/round"
	"github.com/rs/zerolog"
)

const (
	ProviderBedrock     = "bedrock"
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
)

type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	RoundsConfigPath   string
	DefaultProvider    string
	AWSRegion          string
	ClaudeModelID      string
	OpenAIKey          string
	OpenAIModelID      string
	GeminiAPIKey       string
	GeminiModelID      string
	HFAPIURL           string
	HFAPIToken         string
	LLMTimeout         time.Duration
	ServerWriteTimeout time.Duration
}

type Dependencies struct {
	Executor *executor.RoundExecutor
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("INTERVIEW_AGENT_API_PORT", "8002"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		RoundsConfigPath:   getEnv("ROUNDS_CONFIG_PATH", config.DefaultRoundsConfigPath),
		DefaultProvider:    getEnv("DEFAULT_LLM_PROVIDER", ProviderBedrock),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:      getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:          getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:      getEnv("OPEN_AI_MODEL_ID", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:      getEnv("GEMINI_MODEL_ID", "gemini-2.0-flash"),
		HFAPIURL:           getEnv("HF_API_URL", huggingface.DefaultAPIURL),
		HFAPIToken:         getEnv("HF_API_TOKEN", ""),
		LLMTimeout:         getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		ServerWriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
	}
}

// Wire builds the LLM client named by cfg.DefaultProvider and the round
// executor on top of it.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := NewLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.DefaultProvider, err)
	}

	return WireWithClient(cfg, llmClient, logger)
}

// WireWithClient builds the round executor around an existing LLM client.
func WireWithClient(cfg *Config, llmClient llm.LLMClient, logger *zerolog.Logger) (*Dependencies, error) {
	roundsConfig, err := config.LoadRoundsConfigFrom(cfg.RoundsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds config: %w", err)
	}

	factory, err := round.NewFactory(roundsConfig, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build rounds from config: %w", err)
	}

	exec := executor.NewRoundExecutor(factory, logger, executor.WithTimeout(cfg.LLMTimeout))

	return &Dependencies{
		Executor: exec,
		Logger:   logger,
	}, nil
}

func NewLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.DefaultProvider {
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	case ProviderGemini:
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID, "")
	case ProviderHuggingFace:
		return huggingface.NewClient(huggingface.ClientConfig{
			APIURL:  cfg.HFAPIURL,
			Token:   cfg.HFAPIToken,
			Timeout: cfg.LLMTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (expected %s, %s, %s or %s)",
			cfg.DefaultProvider, ProviderBedrock, ProviderOpenAI, ProviderGemini, ProviderHuggingFace)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

// getEnvDuration accepts Go durations ("90s") or plain seconds ("90").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
