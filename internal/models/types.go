package models

type InputKind string

const (
	InputKindQuestion InputKind = "question"
	InputKindCode     InputKind = "code"
)

// DefaultDifficulty fills an omitted difficulty. Any other value is passed
// to the prompt as given.
const DefaultDifficulty = "medium"

// MaxTokensLimit is the largest generation budget a caller may ask for.
const MaxTokensLimit = 4096

// Input messages

type InterviewRequest struct {
	Question    string   `json:"question" description:"Interview question to answer"`
	Difficulty  string   `json:"difficulty,omitempty" description:"Question difficulty, free text (default: medium)"`
	MaxTokens   int      `json:"max_tokens,omitempty" description:"Maximum tokens to generate (default: round setting)"`
	Temperature *float64 `json:"temperature,omitempty" description:"Sampling temperature 0.0-1.0 (default: round setting)"`
}

type CodeReviewRequest struct {
	Code        string   `json:"code" description:"Source code to review"`
	Language    string   `json:"language" description:"Programming language of the code"`
	MaxTokens   int      `json:"max_tokens,omitempty" description:"Maximum tokens to generate (default: round setting)"`
	Temperature *float64 `json:"temperature,omitempty" description:"Sampling temperature 0.0-1.0 (default: round setting)"`
}

// PromptInput is the normalized data a round template is rendered with.
type PromptInput struct {
	Question   string
	Difficulty string
	Code       string
	Language   string
}

// GenerationOverrides carries per-request generation settings. Zero values
// mean "use the round default".
type GenerationOverrides struct {
	MaxTokens   int
	Temperature *float64
}

// Output messages

type RoundResponse struct {
	Type       string `json:"type" description:"Interview round type"`
	Response   string `json:"response" description:"Generated text"`
	Model      string `json:"model,omitempty" description:"Model ID used"`
	StopReason string `json:"stop_reason,omitempty" description:"Why generation stopped"`
}

type RoundInfo struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Input       InputKind `json:"input"`
	Description string    `json:"description,omitempty"`
}

type IndexResponse struct {
	Message   string      `json:"message" description:"Service banner"`
	Endpoints []string    `json:"endpoints" description:"Round endpoint paths"`
	Rounds    []RoundInfo `json:"rounds" description:"Round catalogue"`
}
