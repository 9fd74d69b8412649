package batch

import "time"

// RoundRecord is one JSONL input line.
type RoundRecord struct {
	ID          string   `json:"id"`
	Round       string   `json:"round"`
	Question    string   `json:"question,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Code        string   `json:"code,omitempty"`
	Language    string   `json:"language,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// InputRecord is a parsed line. Error is set when the line could not be decoded.
type InputRecord struct {
	LineNumber int
	Request    RoundRecord
	Error      error
}

// Result is one JSONL output line.
type Result struct {
	ID         string        `json:"id"`
	Round      string        `json:"round"`
	LineNumber int           `json:"line,omitempty"`
	Type       string        `json:"type,omitempty"`
	Response   string        `json:"response,omitempty"`
	Model      string        `json:"model,omitempty"`
	StopReason string        `json:"stop_reason,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

func (r Result) Failed() bool {
	return r.Error != ""
}
