package config

// RoundsConfig represents the complete round catalogue
type RoundsConfig struct {
	Rounds Rounds `yaml:"rounds"`
}

type Rounds struct {
	DefaultModel ModelConfig          `yaml:"default_model"`
	Definitions  []RoundConfiguration `yaml:"definitions"`
}

// RoundConfiguration describes one interview round: its route, the body it
// accepts and the prompt template sent to the model.
type RoundConfiguration struct {
	Name        string       `yaml:"name"`
	Path        string       `yaml:"path"`
	Input       string       `yaml:"input"`
	Enabled     *bool        `yaml:"enabled"`
	Description string       `yaml:"description"`
	Prompt      string       `yaml:"prompt"`
	Model       *ModelConfig `yaml:"model"`
}

// ModelConfig holds generation settings. Zero fields on a round inherit
// from the default model.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

// IsEnabled treats a missing enabled flag as true.
func (r RoundConfiguration) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}
