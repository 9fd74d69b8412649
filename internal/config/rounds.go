package config

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const (
	InputQuestion = "question"
	InputCode     = "code"
)

const DefaultRoundsConfigPath = "configs/rounds.yaml"

// LoadRoundsConfig loads the catalogue named by ROUNDS_CONFIG_PATH.
func LoadRoundsConfig() (*RoundsConfig, error) {
	path := os.Getenv("ROUNDS_CONFIG_PATH")
	if path == "" {
		path = DefaultRoundsConfigPath
	}

	return LoadRoundsConfigFrom(path)
}

func LoadRoundsConfigFrom(path string) (*RoundsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseRoundsConfig(data)
}

// ParseRoundsConfig decodes, defaults and validates a YAML round catalogue.
func ParseRoundsConfig(data []byte) (*RoundsConfig, error) {
	var cfg RoundsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *RoundsConfig) {
	if cfg.Rounds.DefaultModel.MaxTokens == 0 {
		cfg.Rounds.DefaultModel.MaxTokens = 150
	}

	defaults := cfg.Rounds.DefaultModel
	for i := range cfg.Rounds.Definitions {
		round := &cfg.Rounds.Definitions[i]

		if round.Input == "" {
			round.Input = InputQuestion
		}
		if round.Path == "" && round.Name != "" {
			round.Path = "/" + strings.ReplaceAll(round.Name, "_", "-") + "/"
		}

		// A round without a model block takes the default model as-is.
		// With a block, zero max_tokens/temperature are inherited and retry
		// is taken as written.
		if round.Model == nil {
			model := defaults
			round.Model = &model
			continue
		}
		if round.Model.MaxTokens == 0 {
			round.Model.MaxTokens = defaults.MaxTokens
		}
		if round.Model.Temperature == 0 {
			round.Model.Temperature = defaults.Temperature
		}
	}
}

func (c *RoundsConfig) Validate() error {
	if len(c.Rounds.Definitions) == 0 {
		return fmt.Errorf("no rounds configured")
	}

	if err := validateModel("default_model", c.Rounds.DefaultModel); err != nil {
		return err
	}

	names := make(map[string]bool)
	paths := make(map[string]bool)
	for i, round := range c.Rounds.Definitions {
		if round.Name == "" {
			return fmt.Errorf("round at index %d: missing name", i)
		}
		if names[round.Name] {
			return fmt.Errorf("duplicate round name: %s", round.Name)
		}
		names[round.Name] = true

		if round.Path != "" {
			key := strings.Trim(round.Path, "/")
			if paths[key] {
				return fmt.Errorf("duplicate round path: %s", round.Path)
			}
			paths[key] = true
		}

		if round.Input != "" && round.Input != InputQuestion && round.Input != InputCode {
			return fmt.Errorf("round %s: invalid input kind %q", round.Name, round.Input)
		}

		if strings.TrimSpace(round.Prompt) == "" {
			return fmt.Errorf("round %s: missing prompt", round.Name)
		}
		if _, err := template.New(round.Name).Parse(round.Prompt); err != nil {
			return fmt.Errorf("round %s: invalid prompt template: %w", round.Name, err)
		}

		if round.Model != nil {
			if err := validateModel(round.Name, *round.Model); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateModel(owner string, model ModelConfig) error {
	if model.MaxTokens < 0 {
		return fmt.Errorf("%s: negative max_tokens %d", owner, model.MaxTokens)
	}
	if model.Temperature < 0.0 || model.Temperature > 1.0 {
		return fmt.Errorf("%s: invalid temperature %.2f", owner, model.Temperature)
	}
	return nil
}
