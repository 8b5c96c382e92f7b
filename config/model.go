package config

import (
	"os"
	"strings"

	"github.com/verityhq/searchagent/errors"
)

type (
	OpenAIConfig struct {
		APIKey string `env:"OPENAI_API_KEY"`
	}

	AnthropicConfig struct {
		APIKey string `env:"ANTHROPIC_API_KEY"`
	}
)

func NewOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey: os.Getenv("OPENAI_API_KEY"),
	}
}

func (c *OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "OPENAI_API_KEY is required")
	}
	return nil
}

func NewAnthropicConfig() *AnthropicConfig {
	return &AnthropicConfig{
		APIKey: os.Getenv("ANTHROPIC_API_KEY"),
	}
}

func (c *AnthropicConfig) Validate() error {
	if c.APIKey == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "ANTHROPIC_API_KEY is required")
	}
	return nil
}

// ValidateForModel checks only the credential belonging to the model's
// provider prefix, e.g. "openai/gpt-4o" or "anthropic/claude-sonnet-4-0".
func ValidateForModel(modelName string) error {
	provider := "openai"
	if pieces := strings.SplitN(modelName, "/", 2); len(pieces) == 2 {
		provider = pieces[0]
	}

	switch provider {
	case "openai":
		return NewOpenAIConfig().Validate()
	case "anthropic":
		return NewAnthropicConfig().Validate()
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown model provider: %s", provider)
	}
}
