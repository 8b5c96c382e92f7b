package config

import (
	"os"

	"github.com/verityhq/searchagent/errors"
)

type ExaConfig struct {
	APIKey string `json:"api_key"`
	APIUrl string `json:"api_url"`
}

func (c *ExaConfig) Validate() error {
	if c.APIKey == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "EXA_API_KEY is required")
	}
	return nil
}

func NewExaConfig() *ExaConfig {
	config := &ExaConfig{
		APIKey: os.Getenv("EXA_API_KEY"),
		APIUrl: os.Getenv("EXA_API_URL"),
	}

	if config.APIUrl == "" {
		config.APIUrl = "https://api.exa.ai"
	}

	return config
}
