package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verityhq/searchagent/config"
	"github.com/verityhq/searchagent/errors"
)

func TestNewExaConfig(t *testing.T) {
	t.Setenv("EXA_API_KEY", "exa-key")
	t.Setenv("EXA_API_URL", "")

	c := config.NewExaConfig()

	assert.Equal(t, "exa-key", c.APIKey)
	assert.Equal(t, "https://api.exa.ai", c.APIUrl)
	assert.NoError(t, c.Validate())
}

func TestExaConfig_Validate_MissingKey(t *testing.T) {
	t.Setenv("EXA_API_KEY", "")

	err := config.NewExaConfig().Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "EXA_API_KEY")
}

func TestValidateForModel(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("ANTHROPIC_API_KEY", "")

	assert.NoError(t, config.ValidateForModel("openai/gpt-4o"))
	assert.NoError(t, config.ValidateForModel("gpt-4o")) // bare name defaults to openai

	err := config.ValidateForModel("anthropic/claude-sonnet-4-0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	err = config.ValidateForModel("cohere/command-r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model provider")
}

func TestNewLogConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_HANDLER", "")

	c := config.NewLogConfig()

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "default", c.LogHandler)
}

func TestDefaultAgent(t *testing.T) {
	agent := config.DefaultAgent()

	assert.Equal(t, "searchagent", agent.Name)
	assert.Equal(t, "openai/gpt-4o", agent.ModelName)
	assert.NotEmpty(t, agent.System)
	require.Len(t, agent.Skills, 1)
	assert.Equal(t, "exa_search", agent.Skills[0].Name)
}

func TestLoadAgentFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "agent.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
name: researcher
model: anthropic/claude-sonnet-4-0
greeting: "Hello, I can search the web for you."
skills:
  - name: exa_search
  - name: rss
    env:
      allowed_feed_urls:
        - url: https://example.com/feed.xml
          name: Example
          description: Example feed
`), 0o644))

	agent, err := config.LoadAgentFromFile(file)

	require.NoError(t, err)
	assert.Equal(t, "researcher", agent.Name)
	assert.Equal(t, "anthropic/claude-sonnet-4-0", agent.ModelName)
	assert.Equal(t, "Hello, I can search the web for you.", agent.Greeting)
	assert.NotEmpty(t, agent.System) // default applied
	require.Len(t, agent.Skills, 2)
	assert.Equal(t, "rss", agent.Skills[1].Name)
	assert.Contains(t, agent.Skills[1].Env, "allowed_feed_urls")
}

func TestLoadAgentFromFile_Missing(t *testing.T) {
	_, err := config.LoadAgentFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
