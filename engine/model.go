package engine

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/verityhq/searchagent/config"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/internal/mylog"
	"github.com/verityhq/searchagent/tool"
)

type (
	// CompleteRequest carries the full message history plus an optional tool
	// definition list. When Tools is empty the provider is asked for plain
	// text only.
	CompleteRequest struct {
		System   string
		Messages []Message
		Tools    []tool.Definition
		Config   map[string]any
	}

	// Completion is the model's answer: either text, or one or more tool
	// calls to dispatch.
	Completion struct {
		Text      string
		ToolCalls []ToolCall
	}

	Model interface {
		Name() string
		Complete(ctx context.Context, req *CompleteRequest) (*Completion, error)
	}
)

// NewModel resolves a "provider/model" name; a missing prefix defaults to
// openai. The provider credential is validated here so a missing key fails
// at startup, not on the first call.
func NewModel(modelName string, logger *mylog.Logger) (Model, error) {
	provider, name := "openai", modelName
	if pieces := strings.SplitN(modelName, "/", 2); len(pieces) == 2 {
		provider, name = pieces[0], pieces[1]
	}

	switch provider {
	case "openai":
		conf := config.NewOpenAIConfig()
		if err := conf.Validate(); err != nil {
			return nil, err
		}
		return newOpenAIModel(conf.APIKey, name, logger), nil
	case "anthropic":
		conf := config.NewAnthropicConfig()
		if err := conf.Validate(); err != nil {
			return nil, err
		}
		return newAnthropicModel(conf.APIKey, name, logger), nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown model provider: %s", provider)
	}
}

// modelCommonConfig is the provider-independent slice of the agent's model
// config.
type modelCommonConfig struct {
	MaxOutputTokens int64   `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
}

func decodeModelConfig(config map[string]any, out any) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := json.Unmarshal(jsonBytes, out); err != nil {
		return errors.Wrapf(err, "failed to unmarshal model config")
	}
	return nil
}
