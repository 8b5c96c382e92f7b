package tool

import (
	"context"
	"encoding/json"
)

type (
	// Definition is the static descriptor advertised to the model: the tool
	// name, what it does, and the JSON schema of its arguments.
	Definition struct {
		Name        string
		Description string
		InputSchema map[string]any
	}

	// Tool is a single-capability handler. Arguments arrive as the raw JSON
	// produced by the model and are decoded by the implementation.
	Tool interface {
		Definition() Definition
		Call(ctx context.Context, arguments json.RawMessage) (any, error)
	}
)
