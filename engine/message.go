package engine

import (
	"encoding/json"
)

// Role is the closed set of conversation roles.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

type (
	// ToolCall is a tool invocation requested by the model. Arguments are the
	// serialized JSON exactly as the model produced them.
	ToolCall struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}

	// Message is one entry of the conversation buffer. The buffer is
	// append-only: entries are never mutated or removed once added.
	Message struct {
		Role    Role   `json:"role"`
		Content string `json:"content,omitempty"`

		// ToolCalls is set on assistant messages that request invocations.
		ToolCalls []ToolCall `json:"tool_calls,omitempty"`

		// ToolCallID and ToolName correlate a tool message with the request
		// it answers.
		ToolCallID string `json:"tool_call_id,omitempty"`
		ToolName   string `json:"tool_name,omitempty"`
	}
)
