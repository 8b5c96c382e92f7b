package engine

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verityhq/searchagent/tool"
)

func TestBuildAnthropicParams(t *testing.T) {
	params, err := buildAnthropicParams("claude-sonnet-4-20250514", &CompleteRequest{
		System: "be helpful",
		Messages: []Message{
			{Role: RoleUser, Content: "Who plays Iron Man?"},
			{
				Role: RoleAssistant,
				ToolCalls: []ToolCall{{
					ID:        "toolu_1",
					Name:      "exa_search",
					Arguments: json.RawMessage(`{"query": "Iron Man actor"}`),
				}},
			},
			{Role: RoleTool, Content: "search results", ToolCallID: "toolu_1", ToolName: "exa_search"},
		},
		Tools: []tool.Definition{{
			Name:        "exa_search",
			Description: "web search",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string"},
				},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, anthropic.Model("claude-sonnet-4-20250514"), params.Model)
	assert.Equal(t, int64(defaultAnthropicMaxTokens), params.MaxTokens)

	require.Len(t, params.System, 1)
	assert.Equal(t, "be helpful", params.System[0].Text)

	require.Len(t, params.Messages, 3)
	assert.Equal(t, anthropic.MessageParamRoleUser, params.Messages[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, params.Messages[1].Role)
	// Tool results travel back as user messages.
	assert.Equal(t, anthropic.MessageParamRoleUser, params.Messages[2].Role)

	require.Len(t, params.Tools, 1)
	toolParam := params.Tools[0].OfTool
	require.NotNil(t, toolParam)
	assert.Equal(t, "exa_search", toolParam.Name)
	assert.Equal(t, "web search", toolParam.Description.Value)
	assert.NotNil(t, toolParam.InputSchema.Properties)
}

func TestBuildAnthropicParams_Config(t *testing.T) {
	params, err := buildAnthropicParams("claude-sonnet-4-20250514", &CompleteRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Config: map[string]any{
			"maxOutputTokens": 2048,
			"temperature":     0.5,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2048), params.MaxTokens)
	assert.InDelta(t, 0.5, params.Temperature.Value, 1e-9)
	assert.Empty(t, params.System)
}

func TestConvertAnthropicMessages_RejectsSystemRole(t *testing.T) {
	_, err := convertAnthropicMessages([]Message{{Role: RoleSystem, Content: "hidden"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "system message")
}

func TestTranslateAnthropicResponse(t *testing.T) {
	raw := `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"content": [
			{"type": "text", "text": "Let me search for that."},
			{"type": "tool_use", "id": "toolu_1", "name": "exa_search", "input": {"query": "Latest developments in quantum computing"}}
		],
		"model": "claude-sonnet-4-20250514",
		"stop_reason": "tool_use"
	}`

	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))

	c := translateAnthropicResponse(&msg)

	assert.Equal(t, "Let me search for that.", c.Text)
	require.Len(t, c.ToolCalls, 1)
	assert.Equal(t, "toolu_1", c.ToolCalls[0].ID)
	assert.Equal(t, "exa_search", c.ToolCalls[0].Name)
	assert.JSONEq(t, `{"query": "Latest developments in quantum computing"}`, string(c.ToolCalls[0].Arguments))
}
