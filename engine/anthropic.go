package engine

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/internal/mylog"
	"github.com/verityhq/searchagent/tool"
)

type anthropicModel struct {
	client anthropic.Client
	model  string
	logger *mylog.Logger
}

var (
	_ Model = (*anthropicModel)(nil)
)

// The Messages API makes max_tokens mandatory.
const defaultAnthropicMaxTokens = 1024

func newAnthropicModel(apiKey, model string, logger *mylog.Logger) *anthropicModel {
	return &anthropicModel{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
		),
		model:  model,
		logger: logger,
	}
}

func (m *anthropicModel) Name() string {
	return "anthropic/" + m.model
}

func (m *anthropicModel) Complete(ctx context.Context, req *CompleteRequest) (*Completion, error) {
	params, err := buildAnthropicParams(m.model, req)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "anthropic message generation failed: %v", err)
	}

	return translateAnthropicResponse(resp), nil
}

func buildAnthropicParams(model string, req *CompleteRequest) (anthropic.MessageNewParams, error) {
	messages, err := convertAnthropicMessages(req.Messages)
	if err != nil {
		return anthropic.MessageNewParams{}, err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: defaultAnthropicMaxTokens,
		Messages:  messages,
	}

	if strings.TrimSpace(req.System) != "" {
		params.System = append(params.System, anthropic.TextBlockParam{
			Text: req.System,
		})
	}

	if req.Config != nil {
		var c modelCommonConfig
		if err := decodeModelConfig(req.Config, &c); err != nil {
			return anthropic.MessageNewParams{}, err
		}
		if c.MaxOutputTokens > 0 {
			params.MaxTokens = c.MaxOutputTokens
		}
		if c.Temperature > 0 {
			params.Temperature = anthropic.Float(c.Temperature)
		}
		if c.TopP > 0 {
			params.TopP = anthropic.Float(c.TopP)
		}
	}

	if len(req.Tools) > 0 {
		tools := make([]anthropic.ToolUnionParam, len(req.Tools))
		for i, t := range req.Tools {
			tools[i] = convertAnthropicTool(t)
		}
		params.Tools = tools
	}

	return params, nil
}

func convertAnthropicMessages(messages []Message) ([]anthropic.MessageParam, error) {
	var anthropicMessages []anthropic.MessageParam

	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			// System text travels in the request's System field, never as a
			// conversation message.
			return nil, errors.Errorf("system message must not appear in the buffer")
		case RoleUser:
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(
				anthropic.NewTextBlock(m.Content),
			))
		case RoleAssistant:
			var blocks []anthropic.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				input := json.RawMessage(tc.Arguments)
				if len(input) == 0 {
					input = json.RawMessage("{}")
				}
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, input, tc.Name))
			}
			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(blocks...))
		case RoleTool:
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(m.ToolCallID, m.Content, false),
			))
		default:
			return nil, errors.Errorf("unsupported message role: %s", m.Role)
		}
	}

	return anthropicMessages, nil
}

func convertAnthropicTool(t tool.Definition) anthropic.ToolUnionParam {
	inputSchema := anthropic.ToolInputSchemaParam{
		Type:       "object",
		Properties: t.InputSchema["properties"],
	}

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: inputSchema,
		},
	}
}

func translateAnthropicResponse(resp *anthropic.Message) *Completion {
	c := &Completion{}

	var texts []string
	for _, content := range resp.Content {
		switch block := content.AsAny().(type) {
		case anthropic.TextBlock:
			texts = append(texts, block.Text)
		case anthropic.ToolUseBlock:
			c.ToolCalls = append(c.ToolCalls, ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: json.RawMessage(block.Input),
			})
		}
	}
	c.Text = strings.Join(texts, "\n")

	return c
}
