package engine

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/param"
	"github.com/openai/openai-go/v2/shared/constant"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/internal/mylog"
	"github.com/verityhq/searchagent/tool"
)

type openAIModel struct {
	client openai.Client
	model  string
	logger *mylog.Logger
}

var (
	_ Model = (*openAIModel)(nil)
)

func newOpenAIModel(apiKey, model string, logger *mylog.Logger) *openAIModel {
	return &openAIModel{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
		),
		model:  model,
		logger: logger,
	}
}

func (m *openAIModel) Name() string {
	return "openai/" + m.model
}

func (m *openAIModel) Complete(ctx context.Context, req *CompleteRequest) (*Completion, error) {
	params, err := convertOpenAIRequest(m.model, req)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "openai completion failed: %v", err)
	}

	return translateOpenAIResponse(resp)
}

func convertOpenAIRequest(model string, req *CompleteRequest) (*openai.ChatCompletionNewParams, error) {
	messages, err := convertOpenAIMessages(req.System, req.Messages)
	if err != nil {
		return nil, err
	}

	params := &openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}

	if len(req.Tools) > 0 {
		params.Tools = convertOpenAITools(req.Tools)
	}

	if req.Config != nil {
		var c modelCommonConfig
		if err := decodeModelConfig(req.Config, &c); err != nil {
			return nil, err
		}
		if c.MaxOutputTokens > 0 {
			params.MaxCompletionTokens = openai.Int(c.MaxOutputTokens)
		}
		if c.Temperature > 0 {
			params.Temperature = openai.Float(c.Temperature)
		}
		if c.TopP > 0 {
			params.TopP = openai.Float(c.TopP)
		}
	}

	return params, nil
}

func convertOpenAIMessages(system string, messages []Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	var msgs []openai.ChatCompletionMessageParamUnion

	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}

	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleUser:
			msgs = append(msgs, openai.UserMessage(m.Content))
		case RoleAssistant:
			am := openai.ChatCompletionAssistantMessageParam{
				Role: constant.ValueOf[constant.Assistant](),
			}
			if m.Content != "" {
				am.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: param.NewOpt(m.Content),
				}
			}
			for _, tc := range m.ToolCalls {
				arguments := string(tc.Arguments)
				if arguments == "" {
					// The API requires the arguments field even when empty.
					arguments = "{}"
				}
				am.ToolCalls = append(am.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: arguments,
						},
						Type: constant.ValueOf[constant.Function](),
					},
				})
			}
			msgs = append(msgs, openai.ChatCompletionMessageParamUnion{OfAssistant: &am})
		case RoleTool:
			msgs = append(msgs, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			return nil, errors.Errorf("unknown role: %s", m.Role)
		}
	}

	return msgs, nil
}

func convertOpenAITools(defs []tool.Definition) []openai.ChatCompletionToolUnionParam {
	tools := make([]openai.ChatCompletionToolUnionParam, 0, len(defs))
	for _, d := range defs {
		var description param.Opt[string]
		if d.Description != "" {
			description = param.NewOpt(d.Description)
		}
		tools = append(tools, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        d.Name,
			Description: description,
			Parameters:  openai.FunctionParameters(d.InputSchema),
		}))
	}
	return tools
}

func translateOpenAIResponse(resp *openai.ChatCompletion) (*Completion, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai completion returned no choices")
	}
	choice := resp.Choices[0]

	c := &Completion{
		Text: choice.Message.Content,
	}
	for _, toolCall := range choice.Message.ToolCalls {
		c.ToolCalls = append(c.ToolCalls, ToolCall{
			ID:        toolCall.ID,
			Name:      toolCall.Function.Name,
			Arguments: json.RawMessage(toolCall.Function.Arguments),
		})
	}

	return c, nil
}
