package engine

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/internal/mylog"
	"github.com/verityhq/searchagent/tool"
)

// followUpPrompt is appended after tool results so the model answers the
// original question instead of commenting on the raw results.
const followUpPrompt = "Answer my previous query based on the search results."

type (
	// Session owns one conversation: the agent definition, the resolved
	// model, the registered tools and the append-only message buffer.
	Session struct {
		id     string
		agent  *entity.Agent
		model  Model
		tools  tool.Manager
		logger *mylog.Logger

		messages []Message
	}

	// TurnResponse is the outcome of one user turn.
	TurnResponse struct {
		Text      string
		ToolCalls []tool.CallData
	}
)

func NewSession(agent *entity.Agent, model Model, tools tool.Manager, logger *mylog.Logger) *Session {
	return &Session{
		id:     uuid.NewString(),
		agent:  agent,
		model:  model,
		tools:  tools,
		logger: logger,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Messages returns a copy of the conversation buffer.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Turn runs one full user turn: send the question with the tool catalog,
// dispatch any requested tool calls, relay the results back and return the
// model's final text. New messages are staged and committed to the buffer
// only when the whole turn succeeds, so a failed turn leaves the session
// exactly as it was.
func (s *Session) Turn(ctx context.Context, userInput string) (*TurnResponse, error) {
	ctx = tool.WithEmptyCallDataStore(ctx)

	staging := append([]Message(nil), s.messages...)
	staging = append(staging, Message{
		Role:    RoleUser,
		Content: userInput,
	})

	defs := lo.Map(s.tools.GetTools(), func(t tool.Tool, _ int) tool.Definition {
		return t.Definition()
	})

	completion, err := s.model.Complete(ctx, &CompleteRequest{
		System:   s.agent.System,
		Messages: staging,
		Tools:    defs,
		Config:   s.agent.ModelConfig,
	})
	if err != nil {
		return nil, err
	}

	if len(completion.ToolCalls) == 0 {
		staging = append(staging, Message{
			Role:    RoleAssistant,
			Content: completion.Text,
		})
		s.messages = staging
		return &TurnResponse{Text: completion.Text}, nil
	}

	staging = append(staging, Message{
		Role:      RoleAssistant,
		Content:   completion.Text,
		ToolCalls: completion.ToolCalls,
	})

	for _, call := range completion.ToolCalls {
		result, err := s.dispatch(ctx, call)
		if err != nil {
			return nil, err
		}
		staging = append(staging, Message{
			Role:       RoleTool,
			Content:    result,
			ToolCallID: call.ID,
			ToolName:   call.Name,
		})
	}

	staging = append(staging, Message{
		Role:    RoleUser,
		Content: followUpPrompt,
	})

	// No tools on the relay call: the model must answer, not search again.
	final, err := s.model.Complete(ctx, &CompleteRequest{
		System:   s.agent.System,
		Messages: staging,
		Config:   s.agent.ModelConfig,
	})
	if err != nil {
		return nil, err
	}

	staging = append(staging, Message{
		Role:    RoleAssistant,
		Content: final.Text,
	})
	s.messages = staging

	return &TurnResponse{
		Text:      final.Text,
		ToolCalls: tool.GetCallData(ctx),
	}, nil
}

// dispatch resolves and runs one tool call, returning the serialized result
// to relay back. A name the manager doesn't know is answered with a stub
// result instead of an error, so the conversation stays well-formed.
func (s *Session) dispatch(ctx context.Context, call ToolCall) (string, error) {
	t := s.tools.GetTool(call.Name)
	if t == nil {
		s.logger.Warn("model requested unknown tool", "tool", call.Name, "session", s.id)
		return "Tool " + call.Name + " is not available.", nil
	}

	s.logger.Info("calling tool", "tool", call.Name, "session", s.id)

	result, err := t.Call(ctx, call.Arguments)
	if err != nil {
		return "", errors.Wrapf(err, "tool %s failed", call.Name)
	}

	switch v := result.(type) {
	case string:
		return v, nil
	default:
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return "", errors.Wrapf(err, "failed to marshal result of tool %s", call.Name)
		}
		return string(jsonBytes), nil
	}
}
