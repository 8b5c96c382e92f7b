package tool

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
)

type localTool[In any, Out any] struct {
	def   Definition
	skill *entity.AgentSkill
	fn    func(ctx *Context, input In) (Out, error)
}

func (t *localTool[In, Out]) Definition() Definition {
	return t.def
}

func (t *localTool[In, Out]) Call(ctx context.Context, arguments json.RawMessage) (any, error) {
	var input In
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &input); err != nil {
			return nil, errors.Wrapf(errors.ErrDecoding, "failed to decode arguments for %s: %v", t.def.Name, err)
		}
	}

	out, err := t.fn(&Context{Context: ctx, skill: t.skill}, input)
	if err == nil {
		appendCallData(ctx, CallData{
			Name:      t.def.Name,
			Arguments: input,
			Result:    out,
		})
	}
	return out, err
}

func registerLocalTool[In any, Out any](m *manager, name, description string, skill *entity.AgentSkill, fn func(ctx *Context, input In) (Out, error)) error {
	if _, ok := m.tools[name]; ok {
		return errors.Errorf("tool %s already registered", name)
	}

	inputSchema, err := reflectInputSchema(new(In))
	if err != nil {
		return errors.Wrapf(err, "failed to reflect input schema for %s", name)
	}

	m.tools[name] = &localTool[In, Out]{
		def: Definition{
			Name:        name,
			Description: description,
			InputSchema: inputSchema,
		},
		skill: skill,
		fn:    fn,
	}
	m.toolNames = append(m.toolNames, name)

	return nil
}

func reflectInputSchema(v any) (map[string]any, error) {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(v)

	schemaJson, err := json.Marshal(schema)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var inputSchema map[string]any
	if err := json.Unmarshal(schemaJson, &inputSchema); err != nil {
		return nil, errors.WithStack(err)
	}

	// Providers expect a bare object schema.
	delete(inputSchema, "$schema")
	delete(inputSchema, "$id")

	return inputSchema, nil
}
