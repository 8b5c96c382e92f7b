package entity

type Agent struct {
	Name        string         `json:"name" yaml:"name"`
	ModelName   string         `json:"model,omitempty" yaml:"model"`
	ModelConfig map[string]any `json:"modelConfig,omitempty" yaml:"modelConfig"`
	System      string         `json:"system,omitempty" yaml:"system"`
	Greeting    string         `json:"greeting,omitempty" yaml:"greeting"`

	// Skills are a unit of capability that an agent can perform.
	Skills []AgentSkill `json:"skills" yaml:"skills"`
}

// AgentSkill enables one named tool for the agent, optionally with
// tool-specific configuration in Env.
type AgentSkill struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description" jsonschema_description:"Use the tool's default description if empty"`
	Env         map[string]any `json:"env,omitempty" yaml:"env"`
}
