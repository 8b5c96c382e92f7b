package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
)

const defaultSystemPrompt = "You are an agent that has access to an advanced search engine. " +
	"Please provide the user with the information they are looking for by using the search tools provided."

// DefaultAgent is used when no agent file is given on the command line.
func DefaultAgent() entity.Agent {
	return entity.Agent{
		Name:      "searchagent",
		ModelName: "openai/gpt-4o",
		System:    defaultSystemPrompt,
		Skills: []entity.AgentSkill{
			{Name: "exa_search"},
		},
	}
}

func LoadAgentFromFile(file string) (agent entity.Agent, err error) {
	var yamlBytes []byte
	if yamlBytes, err = os.ReadFile(file); err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrapf(errors.ErrNotFound, "agent file %s does not exist", file)
		} else {
			err = errors.Wrapf(err, "failed to read file %s", file)
		}
		return
	}

	if err = yaml.Unmarshal(yamlBytes, &agent); err != nil {
		err = errors.Wrapf(err, "failed to unmarshal file %s", file)
		return
	}

	if agent.ModelName == "" {
		agent.ModelName = "openai/gpt-4o"
	}
	if agent.System == "" {
		agent.System = defaultSystemPrompt
	}

	return
}
