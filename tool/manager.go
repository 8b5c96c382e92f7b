package tool

import (
	"context"

	"github.com/verityhq/searchagent/config"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/exa"
	"github.com/verityhq/searchagent/internal/mylog"
)

type (
	Manager interface {
		GetTool(toolName string) Tool
		GetTools() []Tool
	}

	// Searcher abstracts the web search backend so tests can script it.
	Searcher interface {
		SearchAndContents(ctx context.Context, query string, numResults int) (*exa.SearchResponse, error)
	}

	manager struct {
		logger *mylog.Logger

		tools     map[string]Tool
		toolNames []string // registration order

		searcher        Searcher
		firecrawlConfig *config.FireCrawlConfig
	}
)

var (
	_ Manager = (*manager)(nil)
)

func NewToolManager(skills []entity.AgentSkill, logger *mylog.Logger, searcher Searcher, firecrawlConfig *config.FireCrawlConfig) (Manager, error) {
	m := &manager{
		logger:          logger,
		tools:           make(map[string]Tool),
		searcher:        searcher,
		firecrawlConfig: firecrawlConfig,
	}

	for i := range skills {
		skill := &skills[i]
		if skill.Name == "" {
			return nil, errors.New("skill name is required")
		}
		switch skill.Name {
		case "exa_search":
			if err := m.registerExaSearchTool(skill); err != nil {
				return nil, errors.Wrapf(err, "failed to register exa_search skill")
			}
		case "get_contents":
			if err := m.registerGetContentsTool(skill); err != nil {
				return nil, errors.Wrapf(err, "failed to register get_contents skill")
			}
		case "rss":
			if err := m.registerRSSSkill(skill); err != nil {
				return nil, errors.Wrapf(err, "failed to register rss skill")
			}
		default:
			return nil, errors.Wrapf(errors.ErrUnknownTool, "invalid skill name: %s", skill.Name)
		}
	}

	return m, nil
}

func (m *manager) GetTool(toolName string) Tool {
	return m.tools[toolName]
}

func (m *manager) GetTools() []Tool {
	tools := make([]Tool, 0, len(m.toolNames))
	for _, name := range m.toolNames {
		tools = append(tools, m.tools[name])
	}
	return tools
}
