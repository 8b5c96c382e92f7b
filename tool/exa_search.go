package tool

import (
	"strings"
	"text/template"

	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/exa"
)

type (
	ExaSearchToolRequest struct {
		Query string `json:"query" jsonschema:"required,description=The search query to perform."`
	}
	ExaSearchToolResponse struct {
		Result string `json:"result"`
	}
)

const defaultNumResults = 3

var searchSourceTmpl = template.Must(template.New("search_source").Parse(`<source>
    <url>{{.URL}}</url>
    <title>{{.Title}}</title>
    <highlights>{{range .Highlights}}{{.}} {{end}}</highlights>
</source>
`))

// FormatSearchResults renders ranked results as source blocks the model can
// cite from.
func FormatSearchResults(results []exa.Result) (string, error) {
	var sb strings.Builder
	for _, result := range results {
		if err := searchSourceTmpl.Execute(&sb, result); err != nil {
			return "", errors.Wrapf(errors.ErrInternal, "failed to render search results: %v", err)
		}
	}
	if sb.Len() == 0 {
		return "No results found.", nil
	}
	return sb.String(), nil
}

func (m *manager) registerExaSearchTool(skill *entity.AgentSkill) error {
	if m.searcher == nil {
		return errors.New("search client is not configured")
	}

	description := skill.Description
	if description == "" {
		description = "Perform a search query on the web, and retrieve the most relevant URLs/web data."
	}

	return registerLocalTool(
		m,
		"exa_search",
		description,
		skill,
		func(ctx *Context, req ExaSearchToolRequest) (*ExaSearchToolResponse, error) {
			if req.Query == "" {
				return nil, errors.Wrapf(errors.ErrDecoding, "exa_search requires a query")
			}

			resp, err := m.searcher.SearchAndContents(ctx, req.Query, defaultNumResults)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrTransport, "exa search failed: %v", err)
			}

			result, err := FormatSearchResults(resp.Results)
			if err != nil {
				return nil, err
			}

			m.logger.Info("context updated with exa_search", "query", req.Query, "results", len(resp.Results))

			return &ExaSearchToolResponse{Result: result}, nil
		},
	)
}
