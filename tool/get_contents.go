package tool

import (
	firecrawl "github.com/mendableai/firecrawl-go"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
)

type (
	GetContentsToolRequest struct {
		URL string `json:"url" jsonschema:"required,description=The URL of the web page to fetch."`
	}
	GetContentsToolResponse struct {
		URL      string `json:"url"`
		Title    string `json:"title,omitempty"`
		Markdown string `json:"markdown"`
	}
)

func (m *manager) registerGetContentsTool(skill *entity.AgentSkill) error {
	if m.firecrawlConfig == nil {
		return errors.New("firecrawl config is not available")
	}
	if err := m.firecrawlConfig.Validate(); err != nil {
		return errors.Wrap(err, "firecrawl configuration is invalid - check FIRECRAWL_API_KEY environment variable")
	}

	app, err := firecrawl.NewFirecrawlApp(m.firecrawlConfig.APIKey, m.firecrawlConfig.APIUrl)
	if err != nil {
		return errors.Wrapf(err, "failed to create firecrawl client")
	}

	description := skill.Description
	if description == "" {
		description = "Fetch the full content of a single web page as markdown. " +
			"Use this when search highlights are not enough and you need the whole page."
	}

	return registerLocalTool(
		m,
		"get_contents",
		description,
		skill,
		func(ctx *Context, req GetContentsToolRequest) (*GetContentsToolResponse, error) {
			if req.URL == "" {
				return nil, errors.Wrapf(errors.ErrDecoding, "get_contents requires a url")
			}

			doc, err := app.ScrapeURL(req.URL, &firecrawl.ScrapeParams{
				Formats: []string{"markdown"},
			})
			if err != nil {
				return nil, errors.Wrapf(errors.ErrTransport, "failed to scrape URL %s: %v", req.URL, err)
			}

			res := &GetContentsToolResponse{
				URL:      req.URL,
				Markdown: doc.Markdown,
			}
			if doc.Metadata != nil && doc.Metadata.Title != nil {
				res.Title = *doc.Metadata.Title
			}

			m.logger.Info("context updated with get_contents", "url", req.URL)

			return res, nil
		},
	)
}
