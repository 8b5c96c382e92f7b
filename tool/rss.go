package tool

import (
	"strings"
	"text/template"

	"github.com/mitchellh/mapstructure"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/errors"
	"github.com/verityhq/searchagent/tool/rss"
)

type RSSFeedUrl struct {
	URL         string `json:"url" jsonschema:"description=The URL of the RSS feed"`
	Name        string `json:"name" jsonschema:"description=The name of the RSS feed"`
	Description string `json:"description" jsonschema:"description=The description of the RSS feed"`
}

var (
	searchRSSDescriptionTmpl = template.Must(template.New("search_rss_description").Parse(`Search multiple RSS feeds for items matching a query keyword.

## Allowed RSS Feeds
You can ONLY search through the following pre-configured RSS feeds:
<allowed_rss_feeds>
{{- if .AllowedFeedUrls}}
{{- range .AllowedFeedUrls}}
- [**{{.Name}}**]({{.URL}}): {{.Description}}
{{- end}}
{{- else}}
No RSS feeds have been configured for this agent.
{{- end}}
</allowed_rss_feeds>

## Parameters
- **urls**: Array of RSS feed URLs to search, copied exactly from the allowed feeds list *(required)*
- **query**: Search keyword or phrase, matched case-insensitively against titles and descriptions *(required)*
- **max_items**: Maximum total number of results *(optional)*

Returns matching items along with their source feed URLs.`))

	readRSSDescriptionTmpl = template.Must(template.New("read_rss_description").Parse(`Read and retrieve all recent items from a single RSS feed.

## Allowed RSS Feeds
You can ONLY read from the following pre-configured RSS feeds:
<allowed_rss_feeds>
{{- if .AllowedFeedUrls}}
{{- range .AllowedFeedUrls}}
- [**{{.Name}}**]({{.URL}}): {{.Description}}
{{- end}}
{{- else}}
No RSS feeds have been configured for this agent.
{{- end}}
</allowed_rss_feeds>

## Parameters
- **url**: RSS feed URL to read, copied exactly from the allowed feeds list *(required)*
- **limit**: Maximum number of items to return *(optional)*

Returns all feed items with title, description, link, published date, author, and categories.`))
)

func (m *manager) registerRSSSkill(skill *entity.AgentSkill) error {
	var allowedFeedUrls []RSSFeedUrl
	if err := mapstructure.Decode(skill.Env["allowed_feed_urls"], &allowedFeedUrls); err != nil {
		return errors.WithStack(err)
	}

	{
		description := strings.Builder{}
		if err := searchRSSDescriptionTmpl.Execute(&description, struct {
			AllowedFeedUrls []RSSFeedUrl
		}{
			AllowedFeedUrls: allowedFeedUrls,
		}); err != nil {
			return errors.WithStack(err)
		}

		if err := registerLocalTool(
			m,
			"search_rss",
			description.String(),
			skill,
			rss.SearchRSS[*Context],
		); err != nil {
			return err
		}
	}

	{
		description := strings.Builder{}
		if err := readRSSDescriptionTmpl.Execute(&description, struct {
			AllowedFeedUrls []RSSFeedUrl
		}{
			AllowedFeedUrls: allowedFeedUrls,
		}); err != nil {
			return errors.WithStack(err)
		}

		if err := registerLocalTool(
			m,
			"read_rss",
			description.String(),
			skill,
			rss.ReadRSS[*Context],
		); err != nil {
			return err
		}
	}

	return nil
}
