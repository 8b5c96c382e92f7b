package rss

import (
	"context"
)

type (
	ReadRSSParams struct {
		URL   string `json:"url" jsonschema:"required,description=RSS feed URL to read"`
		Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum number of items to return"`
	}

	SearchRSSParams struct {
		URLs     []string `json:"urls" jsonschema:"required,description=List of RSS feed URLs to search"`
		Query    string   `json:"query" jsonschema:"required,description=Search keyword matched against titles and descriptions"`
		MaxItems int      `json:"max_items,omitempty" jsonschema:"description=Maximum total number of results"`
	}

	SearchRSSResult struct {
		Source string   `json:"source"`
		Item   FeedItem `json:"item"`
	}

	ReadRSSReply struct {
		FeedURL string     `json:"feed_url"`
		Items   []FeedItem `json:"items"`
		Count   int        `json:"count"`
	}

	SearchRSSReply struct {
		Query   string            `json:"query"`
		Results []SearchRSSResult `json:"results"`
		Count   int               `json:"count"`
	}
)

func ReadRSS[ctxT context.Context](ctx ctxT, params ReadRSSParams) (reply ReadRSSReply, err error) {
	reader := NewReader()
	reply.Items, err = reader.ReadFeed(ctx, params.URL)
	if err != nil {
		return
	}

	if params.Limit > 0 && len(reply.Items) > params.Limit {
		reply.Items = reply.Items[:params.Limit]
	}

	reply.FeedURL = params.URL
	reply.Count = len(reply.Items)

	return reply, nil
}

func SearchRSS[ctxT context.Context](ctx ctxT, params SearchRSSParams) (reply SearchRSSReply, err error) {
	reader := NewReader()

	reply.Results = make([]SearchRSSResult, 0)
	for _, url := range params.URLs {
		items, err := reader.ReadFeed(ctx, url)
		if err != nil {
			continue // move to the next feed
		}

		for _, item := range items {
			if params.MaxItems > 0 && len(reply.Results) >= params.MaxItems {
				break
			}
			if item.Matches(params.Query) {
				reply.Results = append(reply.Results, SearchRSSResult{
					Source: url,
					Item:   item,
				})
			}
		}

		if params.MaxItems > 0 && len(reply.Results) >= params.MaxItems {
			break
		}
	}

	reply.Query = params.Query
	reply.Count = len(reply.Results)

	return reply, nil
}
