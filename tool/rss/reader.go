package rss

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
)

const feedTimeout = 30 * time.Second

type Reader struct {
	parser *gofeed.Parser
}

// FeedItem is the shape handed back to the agent.
type FeedItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Published   time.Time `json:"published"`
	Author      string    `json:"author,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
}

func NewReader() *Reader {
	return &Reader{
		parser: gofeed.NewParser(),
	}
}

func (r *Reader) ReadFeed(ctx context.Context, feedURL string) ([]FeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, feedTimeout)
	defer cancel()

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse feed")
	}

	items := make([]FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		feedItem := FeedItem{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			Categories:  item.Categories,
		}
		if item.PublishedParsed != nil {
			feedItem.Published = *item.PublishedParsed
		}
		if item.Author != nil {
			feedItem.Author = item.Author.Name
		}
		items = append(items, feedItem)
	}

	return items, nil
}

func (item FeedItem) Matches(query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Description), query)
}
