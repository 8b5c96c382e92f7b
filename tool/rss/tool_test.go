package rss_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verityhq/searchagent/tool/rss"
)

func TestReadRSS(t *testing.T) {
	server := newFeedServer(t, mockRSSFeed)
	defer server.Close()

	reply, err := rss.ReadRSS(context.Background(), rss.ReadRSSParams{
		URL: server.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, server.URL, reply.FeedURL)
	assert.Equal(t, 2, reply.Count)
	require.Len(t, reply.Items, 2)
	assert.Equal(t, "Quantum Leap", reply.Items[0].Title)
}

func TestReadRSS_Limit(t *testing.T) {
	server := newFeedServer(t, mockRSSFeed)
	defer server.Close()

	reply, err := rss.ReadRSS(context.Background(), rss.ReadRSSParams{
		URL:   server.URL,
		Limit: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, reply.Count)
	require.Len(t, reply.Items, 1)
	assert.Equal(t, "Quantum Leap", reply.Items[0].Title)
}

func TestSearchRSS(t *testing.T) {
	server := newFeedServer(t, mockRSSFeed)
	defer server.Close()

	reply, err := rss.SearchRSS(context.Background(), rss.SearchRSSParams{
		URLs:  []string{server.URL},
		Query: "quantum",
	})

	require.NoError(t, err)
	assert.Equal(t, "quantum", reply.Query)
	assert.Equal(t, 1, reply.Count)
	require.Len(t, reply.Results, 1)
	assert.Equal(t, server.URL, reply.Results[0].Source)
	assert.Equal(t, "Quantum Leap", reply.Results[0].Item.Title)
}

func TestSearchRSS_SkipsBrokenFeeds(t *testing.T) {
	good := newFeedServer(t, mockRSSFeed)
	defer good.Close()
	broken := newFeedServer(t, invalidRSSFeed)
	defer broken.Close()

	reply, err := rss.SearchRSS(context.Background(), rss.SearchRSSParams{
		URLs:  []string{broken.URL, good.URL},
		Query: "go",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, reply.Count)
	assert.Equal(t, good.URL, reply.Results[0].Source)
}
