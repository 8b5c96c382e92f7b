package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Client is a minimal client for the Exa search API. Only the /search
// endpoint with contents retrieval is covered.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type (
	SearchRequest struct {
		Query      string           `json:"query"`
		Type       string           `json:"type,omitempty"`
		NumResults int              `json:"numResults,omitempty"`
		Contents   *ContentsRequest `json:"contents,omitempty"`
	}

	ContentsRequest struct {
		Highlights bool `json:"highlights,omitempty"`
	}

	// Result is one ranked search hit. Never mutated after decoding.
	Result struct {
		Title      string   `json:"title"`
		URL        string   `json:"url"`
		Highlights []string `json:"highlights,omitempty"`
	}

	SearchResponse struct {
		Results   []Result `json:"results"`
		RequestID string   `json:"requestId,omitempty"`
	}

	// APIErrorResponse is the JSON structure returned when API calls fail
	APIErrorResponse struct {
		Error string `json:"error"`
	}
)

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.exa.ai"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// SearchAndContents runs a query with type "auto" and highlight extraction,
// mirroring the provider's search_and_contents call shape.
func (c *Client) SearchAndContents(ctx context.Context, query string, numResults int) (*SearchResponse, error) {
	return c.Search(ctx, &SearchRequest{
		Query:      query,
		Type:       "auto",
		NumResults: numResults,
		Contents:   &ContentsRequest{Highlights: true},
	})
}

func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal search request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build search request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "search API call failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr APIErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return nil, errors.Errorf("search API call failed: HTTP %d", resp.StatusCode)
		}
		return nil, errors.Errorf("search API call failed: HTTP %d, message: %s", resp.StatusCode, apiErr.Error)
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, errors.Wrapf(err, "failed to decode search response")
	}

	return &searchResp, nil
}
