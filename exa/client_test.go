package exa_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verityhq/searchagent/exa"
)

func TestClient_SearchAndContents(t *testing.T) {
	var gotReq exa.SearchRequest
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(exa.SearchResponse{
			RequestID: "req-123",
			Results: []exa.Result{
				{
					Title:      "Quantum Computing Advances",
					URL:        "https://example.com/quantum",
					Highlights: []string{"error correction milestone"},
				},
			},
		}); err != nil {
			t.Logf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := exa.NewClient("test-key", server.URL)

	resp, err := client.SearchAndContents(context.Background(), "Latest developments in quantum computing", 3)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Quantum Computing Advances", resp.Results[0].Title)
	assert.Equal(t, "https://example.com/quantum", resp.Results[0].URL)
	assert.Equal(t, "req-123", resp.RequestID)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))

	assert.Equal(t, "Latest developments in quantum computing", gotReq.Query)
	assert.Equal(t, "auto", gotReq.Type)
	assert.Equal(t, 3, gotReq.NumResults)
	require.NotNil(t, gotReq.Contents)
	assert.True(t, gotReq.Contents.Highlights)
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if err := json.NewEncoder(w).Encode(exa.APIErrorResponse{Error: "invalid api key"}); err != nil {
			t.Logf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := exa.NewClient("bad-key", server.URL)

	_, err := client.SearchAndContents(context.Background(), "anything", 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestClient_Search_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		if _, err := w.Write([]byte("upstream down")); err != nil {
			t.Logf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := exa.NewClient("test-key", server.URL)

	_, err := client.SearchAndContents(context.Background(), "anything", 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}
