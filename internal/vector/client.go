// Package vector provides the client for the external embedding-store
// collaborator. The store answers free-text queries with candidate ids and a
// distance in [0,1], lower meaning more similar. Failures here are always
// recoverable: the ranker simply drops the semantic term.
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Hit is one result from a similarity search.
type Hit struct {
	CandidateID string  `json:"id"`
	Distance    float64 `json:"distance"` // [0,1], lower = more similar
}

// Searcher is the capability interface for the similarity collaborator.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]Hit, error)
}

// HTTPClient talks JSON over HTTP to the embedding-store service.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the embedding store at baseURL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type searchResponse struct {
	Results []Hit `json:"results"`
}

// Search runs a similarity query and returns hits ordered by the store
// (closest first).
func (c *HTTPClient) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	body, err := json.Marshal(searchRequest{Query: query, TopK: topK})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("similarity search returned %d: %s", resp.StatusCode, string(payload))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return parsed.Results, nil
}

// DistanceIndex builds a candidate-id lookup from a hit list.
func DistanceIndex(hits []Hit) map[string]float64 {
	index := make(map[string]float64, len(hits))
	for _, h := range hits {
		index[h.CandidateID] = h.Distance
	}
	return index
}
