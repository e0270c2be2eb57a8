package vector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/query", r.URL.Path)

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "react developer", req.Query)
		assert.Equal(t, 50, req.TopK)

		json.NewEncoder(w).Encode(searchResponse{Results: []Hit{
			{CandidateID: "a", Distance: 0.1},
			{CandidateID: "b", Distance: 0.4},
		}})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	hits, err := client.Search(context.Background(), "react developer", 50)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].CandidateID)
	assert.InDelta(t, 0.1, hits[0].Distance, 0.001)
}

func TestHTTPClient_SearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "index rebuilding", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.Search(context.Background(), "anything", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDistanceIndex(t *testing.T) {
	index := DistanceIndex([]Hit{
		{CandidateID: "a", Distance: 0.2},
		{CandidateID: "b", Distance: 0.7},
	})
	assert.Equal(t, map[string]float64{"a": 0.2, "b": 0.7}, index)
}
