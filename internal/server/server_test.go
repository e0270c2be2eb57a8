package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushq/talent-match/internal/matching"
	"github.com/campushq/talent-match/internal/ranking"
	"github.com/campushq/talent-match/internal/taxonomy"
	"github.com/campushq/talent-match/internal/types"
	"github.com/campushq/talent-match/internal/vector"
)

// stubStore serves a fixed candidate pool.
type stubStore struct {
	candidates []types.CandidateProfile
	err        error
}

func (s *stubStore) ListCandidates(_ context.Context) ([]types.CandidateProfile, error) {
	return s.candidates, s.err
}

func (s *stubStore) GetCandidatesByIDs(_ context.Context, ids []string) ([]types.CandidateProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	byID := make(map[string]types.CandidateProfile)
	for _, c := range s.candidates {
		byID[c.ID] = c
	}
	var out []types.CandidateProfile
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// stubSearcher serves fixed vector hits.
type stubSearcher struct {
	hits []vector.Hit
	err  error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]vector.Hit, error) {
	return s.hits, s.err
}

func newTestServer(t *testing.T, store CandidateStore, searcher vector.Searcher) *Server {
	t.Helper()
	tax := taxonomy.Default()
	ranker := ranking.New(matching.New(tax), nil, nil, ranking.Options{Concurrency: 2})
	return New(Config{Port: 0, SearchRateLimit: 0}, store, searcher, ranker, tax, zap.NewNop())
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleSearch_RanksPool(t *testing.T) {
	store := &stubStore{candidates: []types.CandidateProfile{
		{ID: "match", Skills: []string{"Next.js", "Express", "Mongoose"}},
		{ID: "miss", Skills: []string{"Cobol"}},
	}}
	srv := newTestServer(t, store, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{
		RequiredSkills: []string{"React", "Node.js", "MongoDB"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "match", resp.Results[0].Candidate.ID)
	assert.Equal(t, 100.0, resp.Results[0].CombinedScore)
	assert.NotEmpty(t, resp.RequestID)
	assert.Empty(t, resp.Warnings)
}

func TestHandleSearch_VectorPoolAndSemanticBlend(t *testing.T) {
	store := &stubStore{candidates: []types.CandidateProfile{
		{ID: "a", Skills: []string{"React"}},
		{ID: "b", Skills: []string{"React"}},
	}}
	searcher := &stubSearcher{hits: []vector.Hit{{CandidateID: "a", Distance: 0.2}}}
	srv := newTestServer(t, store, searcher)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{
		RequiredSkills: []string{"React"},
		Query:          "frontend engineer with react experience",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	// Pool narrowed to the hit list.
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "a", resp.Results[0].Candidate.ID)
	assert.InDelta(t, 90.0, resp.Results[0].CombinedScore, 0.001)
}

func TestHandleSearch_VectorFailureDegrades(t *testing.T) {
	store := &stubStore{candidates: []types.CandidateProfile{
		{ID: "a", Skills: []string{"React"}},
	}}
	searcher := &stubSearcher{err: errors.New("embedding store down")}
	srv := newTestServer(t, store, searcher)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{
		RequiredSkills: []string{"React"},
		Query:          "frontend",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	// Full pool, no semantic term, warning surfaced.
	require.Equal(t, 1, resp.Total)
	assert.Nil(t, resp.Results[0].SemanticScore)
	assert.Contains(t, resp.Warnings, "semantic similarity unavailable")
}

func TestHandleSearch_QueryWithoutVectorServiceWarns(t *testing.T) {
	store := &stubStore{candidates: []types.CandidateProfile{
		{ID: "a", Skills: []string{"React"}},
	}}
	srv := newTestServer(t, store, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{
		RequiredSkills: []string{"React"},
		Query:          "frontend",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	// Same degradation as a vector failure: the caller is told the
	// semantic signal was skipped.
	require.Equal(t, 1, resp.Total)
	assert.Nil(t, resp.Results[0].SemanticScore)
	assert.Contains(t, resp.Warnings, "semantic similarity unavailable")
}

func TestHandleSearch_StoreFailureIsFatal(t *testing.T) {
	srv := newTestServer(t, &stubStore{err: errors.New("connection refused")}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{
		RequiredSkills: []string{"React"},
	})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "search unavailable")
}

func TestHandleSearch_RequiresSkillsOrQuery(t *testing.T) {
	srv := newTestServer(t, &stubStore{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_RejectsInvalidTopK(t *testing.T) {
	srv := newTestServer(t, &stubStore{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/search", SearchRequest{
		RequiredSkills: []string{"Go"},
		TopK:           10000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_ExplainsPair(t *testing.T) {
	srv := newTestServer(t, &stubStore{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/match", MatchRequest{
		RequiredSkills:  []string{"Docker", "AWS", "CI/CD"},
		CandidateSkills: []string{"Kubernetes", "EC2"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.MatchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, []string{"CI/CD"}, result.UnmatchedSkills)
	require.Len(t, result.Details, 3)
	assert.Equal(t, types.RuleForwardTaxonomy, result.Details[0].Rule)
}

func TestHandleTaxonomy(t *testing.T) {
	srv := newTestServer(t, &stubStore{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/taxonomy/React", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "next.js")

	// Unknown skill is an empty set, not an error.
	rec = doJSON(t, srv.Handler(), http.MethodGet, "/taxonomy/cobol", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"related":[]`)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &stubStore{}, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
