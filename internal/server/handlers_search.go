package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushq/talent-match/internal/ranking"
	"github.com/campushq/talent-match/internal/types"
	"github.com/campushq/talent-match/internal/vector"
)

const defaultTopK = 100

// SearchRequest represents the request body for /search
type SearchRequest struct {
	RequiredSkills []string            `json:"required_skills"`
	Query          string              `json:"query,omitempty"`
	TopK           int                 `json:"top_k,omitempty" validate:"omitempty,min=1,max=500"`
	Filters        types.SearchFilters `json:"filters"`
}

// SearchResponse represents the response for /search
type SearchResponse struct {
	RequestID string                  `json:"request_id"`
	Total     int                     `json:"total"`
	Results   []types.RankedCandidate `json:"results"`
	Warnings  []string                `json:"warnings,omitempty"`
}

// handleSearch runs one recruiter search: fetch the candidate pool, score
// every candidate, filter, and rank.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	requestID := uuid.New().String()
	log := s.log.With(zap.String("request_id", requestID))

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.ObserveSearch("bad_request", started, 0)
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.metrics.ObserveSearch("bad_request", started, 0)
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "top_k", Message: err.Error()}).Error())
		return
	}
	if len(req.RequiredSkills) == 0 && req.Query == "" {
		s.metrics.ObserveSearch("bad_request", started, 0)
		s.errorResponse(w, http.StatusBadRequest,
			(&ErrValidation{Field: "required_skills", Message: "required_skills or query must be provided"}).Error())
		return
	}
	if req.TopK == 0 {
		req.TopK = defaultTopK
	}

	var warnings []string
	signals := ranking.Signals{}

	// The semantic signal is optional: a vector-store failure (or a missing
	// vector service) narrows the search to the full pool without a semantic
	// term instead of failing it, and the caller is told either way.
	var hits []vector.Hit
	if req.Query != "" {
		if s.searcher == nil {
			log.Warn("query supplied but no vector service configured")
			warnings = append(warnings, "semantic similarity unavailable")
		} else {
			var err error
			hits, err = s.searcher.Search(r.Context(), req.Query, req.TopK)
			if err != nil {
				log.Warn("similarity search failed, continuing without semantic signal", zap.Error(err))
				s.metrics.CollaboratorFailure("vector")
				warnings = append(warnings, "semantic similarity unavailable")
				hits = nil
			} else {
				signals.Distances = vector.DistanceIndex(hits)
			}
		}
	}

	// Candidate pool fetch is the one fatal collaborator.
	candidates, err := s.fetchPool(r, hits)
	if err != nil {
		log.Error("candidate pool fetch failed", zap.Error(err))
		s.metrics.ObserveSearch("unavailable", started, 0)
		s.errorResponse(w, HTTPStatus(&ErrSearchUnavailable{Cause: err}), (&ErrSearchUnavailable{}).Error())
		return
	}

	results := s.ranker.SearchAndRank(r.Context(), candidates, req.RequiredSkills, req.Filters, signals)

	log.Info("search complete",
		zap.Int("pool_size", len(candidates)),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", time.Since(started)))
	s.metrics.ObserveSearch("ok", started, len(candidates))

	s.jsonResponse(w, http.StatusOK, SearchResponse{
		RequestID: requestID,
		Total:     len(results),
		Results:   results,
		Warnings:  warnings,
	})
}

// fetchPool returns the candidate pool for a search: the vector hit list when
// one exists, the whole pool otherwise.
func (s *Server) fetchPool(r *http.Request, hits []vector.Hit) ([]types.CandidateProfile, error) {
	if len(hits) > 0 {
		ids := make([]string, len(hits))
		for i, h := range hits {
			ids[i] = h.CandidateID
		}
		return s.store.GetCandidatesByIDs(r.Context(), ids)
	}
	return s.store.ListCandidates(r.Context())
}
