package server

import (
	"encoding/json"
	"net/http"
)

// MatchRequest represents the request body for /match
type MatchRequest struct {
	RequiredSkills  []string `json:"required_skills"`
	CandidateSkills []string `json:"candidate_skills"`
}

// handleMatch returns the standalone skill-match explanation for one
// job/candidate pair, used by the "which skills are missing" UI feature.
// An empty required list is not an error: the result is score 0 with empty
// buckets.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := s.matcher.MatchAll(req.RequiredSkills, req.CandidateSkills)
	s.jsonResponse(w, http.StatusOK, result)
}
