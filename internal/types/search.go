// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SearchFilters holds the optional recruiter-side filters for a candidate
// search. Pointer fields distinguish "not set" from zero values. A candidate
// must pass every active filter to remain in the result.
type SearchFilters struct {
	MinCombinedScore  *float64 `json:"min_combined_score,omitempty"`
	MinRetentionScore *int     `json:"min_retention_score,omitempty"`
	MinGPA            *float64 `json:"min_gpa,omitempty"`
	MaxGPA            *float64 `json:"max_gpa,omitempty"`
	Degree            string   `json:"degree,omitempty"`
	University        string   `json:"university,omitempty"`
	Location          string   `json:"location,omitempty"`
	Skills            string   `json:"skills,omitempty"` // comma-separated, any-of
	GraduationYear    string   `json:"graduation_year,omitempty"`
	MinRepoCount      *int     `json:"min_repo_count,omitempty"`
	Interests         string   `json:"interests,omitempty"` // comma-separated, any-of
}

// SplitCSV splits a comma-separated filter value into trimmed, lowercased,
// non-empty tokens.
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
