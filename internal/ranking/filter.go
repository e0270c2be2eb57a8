package ranking

import (
	"strings"

	"github.com/campushq/talent-match/internal/types"
)

// passesFilters reports whether a scored candidate survives every active
// filter. Filters are independently optional; a candidate must pass all of
// them, regardless of how well it scored.
func passesFilters(rc types.RankedCandidate, filters types.SearchFilters) bool {
	c := rc.Candidate

	if filters.MinCombinedScore != nil && rc.CombinedScore < *filters.MinCombinedScore {
		return false
	}
	if filters.MinRetentionScore != nil && rc.RetentionScore < *filters.MinRetentionScore {
		return false
	}
	if filters.MinGPA != nil && (c.GPA == nil || *c.GPA < *filters.MinGPA) {
		return false
	}
	if filters.MaxGPA != nil && (c.GPA == nil || *c.GPA > *filters.MaxGPA) {
		return false
	}
	if !containsFold(c.Degree, filters.Degree) {
		return false
	}
	if !containsFold(c.University, filters.University) {
		return false
	}
	if !containsFold(c.Location, filters.Location) {
		return false
	}
	if filters.GraduationYear != "" && c.GraduationYear != filters.GraduationYear {
		return false
	}
	if filters.MinRepoCount != nil && c.RepoCount < *filters.MinRepoCount {
		return false
	}
	if !anyOfMatch(c.Skills, filters.Skills) {
		return false
	}
	if !anyOfMatch(c.Interests, filters.Interests) {
		return false
	}

	return true
}

// containsFold is a case-insensitive substring filter; an empty wanted value
// means the filter is inactive.
func containsFold(value, wanted string) bool {
	if wanted == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(wanted)))
}

// anyOfMatch passes when any comma-separated wanted token is a substring of
// any candidate value. An empty wanted list is inactive.
func anyOfMatch(values []string, wantedCSV string) bool {
	tokens := types.SplitCSV(wantedCSV)
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		for _, value := range values {
			if strings.Contains(strings.ToLower(value), token) {
				return true
			}
		}
	}
	return false
}
