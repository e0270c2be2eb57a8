package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/talent-match/internal/types"
)

func intPtr(v int) *int { return &v }

func TestPassesFilters_InactiveFiltersPassEverything(t *testing.T) {
	rc := types.RankedCandidate{Candidate: types.CandidateProfile{ID: "a"}}
	assert.True(t, passesFilters(rc, types.SearchFilters{}))
}

func TestPassesFilters_ScoreThresholds(t *testing.T) {
	rc := types.RankedCandidate{CombinedScore: 70, RetentionScore: 60}

	assert.True(t, passesFilters(rc, types.SearchFilters{MinCombinedScore: gpa(70)}))
	assert.False(t, passesFilters(rc, types.SearchFilters{MinCombinedScore: gpa(70.5)}))
	assert.True(t, passesFilters(rc, types.SearchFilters{MinRetentionScore: intPtr(60)}))
	assert.False(t, passesFilters(rc, types.SearchFilters{MinRetentionScore: intPtr(61)}))
}

func TestPassesFilters_GPARange(t *testing.T) {
	with := types.RankedCandidate{Candidate: types.CandidateProfile{GPA: gpa(3.4)}}
	without := types.RankedCandidate{}

	assert.True(t, passesFilters(with, types.SearchFilters{MinGPA: gpa(3.0), MaxGPA: gpa(4.0)}))
	assert.False(t, passesFilters(with, types.SearchFilters{MinGPA: gpa(3.5)}))
	assert.False(t, passesFilters(with, types.SearchFilters{MaxGPA: gpa(3.3)}))
	// No GPA fails any active GPA bound.
	assert.False(t, passesFilters(without, types.SearchFilters{MinGPA: gpa(0.0)}))
}

func TestPassesFilters_SubstringFields(t *testing.T) {
	rc := types.RankedCandidate{Candidate: types.CandidateProfile{
		Degree:     "B.S. Computer Science",
		University: "State University",
		Location:   "Austin, TX",
	}}

	assert.True(t, passesFilters(rc, types.SearchFilters{Degree: "computer"}))
	assert.True(t, passesFilters(rc, types.SearchFilters{University: "state"}))
	assert.True(t, passesFilters(rc, types.SearchFilters{Location: "austin"}))
	assert.False(t, passesFilters(rc, types.SearchFilters{Degree: "business"}))
}

func TestPassesFilters_ExactGraduationYear(t *testing.T) {
	rc := types.RankedCandidate{Candidate: types.CandidateProfile{GraduationYear: "2026"}}

	assert.True(t, passesFilters(rc, types.SearchFilters{GraduationYear: "2026"}))
	assert.False(t, passesFilters(rc, types.SearchFilters{GraduationYear: "2025"}))
	// Exact string match, no substring leniency.
	assert.False(t, passesFilters(rc, types.SearchFilters{GraduationYear: "202"}))
}

func TestPassesFilters_MinRepoCount(t *testing.T) {
	rc := types.RankedCandidate{Candidate: types.CandidateProfile{RepoCount: 7}}

	assert.True(t, passesFilters(rc, types.SearchFilters{MinRepoCount: intPtr(7)}))
	assert.False(t, passesFilters(rc, types.SearchFilters{MinRepoCount: intPtr(8)}))
}

func TestPassesFilters_AnyOfCSV(t *testing.T) {
	rc := types.RankedCandidate{Candidate: types.CandidateProfile{
		Skills:    []string{"React", "Node.js"},
		Interests: []string{"Open Source", "Robotics"},
	}}

	// Any one token hitting is enough.
	assert.True(t, passesFilters(rc, types.SearchFilters{Skills: "python, react"}))
	assert.False(t, passesFilters(rc, types.SearchFilters{Skills: "python, rust"}))
	assert.True(t, passesFilters(rc, types.SearchFilters{Interests: "robot"}))
	assert.False(t, passesFilters(rc, types.SearchFilters{Interests: "finance"}))
}

func TestPassesFilters_AllActiveFiltersMustPass(t *testing.T) {
	rc := types.RankedCandidate{
		CombinedScore: 100,
		Candidate: types.CandidateProfile{
			GPA:    gpa(3.8),
			Degree: "Computer Science",
		},
	}

	assert.True(t, passesFilters(rc, types.SearchFilters{MinGPA: gpa(3.0), Degree: "computer"}))
	// Failing a single filter excludes despite the perfect score.
	assert.False(t, passesFilters(rc, types.SearchFilters{MinGPA: gpa(3.9), Degree: "computer"}))
	assert.False(t, passesFilters(rc, types.SearchFilters{MinGPA: gpa(3.0), Degree: "biology"}))
}
