// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchRule identifies which matching rule satisfied a required skill.
// Rules are tried in a fixed priority order; the first applicable rule wins.
type MatchRule string

// Match rule constants, in priority order.
const (
	RuleExact           MatchRule = "exact"
	RuleSubstring       MatchRule = "substring"
	RuleForwardTaxonomy MatchRule = "forward_taxonomy"
	RuleReverseTaxonomy MatchRule = "reverse_taxonomy"
	RuleNone            MatchRule = "none"
)

// Match is the outcome of evaluating one required skill against a
// candidate's full skill set. Evidence names the candidate skill that
// triggered the rule; it is for display only and never affects scoring.
type Match struct {
	Skill    string    `json:"skill"` // required skill, original casing
	Rule     MatchRule `json:"rule"`
	Evidence string    `json:"evidence,omitempty"`
}

// Matched reports whether any rule other than RuleNone fired.
func (m Match) Matched() bool {
	return m.Rule != RuleNone && m.Rule != ""
}

// MatchResult is the full skill-match report for one job/candidate pair.
// Matched and Unmatched preserve the original casing and order of the
// required-skill list; every required skill lands in exactly one of them.
type MatchResult struct {
	Score           int      `json:"score"` // 0-100
	MatchedSkills   []string `json:"matched_skills"`
	UnmatchedSkills []string `json:"unmatched_skills"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
	Details         []Match  `json:"details,omitempty"`
}

// RankedCandidate is a candidate profile augmented with the per-search
// scoring signals. Computed per request and never persisted.
type RankedCandidate struct {
	Candidate      CandidateProfile `json:"candidate"`
	SkillMatch     MatchResult      `json:"skill_match"`
	SemanticScore  *float64         `json:"semantic_score,omitempty"` // 0-100, from vector distance
	CombinedScore  float64          `json:"combined_score"`
	RetentionScore int              `json:"retention_score"`
	RetentionNote  string           `json:"retention_note,omitempty"`
}
