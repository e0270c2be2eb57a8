// Package matching decides whether a job's required skills are satisfied by
// a candidate's skill set, and reports which rule satisfied each one.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/campushq/talent-match/internal/taxonomy"
	"github.com/campushq/talent-match/internal/types"
)

// Matcher evaluates required skills against candidate skill sets using an
// injected taxonomy. It is stateless after construction and safe for
// concurrent use.
type Matcher struct {
	taxonomy *taxonomy.Taxonomy
}

// New creates a Matcher over the given taxonomy.
func New(t *taxonomy.Taxonomy) *Matcher {
	return &Matcher{taxonomy: t}
}

// MatchOne evaluates a single required skill against the candidate's full
// skill set. Rules are tried in fixed priority order and the first applicable
// rule wins; there is no weighting between rules.
//
//  1. Exact: normalized equality.
//  2. Substring: symmetric containment. Deliberately loose ("go" matches
//     "django"); kept for behavioral compatibility and isolated behind the
//     RuleSubstring tag so it can be tightened independently.
//  3. Forward taxonomy: a related skill of the requirement appears in (or
//     equals) a candidate skill.
//  4. Reverse taxonomy: the requirement appears in (or equals) a related
//     skill of some candidate skill. This pass is what makes the authored
//     asymmetric relations work in both directions.
func (m *Matcher) MatchOne(required string, candidateSkills []string) types.Match {
	req := taxonomy.Normalize(required)
	if req == "" {
		return types.Match{Skill: required, Rule: types.RuleNone}
	}

	normalized := make([]string, 0, len(candidateSkills))
	for _, cs := range candidateSkills {
		if norm := taxonomy.Normalize(cs); norm != "" {
			normalized = append(normalized, norm)
		}
	}

	// Pass 1: exact match.
	for i, cand := range normalized {
		if cand == req {
			return types.Match{Skill: required, Rule: types.RuleExact, Evidence: evidence(candidateSkills, i)}
		}
	}

	// Pass 2: symmetric substring containment.
	for i, cand := range normalized {
		if strings.Contains(cand, req) || strings.Contains(req, cand) {
			return types.Match{Skill: required, Rule: types.RuleSubstring, Evidence: evidence(candidateSkills, i)}
		}
	}

	// Pass 3: forward taxonomy lookup on the required skill.
	for _, related := range m.taxonomy.Related(req) {
		for i, cand := range normalized {
			if cand == related || strings.Contains(cand, related) {
				return types.Match{
					Skill:    required,
					Rule:     types.RuleForwardTaxonomy,
					Evidence: fmt.Sprintf("%s (related: %s)", evidence(candidateSkills, i), related),
				}
			}
		}
	}

	// Pass 4: reverse taxonomy lookup on each candidate skill.
	for i, cand := range normalized {
		for _, related := range m.taxonomy.Related(cand) {
			if related == req || strings.Contains(related, req) {
				return types.Match{
					Skill:    required,
					Rule:     types.RuleReverseTaxonomy,
					Evidence: fmt.Sprintf("%s (related: %s)", evidence(candidateSkills, i), related),
				}
			}
		}
	}

	return types.Match{Skill: required, Rule: types.RuleNone}
}

// MatchAll evaluates every required skill independently and partitions them
// into matched/unmatched, preserving the original casing and order of the
// required list. Every required skill lands in exactly one bucket, so
// TotalMatched + len(UnmatchedSkills) == TotalRequired always holds.
// Score is round(100 * matched / required), with 0 for an empty required
// list rather than a division fault.
func (m *Matcher) MatchAll(requiredSkills, candidateSkills []string) types.MatchResult {
	result := types.MatchResult{
		MatchedSkills:   make([]string, 0, len(requiredSkills)),
		UnmatchedSkills: make([]string, 0),
		TotalRequired:   len(requiredSkills),
		Details:         make([]types.Match, 0, len(requiredSkills)),
	}

	for _, required := range requiredSkills {
		match := m.MatchOne(required, candidateSkills)
		result.Details = append(result.Details, match)
		if match.Matched() {
			result.MatchedSkills = append(result.MatchedSkills, required)
			result.TotalMatched++
		} else {
			result.UnmatchedSkills = append(result.UnmatchedSkills, required)
		}
	}

	if result.TotalRequired > 0 {
		result.Score = int(math.Round(100 * float64(result.TotalMatched) / float64(result.TotalRequired)))
	}
	return result
}

// evidence returns the original (non-normalized) candidate skill at index i,
// guarding against index drift from skills normalized away to empty strings.
func evidence(candidateSkills []string, normIndex int) string {
	seen := 0
	for _, cs := range candidateSkills {
		if taxonomy.Normalize(cs) == "" {
			continue
		}
		if seen == normIndex {
			return strings.TrimSpace(cs)
		}
		seen++
	}
	return ""
}
