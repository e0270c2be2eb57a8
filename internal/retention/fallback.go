package retention

import (
	"context"
	"strings"

	"github.com/campushq/talent-match/internal/types"
)

// FallbackScorer is the deterministic local heuristic used when the
// generative collaborator is unavailable. It scores questionnaire
// completeness and answer depth: a pure function of its input, so identical
// payloads always produce identical scores.
type FallbackScorer struct{}

// NewFallbackScorer creates the local heuristic scorer.
func NewFallbackScorer() *FallbackScorer {
	return &FallbackScorer{}
}

// Score rates the questionnaire on two axes: how many questions were
// answered, and how substantive the answers are (word count, capped so
// padding does not help). Starts from the neutral midpoint and never errors.
func (s *FallbackScorer) Score(_ context.Context, fitness *types.CulturalFitness) (Assessment, error) {
	if fitness.Empty() {
		return Assessment{Score: NeutralScore, Reasoning: NoteNoData}, nil
	}

	answered := 0
	depth := 0.0
	for _, qa := range fitness.Answers {
		answer := strings.TrimSpace(qa.Answer)
		if answer == "" {
			continue
		}
		answered++
		words := len(strings.Fields(answer))
		if words > 40 {
			words = 40
		}
		depth += float64(words) / 40.0
	}

	total := len(fitness.Answers)
	completeness := float64(answered) / float64(total)
	avgDepth := depth / float64(total)

	// 50 base, up to +30 for completeness, up to +20 for depth.
	score := clampScore(int(50 + 30*completeness + 20*avgDepth))
	return Assessment{
		Score:     score,
		Reasoning: "heuristic estimate from questionnaire completeness",
	}, nil
}
