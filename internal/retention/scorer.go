// Package retention predicts a candidate's likely job tenure from cultural
// fitness questionnaire answers. The prediction is made by an external
// generative collaborator when available and by a deterministic local
// heuristic otherwise; ranking never blocks on this signal.
package retention

import (
	"context"

	"github.com/campushq/talent-match/internal/types"
)

// NeutralScore is the documented default applied when no cultural-fitness
// data exists or the collaborator fails.
const NeutralScore = 50

// Notes attached to a RankedCandidate when the default score is used.
const (
	NoteNoData      = "no cultural fitness data"
	NoteUnavailable = "retention data unavailable"
)

// Assessment is the retention prediction for one candidate.
type Assessment struct {
	Score     int    `json:"score"` // 0-100
	Reasoning string `json:"reasoning,omitempty"`
}

// Scorer is the capability interface for retention scoring. Implementations
// may call external services and fail; callers are expected to degrade to
// NeutralScore on error.
type Scorer interface {
	Score(ctx context.Context, fitness *types.CulturalFitness) (Assessment, error)
}

// clampScore bounds a raw score to the valid 0-100 range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
