package ranking

// Blend weights for the combined score when both signals are present.
const (
	skillWeight    = 0.5
	semanticWeight = 0.5
)

// semanticScore converts a vector-store distance in [0,1] (lower = more
// similar) to a 0-100 similarity score breakdown.
func semanticScore(distance float64) float64 {
	score := (1 - distance) * 100
	if score < 0 {
		return 0
	}
	return score
}

// combinedScore blends the skill-match and semantic scores into the single
// ranking key.
//
//   - both signals present and required skills given: weighted blend
//   - no semantic signal: skill score alone
//   - semantic signal but no required skills: semantic score alone
func combinedScore(skillScore int, semantic *float64, requiredCount int) float64 {
	switch {
	case semantic != nil && requiredCount > 0:
		return skillWeight*float64(skillScore) + semanticWeight*(*semantic)
	case semantic != nil:
		return *semantic
	default:
		return float64(skillScore)
	}
}
