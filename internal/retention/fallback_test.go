package retention

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/talent-match/internal/types"
)

func answers(texts ...string) *types.CulturalFitness {
	cf := &types.CulturalFitness{}
	for i, text := range texts {
		cf.Answers = append(cf.Answers, types.QuestionAnswer{
			Question: "Q" + string(rune('0'+i)),
			Answer:   text,
		})
	}
	return cf
}

func TestFallbackScorer_NeutralForEmptyData(t *testing.T) {
	s := NewFallbackScorer()

	for _, cf := range []*types.CulturalFitness{nil, {}, answers("", "")} {
		assessment, err := s.Score(context.Background(), cf)
		require.NoError(t, err)
		assert.Equal(t, NeutralScore, assessment.Score)
		assert.Equal(t, NoteNoData, assessment.Reasoning)
	}
}

func TestFallbackScorer_Deterministic(t *testing.T) {
	s := NewFallbackScorer()
	cf := answers("I enjoy collaborative teams and long-term ownership.", "Two years at least.")

	first, err := s.Score(context.Background(), cf)
	require.NoError(t, err)
	second, err := s.Score(context.Background(), cf)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFallbackScorer_RewardsCompletenessAndDepth(t *testing.T) {
	s := NewFallbackScorer()

	sparse, err := s.Score(context.Background(), answers("Yes.", "", ""))
	require.NoError(t, err)
	full, err := s.Score(context.Background(), answers(
		"I am looking for a team where I can grow into ownership of real systems over several years.",
		"Mentorship and steady feedback matter more to me than title changes.",
		"I stayed three years at my internship company across two summers and a part-time year.",
	))
	require.NoError(t, err)

	assert.Greater(t, full.Score, sparse.Score)
	assert.GreaterOrEqual(t, sparse.Score, 0)
	assert.LessOrEqual(t, full.Score, 100)
}

func TestParseResponse(t *testing.T) {
	assessment, err := parseResponse(`{"score": 73, "reasoning": "steady goals"}`)
	require.NoError(t, err)
	assert.Equal(t, 73, assessment.Score)
	assert.Equal(t, "steady goals", assessment.Reasoning)

	// Prose around the object is tolerated.
	assessment, err = parseResponse("Here you go:\n{\"score\": 40.6, \"reasoning\": \"\"}\nThanks!")
	require.NoError(t, err)
	assert.Equal(t, 40, assessment.Score)

	// Out-of-range scores are clamped.
	assessment, err = parseResponse(`{"score": 400}`)
	require.NoError(t, err)
	assert.Equal(t, 100, assessment.Score)
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, response := range []string{
		"",
		"no json here",
		`{"reasoning": "missing score"}`,
		`{"score": "high"}`,
	} {
		_, err := parseResponse(response)
		assert.Error(t, err, "response: %s", strings.TrimSpace(response))
	}
}
