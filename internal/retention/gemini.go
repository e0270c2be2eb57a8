package retention

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campushq/talent-match/internal/llm"
	"github.com/campushq/talent-match/internal/prompts"
	"github.com/campushq/talent-match/internal/types"
)

// GeminiScorer asks the generative collaborator for a retention assessment.
// Any transport error or unparseable response surfaces as an error; callers
// fall back to the local heuristic.
type GeminiScorer struct {
	client llm.Client
}

// NewGeminiScorer creates a scorer backed by an LLM client.
func NewGeminiScorer(client llm.Client) *GeminiScorer {
	return &GeminiScorer{client: client}
}

// Score sends the questionnaire to the model and parses a {score, reasoning}
// JSON object out of the reply.
func (s *GeminiScorer) Score(ctx context.Context, fitness *types.CulturalFitness) (Assessment, error) {
	if fitness.Empty() {
		return Assessment{Score: NeutralScore, Reasoning: NoteNoData}, nil
	}

	prompt, err := buildPrompt(fitness)
	if err != nil {
		return Assessment{}, err
	}

	response, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return Assessment{}, fmt.Errorf("LLM call failed: %w", err)
	}

	assessment, err := parseResponse(response)
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return assessment, nil
}

// buildPrompt renders the retention prompt template with the questionnaire.
func buildPrompt(fitness *types.CulturalFitness) (string, error) {
	systemPrompt, err := prompts.Get("retention.json", "retention_system")
	if err != nil {
		return "", err
	}
	userTemplate, err := prompts.Get("retention.json", "retention_user")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, qa := range fitness.Answers {
		fmt.Fprintf(&sb, "%d. Q: %s\n   A: %s\n", i+1, qa.Question, qa.Answer)
	}

	userPrompt := prompts.Format(userTemplate, map[string]string{"Answers": sb.String()})
	return systemPrompt + "\n\n" + userPrompt, nil
}

// parseResponse extracts the JSON object from the model reply. The object is
// located by brace scanning because models occasionally wrap it in prose even
// when asked for JSON only.
func parseResponse(response string) (Assessment, error) {
	response = strings.TrimSpace(response)
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return Assessment{}, fmt.Errorf("no valid JSON object found in response")
	}

	var raw struct {
		Score     *float64 `json:"score"`
		Reasoning string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &raw); err != nil {
		return Assessment{}, fmt.Errorf("JSON parse error: %w", err)
	}
	if raw.Score == nil {
		return Assessment{}, fmt.Errorf("response missing score field")
	}

	return Assessment{
		Score:     clampScore(int(*raw.Score)),
		Reasoning: raw.Reasoning,
	}, nil
}
