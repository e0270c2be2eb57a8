package retention

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/campushq/talent-match/internal/types"
)

// CachedScorer wraps a Scorer with a payload-keyed cache and in-flight
// deduplication. The collaborator is non-deterministic, so a cached score is
// a re-computable approximation, not a guaranteed-identical one; caching is
// the dominant latency and cost optimization since identical questionnaires
// recur across searches.
type CachedScorer struct {
	inner Scorer

	mu    sync.RWMutex
	cache map[string]Assessment
	group singleflight.Group
}

// NewCachedScorer wraps a scorer with caching.
func NewCachedScorer(inner Scorer) *CachedScorer {
	return &CachedScorer{
		inner: inner,
		cache: make(map[string]Assessment),
	}
}

// Score returns the cached assessment for an identical payload when present;
// otherwise it delegates to the inner scorer, collapsing concurrent calls for
// the same payload into one. Errors are not cached, so a transient failure
// does not poison later requests.
func (c *CachedScorer) Score(ctx context.Context, fitness *types.CulturalFitness) (Assessment, error) {
	if fitness.Empty() {
		return Assessment{Score: NeutralScore, Reasoning: NoteNoData}, nil
	}

	key := payloadKey(fitness)

	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		assessment, err := c.inner.Score(ctx, fitness)
		if err != nil {
			return Assessment{}, err
		}
		c.mu.Lock()
		c.cache[key] = assessment
		c.mu.Unlock()
		return assessment, nil
	})
	if err != nil {
		return Assessment{}, err
	}
	return result.(Assessment), nil
}

// payloadKey derives a stable cache key from the questionnaire content.
func payloadKey(fitness *types.CulturalFitness) string {
	data, err := json.Marshal(fitness.Answers)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
