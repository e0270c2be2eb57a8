// Package ranking produces a total order over a candidate pool for one job
// search, blending skill-match, semantic-similarity, and retention signals.
package ranking

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campushq/talent-match/internal/matching"
	"github.com/campushq/talent-match/internal/retention"
	"github.com/campushq/talent-match/internal/types"
)

// Options tunes per-request ranking behavior.
type Options struct {
	// Concurrency bounds the per-candidate worker pool. Candidates are
	// independent, but the retention collaborator is rate limited.
	Concurrency int
	// RetentionTimeout caps each retention-scoring call; on expiry the
	// candidate degrades to the neutral default instead of failing the search.
	RetentionTimeout time.Duration
	// RetentionCallCap bounds retention collaborator calls per request.
	// Candidates beyond the cap degrade to the neutral default the same way
	// a collaborator failure would.
	RetentionCallCap int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Concurrency:      8,
		RetentionTimeout: 20 * time.Second,
		RetentionCallCap: 100,
	}
}

// Signals carries the optional external inputs for one search request.
type Signals struct {
	// Distances maps candidate id to vector-store distance in [0,1]
	// (lower = more similar). A candidate absent from the map has no
	// semantic signal.
	Distances map[string]float64
}

// Ranker composes the skill matcher with the external scoring collaborators.
type Ranker struct {
	matcher *matching.Matcher
	scorer  retention.Scorer
	log     *zap.Logger
	opts    Options
}

// New creates a Ranker. scorer may be nil, in which case every candidate
// receives the neutral retention default.
func New(matcher *matching.Matcher, scorer retention.Scorer, log *zap.Logger, opts Options) *Ranker {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultOptions().Concurrency
	}
	if opts.RetentionTimeout <= 0 {
		opts.RetentionTimeout = DefaultOptions().RetentionTimeout
	}
	if opts.RetentionCallCap <= 0 {
		opts.RetentionCallCap = DefaultOptions().RetentionCallCap
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ranker{matcher: matcher, scorer: scorer, log: log, opts: opts}
}

// SearchAndRank scores every candidate, applies the active filters, and
// returns the survivors ordered by combined score (ties broken by GPA, then
// input order). Collaborator failures degrade individual candidates to the
// documented defaults; only the caller's candidate-pool fetch can fail a
// search outright.
func (r *Ranker) SearchAndRank(
	ctx context.Context,
	candidates []types.CandidateProfile,
	requiredSkills []string,
	filters types.SearchFilters,
	signals Signals,
) []types.RankedCandidate {
	// Scored in input order so the stable sort below preserves pool order
	// for full ties.
	scored := make([]types.RankedCandidate, len(candidates))

	// One retention-call budget per request.
	var retentionCalls atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			scored[i] = r.scoreCandidate(gctx, candidate, requiredSkills, signals, &retentionCalls)
			return nil
		})
	}
	// Workers never return errors; degradation happens per candidate.
	_ = g.Wait()

	ranked := make([]types.RankedCandidate, 0, len(scored))
	for _, rc := range scored {
		if passesFilters(rc, filters) {
			ranked = append(ranked, rc)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CombinedScore != ranked[j].CombinedScore {
			return ranked[i].CombinedScore > ranked[j].CombinedScore
		}
		return gpaForCompare(ranked[i].Candidate.GPA) > gpaForCompare(ranked[j].Candidate.GPA)
	})

	return ranked
}

// MatchAll exposes the standalone match explanation for one job/candidate
// pair (the "which skills are missing" feature).
func (r *Ranker) MatchAll(requiredSkills, candidateSkills []string) types.MatchResult {
	return r.matcher.MatchAll(requiredSkills, candidateSkills)
}

// scoreCandidate computes all per-candidate signals.
func (r *Ranker) scoreCandidate(
	ctx context.Context,
	candidate types.CandidateProfile,
	requiredSkills []string,
	signals Signals,
	retentionCalls *atomic.Int64,
) types.RankedCandidate {
	rc := types.RankedCandidate{
		Candidate:  candidate,
		SkillMatch: r.matcher.MatchAll(requiredSkills, candidate.Skills),
	}

	if distance, ok := signals.Distances[candidate.ID]; ok {
		semantic := semanticScore(distance)
		rc.SemanticScore = &semantic
	}
	rc.CombinedScore = combinedScore(rc.SkillMatch.Score, rc.SemanticScore, len(requiredSkills))

	rc.RetentionScore, rc.RetentionNote = r.retentionScore(ctx, candidate, retentionCalls)
	return rc
}

// retentionScore attaches the retention signal, degrading to the neutral
// default when no data exists, the per-request call budget is spent, or the
// collaborator fails.
func (r *Ranker) retentionScore(ctx context.Context, candidate types.CandidateProfile, retentionCalls *atomic.Int64) (int, string) {
	if candidate.CulturalFitness.Empty() {
		return retention.NeutralScore, retention.NoteNoData
	}
	if r.scorer == nil {
		return retention.NeutralScore, retention.NoteUnavailable
	}
	if retentionCalls.Add(1) > int64(r.opts.RetentionCallCap) {
		return retention.NeutralScore, retention.NoteUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, r.opts.RetentionTimeout)
	defer cancel()

	assessment, err := r.scorer.Score(callCtx, candidate.CulturalFitness)
	if err != nil {
		r.log.Warn("retention scoring failed, using neutral default",
			zap.String("candidate_id", candidate.ID),
			zap.Error(err))
		return retention.NeutralScore, retention.NoteUnavailable
	}
	return assessment.Score, assessment.Reasoning
}

// gpaForCompare treats a missing GPA as the lowest possible value. This is a
// comparison key only; the stored profile keeps its nil GPA.
func gpaForCompare(gpa *float64) float64 {
	if gpa == nil {
		return 0
	}
	return *gpa
}
