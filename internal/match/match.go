package match

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"carmatch/internal/vehicle"
)

// Candidate pairs one target record with its breakdown and total for a
// single profile invocation. Candidates are ephemeral, produced per search.
type Candidate struct {
	Spec      *vehicle.Spec
	Score     int
	Breakdown Breakdown
}

// maxResultCandidates caps the ranked list handed back to callers.
const maxResultCandidates = 10

// Result is the outcome of one search: the ranked top candidates, the
// confidence of the best one, and the profile context callers need to
// normalize the raw score (mapping submission divides by MaxScore).
type Result struct {
	Candidates         []Candidate
	CandidateCount     int
	Decision           Confidence
	Confidence         float64
	RecommendedNatcode string
	Profile            string
	MaxScore           int
}

// Match runs the full engine for one normalized source record: candidate
// selection, per-candidate scoring, ranking, and classification. Candidates
// are scored concurrently; their computations are independent, and the
// catalog snapshot behind the lookup is immutable while the search runs.
func Match(source *vehicle.Spec, catalog CatalogLookup, profile Profile) Result {
	result := Result{
		Profile:  profile.Name(),
		MaxScore: profile.MaxScore(),
	}

	selected := SelectCandidates(source, catalog)
	if len(selected) == 0 {
		result.Decision = ConfidenceNoCandidates
		return result
	}

	candidates := make([]Candidate, len(selected))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, spec := range selected {
		i, spec := i, spec
		g.Go(func() error {
			score, breakdown := ScoreCandidate(source, spec, profile)
			candidates[i] = Candidate{Spec: spec, Score: score, Breakdown: breakdown}
			return nil
		})
	}
	_ = g.Wait()

	Rank(candidates)

	result.CandidateCount = len(candidates)
	if len(candidates) > maxResultCandidates {
		candidates = candidates[:maxResultCandidates]
	}
	result.Candidates = candidates

	top := candidates[0]
	result.Decision = Classify(top.Score, profile.MaxScore())
	result.Confidence = float64(top.Score) / float64(profile.MaxScore())
	result.RecommendedNatcode = top.Spec.Natcode
	return result
}
