package match

import "sort"

// Confidence labels the quality of a search's top candidate.
type Confidence string

const (
	ConfidencePerfect  Confidence = "PERFECT"
	ConfidenceLikely   Confidence = "LIKELY"
	ConfidencePossible Confidence = "POSSIBLE"
	ConfidenceUnlikely Confidence = "UNLIKELY"
	// ConfidenceNoCandidates marks a search whose selector produced nothing,
	// as distinct from a candidate set that merely scored zero.
	ConfidenceNoCandidates Confidence = "NO_CANDIDATES"
)

// Classification thresholds as fractions of the profile's max score. Being
// percentage-based, they hold across weight profiles with different totals.
const (
	perfectFraction  = 0.714
	likelyFraction   = 0.535
	possibleFraction = 0.285
)

// Classify maps a top score to a confidence label under the given profile
// maximum.
func Classify(score, maxScore int) Confidence {
	if maxScore <= 0 {
		return ConfidenceUnlikely
	}
	fraction := float64(score) / float64(maxScore)
	switch {
	case fraction >= perfectFraction:
		return ConfidencePerfect
	case fraction >= likelyFraction:
		return ConfidenceLikely
	case fraction >= possibleFraction:
		return ConfidencePossible
	}
	return ConfidenceUnlikely
}

// Rank sorts candidates by total score descending. Equal scores keep their
// catalog iteration order (stable sort), which is the documented tie-break.
func Rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
