package correction

import (
	"math"

	"github.com/hbollon/go-edlib"
)

// FuzzyResult is the outcome of matching a query against a candidate set.
// Scores are normalized similarity ratios: 0 means no resemblance, 100 means
// identical.
type FuzzyResult struct {
	Key   string
	Score int
}

// BestMatch returns the highest-scoring candidate for query, or false when
// candidates is empty. Ties go to the first-encountered candidate, so callers
// that need determinism must pass candidates in a stable order (the
// dictionary key slice preserves insertion order for exactly this reason).
func BestMatch(query string, candidates []string) (FuzzyResult, bool) {
	best := FuzzyResult{Score: -1}
	for _, candidate := range candidates {
		score := similarityRatio(query, candidate)
		if score > best.Score {
			best = FuzzyResult{Key: candidate, Score: score}
		}
	}
	if best.Score < 0 {
		return FuzzyResult{}, false
	}
	return best, true
}

// similarityRatio computes a normalized Levenshtein similarity between two
// strings, scaled to an integer in [0,100].
func similarityRatio(a, b string) int {
	if a == b {
		return 100
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return int(math.Round(float64(sim) * 100))
}
