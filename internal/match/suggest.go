package match

import "strings"

// DefaultThreshold is the minimum similarity for Suggest to accept a candidate.
const DefaultThreshold = 0.7

// Suggest returns the candidate closest to name after normalization.
// A candidate qualifies when its similarity reaches threshold or when one
// normalized name is a prefix of the other ("integer" and "int").
// Ties keep the earliest candidate. Exact matches are not suggestions.
func Suggest(name string, candidates []string, threshold float64) (string, bool) {
	norm := NormalizeIdent(name)
	if norm == "" {
		return "", false
	}

	var (
		best      string
		bestScore float64
		found     bool
	)

	for _, c := range candidates {
		if c == name {
			continue
		}

		normC := NormalizeIdent(c)
		if normC == "" {
			continue
		}

		score := Similarity(norm, normC)
		if score < threshold && !isPrefix(norm, normC) {
			continue
		}

		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}

func isPrefix(a, b string) bool {
	if len(a) > len(b) {
		a, b = b, a
	}

	return len(a) >= 3 && strings.HasPrefix(b, a)
}
