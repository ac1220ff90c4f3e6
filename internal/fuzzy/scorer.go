package fuzzy

import "unicode"

// Weights are the knobs of the scoring formula.
type Weights struct {
	// Base is the starting score for any successful match.
	Base int

	// Consecutive is added for each matched rune adjacent to the
	// previous match.
	Consecutive int

	// Boundary is added for each match at a word or camelCase boundary.
	Boundary int

	// Prefix is added when the first match is at position 0.
	Prefix int

	// ExactPrefix is added when the query equals the start of the text.
	ExactPrefix int

	// Gap is subtracted per unmatched rune between the first and last
	// match.
	Gap int

	// Leading is subtracted per rune before the first match.
	Leading int

	// ShortText is a bonus threshold: texts shorter than this gain the
	// difference, favoring tighter candidates.
	ShortText int
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Base:        100,
		Consecutive: 20,
		Boundary:    15,
		Prefix:      25,
		ExactPrefix: 50,
		Gap:         2,
		Leading:     1,
		ShortText:   20,
	}
}

// score computes the weighted score for a successful subsequence match.
// positions holds the matched rune indices in ascending order; original
// preserves the text's case for boundary detection.
func (w Weights) score(query, original, normalized []rune, positions []int) int {
	if len(positions) == 0 {
		return 0
	}

	score := w.Base

	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			score += w.Consecutive
		}
	}

	for _, idx := range positions {
		if boundary(original, idx) {
			score += w.Boundary
		}
	}

	if positions[0] == 0 {
		score += w.Prefix
	} else {
		score -= positions[0] * w.Leading
	}

	if len(positions) > 1 {
		gap := positions[len(positions)-1] - positions[0] - len(positions) + 1
		if gap > 0 {
			score -= gap * w.Gap
		}
	}

	if len(normalized) < w.ShortText {
		score += w.ShortText - len(normalized)
	}

	if len(normalized) >= len(query) {
		prefix := true
		for i, qr := range query {
			if normalized[i] != qr {
				prefix = false
				break
			}
		}
		if prefix {
			score += w.ExactPrefix
		}
	}

	// Any successful match scores at least 1.
	if score < 1 {
		score = 1
	}
	return score
}

// boundary reports whether idx starts a word: position 0, after a
// separator, or at a lower-to-upper camelCase transition.
func boundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}
	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}
