package fuzzy

import (
	"sort"
	"strings"
)

// Match is one ranked candidate.
type Match struct {
	// Index is the candidate's position in the input slice.
	Index int

	// Score is the match score (higher is better).
	Score int
}

// Options configures a Matcher.
type Options struct {
	// CaseSensitive matches query runes against the text as written.
	// When false, both sides are lowercased before matching.
	CaseSensitive bool

	// CacheSize bounds the ranked-result cache. Zero disables caching.
	CacheSize int
}

// DefaultCacheSize bounds the query cache when none is configured.
const DefaultCacheSize = 256

// Matcher scores candidates against queries. A single Matcher assumes a
// stable candidate list across Rank calls; changing the list requires
// ClearCache (or a fresh Matcher).
type Matcher struct {
	opts    Options
	weights Weights
	cache   *cache
}

// New creates a Matcher with the given options and default weights.
func New(opts Options) *Matcher {
	var c *cache
	if opts.CacheSize > 0 {
		c = newCache(opts.CacheSize)
	}
	return &Matcher{
		opts:    opts,
		weights: DefaultWeights(),
		cache:   c,
	}
}

// Score matches a single text against the query. The boolean reports
// whether the query is a subsequence of the text at all; when it is
// false the score is meaningless.
func (m *Matcher) Score(query, text string) (int, bool) {
	if query == "" || text == "" {
		return 0, false
	}

	queryRunes := []rune(query)
	original := []rune(text)
	normalized := original
	if !m.opts.CaseSensitive {
		queryRunes = []rune(strings.ToLower(query))
		normalized = []rune(strings.ToLower(text))
	}

	positions := subsequence(queryRunes, normalized)
	if positions == nil {
		return 0, false
	}
	return m.weights.score(queryRunes, original, normalized, positions), true
}

// Rank scores every candidate and returns the matches sorted by score
// descending, ties broken by candidate text ascending. A non-positive
// limit means no limit.
func (m *Matcher) Rank(query string, texts []string, limit int) []Match {
	if query == "" {
		return nil
	}

	if m.cache != nil {
		if hit, ok := m.cache.get(query); ok {
			return clip(hit, limit)
		}
	}

	matches := make([]Match, 0, 16)
	for i, text := range texts {
		if score, ok := m.Score(query, text); ok {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return texts[matches[a].Index] < texts[matches[b].Index]
	})

	if m.cache != nil {
		m.cache.put(query, matches)
	}
	return clip(matches, limit)
}

// ClearCache drops all cached results.
func (m *Matcher) ClearCache() {
	if m.cache != nil {
		m.cache.clear()
	}
}

// subsequence finds the greedy left-to-right positions of query in text.
// Returns nil when the query is not a subsequence of the text.
func subsequence(query, text []rune) []int {
	positions := make([]int, 0, len(query))
	qi := 0
	for ti := 0; ti < len(text) && qi < len(query); ti++ {
		if text[ti] == query[qi] {
			positions = append(positions, ti)
			qi++
		}
	}
	if qi != len(query) {
		return nil
	}
	return positions
}

func clip(matches []Match, limit int) []Match {
	if limit <= 0 || limit >= len(matches) {
		return matches
	}
	return matches[:limit]
}
