// Package fuzzy implements subsequence-based fuzzy string scoring.
//
// A query matches a text only if every query rune appears in the text in
// order. Scores reward contiguous runs, matches at word or camelCase
// boundaries, and matches near the start of the text, and penalize gaps.
// Higher is better; a failed subsequence match produces no score at all.
//
// The Matcher is safe for concurrent use and keeps an LRU cache of ranked
// results so that re-running the same query (common during incremental
// filtering) is cheap.
package fuzzy
