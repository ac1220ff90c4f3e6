// Package rank orders catalog records by relevance to a query. It powers
// both one-shot lookup (best single record) and live incremental
// filtering (bounded ranked list).
package rank

import (
	"sort"

	"github.com/Yeint-herp/ntdoc/internal/catalog"
	"github.com/Yeint-herp/ntdoc/internal/fuzzy"
)

// MaxResults caps the ranked list returned by Rank.
const MaxResults = 50

// NameBonus is added when a query hits a record's name, so name hits
// always outrank secondary-text hits in per-record scoring.
const NameBonus = 1000

// Result is one ranked record.
type Result struct {
	Record catalog.Record
	Score  int
}

// Engine ranks records from a fixed catalog. The catalog is shared
// read-only; an Engine is safe for concurrent use.
type Engine struct {
	cat    catalog.Catalog
	names  []string
	exact  *fuzzy.Matcher
	folded *fuzzy.Matcher
}

// New creates an Engine over the catalog. The catalog must not be
// mutated afterwards.
func New(cat catalog.Catalog) *Engine {
	names := make([]string, len(cat))
	for i, rec := range cat {
		names[i] = rec.Name()
	}
	return &Engine{
		cat:    cat,
		names:  names,
		exact:  fuzzy.New(fuzzy.Options{CaseSensitive: true, CacheSize: fuzzy.DefaultCacheSize}),
		folded: fuzzy.New(fuzzy.Options{CacheSize: fuzzy.DefaultCacheSize}),
	}
}

// ResolveBest finds the single record whose name best matches the query.
// Names are matched case-sensitively first; only if that pass matches
// nothing is the query retried with both sides lowercased. Among equal
// scores the earliest record wins. The boolean is false when no record
// matches in either pass.
func (e *Engine) ResolveBest(query string) (catalog.Record, bool) {
	if idx, ok := e.bestName(e.exact, query); ok {
		return e.cat[idx], true
	}
	if idx, ok := e.bestName(e.folded, query); ok {
		return e.cat[idx], true
	}
	return catalog.Record{}, false
}

func (e *Engine) bestName(m *fuzzy.Matcher, query string) (int, bool) {
	bestIdx, bestScore, found := 0, 0, false
	for i, name := range e.names {
		score, ok := m.Score(query, name)
		if !ok {
			continue
		}
		if !found || score > bestScore {
			bestIdx, bestScore, found = i, score, true
		}
	}
	return bestIdx, found
}

// Rank returns the ranked list for an incremental-filter query, at most
// MaxResults long.
//
// An empty query lists the whole catalog sorted by name ascending, with
// a neutral score. Otherwise names are scored case-sensitively; when
// that yields nothing at all, the whole pass is redone case-insensitively
// (the fallback is all-or-nothing at the set level, never per record).
func (e *Engine) Rank(query string) []Result {
	if query == "" {
		return e.allByName()
	}

	matches := e.exact.Rank(query, e.names, MaxResults)
	if len(matches) == 0 {
		matches = e.folded.Rank(query, e.names, MaxResults)
	}

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{Record: e.cat[m.Index], Score: m.Score}
	}
	return results
}

func (e *Engine) allByName() []Result {
	order := make([]int, len(e.cat))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return e.names[order[a]] < e.names[order[b]]
	})
	if len(order) > MaxResults {
		order = order[:MaxResults]
	}

	results := make([]Result, len(order))
	for i, idx := range order {
		results[i] = Result{Record: e.cat[idx]}
	}
	return results
}

// Score computes a single record's relevance to the query. A name match
// wins outright and carries NameBonus; otherwise the best score over the
// record's secondary text is used: a Define's value, a Function's
// description, or Struct/Union field and Enum member names. Typedefs
// have no secondary text. Neither ResolveBest nor Rank use this; it
// exists for relevance queries against one known record.
func (e *Engine) Score(r catalog.Record, query string) (int, bool) {
	return scoreRecord(e.exact, r, query)
}

// ScoreFold is Score with case-insensitive matching.
func (e *Engine) ScoreFold(r catalog.Record, query string) (int, bool) {
	return scoreRecord(e.folded, r, query)
}

func scoreRecord(m *fuzzy.Matcher, r catalog.Record, query string) (int, bool) {
	if score, ok := m.Score(query, r.Name()); ok {
		return score + NameBonus, true
	}

	best, found := 0, false
	consider := func(text string) {
		if score, ok := m.Score(query, text); ok && (!found || score > best) {
			best, found = score, true
		}
	}

	switch d := r.Decl.(type) {
	case catalog.Define:
		consider(d.Value)
	case catalog.Function:
		consider(d.Description)
	case catalog.Struct:
		for _, f := range d.Fields {
			consider(f.Name)
		}
	case catalog.Union:
		for _, f := range d.Fields {
			consider(f.Name)
		}
	case catalog.Enum:
		for _, member := range d.Members {
			consider(member.Name)
		}
	case catalog.Typedef:
		// No secondary text.
	}
	return best, found
}
