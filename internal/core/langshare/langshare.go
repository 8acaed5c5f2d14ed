// Package langshare sums per repository language bytes into a global distribution
package langshare

import (
	"math"
	"sort"
)

// Share is one language's percentage of the observed bytes
type Share struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Lang is one language's byte count within a repository
type Lang struct {
	Name  string
	Bytes int64
}

// Result is the outcome of fetching one repository's language breakdown
// Langs keeps the order GitHub listed them in; Err set means the repository was skipped
type Result struct {
	Repo  string
	Langs []Lang
	Err   error
}

// OK reports whether the fetch succeeded
func (r Result) OK() bool { return r.Err == nil }

// Totals is a byte count per language that remembers first-seen order
type Totals struct {
	order []string
	bytes map[string]int64
}

// Add accumulates n bytes for lang
func (t *Totals) Add(lang string, n int64) {
	if t.bytes == nil {
		t.bytes = make(map[string]int64)
	}
	if _, ok := t.bytes[lang]; !ok {
		t.order = append(t.order, lang)
	}
	t.bytes[lang] += n
}

// Sum returns the grand total across all languages
func (t Totals) Sum() int64 {
	var s int64
	for _, n := range t.bytes {
		s += n
	}
	return s
}

// Accumulate sums the successful results in slice order, each repo's languages in listed order
// skipped results and non positive counts contribute nothing
func Accumulate(results []Result) Totals {
	var t Totals
	for _, r := range results {
		if !r.OK() {
			continue
		}
		for _, l := range r.Langs {
			if l.Bytes > 0 {
				t.Add(l.Name, l.Bytes)
			}
		}
	}
	return t
}

// Skipped counts the failed results
func Skipped(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Top returns the n largest languages as percentages of the grand total
// ties keep first-seen order; a zero total yields an empty list
func Top(t Totals, n int) []Share {
	total := t.Sum()
	if total <= 0 || n <= 0 {
		return []Share{}
	}

	names := append([]string(nil), t.order...)
	sort.SliceStable(names, func(i, j int) bool {
		return t.bytes[names[i]] > t.bytes[names[j]]
	})
	if len(names) > n {
		names = names[:n]
	}

	out := make([]Share, 0, len(names))
	for _, name := range names {
		out = append(out, Share{
			Name:       name,
			Percentage: Round1(float64(t.bytes[name]) / float64(total) * 100),
		})
	}
	return out
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
