// Package rank scores history entries against a free-text query.
//
// A candidate's confidence is its textual similarity to the query multiplied
// by a recency weight derived from its position in the MRU-ordered history.
// Everything here is a pure function of its inputs; the package never touches
// the filesystem.
package rank

import (
	"math"
	"path/filepath"
	"sort"
	"strings"
)

// Candidate is a ranked history entry.
type Candidate struct {
	Path       string
	Confidence float64
}

// Weight returns the recency multiplier for a zero-based history position.
// It is a logistic curve: ~1.0 at index 0, strictly decreasing, flattening
// out towards 0.8 for stale entries. Recency can therefore lift a mediocre
// match over a slightly better stale one, but never drown out a strong
// textual match entirely.
func Weight(index int) float64 {
	return 1.2 - 0.4/(1+math.Exp(float64(index)/-2))
}

// Similarity scores how well query matches path, in [0,1]. It takes the best
// of three views of the path:
//
//	full path vs query
//	basename vs query
//	lowercased basename vs lowercased query, scaled by 0.9
//
// The case-insensitive view is down-weighted so an exact-case basename match
// always outranks a case-folded one.
func Similarity(path, query string) float64 {
	base := filepath.Base(path)

	full := editSimilarity(path, query)
	basename := editSimilarity(base, query)
	icase := editSimilarity(strings.ToLower(base), strings.ToLower(query)) * 0.9

	return max(full, basename, icase)
}

// editSimilarity is a normalized Damerau-Levenshtein similarity: 1 minus the
// edit distance divided by the longer string's length. 1.0 means identical,
// 0.0 means nothing in common.
func editSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longer := max(len(ra), len(rb))
	if longer == 0 {
		return 1.0
	}
	return 1.0 - float64(editDistance(ra, rb))/float64(longer)
}

// editDistance is the optimal-string-alignment edit distance: insert, delete
// and substitute cost one edit each, and so does swapping two adjacent runes.
// Rolling three-row DP, O(len(a)*len(b)) time, O(len(b)) space.
func editDistance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			v := min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			// Adjacent transposition counts as a single edit.
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if t := prev2[j-2] + 1; t < v {
					v = t
				}
			}
			cur[j] = v
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[lb]
}

// Rank scores every history entry against query and returns the candidates
// whose confidence is strictly above minConfidence, best first. Entries with
// equal confidence keep their history order, so the more recent one wins.
// A positive limit truncates the result; limit <= 0 returns everything that
// passed the filter. A candidate that cannot be scored (empty path) is
// skipped rather than failing the whole ranking.
func Rank(paths []string, query string, minConfidence float64, limit int) []Candidate {
	var out []Candidate
	for i, p := range paths {
		if p == "" {
			continue
		}
		confidence := Similarity(p, query) * Weight(i)
		if confidence > minConfidence {
			out = append(out, Candidate{Path: p, Confidence: confidence})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
