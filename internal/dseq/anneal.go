package dseq

import (
	"fmt"
	"sort"
	"strings"
)

// match is a shared stretch of two sequences
type match struct {
	a      int // start in the first sequence
	b      int // start in the second sequence
	length int
}

// anneal finds the ovhg that pairs watson with crick along their longest
// shared stretch. It fails if there is no such stretch or more than one
func anneal(watson, crick string) (int, error) {
	w := strings.ToLower(watson)
	c := strings.ToLower(rc(crick))

	matches := commonSubstrings(w, c, minAnnealLength(len(watson)))
	if len(matches) == 0 {
		return 0, fmt.Errorf("%q and %q do not anneal, provide an ovhg: %w", watson, crick, ErrAmbiguousAnnealing)
	}

	if len(matches) > 1 && matches[1].length == matches[0].length {
		return 0, fmt.Errorf("%q and %q anneal in more than one way, provide an ovhg: %w", watson, crick, ErrAmbiguousAnnealing)
	}

	return matches[0].b - matches[0].a, nil
}

// minAnnealLength is floor(log4(n)), at least one
func minAnnealLength(n int) int {
	k := 0
	for p := 4; p <= n; p *= 4 {
		k++
	}
	return max(1, k)
}

// commonSubstrings returns every maximal stretch of at least limit bases that
// is in both a and b. Longest first, then by position in a and b.
//
// A stretch is maximal if it cannot be extended to the right (it can't be
// extended to the left either, the diagonal would have continued)
func commonSubstrings(a, b string, limit int) (matches []match) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				cur[j] = 0
				continue
			}

			cur[j] = prev[j-1] + 1
			extends := i < len(a) && j < len(b) && a[i] == b[j]
			if !extends && cur[j] >= limit {
				matches = append(matches, match{a: i - cur[j], b: j - cur[j], length: cur[j]})
			}
		}
		prev, cur = cur, prev
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].length != matches[j].length {
			return matches[i].length > matches[j].length
		}
		if matches[i].a != matches[j].a {
			return matches[i].a < matches[j].a
		}
		return matches[i].b < matches[j].b
	})
	return matches
}
