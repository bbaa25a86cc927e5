package enzyme

import "strings"

// ld computes the Levenshtein distance between two strings
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}

	prev := make([]int, len(t)+1)
	cur := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s); i++ {
		cur[0] = i
		for j := 1; j <= len(t); j++ {
			if s[i-1] == t[j-1] {
				cur[j] = prev[j-1]
				continue
			}

			min := prev[j]
			if cur[j-1] < min {
				min = cur[j-1]
			}
			if prev[j-1] < min {
				min = prev[j-1]
			}
			cur[j] = min + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(t)]
}
