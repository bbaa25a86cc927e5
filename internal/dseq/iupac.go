package dseq

import "strings"

// defaultNucleotides are available to a polymerase when no set is given
const defaultNucleotides = "GATCRYWSMKHBVDN"

// complements maps every byte to its complement. IUPAC codes are swapped in
// both cases, anything else maps to itself
var complements = func() (table [256]byte) {
	for i := range table {
		table[i] = byte(i)
	}

	for _, pair := range []string{"AT", "TA", "CG", "GC", "RY", "YR", "KM", "MK", "BV", "VB", "DH", "HD", "SS", "WW", "NN", "UA"} {
		table[pair[0]] = pair[1]
		table[pair[0]+'a'-'A'] = pair[1] + 'a' - 'A'
	}
	return
}()

// rc returns the reverse complement of seq, keeping the case of each base
func rc(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = complements[seq[i]]
	}
	return string(out)
}

// reverse returns seq read backwards
func reverse(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = seq[i]
	}
	return string(out)
}

// pairs reports whether a watson base and a crick base anneal, ignoring case
func pairs(w, c byte) bool {
	lower := func(b byte) byte {
		if b >= 'A' && b <= 'Z' {
			return b + 'a' - 'A'
		}
		return b
	}
	return lower(complements[w]) == lower(c) || lower(complements[c]) == lower(w)
}

// nucleotideSet is a lookup of the bases a polymerase may incorporate
type nucleotideSet [256]bool

// newNucleotideSet accepts the letters in nucleotides in either case. An empty
// string is the full IUPAC alphabet
func newNucleotideSet(nucleotides string) (set nucleotideSet) {
	if nucleotides == "" {
		nucleotides = defaultNucleotides
	}

	for _, b := range []byte(strings.ToUpper(nucleotides) + strings.ToLower(nucleotides)) {
		set[b] = true
	}
	return
}

// mod is a modulo that is never negative
func mod(a, n int) int {
	if n == 0 {
		return 0
	}
	return ((a % n) + n) % n
}
