// Package seguid computes SEGUID v2 checksums of DNA: stable identifiers that
// don't change when a molecule is turned around or a circle is rotated
package seguid

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bebop/poly/transform"
)

// alphabet is the set of bases a checksum accepts
const alphabet = "ACGTUMRWSYKVHDBN"

// checksum is the url-safe base64 of the SHA-1 of seq, without padding
func checksum(seq string) string {
	sum := sha1.Sum([]byte(seq))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// validate makes sure seq is made of upper case IUPAC bases
func validate(seq string) error {
	if i := strings.IndexFunc(seq, func(r rune) bool { return !strings.ContainsRune(alphabet, r) }); i >= 0 {
		return fmt.Errorf("invalid base %q at %d in %q, only %s are allowed", seq[i], i, seq, alphabet)
	}
	return nil
}

// LSSeguid is the checksum of a linear single-stranded sequence
func LSSeguid(seq string) (string, error) {
	if err := validate(seq); err != nil {
		return "", err
	}
	return "lsseguid=" + checksum(seq), nil
}

// CSSeguid is the checksum of a circular single-stranded sequence. Every
// rotation of seq has the same checksum
func CSSeguid(seq string) (string, error) {
	if err := validate(seq); err != nil {
		return "", err
	}
	return "csseguid=" + checksum(minRotation(seq)), nil
}

// LDSeguid is the checksum of a linear double-stranded molecule. The strands
// are laid out in a common frame, gaps padded with '-', and the
// lexicographically smaller is hashed first so that a molecule and its
// reverse complement share a checksum
func LDSeguid(watson, crick string, ovhg int) (string, error) {
	if watson == "" && crick == "" {
		return "", fmt.Errorf("cannot checksum an empty molecule")
	}
	for _, s := range []string{watson, crick} {
		if err := validate(s); err != nil {
			return "", err
		}
	}

	ws, cs := 0, 0
	if ovhg > 0 {
		ws = ovhg
	} else {
		cs = -ovhg
	}
	length := ws + len(watson)
	if cs+len(crick) > length {
		length = cs + len(crick)
	}

	top := strings.Repeat("-", ws) + watson + strings.Repeat("-", length-ws-len(watson))
	bottom := strings.Repeat("-", length-cs-len(crick)) + crick + strings.Repeat("-", cs)
	if bottom < top {
		top, bottom = bottom, top
	}
	return "ldseguid=" + checksum(top+";"+bottom), nil
}

// CDSeguid is the checksum of a circular double-stranded molecule. It is the
// same for any rotation of either strand
func CDSeguid(watson, crick string) (string, error) {
	if len(watson) != len(crick) {
		return "", fmt.Errorf("strands of a circular molecule have to be the same length, %d != %d", len(watson), len(crick))
	}

	w, c := minRotation(watson), minRotation(crick)
	if c < w {
		w = c
	}

	ld, err := LDSeguid(w, transform.ReverseComplement(w), 0)
	if err != nil {
		return "", err
	}
	return "cdseguid=" + strings.TrimPrefix(ld, "ldseguid="), nil
}

// minRotation is the lexicographically smallest rotation of s (Booth's
// algorithm)
func minRotation(s string) string {
	n := len(s)
	if n == 0 {
		return s
	}

	at := func(i int) byte { return s[i%n] }
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && at(j) != at(k+i+1) {
			if at(j) < at(k+i+1) {
				k = j - i - 1
			}
			i = f[i]
		}

		if i == -1 && at(j) != at(k+i+1) {
			if at(j) < at(k+i+1) {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	k %= n
	return s[k:] + s[:k]
}
