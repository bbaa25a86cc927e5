// Package enzyme is for restriction enzymes: parsing their recognition
// sequences, finding where they cut and keeping them in a database
package enzyme

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bebop/poly/transform"
)

// Enzyme is a restriction enzyme and where it cuts relative to its
// recognition site
type Enzyme struct {
	name string

	// recog is the recognition site, upper case IUPAC
	recog string

	// cutInd is where the watson strand is cut, from the start of recog
	cutInd int

	// hangInd is where the crick strand is cut, from the start of recog
	hangInd int

	// fwd and rev are the site and its reverse complement as base masks
	fwd []uint8
	rev []uint8

	palindromic bool
}

// typeIIS is a recognition site with the cuts outside it, eg "GGTCTC(1/5)"
var typeIIS = regexp.MustCompile(`^([A-Z]+)\((-?\d+)/(-?\d+)\)$`)

// New parses a recognition sequence into an enzyme. Three notations are
// understood:
//
//	G^GATC_C       '^' cuts watson, '_' cuts crick
//	G^GATCC        only watson marked, crick is cut symmetrically
//	GGTCTC(1/5)    cuts 1 and 5 bp past the end of the site
func New(name, recogSeq string) (Enzyme, error) {
	recogSeq = strings.ToUpper(strings.TrimSpace(recogSeq))

	var recog string
	var cutInd, hangInd int
	if m := typeIIS.FindStringSubmatch(recogSeq); m != nil {
		recog = m[1]
		top, _ := strconv.Atoi(m[2])
		bottom, _ := strconv.Atoi(m[3])
		cutInd = len(recog) + top
		hangInd = len(recog) + bottom
	} else {
		if strings.Count(recogSeq, "^") != 1 || strings.Count(recogSeq, "_") > 1 {
			return Enzyme{}, fmt.Errorf("%s is not a valid recognition sequence for %s, expected one '^' and at most one '_'", recogSeq, name)
		}

		recog = strings.NewReplacer("^", "", "_", "").Replace(recogSeq)
		cutInd = strings.Index(recogSeq, "^")
		hangInd = strings.Index(recogSeq, "_")
		switch {
		case hangInd < 0:
			hangInd = len(recog) - cutInd
		case cutInd < hangInd:
			hangInd--
		default:
			cutInd--
		}
	}

	recog = strings.ReplaceAll(recog, "X", "N")
	if recog == "" {
		return Enzyme{}, fmt.Errorf("empty recognition sequence for %s", name)
	}
	if i := strings.IndexFunc(recog, func(r rune) bool { return siteMasks[r] == 0 }); i >= 0 {
		return Enzyme{}, fmt.Errorf("invalid base %q in %s recognition sequence %s", recog[i], name, recogSeq)
	}

	revRecog := transform.ReverseComplement(recog)
	return Enzyme{
		name:        name,
		recog:       recog,
		cutInd:      cutInd,
		hangInd:     hangInd,
		fwd:         compile(recog),
		rev:         compile(revRecog),
		palindromic: recog == revRecog,
	}, nil
}

// MustNew is New that panics on an invalid recognition sequence
func MustNew(name, recogSeq string) Enzyme {
	e, err := New(name, recogSeq)
	if err != nil {
		panic(err)
	}
	return e
}

// Name of the enzyme
func (e Enzyme) Name() string {
	return e.name
}

// Site is the recognition sequence without cut marks
func (e Enzyme) Site() string {
	return e.recog
}

// Ovhg is the stagger the enzyme leaves. Negative for 5' overhangs (BamHI is
// -4), positive for 3' overhangs (KpnI is 4), zero for blunt cutters
func (e Enzyme) Ovhg() int {
	return e.cutInd - e.hangInd
}

// Palindromic reports whether the site is its own reverse complement
func (e Enzyme) Palindromic() bool {
	return e.palindromic
}

// String is the recognition sequence with its cut marks, in the notation
// New understands
func (e Enzyme) String() string {
	if e.cutInd < 0 || e.hangInd < 0 || e.cutInd > len(e.recog) || e.hangInd > len(e.recog) {
		return fmt.Sprintf("%s(%d/%d)", e.recog, e.cutInd-len(e.recog), e.hangInd-len(e.recog))
	}

	marks := []struct {
		at   int
		mark string
	}{{e.cutInd, "^"}, {e.hangInd, "_"}}
	if e.hangInd < e.cutInd {
		marks[0], marks[1] = marks[1], marks[0]
	}

	var b strings.Builder
	last := 0
	for _, m := range marks {
		b.WriteString(e.recog[last:m.at])
		b.WriteString(m.mark)
		last = m.at
	}
	b.WriteString(e.recog[last:])
	return b.String()
}

// Search returns the 1-based positions after which the enzyme cuts the
// watson strand of seq, sorted and without repeats.
//
// Sites on both strands are found. On linear DNA a cut has to fall inside the
// sequence on both strands, on circular DNA sites may run across the origin
// and cuts are wrapped around it
func (e Enzyme) Search(seq string, circular bool) []int {
	length, n := len(seq), len(e.recog)
	if length == 0 || n == 0 || (!circular && n > length) {
		return nil
	}

	hay := seq
	if circular {
		for len(hay) < length+n-1 {
			hay += seq
		}
		hay = hay[:length+n-1]
	}

	cuts := make(map[int]bool)
	add := func(w, c int) {
		if circular {
			cuts[((w%length)+length)%length] = true
		} else if w > 0 && w < length && c > 0 && c < length {
			cuts[w] = true
		}
	}

	for i := 0; i < length && i+n <= len(hay); i++ {
		window := hay[i : i+n]
		if matches(e.fwd, window) {
			add(i+e.cutInd, i+e.hangInd)
		}
		if !e.palindromic && matches(e.rev, window) {
			add(i+n-e.hangInd, i+n-e.cutInd)
		}
	}

	positions := make([]int, 0, len(cuts))
	for w := range cuts {
		positions = append(positions, w+1)
	}
	sort.Ints(positions)
	return positions
}
