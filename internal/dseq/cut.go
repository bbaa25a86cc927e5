package dseq

import (
	"fmt"
	"sort"
)

// Enzyme is a restriction enzyme as the cut engine sees it
type Enzyme interface {
	// Name of the enzyme, eg "BamHI"
	Name() string

	// Ovhg is the stagger of the enzyme's cut, as in Dseq.Ovhg: negative for
	// enzymes leaving 5' overhangs, positive for 3' overhangs
	Ovhg() int

	// Search returns the 1-based positions after which the enzyme cuts the
	// watson strand of seq
	Search(seq string, circular bool) []int
}

// CutSite is a cut through both strands. Watson and Crick are the positions
// in the collapsed frame before which each strand is cut. Enzyme is nil for
// the free ends of a linear molecule
type CutSite struct {
	Watson int
	Crick  int
	Enzyme Enzyme
}

// String shows the site as (watson, crick) enzyme
func (c CutSite) String() string {
	name := "end"
	if c.Enzyme != nil {
		name = c.Enzyme.Name()
	}
	return fmt.Sprintf("(%d, %d) %s", c.Watson, c.Crick, name)
}

// ovhg is the stagger of the cut, the enzyme's for a real cut
func (c CutSite) ovhg() int {
	if c.Enzyme != nil {
		return c.Enzyme.Ovhg()
	}
	return c.Watson - c.Crick
}

// CutSites finds where the enzymes cut the molecule. Sites are sorted by their
// watson then crick position, an enzyme listed earlier wins a tie, and sites
// cutting both strands at the same place as an earlier site are dropped
func (d Dseq) CutSites(enzymes ...Enzyme) []CutSite {
	length := d.Len()
	if length == 0 {
		return nil
	}

	type ranked struct {
		site CutSite
		rank int
	}

	var found []ranked
	for rank, e := range enzymes {
		for _, p := range e.Search(d.full, d.circular) {
			w := p - 1
			c := w - e.Ovhg()
			if d.circular {
				c = mod(c, length)
			}
			found = append(found, ranked{site: CutSite{Watson: w, Crick: c, Enzyme: e}, rank: rank})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.site.Watson != b.site.Watson {
			return a.site.Watson < b.site.Watson
		}
		if a.site.Crick != b.site.Crick {
			return a.site.Crick < b.site.Crick
		}
		return a.rank < b.rank
	})

	var sites []CutSite
	seen := make(map[[2]int]bool)
	for _, f := range found {
		key := [2]int{f.site.Watson, f.site.Crick}
		if seen[key] {
			continue
		}
		seen[key] = true
		sites = append(sites, f.site)
	}
	return sites
}

// CutSitePairs turns sorted cut sites into the (left, right) boundaries of the
// fragments they make. Linear molecules get a pseudo cut site at each end.
// Circular molecules pair the last site with the first, and a single cut pairs
// with itself to open the circle
func (d Dseq) CutSitePairs(sites []CutSite) [][2]CutSite {
	if len(sites) == 0 {
		return nil
	}

	if d.circular && len(sites) == 1 {
		return [][2]CutSite{{sites[0], sites[0]}}
	}

	var bounds []CutSite
	if d.circular {
		bounds = append(bounds, sites[len(sites)-1])
		bounds = append(bounds, sites...)
	} else {
		left := CutSite{Watson: max(0, d.ovhg), Crick: max(0, -d.ovhg)}
		right := CutSite{Watson: left.Watson + len(d.watson), Crick: left.Crick + len(d.crick)}
		bounds = append(bounds, left)
		bounds = append(bounds, sites...)
		bounds = append(bounds, right)
	}

	pairs := make([][2]CutSite, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		pairs = append(pairs, [2]CutSite{bounds[i-1], bounds[i]})
	}
	return pairs
}

// ApplyCut returns the fragment between two cut sites. Its left end takes the
// stagger of the enzyme that made the left cut. On a circular molecule a
// fragment may run across the origin and a pair of equal sites opens the
// whole circle
func (d Dseq) ApplyCut(left, right CutSite) (Dseq, error) {
	ovhg := left.ovhg()

	if d.circular {
		length := d.Len()
		for _, c := range []CutSite{left, right} {
			if c.Watson < 0 || c.Watson >= length || c.Crick < 0 || c.Crick >= length {
				return Dseq{}, fmt.Errorf("cut %s is outside a %d bp circle: %w", c, length, ErrCutInOverhang)
			}
		}

		watson := cyclic(d.watson, left.Watson, right.Watson)
		crick := cyclic(d.crick, length-right.Crick, length-left.Crick)
		return Quick(watson, crick, ovhg, false, 0), nil
	}

	if err := d.checkCuts(left, right); err != nil {
		return Dseq{}, err
	}

	ws, cs := max(0, d.ovhg), max(0, -d.ovhg)
	lc := len(d.crick)
	watson := d.watson[left.Watson-ws : right.Watson-ws]
	crick := d.crick[cs+lc-right.Crick : cs+lc-left.Crick]
	return Quick(watson, crick, ovhg, false, 0), nil
}

// checkCuts makes sure two sites on a linear molecule are in order and that
// real cuts go through the double-stranded part of both strands
func (d Dseq) checkCuts(left, right CutSite) error {
	ws, cs := max(0, d.ovhg), max(0, -d.ovhg)
	lw, lc := len(d.watson), len(d.crick)

	for _, c := range []CutSite{left, right} {
		if c.Enzyme == nil {
			continue
		}
		if c.Watson <= ws || c.Watson >= ws+lw || c.Crick <= cs || c.Crick >= cs+lc {
			return fmt.Errorf("cut %s is not within the double-stranded region: %w", c, ErrCutInOverhang)
		}
	}

	if left.Watson < ws || right.Watson > ws+lw || left.Watson > right.Watson {
		return fmt.Errorf("cuts %s and %s cross on the watson strand: %w", left, right, ErrCutInOverhang)
	}
	if left.Crick < cs || right.Crick > cs+lc || left.Crick > right.Crick {
		return fmt.Errorf("cuts %s and %s cross on the crick strand: %w", left, right, ErrCutInOverhang)
	}
	return nil
}

// checkCircularCuts makes sure the crick cuts of a circle are in the same
// order as the watson cuts, so that every fragment has both strands
func (d Dseq) checkCircularCuts(pairs [][2]CutSite) error {
	length := d.Len()
	for _, p := range pairs {
		left, right := p[0], p[1]
		span := mod(right.Watson-left.Watson, length)
		crick := span + left.ovhg() - right.ovhg()
		if crick <= 0 || crick > length || mod(right.Crick-left.Crick, length) != mod(crick, length) {
			return fmt.Errorf("cuts %s and %s cross on the crick strand: %w", left, right, ErrCutInOverhang)
		}
	}
	return nil
}

// Cut digests the molecule with every site of the enzymes and returns the
// fragments left to right. A molecule without sites gives no fragments. The
// fragments of a circular molecule start at the last site's fragment, the one
// running across the origin
func (d Dseq) Cut(enzymes ...Enzyme) ([]Dseq, error) {
	pairs := d.CutSitePairs(d.CutSites(enzymes...))

	if d.circular && len(pairs) > 1 {
		if err := d.checkCircularCuts(pairs); err != nil {
			return nil, err
		}
	}

	fragments := make([]Dseq, 0, len(pairs))
	for _, p := range pairs {
		f, err := d.ApplyCut(p[0], p[1])
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

// NCutters are the enzymes that cut the molecule exactly n times
func (d Dseq) NCutters(n int, enzymes ...Enzyme) []Enzyme {
	var cutters []Enzyme
	for _, e := range enzymes {
		if len(e.Search(d.full, d.circular)) == n {
			cutters = append(cutters, e)
		}
	}
	return cutters
}

// Cutters are the enzymes that cut the molecule at least once
func (d Dseq) Cutters(enzymes ...Enzyme) []Enzyme {
	var cutters []Enzyme
	for _, e := range enzymes {
		if len(e.Search(d.full, d.circular)) > 0 {
			cutters = append(cutters, e)
		}
	}
	return cutters
}

// NoCutters are the enzymes that don't cut the molecule
func (d Dseq) NoCutters(enzymes ...Enzyme) []Enzyme {
	return d.NCutters(0, enzymes...)
}

// UniqueCutters are the enzymes that cut the molecule once
func (d Dseq) UniqueCutters(enzymes ...Enzyme) []Enzyme {
	return d.NCutters(1, enzymes...)
}

// TwiceCutters are the enzymes that cut the molecule twice
func (d Dseq) TwiceCutters(enzymes ...Enzyme) []Enzyme {
	return d.NCutters(2, enzymes...)
}

// cyclic is s from start up to end, running past the end of s back to its
// start when needed. Equal bounds are the whole of s rotated to start
func cyclic(s string, start, end int) string {
	if len(s) == 0 {
		return s
	}

	start, end = mod(start, len(s)), mod(end, len(s))
	if start < end {
		return s[start:end]
	}
	return s[start:] + s[:end]
}
