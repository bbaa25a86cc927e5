// Package dseq models double-stranded DNA as a pair of anti-parallel strands
// with an offset between their 5' ends.
//
// A Dseq is read like this, watson on top 5'->3' and crick below 3'->5':
//
//	  ACGTAC        ovhg = 2, the crick strand sticks out
//	TGTGCATG        two bases past the 5' end of watson
//
// Every value is immutable. Operations that change a molecule return a new one.
package dseq

import (
	"fmt"
	"strings"
)

// Dseq is a double-stranded DNA molecule
type Dseq struct {
	// watson is the top strand, 5' to 3'
	watson string

	// crick is the bottom strand, 5' to 3'
	crick string

	// ovhg is how far the 3' end of crick reaches past the 5' end of watson.
	// positive when crick protrudes, negative when watson protrudes
	ovhg int

	// circular molecules have no ends
	circular bool

	// pos is the molecule's position in some larger sequence. informational
	pos int

	// full is the collapsed double-stranded sequence
	full string
}

// options are the optional arguments to New
type options struct {
	crick    string
	hasCrick bool
	ovhg     int
	hasOvhg  bool
	circular bool
	pos      int
}

// Option sets an optional argument of New
type Option func(*options)

// WithCrick sets the bottom strand, read 5' to 3'
func WithCrick(crick string) Option {
	return func(o *options) {
		o.crick = crick
		o.hasCrick = true
	}
}

// WithOvhg sets the stagger between the strands. It requires WithCrick
func WithOvhg(ovhg int) Option {
	return func(o *options) {
		o.ovhg = ovhg
		o.hasOvhg = true
	}
}

// WithCircular marks the molecule as circular
func WithCircular(circular bool) Option {
	return func(o *options) {
		o.circular = circular
	}
}

// WithPos records the molecule's position in a larger sequence
func WithPos(pos int) Option {
	return func(o *options) {
		o.pos = pos
	}
}

// New creates a Dseq from its watson strand.
//
// Without a crick strand the molecule is blunt and fully double-stranded.
// With a crick strand and no ovhg, the stagger is found by annealing the two
// strands. With both, the overlapping bases are checked for complementarity.
func New(watson string, opts ...Option) (Dseq, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !o.hasCrick {
		if o.hasOvhg {
			return Dseq{}, fmt.Errorf("ovhg of %d given without a crick strand: %w", o.ovhg, ErrConfiguration)
		}
		return Quick(watson, rc(watson), 0, o.circular, o.pos), nil
	}

	ovhg := o.ovhg
	if o.hasOvhg {
		if err := checkPairing(watson, o.crick, ovhg); err != nil {
			return Dseq{}, err
		}
	} else {
		annealed, err := anneal(watson, o.crick)
		if err != nil {
			return Dseq{}, err
		}
		ovhg = annealed
	}

	return Quick(watson, o.crick, ovhg, o.circular, o.pos), nil
}

// FromString returns a blunt, linear molecule with seq as its watson strand
func FromString(seq string) Dseq {
	return Quick(seq, rc(seq), 0, false, 0)
}

// FromStrands anneals watson and crick into a linear molecule
func FromStrands(watson, crick string) (Dseq, error) {
	return New(watson, WithCrick(crick))
}

// FromStrandsOvhg pairs watson and crick with a known stagger
func FromStrandsOvhg(watson, crick string, ovhg int) (Dseq, error) {
	return New(watson, WithCrick(crick), WithOvhg(ovhg))
}

// FromFullSequenceAndOverhangs builds a linear molecule from its collapsed
// sequence and the single-stranded overhangs at either end.
//
// crickOvhg > 0 removes bases from the 5' end of watson, crickOvhg < 0 from
// the 3' end of crick. watsonOvhg > 0 removes bases from the 5' end of crick
// and watsonOvhg < 0 from the 3' end of watson.
func FromFullSequenceAndOverhangs(full string, crickOvhg, watsonOvhg int) (Dseq, error) {
	watson := full
	crick := rc(full)

	abs := func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}
	if abs(crickOvhg)+abs(watsonOvhg) > len(full) {
		return Dseq{}, fmt.Errorf("overhangs %d and %d are longer than %q: %w", crickOvhg, watsonOvhg, full, ErrConfiguration)
	}

	if crickOvhg < 0 {
		crick = crick[:len(crick)+crickOvhg]
	} else if crickOvhg > 0 {
		watson = watson[crickOvhg:]
	}

	if watsonOvhg < 0 {
		watson = watson[:len(watson)+watsonOvhg]
	} else if watsonOvhg > 0 {
		crick = crick[watsonOvhg:]
	}

	return New(watson, WithCrick(crick), WithOvhg(crickOvhg))
}

// Quick builds a Dseq from strands that are already known to pair with the
// given ovhg. Nothing is checked, so it is only for callers that derived the
// strands from another valid Dseq.
func Quick(watson, crick string, ovhg int, circular bool, pos int) Dseq {
	return Dseq{
		watson:   watson,
		crick:    crick,
		ovhg:     ovhg,
		circular: circular,
		pos:      pos,
		full:     collapse(watson, crick, ovhg),
	}
}

// collapse lays both strands into a common frame and reads off one base per
// position, preferring watson where both strands are present
func collapse(watson, crick string, ovhg int) string {
	ws, cs := max(0, ovhg), max(0, -ovhg)
	length := max(ws+len(watson), cs+len(crick))

	full := make([]byte, length)
	for p := range full {
		switch {
		case p >= ws && p < ws+len(watson):
			full[p] = watson[p-ws]
		case p >= cs && p < cs+len(crick):
			full[p] = complements[crick[len(crick)-1-(p-cs)]]
		default:
			full[p] = 'n'
		}
	}
	return string(full)
}

// checkPairing makes sure every position covered by both strands pairs
func checkPairing(watson, crick string, ovhg int) error {
	ws, cs := max(0, ovhg), max(0, -ovhg)
	start := max(ws, cs)
	end := min(ws+len(watson), cs+len(crick))

	for p := start; p < end; p++ {
		w := watson[p-ws]
		c := crick[len(crick)-1-(p-cs)]
		if !pairs(w, c) {
			return fmt.Errorf("watson %c at %d does not pair with crick %c with ovhg %d: %w", w, p-ws, c, ovhg, ErrConfiguration)
		}
	}
	return nil
}

// Watson is the top strand, 5' to 3'
func (d Dseq) Watson() string {
	return d.watson
}

// Crick is the bottom strand, 5' to 3'
func (d Dseq) Crick() string {
	return d.crick
}

// Ovhg is the stagger of the crick 3' end past the watson 5' end
func (d Dseq) Ovhg() int {
	return d.ovhg
}

// Circular reports whether the molecule is circular
func (d Dseq) Circular() bool {
	return d.circular
}

// Pos is the molecule's position in a larger sequence
func (d Dseq) Pos() int {
	return d.pos
}

// Len is the number of positions spanned by either strand
func (d Dseq) Len() int {
	return len(d.full)
}

// String is the collapsed sequence
func (d Dseq) String() string {
	return d.full
}

// At returns the collapsed base at i. Negative indexes count from the end and
// circular molecules wrap. Like slice indexing, an index outside a linear
// molecule panics, as does any index into an empty one
func (d Dseq) At(i int) byte {
	length := len(d.full)
	switch {
	case length == 0:
		panic(fmt.Sprintf("dseq: index %d into an empty molecule", i))
	case d.circular:
		i = mod(i, length)
	case i < 0:
		i += length
	}

	if i < 0 || i >= length {
		panic(fmt.Sprintf("dseq: index %d out of range for %d bp", i, length))
	}
	return d.full[i]
}

// Upper returns the molecule with both strands in upper case
func (d Dseq) Upper() Dseq {
	return Quick(strings.ToUpper(d.watson), strings.ToUpper(d.crick), d.ovhg, d.circular, d.pos)
}

// Lower returns the molecule with both strands in lower case
func (d Dseq) Lower() Dseq {
	return Quick(strings.ToLower(d.watson), strings.ToLower(d.crick), d.ovhg, d.circular, d.pos)
}

// Equal compares strands, stagger and topology. Case and pos are ignored
func (d Dseq) Equal(other Dseq) bool {
	return strings.EqualFold(d.watson, other.watson) &&
		strings.EqualFold(d.crick, other.crick) &&
		d.ovhg == other.ovhg &&
		d.circular == other.circular
}

// Find returns the index of the first occurrence of sub at or after start in
// the collapsed sequence, or -1. On circular molecules the search runs across
// the origin and the index is reported modulo Len
func (d Dseq) Find(sub string, start int) int {
	if start < 0 {
		start = max(0, start+d.Len())
	}
	if start > d.Len() {
		return -1
	}

	hay := d.full
	if d.circular {
		hay += d.full
	}
	hay = strings.ToLower(hay)

	i := strings.Index(hay[start:], strings.ToLower(sub))
	if i < 0 {
		return -1
	}
	if d.circular {
		return (start + i) % d.Len()
	}
	return start + i
}
