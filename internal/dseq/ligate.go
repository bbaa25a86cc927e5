package dseq

import "fmt"

// Add ligates other onto the 3' end of d. The right end of d and the left end
// of other have to be compatible. Empty molecules ligate to anything
func (d Dseq) Add(other Dseq) (Dseq, error) {
	if d.circular || other.circular {
		return Dseq{}, fmt.Errorf("cannot ligate circular DNA: %w", ErrTopology)
	}
	if d.Len() == 0 {
		return other, nil
	}
	if other.Len() == 0 {
		return d, nil
	}

	right, left := d.ThreePrimeEnd(), other.FivePrimeEnd()
	if !right.Compatible(left) {
		return Dseq{}, fmt.Errorf("%s end %q does not ligate to %s end %q: %w",
			right.Protrusion(), right.Sticky, left.Protrusion(), left.Sticky, ErrIncompatibleEnds)
	}

	return Quick(d.watson+other.watson, other.crick+d.crick, d.ovhg, false, 0), nil
}

// Ligate joins molecules left to right
func Ligate(molecules ...Dseq) (Dseq, error) {
	var joined Dseq
	for i, m := range molecules {
		next, err := joined.Add(m)
		if err != nil {
			return Dseq{}, fmt.Errorf("failed to ligate molecule %d: %w", i, err)
		}
		joined = next
	}
	return joined, nil
}

// Repeat ligates n copies of d end to end. Zero or fewer copies is empty
func (d Dseq) Repeat(n int) (Dseq, error) {
	if n <= 0 {
		return Dseq{}, nil
	}

	repeated := d
	for i := 1; i < n; i++ {
		next, err := repeated.Add(d)
		if err != nil {
			return Dseq{}, err
		}
		repeated = next
	}
	return repeated, nil
}

// Loop circularizes a linear molecule whose ends are compatible. A circular
// molecule is returned as is
func (d Dseq) Loop() (Dseq, error) {
	if d.circular {
		return d, nil
	}

	five, three := d.FivePrimeEnd(), d.ThreePrimeEnd()
	if !five.Compatible(three) {
		return Dseq{}, fmt.Errorf("%s end %q does not ligate to %s end %q: %w",
			five.Protrusion(), five.Sticky, three.Protrusion(), three.Sticky, ErrIncompatibleEnds)
	}

	crick := d.crick
	if len(crick) > 0 {
		k := mod(-d.ovhg, len(crick))
		crick = crick[k:] + crick[:k]
	}
	return Quick(d.watson, crick, 0, true, 0), nil
}
