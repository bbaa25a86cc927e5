package dseq

import "fmt"

// ReverseComplement swaps the strands, turning the molecule around
func (d Dseq) ReverseComplement() Dseq {
	return Quick(d.crick, d.watson, d.watsonOvhg(), d.circular, 0)
}

// FillIn extends recessed 3' ends along their 5' overhang templates, as a
// polymerase like Klenow does. Only the bases in nucleotides are added and
// the fill stops at the first template base whose complement isn't available.
// An empty nucleotides is every IUPAC base. Circular molecules have no ends
// and come back unchanged
func (d Dseq) FillIn(nucleotides string) (Dseq, error) {
	if d.circular {
		return d, nil
	}

	set := newNucleotideSet(nucleotides)
	crick, ovhg := d.fillFivePrime(set)
	watson := d.fillThreePrime(set)
	return New(watson, WithCrick(crick), WithOvhg(ovhg))
}

// fillFivePrime extends crick's 3' end under a watson 5' overhang
func (d Dseq) fillFivePrime(set nucleotideSet) (string, int) {
	end := d.FivePrimeEnd()
	if end.Protrusion() != "5'" {
		return d.crick, d.ovhg
	}

	ovhg := d.ovhg
	if d.crick == "" {
		ovhg = -len(d.watson)
	}

	stuffer := extend(d.watson[:len(end.Sticky)], set)
	return d.crick + stuffer, ovhg + len(stuffer)
}

// fillThreePrime extends watson's 3' end under a crick 5' overhang
func (d Dseq) fillThreePrime(set nucleotideSet) string {
	end := d.ThreePrimeEnd()
	if end.Protrusion() != "5'" {
		return d.watson
	}
	return d.watson + extend(d.crick[:len(end.Sticky)], set)
}

// extend is the complement of template, read from its 3' end, for as long as
// the bases are in set
func extend(template string, set nucleotideSet) string {
	bases := rc(template)
	for i := 0; i < len(bases); i++ {
		if !set[bases[i]] {
			return bases[:i]
		}
	}
	return bases
}

// T4 is T4 DNA polymerase with the nucleotides in the reaction. 5' overhangs
// are filled in and 3' overhangs removed, then the 3' ends are chewed back
// until the last base is one of nucleotides. Circular molecules come back
// unchanged
func (d Dseq) T4(nucleotides string) (Dseq, error) {
	if d.circular {
		return d, nil
	}

	set := newNucleotideSet(nucleotides)

	crick, ovhg := d.crick, d.ovhg
	switch five := d.FivePrimeEnd(); five.Protrusion() {
	case "5'":
		crick, ovhg = d.fillFivePrime(set)
	case "3'":
		crick, ovhg = d.crick[:len(d.crick)-len(five.Sticky)], 0
	}

	chewed := len(crick) - (lastIn(crick, set) + 1)
	crick = crick[:len(crick)-chewed]
	ovhg -= chewed
	if crick == "" {
		ovhg = 0
	}

	watson := d.watson
	switch three := d.ThreePrimeEnd(); three.Protrusion() {
	case "5'":
		watson = d.fillThreePrime(set)
	case "3'":
		watson = d.watson[:len(d.watson)-len(three.Sticky)]
	}
	watson = watson[:lastIn(watson, set)+1]

	return New(watson, WithCrick(crick), WithOvhg(ovhg))
}

// lastIn is the index of the last base of s in set, or -1
func lastIn(s string, set nucleotideSet) int {
	for i := len(s) - 1; i >= 0; i-- {
		if set[s[i]] {
			return i
		}
	}
	return -1
}

// Mung is mung bean nuclease: both single-stranded ends are removed, leaving
// the blunt double-stranded core. Circular molecules come back unchanged
func (d Dseq) Mung() Dseq {
	if d.circular {
		return d
	}

	start := max(0, -d.ovhg)
	end := min(len(d.watson), len(d.crick)-d.ovhg)
	if end <= start {
		return Dseq{}
	}
	return FromString(d.watson[start:end])
}

// ExoFront removes n bases from the 5' end of watson, like a 5'->3'
// exonuclease working on the left end
func (d Dseq) ExoFront(n int) (Dseq, error) {
	if err := d.checkExo(n); err != nil {
		return Dseq{}, err
	}

	n = min(n, len(d.watson))
	return Quick(d.watson[n:], d.crick, d.ovhg+n, false, d.pos), nil
}

// ExoEnd removes n bases from the 5' end of crick, like a 5'->3' exonuclease
// working on the right end
func (d Dseq) ExoEnd(n int) (Dseq, error) {
	if err := d.checkExo(n); err != nil {
		return Dseq{}, err
	}

	n = min(n, len(d.crick))
	return Quick(d.watson, d.crick[n:], d.ovhg, false, d.pos), nil
}

// checkExo validates the arguments to an exonuclease
func (d Dseq) checkExo(n int) error {
	if d.circular {
		return fmt.Errorf("exonucleases need a free end: %w", ErrTopology)
	}
	if n < 0 {
		return fmt.Errorf("cannot remove %d bases: %w", n, ErrConfiguration)
	}
	return nil
}
