package dseq

import (
	"fmt"
	"strings"
)

// Slice returns the part of the molecule between start and stop in the
// collapsed frame. It is SliceStep with a step of one
func (d Dseq) Slice(start, stop int) Dseq {
	s, _ := d.SliceStep(start, stop, 1)
	return s
}

// SliceStep returns every step'th position of the molecule from start up to
// stop. The result is always linear.
//
// Linear molecules are sliced like Go strings with negative indexes counting
// from the end, both strands are cut at the same coordinates and single
// stranded parts are kept.
//
// Circular molecules may be sliced across the origin: when start >= stop the
// slice runs from start to the end and on from the origin to stop. A stop of
// zero is the end of the molecule. A start or stop past the end is empty.
func (d Dseq) SliceStep(start, stop, step int) (Dseq, error) {
	if step < 1 {
		return Dseq{}, fmt.Errorf("slice step of %d: %w", step, ErrTopology)
	}

	if d.circular {
		return d.sliceCircular(start, stop, step), nil
	}
	return d.sliceLinear(start, stop, step), nil
}

// sliceLinear slices both strands in the collapsed frame. Where one strand is
// missing in the frame there are spaces, and the leading spaces left in each
// sliced strand give the new ovhg
func (d Dseq) sliceLinear(start, stop, step int) Dseq {
	length := d.Len()
	start, stop = bounds(start, stop, length)

	tail := len(d.crick) - d.ovhg - len(d.watson)
	top := pad(d.ovhg) + d.watson + pad(tail)
	bottom := pad(-d.ovhg) + reverse(d.crick) + pad(-tail)

	var sns, asn []byte
	for i := start; i < stop; i += step {
		sns = append(sns, top[i])
		asn = append(asn, bottom[i])
	}

	watsonLead, crickLead := leading(sns), leading(asn)
	ovhg := watsonLead
	if crickLead > watsonLead {
		ovhg = -crickLead
	}

	watson := strings.TrimSpace(string(sns))
	crick := reverse(strings.TrimSpace(string(asn)))
	return Quick(watson, crick, ovhg, false, 0)
}

// sliceCircular rotates the molecule to start and takes a linear slice
func (d Dseq) sliceCircular(start, stop, step int) Dseq {
	length := d.Len()
	if length == 0 {
		return Dseq{}
	}

	if stop == 0 {
		stop = length
	}
	if start < 0 {
		start = max(0, start+length)
	}
	if stop < 0 {
		stop = max(0, stop+length)
	}
	if start > length || stop > length {
		return Dseq{}
	}

	span := stop - start
	if start >= stop {
		span = length - start + stop
	}

	rotated := d.rotate(start)
	rotated.circular = false
	return rotated.sliceLinear(0, span, step)
}

// rotate moves the origin of a circular molecule to shift
func (d Dseq) rotate(shift int) Dseq {
	length := len(d.watson)
	if length == 0 {
		return d
	}

	shift = mod(shift, length)
	k := mod(length-shift, len(d.crick))
	watson := d.watson[shift:] + d.watson[:shift]
	crick := d.crick[k:] + d.crick[:k]
	return Quick(watson, crick, 0, d.circular, d.pos)
}

// Shifted moves the origin of a circular molecule to shift. Linear molecules
// are an ErrTopology
func (d Dseq) Shifted(shift int) (Dseq, error) {
	if !d.circular {
		return Dseq{}, fmt.Errorf("cannot shift the origin of linear DNA: %w", ErrTopology)
	}
	return d.rotate(shift), nil
}

// bounds resolves a slice's start and stop against length, negative indexes
// counting from the end
func bounds(start, stop, length int) (int, int) {
	resolve := func(i int) int {
		if i < 0 {
			return max(0, i+length)
		}
		return min(i, length)
	}

	start, stop = resolve(start), resolve(stop)
	if stop < start {
		stop = start
	}
	return start, stop
}

// pad is n spaces, or nothing when n isn't positive
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// leading counts the leading spaces in b
func leading(b []byte) (n int) {
	for n < len(b) && b[n] == ' ' {
		n++
	}
	return
}
