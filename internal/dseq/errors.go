package dseq

import "errors"

var (
	// ErrConfiguration is returned for malformed constructor arguments: an
	// ovhg without a crick strand, strands that do not pair where they overlap,
	// or trims that run past the end of a strand
	ErrConfiguration = errors.New("invalid strand configuration")

	// ErrAmbiguousAnnealing is returned when the stagger between two strands
	// has to be inferred and there is no single best way to anneal them
	ErrAmbiguousAnnealing = errors.New("ambiguous annealing")

	// ErrTopology is returned for an operation that is invalid for the
	// topology of the molecule (ligating circular DNA, bad slices)
	ErrTopology = errors.New("invalid topology")

	// ErrIncompatibleEnds is returned when ligation or circularization is
	// attempted on ends that do not pair
	ErrIncompatibleEnds = errors.New("incompatible ends")

	// ErrCutInOverhang is returned when an enzyme reports a cut that falls in a
	// single-stranded region of the molecule or that crosses a neighbouring cut
	ErrCutInOverhang = errors.New("cut inside a single-stranded region")
)
