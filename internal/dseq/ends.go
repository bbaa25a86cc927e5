package dseq

import "strings"

// EndKind is the shape of one end of a linear molecule
type EndKind int

const (
	// Blunt ends have both strands finishing at the same position
	Blunt EndKind = iota

	// WatsonOverhang ends have watson sticking out past crick
	WatsonOverhang

	// CrickOverhang ends have crick sticking out past watson
	CrickOverhang
)

// String names the kind of end
func (k EndKind) String() string {
	switch k {
	case WatsonOverhang:
		return "watson"
	case CrickOverhang:
		return "crick"
	default:
		return "blunt"
	}
}

// End is one end of a molecule: its kind and the single-stranded bases that
// stick out, in lower case and read 5' to 3'
type End struct {
	Kind   EndKind
	Sticky string

	// five is true for the left end of the molecule
	five bool
}

// Protrusion is which strand end sticks out: "5'", "3'" or "blunt"
func (e End) Protrusion() string {
	switch {
	case e.Kind == Blunt:
		return "blunt"
	case (e.Kind == WatsonOverhang) == e.five:
		return "5'"
	default:
		return "3'"
	}
}

// Compatible reports whether two ends can be ligated. They have to protrude
// the same way with reverse-complementary sticky bases
func (e End) Compatible(other End) bool {
	return e.Protrusion() == other.Protrusion() && e.Sticky == rc(other.Sticky)
}

// FivePrimeEnd is the left end of the molecule, where watson has its 5' end
func (d Dseq) FivePrimeEnd() End {
	lw, lc := len(d.watson), len(d.crick)

	switch {
	case lw > 0 && lc == 0:
		return End{Kind: WatsonOverhang, Sticky: strings.ToLower(d.watson), five: true}
	case lw == 0 && lc > 0:
		return End{Kind: CrickOverhang, Sticky: strings.ToLower(d.crick), five: true}
	case d.ovhg < 0:
		return End{Kind: WatsonOverhang, Sticky: strings.ToLower(head(d.watson, -d.ovhg)), five: true}
	case d.ovhg > 0:
		return End{Kind: CrickOverhang, Sticky: strings.ToLower(tail(d.crick, d.ovhg)), five: true}
	default:
		return End{Kind: Blunt, five: true}
	}
}

// ThreePrimeEnd is the right end of the molecule, where watson has its 3' end
func (d Dseq) ThreePrimeEnd() End {
	lw, lc := len(d.watson), len(d.crick)
	wo := d.watsonOvhg()

	switch {
	case lw > 0 && lc == 0:
		return End{Kind: WatsonOverhang, Sticky: strings.ToLower(d.watson)}
	case lw == 0 && lc > 0:
		return End{Kind: CrickOverhang, Sticky: strings.ToLower(d.crick)}
	case wo < 0:
		return End{Kind: CrickOverhang, Sticky: strings.ToLower(head(d.crick, -wo))}
	case wo > 0:
		return End{Kind: WatsonOverhang, Sticky: strings.ToLower(tail(d.watson, wo))}
	default:
		return End{Kind: Blunt}
	}
}

// IsBlunt reports whether the molecule is linear and blunt at both ends
func (d Dseq) IsBlunt() bool {
	return !d.circular && d.ovhg == 0 && len(d.watson) == len(d.crick)
}

// watsonOvhg is how far the 3' end of watson reaches past the 5' end of crick
func (d Dseq) watsonOvhg() int {
	return len(d.watson) - len(d.crick) + d.ovhg
}

// head is up to the first n bytes of s
func head(s string, n int) string {
	return s[:min(max(n, 0), len(s))]
}

// tail is up to the last n bytes of s
func tail(s string, n int) string {
	return s[len(s)-min(max(n, 0), len(s)):]
}
