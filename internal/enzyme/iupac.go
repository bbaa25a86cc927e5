package enzyme

// bases are bit masks: A=1, C=2, G=4, T=8
const (
	bitA uint8 = 1 << iota
	bitC
	bitG
	bitT
)

// siteMasks are the bases each IUPAC code in a recognition site allows
var siteMasks = map[rune]uint8{
	'A': bitA,
	'C': bitC,
	'G': bitG,
	'T': bitT,
	'U': bitT,
	'M': bitA | bitC,
	'R': bitA | bitG,
	'W': bitA | bitT,
	'Y': bitC | bitT,
	'S': bitC | bitG,
	'K': bitG | bitT,
	'H': bitA | bitC | bitT,
	'D': bitA | bitG | bitT,
	'V': bitA | bitC | bitG,
	'B': bitC | bitG | bitT,
	'N': bitA | bitC | bitG | bitT,
	'X': bitA | bitC | bitG | bitT,
}

// seqMasks are the bases a position in the searched sequence may be. N and
// anything unknown are zero and never match a site
var seqMasks = func() (table [256]uint8) {
	for code, mask := range siteMasks {
		if code == 'N' || code == 'X' {
			continue
		}
		table[code] = mask
		table[code+'a'-'A'] = mask
	}
	return
}()

// compile turns a recognition site into masks
func compile(site string) []uint8 {
	masks := make([]uint8, len(site))
	for i, r := range site {
		masks[i] = siteMasks[r]
	}
	return masks
}

// matches reports whether every base of window is allowed by the site. An
// ambiguous base in window only matches if each base it may be is allowed
func matches(site []uint8, window string) bool {
	for i := range site {
		b := seqMasks[window[i]]
		if b == 0 || b&^site[i] != 0 {
			return false
		}
	}
	return true
}
