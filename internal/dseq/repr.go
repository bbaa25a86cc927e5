package dseq

import (
	"fmt"
	"strings"
)

// Repr draws the molecule on three lines: a header with the topology and
// length, watson 5'->3', and crick 3'->5' under the bases it pairs with
//
//	Dseq(-7)
//	catcgat
//	 tagctag
func (d Dseq) Repr() string {
	topology := "-"
	if d.circular {
		topology = "o"
	}

	return fmt.Sprintf("Dseq(%s%d)\n%s%s\n%s%s", topology, d.Len(), pad(d.ovhg), d.watson, pad(-d.ovhg), reverse(d.crick))
}

// FromRepresentation parses the two strand lines drawn by Repr. The header
// line is optional and the watson line may be indented to show a crick 3'
// overhang
func FromRepresentation(repr string) (Dseq, error) {
	var lines []string
	for _, line := range strings.Split(repr, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	circular := false
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "Dseq(") {
		circular = strings.HasPrefix(strings.TrimSpace(lines[0]), "Dseq(o")
		lines = lines[1:]
	}

	if len(lines) < 2 {
		return Dseq{}, fmt.Errorf("expected a watson and a crick line, found %d: %w", len(lines), ErrConfiguration)
	}

	top, bottom := lines[0], lines[1]
	ovhg := leading([]byte(top)) - leading([]byte(bottom))
	watson := strings.TrimSpace(top)
	crick := reverse(strings.TrimSpace(bottom))

	return New(watson, WithCrick(crick), WithOvhg(ovhg), WithCircular(circular))
}
