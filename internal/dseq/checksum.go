package dseq

import (
	"strings"

	"github.com/bebop/poly/seqhash"
	"github.com/jjtimmons/dseq/internal/seguid"
)

// Seguid is the molecule's SEGUID checksum: ldseguid for linear molecules and
// cdseguid for circular ones. Both are the same for a molecule and its
// reverse complement, and cdseguid is the same for every rotation
func (d Dseq) Seguid() (string, error) {
	watson, crick := strings.ToUpper(d.watson), strings.ToUpper(d.crick)
	if d.circular {
		return seguid.CDSeguid(watson, crick)
	}
	return seguid.LDSeguid(watson, crick, d.ovhg)
}

// Seqhash is the poly seqhash of the collapsed sequence
func (d Dseq) Seqhash() (string, error) {
	return seqhash.Hash(strings.ToUpper(d.full), "DNA", d.circular, true)
}
