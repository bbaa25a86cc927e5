package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bebop/poly/io/fasta"
	"github.com/jjtimmons/dseq/config"
	"github.com/jjtimmons/dseq/internal/dseq"
	"github.com/jjtimmons/dseq/internal/enzyme"
	"github.com/spf13/cobra"
)

// molecule is a named molecule read from the command line or a FASTA file
type molecule struct {
	name string
	seq  dseq.Dseq
}

// isCircular is whether a FASTA header marks its sequence as circular
func isCircular(header string) bool {
	header = strings.ToLower(header)
	return strings.Contains(header, "(circular)") || strings.Contains(header, " circular")
}

// readMolecules gathers molecules from a FASTA file and raw sequences.
// Sequences given inline are circular if circular is set, those in the FASTA
// file are circular if circular is set or their header says so
func readMolecules(in string, args []string, circular bool) ([]molecule, error) {
	var molecules []molecule

	if in != "" {
		entries, err := fasta.Read(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", in, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("no sequences in %s", in)
		}

		for _, e := range entries {
			name := strings.TrimSpace(e.Name)
			seq, err := dseq.New(e.Sequence, dseq.WithCircular(circular || isCircular(name)))
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %v", name, err)
			}
			if fields := strings.Fields(name); len(fields) > 0 {
				name = fields[0]
			} else {
				name = fmt.Sprintf("seq%d", len(molecules)+1)
			}
			molecules = append(molecules, molecule{name: name, seq: seq})
		}
	}

	for i, arg := range args {
		arg = strings.Join(strings.Fields(arg), "")
		seq, err := dseq.New(arg, dseq.WithCircular(circular))
		if err != nil {
			return nil, fmt.Errorf("failed to parse sequence %d: %v", i+1, err)
		}
		molecules = append(molecules, molecule{name: fmt.Sprintf("seq%d", i+1), seq: seq})
	}

	if len(molecules) == 0 {
		return nil, fmt.Errorf("no sequences, pass one as an argument or a FASTA file with --in")
	}
	return molecules, nil
}

// parseMolecules reads the --in and --circular flags of a command along with
// its arguments
func parseMolecules(cmd *cobra.Command, args []string) ([]molecule, error) {
	in, err := cmd.Flags().GetString("in")
	if err != nil {
		return nil, err
	}
	circular, err := cmd.Flags().GetBool("circular")
	if err != nil {
		return nil, err
	}
	return readMolecules(in, args, circular)
}

// openDB opens the enzyme database in the settings, making its directory
func openDB(c *config.Config) (*enzyme.DB, error) {
	if err := os.MkdirAll(filepath.Dir(c.EnzymeDB), 0755); err != nil {
		return nil, fmt.Errorf("failed to make a directory for the enzyme database: %v", err)
	}
	return enzyme.Open(c.EnzymeDB)
}

// parseEnzymes gets the comma separated enzymes from the database
func parseEnzymes(db *enzyme.DB, names string) ([]dseq.Enzyme, error) {
	var split []string
	for _, n := range strings.Split(names, ",") {
		if n = strings.TrimSpace(n); n != "" {
			split = append(split, n)
		}
	}
	if len(split) == 0 {
		return nil, fmt.Errorf("no enzymes, see 'dseq enzymes'")
	}

	found, err := db.GetAll(split)
	if err != nil {
		return nil, err
	}

	enzymes := make([]dseq.Enzyme, 0, len(found))
	for _, e := range found {
		enzymes = append(enzymes, e)
	}
	return enzymes, nil
}
