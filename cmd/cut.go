package cmd

import (
	"fmt"
	"io"

	"github.com/jjtimmons/dseq/config"
	"github.com/jjtimmons/dseq/internal/dseq"
	"github.com/spf13/cobra"
)

var enzymesHelp = `comma separated enzymes to cut with, eg "BamHI,EcoRI".
'dseq enzymes' prints a list of recognized enzymes.`

// cutCmd is for digesting sequences with restriction enzymes
var cutCmd = &cobra.Command{
	Use:   "cut [sequence]",
	Short: "Digest sequences with restriction enzymes",
	Long: `Digest sequences with restriction enzymes and print the fragments.

Fragments keep their sticky ends and are printed left to right with both strands.
A circular sequence cut once gives back a single linear fragment.`,
	RunE:    cutExec,
	Example: "  dseq cut --circular --enzymes BamHI,EcoRI GGATCCAAAGAATTCAAA",
}

func cutExec(cmd *cobra.Command, args []string) error {
	c := config.New()

	molecules, err := parseMolecules(cmd, args)
	if err != nil {
		return err
	}

	names, err := cmd.Flags().GetString("enzymes")
	if err != nil {
		return err
	}

	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	enzymes, err := parseEnzymes(db, names)
	if err != nil {
		return err
	}

	for _, m := range molecules {
		fragments, err := m.seq.Cut(enzymes...)
		if err != nil {
			return fmt.Errorf("failed to cut %s: %w", m.name, err)
		}
		verbose(c, "%s: %d sites, %d fragments", m.name, len(m.seq.CutSites(enzymes...)), len(fragments))
		writeFragments(cmd.OutOrStdout(), m.name, fragments)
	}
	return nil
}

// writeFragments writes the fragments of a digest, each under a header
func writeFragments(w io.Writer, name string, fragments []dseq.Dseq) {
	if len(fragments) == 0 {
		fmt.Fprintf(w, ">%s uncut\n", name)
		return
	}
	for i, f := range fragments {
		fmt.Fprintf(w, ">%s fragment %d (%d bp, %s %s)\n%s\n", name, i+1, f.Len(), f.FivePrimeEnd().Protrusion(), f.ThreePrimeEnd().Protrusion(), f.Repr())
	}
}

func init() {
	cutCmd.Flags().StringP("in", "i", "", "input FASTA with sequences to cut")
	cutCmd.Flags().StringP("enzymes", "e", "", enzymesHelp)
	cutCmd.Flags().BoolP("circular", "c", false, "whether the sequences are circular")
	cutCmd.MarkFlagRequired("enzymes")

	rootCmd.AddCommand(cutCmd)
}
