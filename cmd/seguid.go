package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// seguidCmd is for printing the checksums of sequences
var seguidCmd = &cobra.Command{
	Use:   "seguid [sequence]",
	Short: "Print the checksums of sequences",
	Long: `Print the SEGUID and seqhash checksums of sequences.

SEGUID checksums are the same for a molecule and its reverse complement and,
for circular molecules, for every rotation.`,
	RunE:    seguidExec,
	Aliases: []string{"checksum"},
	Example: "  dseq seguid --circular GGATCCAAAGAATTCAAA",
}

func seguidExec(cmd *cobra.Command, args []string) error {
	molecules, err := parseMolecules(cmd, args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, m := range molecules {
		id, err := m.seq.Seguid()
		if err != nil {
			return fmt.Errorf("failed to checksum %s: %w", m.name, err)
		}
		hash, err := m.seq.Seqhash()
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", m.name, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.name, id, hash)
	}
	return w.Flush()
}

func init() {
	seguidCmd.Flags().StringP("in", "i", "", "input FASTA with sequences")
	seguidCmd.Flags().BoolP("circular", "c", false, "whether the sequences are circular")

	rootCmd.AddCommand(seguidCmd)
}
