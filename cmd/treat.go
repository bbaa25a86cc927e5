package cmd

import (
	"fmt"

	"github.com/jjtimmons/dseq/config"
	"github.com/jjtimmons/dseq/internal/dseq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// treatCmd is for modifying the ends of sequences with enzymes
var treatCmd = &cobra.Command{
	Use:   "treat [fill-in,t4,mung] [sequence]",
	Short: "Treat the ends of sequences with a polymerase or nuclease",
	Long: `Treat the ends of sequences with a polymerase or nuclease and print the result.

  fill-in   fill 5' overhangs (Klenow)
  t4        fill 5' overhangs and chew back 3' overhangs (T4 DNA polymerase)
  mung      remove single-stranded overhangs (mung bean nuclease)

Polymerases only add the nucleotides in --nucleotides, all of them by default.
Pass --crick to give the bottom strand of a sequence with sticky ends, it's
annealed to the watson strand.`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    treatExec,
	Example: "  dseq treat t4 --nucleotides gat GATCCAAAG --crick CTTTG",
}

func treatExec(cmd *cobra.Command, args []string) error {
	c := config.New()

	crick, err := cmd.Flags().GetString("crick")
	if err != nil {
		return err
	}

	var molecules []molecule
	if crick != "" {
		if len(args) != 2 {
			return fmt.Errorf("expecting one watson strand with --crick, got %d", len(args)-1)
		}
		d, err := dseq.FromStrands(args[1], crick)
		if err != nil {
			return err
		}
		molecules = append(molecules, molecule{name: "seq1", seq: d})
	} else if molecules, err = parseMolecules(cmd, args[1:]); err != nil {
		return err
	}

	for _, m := range molecules {
		treated, err := treat(m.seq, args[0], c.Nucleotides)
		if err != nil {
			return fmt.Errorf("failed to treat %s: %w", m.name, err)
		}
		verbose(c, "%s: %d bp to %d bp", m.name, m.seq.Len(), treated.Len())
		fmt.Fprintf(cmd.OutOrStdout(), ">%s %s\n%s\n", m.name, args[0], treated.Repr())
	}
	return nil
}

// treat applies the named enzyme treatment to d
func treat(d dseq.Dseq, treatment, nucleotides string) (dseq.Dseq, error) {
	switch treatment {
	case "fill-in", "fill", "klenow":
		return d.FillIn(nucleotides)
	case "t4":
		return d.T4(nucleotides)
	case "mung":
		return d.Mung(), nil
	default:
		return dseq.Dseq{}, fmt.Errorf("unknown treatment %q, expecting fill-in, t4 or mung", treatment)
	}
}

func init() {
	treatCmd.Flags().StringP("in", "i", "", "input FASTA with sequences to treat")
	treatCmd.Flags().BoolP("circular", "c", false, "whether the sequences are circular")
	treatCmd.Flags().String("crick", "", "bottom strand (5' to 3') of the sequence")
	treatCmd.Flags().StringP("nucleotides", "n", "", "nucleotides available to the polymerase, eg \"gatc\"")

	viper.BindPFlag("nucleotides", treatCmd.Flags().Lookup("nucleotides"))

	rootCmd.AddCommand(treatCmd)
}
