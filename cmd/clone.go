package cmd

import (
	"fmt"

	"github.com/jjtimmons/dseq/config"
	"github.com/jjtimmons/dseq/internal/dseq"
	"github.com/spf13/cobra"
)

// cloneCmd is for restriction cloning an insert into a backbone
var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone an insert into a backbone by restriction and ligation",
	Long: `Clone an insert into a backbone by restriction and ligation.

The backbone and insert are cut with the same enzymes. The largest backbone
fragment is ligated with each insert fragment, in both orientations, and every
product whose ends are compatible is closed into a circle. With --fill, 5'
overhangs are filled in first so that the ends ligate blunt.`,
	RunE:    cloneExec,
	Example: "  dseq clone --backbone pUC19.fa --insert insert.fa --enzymes BamHI,EcoRI",
}

func cloneExec(cmd *cobra.Command, args []string) error {
	c := config.New()

	backbonePath, _ := cmd.Flags().GetString("backbone")
	insertPath, _ := cmd.Flags().GetString("insert")
	names, _ := cmd.Flags().GetString("enzymes")
	fill, _ := cmd.Flags().GetBool("fill")

	backbones, err := readMolecules(backbonePath, nil, true)
	if err != nil {
		return err
	}
	inserts, err := readMolecules(insertPath, nil, false)
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

	nucleotides := ""
	if fill {
		nucleotides = c.Nucleotides
	}

	products, err := restrictionClone(backbones[0].seq, inserts[0].seq, enzymes, fill, nucleotides)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no product of %s and %s has compatible ends", backbones[0].name, inserts[0].name)
	}

	verbose(c, "%d products of %s and %s", len(products), backbones[0].name, inserts[0].name)
	for i, p := range products {
		id, err := p.Seguid()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), ">product_%d %s (circular)\n%s\n", i+1, id, p.Watson())
	}
	return nil
}

// restrictionClone cuts the backbone and insert with the enzymes, ligates the
// largest backbone fragment to each insert fragment in both orientations and
// closes the results into circles. A linear insert without sites is used
// whole. Products are unique by their checksum
func restrictionClone(backbone, insert dseq.Dseq, enzymes []dseq.Enzyme, fill bool, nucleotides string) ([]dseq.Dseq, error) {
	backboneFragments, err := backbone.Cut(enzymes...)
	if err != nil {
		return nil, fmt.Errorf("failed to cut the backbone: %w", err)
	}
	if len(backboneFragments) == 0 {
		return nil, fmt.Errorf("no enzyme cuts the backbone")
	}

	insertFragments, err := insert.Cut(enzymes...)
	if err != nil {
		return nil, fmt.Errorf("failed to cut the insert: %w", err)
	}
	if len(insertFragments) == 0 {
		if insert.Circular() {
			return nil, fmt.Errorf("no enzyme cuts the insert")
		}
		insertFragments = []dseq.Dseq{insert}
	}

	vector := backboneFragments[0]
	for _, f := range backboneFragments[1:] {
		if f.Len() > vector.Len() {
			vector = f
		}
	}

	if fill {
		if vector, err = vector.FillIn(nucleotides); err != nil {
			return nil, err
		}
		for i, f := range insertFragments {
			if insertFragments[i], err = f.FillIn(nucleotides); err != nil {
				return nil, err
			}
		}
	}

	var products []dseq.Dseq
	seen := make(map[string]bool)
	for _, f := range insertFragments {
		for _, oriented := range []dseq.Dseq{f, f.ReverseComplement()} {
			linear, err := dseq.Ligate(vector, oriented)
			if err != nil {
				continue
			}
			product, err := linear.Loop()
			if err != nil {
				continue
			}

			id, err := product.Seguid()
			if err != nil {
				return nil, err
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			products = append(products, product)
		}
	}
	return products, nil
}

func init() {
	cloneCmd.Flags().StringP("backbone", "b", "", "FASTA with the circular backbone")
	cloneCmd.Flags().StringP("insert", "n", "", "FASTA with the insert")
	cloneCmd.Flags().StringP("enzymes", "e", "", enzymesHelp)
	cloneCmd.Flags().BoolP("fill", "f", false, "fill in 5' overhangs before ligation")
	cloneCmd.MarkFlagRequired("backbone")
	cloneCmd.MarkFlagRequired("insert")
	cloneCmd.MarkFlagRequired("enzymes")

	rootCmd.AddCommand(cloneCmd)
}
