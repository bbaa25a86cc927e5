package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jjtimmons/dseq/config"
	"github.com/jjtimmons/dseq/internal/enzyme"
	"github.com/spf13/cobra"
)

// enzymesCmd is for listing out the enzymes in the database. Useful for if the
// user doesn't know which enzymes are available or what their sites are
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List enzymes available for cutting",
	Long: `Lists out the enzymes in the enzyme database by name along with their recognition sequence.
With a name, only enzymes with a similar name are listed.

	<Name>	<Recognition sequence>`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    enzymesExec,
	Aliases: []string{"enzyme", "ls"},
	Example: "  dseq enzymes BsaI",
}

// importCmd is for adding enzymes from a REBASE file
var importCmd = &cobra.Command{
	Use:   "import [rebase-file]",
	Short: "Import enzymes from a REBASE file",
	Long: `Import enzymes from a REBASE file in withrefm format. Enzymes with a
name already in the database are overwritten.`,
	Args:    cobra.ExactArgs(1),
	RunE:    importExec,
	Example: "  dseq enzymes import withrefm.txt",
}

// enzymesExec prints the enzymes in the database, or those like args[0]
func enzymesExec(cmd *cobra.Command, args []string) error {
	db, err := openDB(config.New())
	if err != nil {
		return err
	}
	defer db.Close()

	var records []enzyme.Record
	if len(args) > 0 {
		if records, err = db.Find(args[0]); err == nil && len(records) == 0 {
			return fmt.Errorf("failed to find any enzymes for %s", args[0])
		}
	} else {
		records, err = db.List()
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Site)
	}
	return w.Flush()
}

// importExec adds the enzymes of a REBASE file to the database
func importExec(cmd *cobra.Command, args []string) error {
	c := config.New()
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.ImportRebase(args[0])
	if err != nil {
		return err
	}

	verbose(c, "imported %d enzymes from %s into %s", n, args[0], c.EnzymeDB)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d enzymes\n", n)
	return nil
}

func init() {
	enzymesCmd.AddCommand(importCmd)

	rootCmd.AddCommand(enzymesCmd)
}
