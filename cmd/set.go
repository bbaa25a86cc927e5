package cmd

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/dseq/config"
	"github.com/spf13/cobra"
)

// setCmd is the parent of commands that add to or update the enzyme database
var setCmd = &cobra.Command{
	Use:                        "set [enzyme]",
	Short:                      "Set an enzyme",
	SuggestionsMinimumDistance: 1,
	Long: `
Create/update an enzyme with its name and recognition-site.
Set enzymes can be passed to the --enzymes flag`,
	Aliases: []string{"add", "update"},
}

// enzymeSetCmd is for adding a new enzyme to the enzyme db
var enzymeSetCmd = &cobra.Command{
	Use:                        "enzyme [name] [recognition-site]",
	Short:                      "Add an enzyme to the enzyme database",
	RunE:                       enzymeSetExec,
	Args:                       cobra.MinimumNArgs(2),
	SuggestionsMinimumDistance: 2,
	Long: `
Set an enzyme in the enzyme database so it can be used with --enzymes.

The recognition site marks the watson cut with a '^' and the crick cut with a '_',
eg "G^GATC_C" for BamHI. Sites that cut outside themselves are written with the
distance to each cut after the site, eg "GGTCTC(1/5)" for BsaI.`,
	Example: "  dseq set enzyme BamHI G^GATC_C",
}

// enzymeSetExec sets an enzyme in the database. Names with spaces are allowed
func enzymeSetExec(cmd *cobra.Command, args []string) error {
	name := strings.Join(args[:len(args)-1], " ")
	site := args[len(args)-1]

	db, err := openDB(config.New())
	if err != nil {
		return err
	}
	defer db.Close()

	updated, err := db.Set(name, site)
	if err != nil {
		return err
	}

	if updated {
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s in the enzyme database\n", name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "added %s to the enzyme database\n", name)
	}
	return nil
}

func init() {
	setCmd.AddCommand(enzymeSetCmd)

	rootCmd.AddCommand(setCmd)
}
