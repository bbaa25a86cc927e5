package cmd

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/dseq/config"
	"github.com/spf13/cobra"
)

// deleteCmd is the parent of commands that remove from the enzyme database
var deleteCmd = &cobra.Command{
	Use:                        "delete [enzyme]",
	Short:                      "Delete an enzyme",
	SuggestionsMinimumDistance: 2,
	Long:                       `Delete an enzyme by name.`,
	Aliases:                    []string{"rm", "remove"},
}

// enzymeDeleteCmd is for deleting enzymes from the enzyme db
var enzymeDeleteCmd = &cobra.Command{
	Use:                        "enzyme [name]",
	Short:                      "Delete an enzyme from the enzyme database",
	RunE:                       enzymeDeleteExec,
	Args:                       cobra.MinimumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  dseq delete enzyme BamHI",
	Long: `Delete an enzyme from the enzyme database by its name.
If no such enzyme name exists in the database, an error is returned.`,
}

func enzymeDeleteExec(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	db, err := openDB(config.New())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s from the enzyme database\n", name)
	return nil
}

func init() {
	deleteCmd.AddCommand(enzymeDeleteCmd)

	rootCmd.AddCommand(deleteCmd)
}
