// Package cmd is for command line interactions with the dseq application
package cmd

import (
	"log"
	"os"

	"github.com/jjtimmons/dseq/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "dseq",
	Short: `Cut, ligate and treat double-stranded DNA with sticky ends.
Sequences are given inline or in FASTA files`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// settings is an optional parameter for a settings file (that overrides config.SettingsFile)
	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (default is ~/.dseq/config.yaml)")
	rootCmd.PersistentFlags().String("enzyme-db", "", "path to the enzyme database (default is ~/.dseq/enzymes.db)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")

	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("enzyme-db", rootCmd.PersistentFlags().Lookup("enzyme-db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the settings file and environment
func initConfig() {
	if err := config.Setup(viper.GetString("settings")); err != nil {
		stderr.Fatal(err)
	}
}

// verbose logs to stderr if the user asked for it
func verbose(c *config.Config, format string, v ...interface{}) {
	if c.Verbose {
		stderr.Printf(format, v...)
	}
}
