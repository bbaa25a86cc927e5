// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// dseqDir is the root directory for dseq settings and the enzyme database
	dseqDir = filepath.Join(home(), ".dseq")

	// EnzymeDB is the default path to the enzyme database
	EnzymeDB = filepath.Join(dseqDir, "enzymes.db")

	// SettingsFile is the default settings file. It's optional
	SettingsFile = filepath.Join(dseqDir, "config.yaml")
)

// Config is the root-level settings struct and is a mix
// of settings available in the settings file, DSEQ_ environment
// variables and those available from the command line
type Config struct {
	// path to the enzyme database
	EnzymeDB string `mapstructure:"enzyme-db"`

	// nucleotides available to polymerases during fill-in and T4 treatment.
	// Empty means all of them
	Nucleotides string `mapstructure:"nucleotides"`

	// whether to log what's happening to stderr
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
func New() *Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		stderr.Fatalf("unable to decode into struct, %v", err)
	}

	if c.EnzymeDB == "" {
		c.EnzymeDB = EnzymeDB
	}
	return &c
}

// Setup points Viper at the settings file and the DSEQ_ environment. A
// missing default settings file is fine, a missing explicit one is not
func Setup(settings string) error {
	viper.SetEnvPrefix("dseq")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("enzyme-db", EnzymeDB)
	viper.SetDefault("nucleotides", "")
	viper.SetDefault("verbose", false)

	if settings == "" {
		if _, err := os.Stat(SettingsFile); err != nil {
			return nil
		}
		settings = SettingsFile
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings from %s: %v", settings, err)
	}
	return nil
}

// home is the user's home directory, or the working directory without one
func home() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}
