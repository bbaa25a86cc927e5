package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// writeSettings writes a settings file to a temporary directory
func writeSettings(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		env      map[string]string
		want     Config
	}{
		{
			"settings file",
			"enzyme-db: /tmp/enzymes.db\nnucleotides: gatc\nverbose: true\n",
			nil,
			Config{EnzymeDB: "/tmp/enzymes.db", Nucleotides: "gatc", Verbose: true},
		},
		{
			"defaults",
			"verbose: false\n",
			nil,
			Config{EnzymeDB: EnzymeDB},
		},
		{
			"environment over the settings file",
			"enzyme-db: /tmp/enzymes.db\nnucleotides: gatc\n",
			map[string]string{"DSEQ_ENZYME_DB": "/env/enzymes.db", "DSEQ_NUCLEOTIDES": "ga"},
			Config{EnzymeDB: "/env/enzymes.db", Nucleotides: "ga"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if err := Setup(writeSettings(t, tt.settings)); err != nil {
				t.Fatal(err)
			}
			if got := New(); *got != tt.want {
				t.Errorf("New() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestSetup_missing(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if err := Setup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Setup() of a missing settings file should fail")
	}
}
