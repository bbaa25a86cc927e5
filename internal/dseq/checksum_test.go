package dseq

import (
	"strings"
	"testing"
)

func TestDseq_Seguid(t *testing.T) {
	tests := []struct {
		name       string
		d          Dseq
		wantPrefix string
	}{
		{"blunt", FromString("acgtgcat"), "ldseguid="},
		{"5' overhang", strands(t, "agt", "actta", -2), "ldseguid="},
		{"3' overhang", strands(t, "acgtgcat", "atgcacgttt", 2), "ldseguid="},
		{"circular", circle("ggatccaaagaattcaaa"), "cdseguid="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.Seguid()
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("Seguid() = %s, want prefix %s", got, tt.wantPrefix)
			}

			rc, err := tt.d.ReverseComplement().Seguid()
			if err != nil {
				t.Fatal(err)
			}
			if rc != got {
				t.Errorf("Seguid() of reverse complement = %s, want %s", rc, got)
			}

			upper, err := tt.d.Upper().Seguid()
			if err != nil {
				t.Fatal(err)
			}
			if upper != got {
				t.Errorf("Seguid() of upper case = %s, want %s", upper, got)
			}
		})
	}
}

func TestDseq_Seguid_rotation(t *testing.T) {
	d := circle("ggatccaaagaattcaaa")
	want, err := d.Seguid()
	if err != nil {
		t.Fatal(err)
	}

	for shift := 1; shift < d.Len(); shift++ {
		rotated, err := d.Shifted(shift)
		if err != nil {
			t.Fatal(err)
		}
		if got, err := rotated.Seguid(); err != nil || got != want {
			t.Errorf("Seguid() shifted by %d = %s, %v, want %s", shift, got, err, want)
		}
	}

	linear, err := FromString("ggatccaaagaattcaaa").Seguid()
	if err != nil {
		t.Fatal(err)
	}
	if linear == want {
		t.Errorf("linear and circular molecules share Seguid() %s", want)
	}
}

func TestDseq_Seqhash(t *testing.T) {
	lower, err := FromString("acgtgcatgatc").Seqhash()
	if err != nil {
		t.Fatal(err)
	}
	if lower == "" {
		t.Fatal("Seqhash() is empty")
	}

	upper, err := FromString("ACGTGCATGATC").Seqhash()
	if err != nil {
		t.Fatal(err)
	}
	if upper != lower {
		t.Errorf("Seqhash() upper = %s, lower = %s", upper, lower)
	}

	circular, err := circle("acgtgcatgatc").Seqhash()
	if err != nil {
		t.Fatal(err)
	}
	if circular == lower {
		t.Errorf("linear and circular molecules share Seqhash() %s", lower)
	}
}
