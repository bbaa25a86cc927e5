package dseq

import (
	"errors"
	"testing"
)

func TestDseq_ReverseComplement(t *testing.T) {
	got := strands(t, "agt", "actta", -2).ReverseComplement()
	expect(t, got, "actta", "agt", -4, false)
	if got.String() != "acttact" {
		t.Errorf("ReverseComplement().String() = %s, want acttact", got.String())
	}

	molecules := []Dseq{
		FromString("acgt"),
		strands(t, "agt", "actta", -2),
		strands(t, "acgtgcat", "atgcacgttt", 2),
		strands(t, "acgtaa", "acgt", 0),
		circle("ggatccaaa"),
		{},
	}
	for _, p := range molecules {
		if got := p.ReverseComplement().ReverseComplement(); !got.Equal(p) {
			t.Errorf("ReverseComplement() twice = %q, want %q", got.Repr(), p.Repr())
		}
	}
}

func TestDseq_FillIn(t *testing.T) {
	tests := []struct {
		name        string
		d           Dseq
		nucleotides string
		wantWatson  string
		wantCrick   string
		wantOvhg    int
	}{
		{
			"5' overhang on the left",
			strands(t, "gatccnnngaattc", "gaattcnnng", -4),
			"",
			"gatccnnngaattc", "gaattcnnnggatc", 0,
		},
		{
			"5' overhang on the right",
			strands(t, "g", "gatcc", 0),
			"",
			"ggatc", "gatcc", 0,
		},
		{
			"stops at the first missing nucleotide",
			strands(t, "gatccnnngaattc", "gaattcnnng", -4),
			"g",
			"gatccnnngaattc", "gaattcnnngg", -3,
		},
		{
			"nucleotides in either case",
			strands(t, "gatccnnngaattc", "gaattcnnng", -4),
			"GA",
			"gatccnnngaattc", "gaattcnnngga", -2,
		},
		{
			"fill takes the case of the template",
			strands(t, "GATCcc", "gg", -4),
			"",
			"GATCcc", "ggGATC", 0,
		},
		{
			"3' overhangs are left alone",
			strands(t, "acgtgcat", "atgcacgttt", 2),
			"",
			"acgtgcat", "atgcacgttt", 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.FillIn(tt.nucleotides)
			if err != nil {
				t.Fatal(err)
			}
			expect(t, got, tt.wantWatson, tt.wantCrick, tt.wantOvhg, false)
		})
	}

	ring := circle("gatc")
	if got, err := ring.FillIn(""); err != nil || !got.Equal(ring) {
		t.Errorf("FillIn() of circular DNA = %q, %v", got.Repr(), err)
	}
}

func TestDseq_T4(t *testing.T) {
	tests := []struct {
		name        string
		d           Dseq
		nucleotides string
		wantWatson  string
		wantCrick   string
		wantOvhg    int
	}{
		{
			"every nucleotide, blunt",
			FromString("gatcgatc"),
			"",
			"gatcgatc", "gatcgatc", 0,
		},
		{
			"only t",
			FromString("gatcgatc"),
			"t",
			"gatcgat", "gatcgat", -1,
		},
		{
			"only a",
			FromString("gatcgatc"),
			"a",
			"gatcga", "gatcga", -2,
		},
		{
			"3' overhang removed",
			strands(t, "acgtgcat", "atgcacgttt", 2),
			"",
			"acgtgcat", "atgcacgt", 0,
		},
		{
			"5' overhang filled",
			strands(t, "gatccnnngaattc", "gaattcnnng", -4),
			"",
			"gatccnnngaattc", "gaattcnnnggatc", 0,
		},
		{
			"3' overhang on the right removed",
			strands(t, "acgtaa", "acgt", 0),
			"",
			"acgt", "acgt", 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.T4(tt.nucleotides)
			if err != nil {
				t.Fatal(err)
			}
			expect(t, got, tt.wantWatson, tt.wantCrick, tt.wantOvhg, false)
		})
	}
}

func TestDseq_Mung(t *testing.T) {
	tests := []struct {
		name string
		d    Dseq
		want string
	}{
		{"5' overhangs", strands(t, "caaa", "cttt", -1), "aaa"},
		{"BamHI and EcoRI ends", strands(t, "gatccnnngaattc", "gaattcnnng", -4), "cnnngaattc"},
		{"3' overhang", strands(t, "acgtgcat", "atgcacgttt", 2), "acgtgcat"},
		{"blunt", FromString("acgt"), "acgt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.d.Mung()
			if !got.Equal(FromString(tt.want)) {
				t.Errorf("Mung() = %q, want %s", got.Repr(), tt.want)
			}
			if !got.IsBlunt() {
				t.Errorf("Mung() = %q is not blunt", got.Repr())
			}
		})
	}
}

func TestDseq_Exo(t *testing.T) {
	d := FromString("gatcgatc")

	front, err := d.ExoFront(2)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, front, "tcgatc", "gatcgatc", 2, false)
	if front.Len() != 8 {
		t.Errorf("ExoFront().Len() = %d, want 8", front.Len())
	}

	end, err := d.ExoEnd(2)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, end, "gatcgatc", "tcgatc", 0, false)

	all, err := d.ExoFront(20)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, all, "", "gatcgatc", 8, false)

	if _, err := circle("gatc").ExoFront(1); !errors.Is(err, ErrTopology) {
		t.Errorf("ExoFront() of circular DNA error = %v, want %v", err, ErrTopology)
	}
	if _, err := d.ExoEnd(-1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("ExoEnd(-1) error = %v, want %v", err, ErrConfiguration)
	}
}
