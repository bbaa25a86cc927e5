package enzyme

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	type args struct {
		name     string
		recogSeq string
	}
	tests := []struct {
		name        string
		args        args
		wantSite    string
		wantCutInd  int
		wantHangInd int
		wantOvhg    int
		wantString  string
		wantErr     bool
	}{
		{
			"BamHI, 5' overhang",
			args{"BamHI", "G^GATC_C"},
			"GGATCC", 1, 5, -4, "G^GATC_C", false,
		},
		{
			"KpnI, 3' overhang",
			args{"KpnI", "G_GTAC^C"},
			"GGTACC", 5, 1, 4, "G_GTAC^C", false,
		},
		{
			"only the watson cut",
			args{"BamHI", "g^gatcc"},
			"GGATCC", 1, 5, -4, "G^GATC_C", false,
		},
		{
			"blunt",
			args{"SmaI", "CCC^_GGG"},
			"CCCGGG", 3, 3, 0, "CCC^_GGG", false,
		},
		{
			"cut at the start of the site",
			args{"MboI", "^GATC_"},
			"GATC", 0, 4, -4, "^GATC_", false,
		},
		{
			"type IIS",
			args{"BsaI", "GGTCTC(1/5)"},
			"GGTCTC", 7, 11, -4, "GGTCTC(1/5)", false,
		},
		{
			"X is any base",
			args{"Xeno", "GX^XC"},
			"GNNC", 2, 2, 0, "GN^_NC", false,
		},
		{
			"no cut marks",
			args{"Bad", "GGATCC"},
			"", 0, 0, 0, "", true,
		},
		{
			"two watson cuts",
			args{"Bad", "G^GA^TCC"},
			"", 0, 0, 0, "", true,
		},
		{
			"invalid base",
			args{"Bad", "G^GAJC_C"},
			"", 0, 0, 0, "", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args.name, tt.args.recogSeq)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.Site() != tt.wantSite {
				t.Errorf("New().Site() = %s, want %s", got.Site(), tt.wantSite)
			}
			if got.cutInd != tt.wantCutInd || got.hangInd != tt.wantHangInd {
				t.Errorf("New() cutInd, hangInd = %d, %d, want %d, %d", got.cutInd, got.hangInd, tt.wantCutInd, tt.wantHangInd)
			}
			if got.Ovhg() != tt.wantOvhg {
				t.Errorf("New().Ovhg() = %d, want %d", got.Ovhg(), tt.wantOvhg)
			}
			if got.String() != tt.wantString {
				t.Errorf("New().String() = %s, want %s", got.String(), tt.wantString)
			}
		})
	}
}

func TestEnzyme_Palindromic(t *testing.T) {
	if !MustNew("BamHI", "G^GATC_C").Palindromic() {
		t.Error("BamHI should be palindromic")
	}
	if MustNew("BsaI", "GGTCTC(1/5)").Palindromic() {
		t.Error("BsaI should not be palindromic")
	}
}

func TestEnzyme_Search(t *testing.T) {
	type args struct {
		seq      string
		circular bool
	}
	tests := []struct {
		name string
		enz  Enzyme
		args args
		want []int
	}{
		{
			"BamHI in a linear sequence",
			MustNew("BamHI", "G^GATC_C"),
			args{"ggatccnnngaattc", false},
			[]int{2},
		},
		{
			"EcoRI in a linear sequence",
			MustNew("EcoRI", "G^AATT_C"),
			args{"ggatccnnngaattc", false},
			[]int{11},
		},
		{
			"two sites",
			MustNew("EcoRI", "G^AATT_C"),
			args{"GAATTCAAAAGAATTCAA", false},
			[]int{2, 12},
		},
		{
			"no site",
			MustNew("EcoRI", "G^AATT_C"),
			args{"ACGTACGTACGT", false},
			[]int{},
		},
		{
			"N in the sequence never matches",
			MustNew("BamHI", "G^GATC_C"),
			args{"AAGGANCCAA", false},
			[]int{},
		},
		{
			"site across the origin of a linear sequence",
			MustNew("EcoRI", "G^AATT_C"),
			args{"AATTCTTTTG", false},
			[]int{},
		},
		{
			"site across the origin of a circular sequence",
			MustNew("EcoRI", "G^AATT_C"),
			args{"AATTCTTTTG", true},
			[]int{1},
		},
		{
			"cut after the origin of a circular sequence",
			MustNew("EcoRI", "G^AATT_C"),
			args{"ATTCTTTTGA", true},
			[]int{10},
		},
		{
			"type IIS on watson",
			MustNew("BsaI", "GGTCTC(1/5)"),
			args{"aaaGGTCTCaaaaaaaaaa", false},
			[]int{11},
		},
		{
			"type IIS on crick",
			MustNew("BsaI", "GGTCTC(1/5)"),
			args{"aaaaaaaaaGAGACCaaa", false},
			[]int{5},
		},
		{
			"type IIS cut off the end of a linear sequence",
			MustNew("BsaI", "GGTCTC(1/5)"),
			args{"aaaGGTCTCaaa", false},
			[]int{},
		},
		{
			"ambiguous site",
			MustNew("BstYI", "R^GATC_Y"),
			args{"AGGATCTTTGGATCCTTT", false},
			[]int{3, 11},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enz.Search(tt.args.seq, tt.args.circular); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_matches(t *testing.T) {
	site := compile("GRN")
	tests := []struct {
		window string
		want   bool
	}{
		{"GAT", true},
		{"GGC", true},
		{"gac", true},
		{"GCT", false},
		{"GRT", true},
		{"GNT", false},
		{"GAN", false},
	}
	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			if got := matches(site, tt.window); got != tt.want {
				t.Errorf("matches(GRN, %s) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func Test_ld(t *testing.T) {
	type args struct {
		s          string
		t          string
		ignoreCase bool
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"kitten", args{"kitten", "sitting", false}, 3},
		{"ignore case", args{"BamHI", "bamhi", true}, 0},
		{"case matters", args{"BamHI", "bamhi", false}, 3},
		{"empty", args{"", "abc", false}, 3},
		{"same", args{"EcoRI", "EcoRI", false}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ld(tt.args.s, tt.args.t, tt.args.ignoreCase); got != tt.want {
				t.Errorf("ld() = %v, want %v", got, tt.want)
			}
		})
	}
}
