package dseq

import (
	"errors"
	"testing"
)

func TestDseq_Add(t *testing.T) {
	left := strands(t, "g", "gatcc", 0)
	right := strands(t, "gatccnnngaattc", "gaattcnnng", -4)

	tests := []struct {
		name       string
		a          Dseq
		b          Dseq
		wantWatson string
		wantCrick  string
		wantOvhg   int
		wantErr    error
	}{
		{
			"blunt",
			FromString("aaa"),
			FromString("ccc"),
			"aaaccc", "gggttt", 0, nil,
		},
		{
			"sticky",
			left,
			right,
			"ggatccnnngaattc", "gaattcnnnggatcc", 0, nil,
		},
		{
			"empty on the right",
			right,
			Dseq{},
			"gatccnnngaattc", "gaattcnnng", -4, nil,
		},
		{
			"empty on the left",
			Dseq{},
			right,
			"gatccnnngaattc", "gaattcnnng", -4, nil,
		},
		{
			"sticky and blunt",
			left,
			FromString("aaa"),
			"", "", 0, ErrIncompatibleEnds,
		},
		{
			"blunt and sticky",
			FromString("aaa"),
			right,
			"", "", 0, ErrIncompatibleEnds,
		},
		{
			"circular",
			circle("aaa"),
			FromString("aaa"),
			"", "", 0, ErrTopology,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Add(tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			expect(t, got, tt.wantWatson, tt.wantCrick, tt.wantOvhg, false)
		})
	}
}

func TestDseq_Add_identity(t *testing.T) {
	for _, p := range []Dseq{FromString("acgt"), strands(t, "agt", "actta", -2), strands(t, "acgtgcat", "atgcacgttt", 2)} {
		empty := FromString("")

		got, err := p.Add(empty)
		if err != nil || !got.Equal(p) {
			t.Errorf("%q + empty = %q, %v", p.Repr(), got.Repr(), err)
		}

		got, err = empty.Add(p)
		if err != nil || !got.Equal(p) {
			t.Errorf("empty + %q = %q, %v", p.Repr(), got.Repr(), err)
		}
	}
}

func TestLigate(t *testing.T) {
	got, err := Ligate(FromString("aa"), FromString("cc"), FromString("gg"))
	if err != nil {
		t.Fatal(err)
	}
	expect(t, got, "aaccgg", "ccggtt", 0, false)

	if _, err := Ligate(FromString("aa"), strands(t, "g", "gatcc", 0), FromString("aa")); !errors.Is(err, ErrIncompatibleEnds) {
		t.Errorf("Ligate() error = %v, want %v", err, ErrIncompatibleEnds)
	}

	if got, err := Ligate(); err != nil || got.Len() != 0 {
		t.Errorf("Ligate() of nothing = %q, %v", got.Repr(), err)
	}
}

func TestDseq_Repeat(t *testing.T) {
	got, err := FromString("ac").Repeat(3)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, got, "acacac", "gtgtgt", 0, false)

	for _, n := range []int{0, -2} {
		got, err := FromString("ac").Repeat(n)
		if err != nil || got.Len() != 0 {
			t.Errorf("Repeat(%d) = %q, %v, want empty", n, got.Repr(), err)
		}
	}

	if _, err := strands(t, "g", "gatcc", 0).Repeat(2); !errors.Is(err, ErrIncompatibleEnds) {
		t.Errorf("Repeat() of incompatible ends error = %v, want %v", err, ErrIncompatibleEnds)
	}
}

func TestDseq_Loop(t *testing.T) {
	tests := []struct {
		name       string
		d          Dseq
		wantWatson string
		wantCrick  string
		wantLen    int
		wantErr    error
	}{
		{
			"blunt",
			FromString("catcgatc"),
			"catcgatc", "gatcgatg", 8, nil,
		},
		{
			"sticky",
			strands(t, "catcgat", "gatcgat", -1),
			"catcgat", "atcgatg", 7, nil,
		},
		{
			"already circular",
			circle("acgt"),
			"acgt", "acgt", 4, nil,
		},
		{
			"incompatible ends",
			strands(t, "gatcaa", "tt", -4),
			"", "", 0, ErrIncompatibleEnds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.Loop()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Loop() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			expect(t, got, tt.wantWatson, tt.wantCrick, 0, true)
			if got.Len() != tt.wantLen {
				t.Errorf("Loop().Len() = %d, want %d", got.Len(), tt.wantLen)
			}
		})
	}
}
