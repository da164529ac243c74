package species_test

import (
	"testing"

	"github.com/pkmn-tools/dexctl/internal/species"
)

func TestGenOf_Boundaries(t *testing.T) {
	cases := []struct {
		id   int
		want int
	}{
		{1, 1},
		{151, 1},
		{152, 2},
		{251, 2},
		{252, 3},
		{493, 4},
		{494, 5},
		{649, 5},
		{650, 6},
		{721, 6},
		{722, 7},
		{809, 7},
		{810, 8},
		{905, 8},
		{906, 9},
		{1025, 9},
	}
	for _, c := range cases {
		if got := species.GenOf(c.id).Gen; got != c.want {
			t.Errorf("GenOf(%d).Gen = %d, want %d", c.id, got, c.want)
		}
	}
}

func TestGenOf_OutOfRange(t *testing.T) {
	for _, id := range []int{0, -5, 1026, 10001} {
		if got := species.GenOf(id); got != species.Unknown {
			t.Errorf("GenOf(%d) = %+v, want Unknown", id, got)
		}
	}
}

func TestGenerations_ExhaustiveAndNonOverlapping(t *testing.T) {
	next := 1
	for _, g := range species.Generations {
		if g.Start != next {
			t.Errorf("gen %d starts at %d, want %d", g.Gen, g.Start, next)
		}
		if g.End < g.Start {
			t.Errorf("gen %d has End %d < Start %d", g.Gen, g.End, g.Start)
		}
		next = g.End + 1
	}
	if next != 1026 {
		t.Errorf("generations cover 1..%d, want 1..1025", next-1)
	}
}

func TestGenByNumber(t *testing.T) {
	if got := species.GenByNumber(4).Name; got != "Generation IV — Sinnoh" {
		t.Errorf("GenByNumber(4).Name = %q", got)
	}
	if got := species.GenByNumber(12); got != species.Unknown {
		t.Errorf("GenByNumber(12) = %+v, want Unknown", got)
	}
}
