package core

import (
	"slices"
	"testing"
)

func TestFillAgesDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	na := FillAges(NewRNG(7), a, 0.4)
	nb := FillAges(NewRNG(7), b, 0.4)
	if !slices.Equal(a, b) || na != nb {
		t.Fatal("same seed should produce the same cells")
	}
	for i, c := range a {
		if c > 1 {
			t.Fatalf("cell %d seeded with age %d, want 0 or 1", i, c)
		}
	}
}

func TestFillAgesDensityBounds(t *testing.T) {
	buf := make([]uint8, 100)
	if n := FillAges(NewRNG(1), buf, 0); n != 0 {
		t.Fatalf("density 0 produced %d live cells", n)
	}
	if n := FillAges(NewRNG(1), buf, 1); n != len(buf) {
		t.Fatalf("density 1 produced %d live cells, want %d", n, len(buf))
	}
}
