package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"random", Random},
		{"RANDOM", Random},
		{"Beacon", Beacon},
		{"blinker", Blinker},
		{"tOaD", Toad},
	}

	for _, tt := range tests {
		got, err := ParsePattern(tt.in)
		if err != nil {
			t.Errorf("ParsePattern(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePattern(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "glider", "blink"} {
		if _, err := ParsePattern(bad); !errors.Is(err, ErrUnknownPattern) {
			t.Errorf("ParsePattern(%q) error = %v, want ErrUnknownPattern", bad, err)
		}
	}
}

func TestPatternString(t *testing.T) {
	for i, name := range PatternNames() {
		p := Pattern(i)
		if p.String() != name || !p.Valid() {
			t.Errorf("Pattern(%d) = %q valid=%v, want %q", i, p.String(), p.Valid(), name)
		}
	}
	if p := Pattern(42); p.Valid() || p.String() != "unknown" {
		t.Errorf("Pattern(42) should be invalid, got %q", p.String())
	}
}

func TestSeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))

	for p, want := range map[Pattern]Register{Beacon: Beacon8x8, Blinker: Blinker8x8, Toad: Toad8x8} {
		got, err := Seed(p, grid8x8, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Seed(%v) = %#x, want %#x", p, uint64(got), uint64(want))
		}
	}

	d := Dims{Rows: 3, Cols: 5}
	for range 100 {
		got, err := Seed(Random, d, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got&^Mask(d) != 0 {
			t.Fatalf("random seed %#x sets bits outside %v", uint64(got), d)
		}
	}

	if _, err := Seed(Pattern(9), grid8x8, rng); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Seed(9) error = %v, want ErrUnknownPattern", err)
	}
}

func TestSeedFixedPatternOffEightByEight(t *testing.T) {
	// same cell count, different row width: the literal is kept bit for bit
	// and reflows, so it no longer draws a beacon
	d := Dims{Rows: 4, Cols: 16}
	got, err := Seed(Beacon, d, rand.New(rand.NewPCG(0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if got != Beacon8x8 {
		t.Fatalf("Seed(Beacon, 4x16) = %#x, want the 8x8 literal", uint64(got))
	}
	if next := Step(got, d); Step(next, d) == got {
		t.Error("beacon literal should not oscillate with period 2 on a 4x16 grid")
	}

	small := Dims{Rows: 4, Cols: 4}
	if got, _ := Seed(Blinker, small, nil); got != Blinker8x8&Mask(small) {
		t.Errorf("Seed(Blinker, 4x4) = %#x, want the literal masked to 16 cells", uint64(got))
	}
}
