package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// Pattern selects the generation 0 layout
type Pattern uint8

const (
	Random Pattern = iota
	Beacon
	Blinker
	Toad
)

// 8x8 starting layouts, row 0 in the most significant byte.
const (
	Beacon8x8  Register = 0x0000001818606000
	Blinker8x8 Register = 0x0000003800000000
	Toad8x8    Register = 0x0000001C38000000
)

var ErrUnknownPattern = errors.New("unknown starting pattern")

var patternNames = [...]string{
	Random:  "random",
	Beacon:  "beacon",
	Blinker: "blinker",
	Toad:    "toad",
}

// PatternNames lists the accepted pattern names in declaration order
func PatternNames() []string {
	return append([]string(nil), patternNames[:]...)
}

func (p Pattern) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return patternNames[p]
}

// Valid reports whether p is one of the declared patterns
func (p Pattern) Valid() bool {
	return int(p) < len(patternNames)
}

// ParsePattern resolves a pattern name, ignoring case
func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if strings.EqualFold(n, name) {
			return Pattern(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPattern, "[ParsePattern] '%s' is not a valid starting pattern", name)
}

// Seed builds the generation 0 register for p. The fixed layouts are drawn
// for an 8x8 grid and are only meaningful there. On any other shape the
// register is masked to the grid's cells, which keeps the tail of the 8x8
// drawing reflowed into the new row width.
func Seed(p Pattern, d Dims, rng *rand.Rand) (Register, error) {
	switch p {
	case Random:
		return Register(rng.Uint64()) & Mask(d), nil
	case Beacon:
		return Beacon8x8 & Mask(d), nil
	case Blinker:
		return Blinker8x8 & Mask(d), nil
	case Toad:
		return Toad8x8 & Mask(d), nil
	default:
		return 0, errors.Wrapf(ErrUnknownPattern, "[Seed] pattern=%d", uint8(p))
	}
}
