package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	glyphAlive = "X"
	glyphDead  = "."
)

// Render draws reg as Rows lines of Cols space separated glyphs, starting at cell (0, 0).
func Render(reg Register, d Dims) string {
	var sb strings.Builder
	sb.Grow(int(d.Cells()) * 2)

	var (
		mask = Register(1) << (d.Cells() - 1)
		col  uint8
	)
	for ; mask != 0; mask >>= 1 {
		if col > 0 {
			sb.WriteByte(' ')
		}
		if reg&mask != 0 {
			sb.WriteString(glyphAlive)
		} else {
			sb.WriteString(glyphDead)
		}

		col++
		if col >= d.Cols {
			col = 0
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Encode packs a presence matrix into a register. Any positive entry is a live cell.
func Encode(shape [][]uint8, d Dims) (Register, error) {
	if d.Cells() > WordBits {
		return 0, errors.Wrapf(ErrGridTooLarge, "[Encode] rows x cols = %d", d.Cells())
	}
	if len(shape) < int(d.Rows) {
		return 0, errors.Wrapf(ErrShapeMismatch, "[Encode] got %d rows, want %d", len(shape), d.Rows)
	}

	var reg Register
	for i := range int(d.Rows) {
		if len(shape[i]) < int(d.Cols) {
			return 0, errors.Wrapf(ErrShapeMismatch, "[Encode] row %d has %d cols, want %d", i, len(shape[i]), d.Cols)
		}
		for j := range int(d.Cols) {
			if shape[i][j] > 0 {
				reg = reg.Set(BitPos(i, j, d), d)
			}
		}
	}

	return reg, nil
}
