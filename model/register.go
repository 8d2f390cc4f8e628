package model

import (
	"math/bits"

	"github.com/pkg/errors"
)

// WordBits is the number of cells a single Register can hold.
const WordBits = 64

var (
	ErrEmptyGrid     = errors.New("grid must have at least one row and one column")
	ErrGridTooLarge  = errors.New("grid does not fit in a single register")
	ErrShapeMismatch = errors.New("shape does not match grid dimensions")
)

// Dims holds the grid dimensions. Rows*Cols must not exceed WordBits.
type Dims struct {
	Rows uint8 `json:"rows" yaml:"rows"`
	Cols uint8 `json:"cols" yaml:"cols"`
}

// Cells returns the number of cells in the grid
func (d Dims) Cells() uint {
	return uint(d.Rows) * uint(d.Cols)
}

// Validate checks that the grid is non-empty and fits in one register
func (d Dims) Validate() error {
	if d.Rows == 0 || d.Cols == 0 {
		return errors.Wrapf(ErrEmptyGrid, "[Validate] rows=%d cols=%d", d.Rows, d.Cols)
	}
	if d.Cells() > WordBits {
		return errors.Wrapf(ErrGridTooLarge, "[Validate] rows x cols = %d which exceeds %d", d.Cells(), WordBits)
	}
	return nil
}

/*
Register is a whole generation packed into one word, row-major.

Cell index i (row i/Cols, col i%Cols) lives at physical bit Cells()-1-i, so
cell (0, 0) is the most significant meaningful bit and only the low Cells()
bits are ever set. On an 8x8 grid cell 0 is the word's MSB.
*/
type Register uint64

// Mask returns a register with every cell of d set.
func Mask(d Dims) Register {
	if d.Cells() >= WordBits {
		return ^Register(0)
	}
	return Register(1)<<d.Cells() - 1
}

func (r Register) bit(pos uint, d Dims) Register {
	return Register(1) << (d.Cells() - 1 - pos)
}

// Test reports whether the cell at bit index pos is alive
func (r Register) Test(pos uint, d Dims) bool {
	return r&r.bit(pos, d) != 0
}

// Set returns r with the cell at bit index pos alive
func (r Register) Set(pos uint, d Dims) Register {
	return r | r.bit(pos, d)
}

// Alive reports the state of the cell at (row, col), wrapping toroidally
func (r Register) Alive(row, col int, d Dims) bool {
	return r.Test(BitPos(row, col, d), d)
}

// Population returns the number of living cells
func (r Register) Population() int {
	return bits.OnesCount64(uint64(r))
}

/*
BitPos maps a (row, col) coordinate onto a bit index in [0, Cells()).

Each axis is folded once: a negative value has the dimension added, a value
at or past the dimension is reduced modulo the dimension. Callers only ever
step one cell off the grid, so a single fold is enough.
*/
func BitPos(row, col int, d Dims) uint {
	rows, cols := int(d.Rows), int(d.Cols)

	if row < 0 {
		row += rows
	}
	if col < 0 {
		col += cols
	}
	if row >= rows {
		row %= rows
	}
	if col >= cols {
		col %= cols
	}

	// segment (row * stride) + offset
	return uint(row*cols + col)
}
