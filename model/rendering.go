package model

import (
	"fmt"
	"io"
)

// clearScreen moves the cursor home and erases the display
const clearScreen = "\033[H\033[2J"

// Renderer displays one generation
type Renderer interface {
	Render(gen uint64, reg Register, d Dims) error
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(gen uint64, reg Register, d Dims) error

func (f RendererFunc) Render(gen uint64, reg Register, d Dims) error {
	return f(gen, reg, d)
}

// TerminalRenderer writes each generation as text followed by a blank line
type TerminalRenderer struct {
	Out   io.Writer
	Clear bool
}

// Render writes the grid to Out
func (r *TerminalRenderer) Render(_ uint64, reg Register, d Dims) error {
	if r.Clear {
		if _, err := io.WriteString(r.Out, clearScreen); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.Out, "%s\n", Render(reg, d))
	return err
}
