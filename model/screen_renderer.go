package model

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	cellBlock = '█'
	cellEmpty = ' '
)

// ErrQuit is returned by WaitQuit when the user asks to leave
var ErrQuit = errors.New("quit requested")

// ScreenRenderer draws generations full screen through tcell
type ScreenRenderer struct {
	screen      tcell.Screen
	aliveStyle  tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
	closeOnce   sync.Once
}

// NewScreenRenderer initializes screen and takes ownership of it
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to init screen")
	}
	screen.HideCursor()

	return &ScreenRenderer{
		screen:      screen,
		aliveStyle:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		deadStyle:   tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}, nil
}

// Render draws each cell two columns wide, then a status line under the grid
func (r *ScreenRenderer) Render(gen uint64, reg Register, d Dims) error {
	r.screen.Clear()

	for row := range int(d.Rows) {
		for col := range int(d.Cols) {
			ch, style := cellEmpty, r.deadStyle
			if reg.Alive(row, col, d) {
				ch, style = cellBlock, r.aliveStyle
			}
			r.screen.SetContent(col*2, row, ch, nil, style)
			r.screen.SetContent(col*2+1, row, ch, nil, style)
		}
	}

	status := fmt.Sprintf("Gen: %d | Living: %d | Grid: %dx%d", gen, reg.Population(), d.Rows, d.Cols)
	for i, ch := range []rune(status) {
		r.screen.SetContent(i, int(d.Rows)+1, ch, nil, r.statusStyle)
	}

	r.screen.Show()
	return nil
}

// WaitQuit blocks until Esc, Ctrl+C or q is pressed, or the screen is closed
func (r *ScreenRenderer) WaitQuit() error {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return ErrQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal. Only the first call has any effect.
func (r *ScreenRenderer) Close() {
	r.closeOnce.Do(r.screen.Fini)
}
