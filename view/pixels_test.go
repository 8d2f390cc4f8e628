package view

import (
	"image/color"
	"testing"

	"github.com/sheikhrachel/go-bitgol/model"
)

func TestFillPixels(t *testing.T) {
	var (
		d   = model.Dims{Rows: 2, Cols: 3}
		on  = color.RGBA{R: 1, G: 2, B: 3, A: 4}
		off = color.RGBA{A: 255}
		buf = make([]byte, d.Cells()*4)
	)

	// cells (0,0) and (1,2)
	reg := model.Register(0).Set(model.BitPos(0, 0, d), d).Set(model.BitPos(1, 2, d), d)
	fillPixels(buf, reg, d, on, off)

	for pos := range d.Cells() {
		want := off
		if pos == 0 || pos == 5 {
			want = on
		}
		got := color.RGBA{R: buf[pos*4], G: buf[pos*4+1], B: buf[pos*4+2], A: buf[pos*4+3]}
		if got != want {
			t.Errorf("pixel %d = %v, want %v", pos, got, want)
		}
	}
}
