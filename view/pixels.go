package view

import (
	"image/color"

	"github.com/sheikhrachel/go-bitgol/model"
)

// fillPixels writes one RGBA pixel per cell of reg into buf, row-major.
func fillPixels(buf []byte, reg model.Register, d model.Dims, on, off color.RGBA) {
	for pos := range d.Cells() {
		c := off
		if reg.Test(pos, d) {
			c = on
		}
		base := pos * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
