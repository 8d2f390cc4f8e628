//go:build ebiten

package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-bitgol/model"
)

// Game adapts a Simulation to the ebiten.Game interface.
type Game struct {
	sim    *model.Simulation
	img    *ebiten.Image
	pixels []byte

	onColor  color.RGBA
	offColor color.RGBA

	scale        int
	ticksPerStep int
	ticks        int
	paused       bool
	stepOnce     bool
}

// New constructs a Game that advances sim once every ticksPerStep ticks.
func New(sim *model.Simulation, scale, ticksPerStep int) *Game {
	d := sim.Dims()
	return &Game{
		sim:          sim,
		img:          ebiten.NewImage(int(d.Cols), int(d.Rows)),
		pixels:       make([]byte, d.Cells()*4),
		onColor:      color.RGBA{R: 0x40, G: 0xd0, B: 0x40, A: 0xff},
		offColor:     color.RGBA{A: 0xff},
		scale:        max(scale, 1),
		ticksPerStep: max(ticksPerStep, 1),
	}
}

// Update handles input and steps the simulation until its budget runs out.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}

	if g.sim.Done() {
		return nil
	}

	g.ticks++
	if (!g.paused && g.ticks >= g.ticksPerStep) || g.stepOnce {
		g.sim.Step()
		g.ticks = 0
		g.stepOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	fillPixels(g.pixels, g.sim.Current(), g.sim.Dims(), g.onColor, g.offColor)
	g.img.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := g.sim.Dims()
	return int(d.Cols) * g.scale, int(d.Rows) * g.scale
}
