//go:build ebiten

package ui

import (
	"image/color"

	"snakebot/internal/cycle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var pathColor = color.RGBA{R: 0x5a, G: 0x8d, B: 0xee, A: 0x70}

// Overlay draws the cycle path on top of the board. C toggles it.
type Overlay struct {
	cycle *cycle.Cycle
	scale int
	show  bool
	img   *ebiten.Image
}

// NewOverlay prepares an overlay for c; a nil cycle draws nothing.
func NewOverlay(c *cycle.Cycle, scale int) *Overlay {
	return &Overlay{cycle: c, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.show = !o.show
	}
}

// Draw renders the cached path image when visible.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if !o.show || o.cycle == nil {
		return
	}
	if o.img == nil {
		o.img = o.render()
	}
	dst.DrawImage(o.img, nil)
}

func (o *Overlay) render() *ebiten.Image {
	g := o.cycle.Grid()
	img := ebiten.NewImage(g.W*o.scale, g.H*o.scale)
	half := float32(o.scale) / 2
	width := max(1, float32(o.scale)/6)
	for r := 0; r < o.cycle.Len(); r++ {
		a, b := o.cycle.At(r), o.cycle.At(r+1)
		if !g.Adjacent(a, b, false) {
			continue
		}
		x0 := float32(a.X*o.scale) + half
		y0 := float32(a.Y*o.scale) + half
		x1 := float32(b.X*o.scale) + half
		y1 := float32(b.Y*o.scale) + half
		vector.StrokeLine(img, x0, y0, x1, y1, width, pathColor, false)
	}
	return img
}
