//go:build ebiten

package ui

import (
	"image/color"

	"sketchlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type pointerSource interface {
	Mode() core.Mode
	Erasing() bool
	CellAt(px, py int) (x, y int, ok bool)
	CellSize() int
}

// Overlay highlights the cell under the cursor while drawing.
type Overlay struct {
	src pointerSource

	paint color.RGBA
	erase color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src pointerSource) *Overlay {
	return &Overlay{
		src:   src,
		paint: color.RGBA{R: 64, G: 164, B: 223, A: 120},
		erase: color.RGBA{R: 223, G: 64, B: 64, A: 120},
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.src.Mode() != core.ModeDrawing {
		return
	}
	x, y, ok := o.src.CellAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	size := float32(o.src.CellSize())
	col := o.paint
	if o.src.Erasing() {
		col = o.erase
	}
	vector.DrawFilledRect(screen, float32(x)*size, float32(y)*size, size, size, col, false)
}
