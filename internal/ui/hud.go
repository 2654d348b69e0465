//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status line and key help across the top of the board.
type HUD struct {
	src     StatusSource
	visible bool
}

// NewHUD constructs a HUD for the provided session.
func NewHUD(src StatusSource, visible bool) *HUD {
	return &HUD{src: src, visible: visible}
}

// Visible reports whether the HUD is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update toggles visibility on H.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the HUD panel anchored to the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() {
		return
	}
	face := basicfont.Face7x13
	status := StatusLine(h.src)

	width := text.BoundString(face, KeyHelp).Dx()
	if w := text.BoundString(face, status).Dx(); w > width {
		width = w
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), panelHeight, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	text.Draw(screen, status, face, panelPadding, panelPadding+lineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(screen, KeyHelp, face, panelPadding, panelPadding+2*lineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
}

const (
	panelPadding = 6
	lineHeight   = 14
	panelHeight  = 2*panelPadding + 2*lineHeight + 4
)
