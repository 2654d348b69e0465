//go:build ebiten

package app

import (
	"sketchlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]core.Key{
	ebiten.KeySpace:   core.KeyToggle,
	ebiten.KeyAltLeft: core.KeyModifier,
	ebiten.KeyR:       core.KeyReset,
	ebiten.KeyP:       core.KeyRestore,
	ebiten.KeyG:       core.KeySeed,
}

// bindingOrder fixes the order in which simultaneous key edges are queued.
var bindingOrder = []ebiten.Key{
	ebiten.KeyAltLeft,
	ebiten.KeySpace,
	ebiten.KeyR,
	ebiten.KeyP,
	ebiten.KeyG,
}

// inputCollector turns ebiten's polled input state into discrete events.
type inputCollector struct {
	lastX, lastY int
	seen         bool
}

// collect appends every input edge observed this frame to q.
func (c *inputCollector) collect(q *core.EventQueue) {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		q.Push(core.Event{Kind: core.EventQuit})
	}

	for _, k := range bindingOrder {
		switch {
		case inpututil.IsKeyJustPressed(k):
			q.Push(core.Event{Kind: core.EventKeyDown, Key: keyBindings[k]})
		case inpututil.IsKeyJustReleased(k):
			q.Push(core.Event{Kind: core.EventKeyUp, Key: keyBindings[k]})
		}
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		q.Push(core.Event{Kind: core.EventPointerDown, X: x, Y: y})
	} else if c.seen && (x != c.lastX || y != c.lastY) {
		q.Push(core.Event{Kind: core.EventPointerMove, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		q.Push(core.Event{Kind: core.EventPointerUp, X: x, Y: y})
	}
	c.lastX, c.lastY, c.seen = x, y, true
}
