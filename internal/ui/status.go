// Package ui renders session status for the frontends: a one-line summary
// shared by every frontend plus, in GUI builds, a HUD panel and a pointer
// overlay.
package ui

import (
	"fmt"

	"sketchlife/internal/core"
)

// StatusSource is the read-only view of a session the status line needs.
type StatusSource interface {
	Mode() core.Mode
	Generation() int
	Erasing() bool
	Grid() *core.Grid
}

// StatusLine summarizes the session in a single line.
func StatusLine(s StatusSource) string {
	brush := "paint"
	if s.Erasing() {
		brush = "erase"
	}
	return fmt.Sprintf("%s | gen %d | pop %d | %s", s.Mode(), s.Generation(), s.Grid().Population(), brush)
}

// KeyHelp lists the bindings shown under the status line.
const KeyHelp = "space play/pause  alt erase  r reset  p restore  g seed"
