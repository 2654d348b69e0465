// Package life implements Conway's Game of Life on a toroidal core.Grid.
package life

import "sketchlife/internal/core"

// Step computes one generation from prev into next. It reads only prev and
// writes only next. Cells with exactly two neighbors are not written, so next
// must already hold a copy of prev.
func Step(prev, next *core.Grid) {
	w, h := prev.W, prev.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch n := prev.Neighbors(x, y); {
			case n == 3:
				next.Set(x, y, true)
			case n < 2 || n > 3:
				next.Set(x, y, false)
			}
		}
	}
}

// Advance moves cur forward one generation, using scratch to hold the
// previous state.
func Advance(cur, scratch *core.Grid) error {
	if err := scratch.CopyFrom(cur); err != nil {
		return err
	}
	Step(scratch, cur)
	return nil
}
