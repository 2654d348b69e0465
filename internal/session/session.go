// Package session holds the interactive state of a sketchpad run: the live
// grid, its checkpoint, the drawing/playing mode and pointer state. It maps
// frontend input events onto grid edits and advances the simulation.
package session

import (
	"time"

	"sketchlife/internal/core"
	"sketchlife/internal/life"
)

const (
	titleDrawing = "Game Of Life - Drawing."
	titlePlaying = "Game Of Life - Playing!"
)

// Options configures a Session.
type Options struct {
	Width    int
	Height   int
	CellSize int
	Tick     time.Duration
	Seed     int64
	Density  float64
}

// DefaultOptions mirrors the classic 80x60 board of 10px cells.
func DefaultOptions() Options {
	return Options{
		Width:    80,
		Height:   60,
		CellSize: 10,
		Tick:     core.DefaultTick,
		Seed:     1,
		Density:  0.25,
	}
}

// Session owns the grid, the checkpoint and the mode state machine. It is not
// safe for concurrent use; one frame loop drives it.
type Session struct {
	grid       *core.Grid
	checkpoint *core.Grid
	scratch    *core.Grid

	timer *core.FixedStep
	rng   *core.RNG

	mode          core.Mode
	erasing       bool
	pointerActive bool
	generation    int

	cellSize int
	density  float64
}

// New constructs a Session in drawing mode with an empty grid.
func New(opts Options) *Session {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	s := &Session{
		grid:       core.NewGrid(opts.Width, opts.Height),
		checkpoint: core.NewGrid(opts.Width, opts.Height),
		scratch:    core.NewGrid(opts.Width, opts.Height),
		timer:      core.NewFixedStep(opts.Tick),
		rng:        core.NewRNG(opts.Seed),
		cellSize:   opts.CellSize,
		density:    opts.Density,
	}
	return s
}

// Grid exposes the live grid for rendering.
func (s *Session) Grid() *core.Grid { return s.grid }

// Checkpoint exposes the last snapshot taken on entering play.
func (s *Session) Checkpoint() *core.Grid { return s.checkpoint }

// Mode returns the current mode.
func (s *Session) Mode() core.Mode { return s.mode }

// Erasing reports whether pointer edits currently clear cells.
func (s *Session) Erasing() bool { return s.erasing }

// PointerActive reports whether a pointer button is held.
func (s *Session) PointerActive() bool { return s.pointerActive }

// Generation returns the number of generations computed since the last
// reset, restore or seed.
func (s *Session) Generation() int { return s.generation }

// CellSize returns the pixel size of one cell.
func (s *Session) CellSize() int { return s.cellSize }

// Title returns the window title for the current mode.
func (s *Session) Title() string {
	if s.mode == core.ModePlaying {
		return titlePlaying
	}
	return titleDrawing
}

// CellAt maps pointer pixel coordinates to a grid cell. ok is false when the
// pointer lies outside the grid.
func (s *Session) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/s.cellSize, py/s.cellSize
	return x, y, s.grid.InBounds(x, y)
}

// Handle applies one input event. It returns false once the run loop should
// stop.
func (s *Session) Handle(ev core.Event) bool {
	switch ev.Kind {
	case core.EventQuit:
		return false
	case core.EventPointerDown:
		s.pointerActive = true
		s.paint(ev.X, ev.Y)
	case core.EventPointerMove:
		if s.pointerActive && s.mode == core.ModeDrawing {
			s.paint(ev.X, ev.Y)
		}
	case core.EventPointerUp:
		s.pointerActive = false
	case core.EventKeyDown:
		s.keyDown(ev.Key)
	case core.EventKeyUp:
		if ev.Key == core.KeyModifier {
			s.erasing = false
		}
	}
	return true
}

func (s *Session) keyDown(k core.Key) {
	switch k {
	case core.KeyToggle:
		s.Toggle()
	case core.KeyModifier:
		s.erasing = true
	case core.KeyReset:
		s.Reset()
	case core.KeyRestore:
		s.Restore()
	case core.KeySeed:
		if s.mode == core.ModeDrawing {
			s.rng.FillSoup(s.grid, s.density)
			s.generation = 0
		}
	}
}

// paint sets the cell under the pointer to !erasing. Positions outside the
// grid are ignored.
func (s *Session) paint(px, py int) {
	x, y, ok := s.CellAt(px, py)
	if !ok {
		return
	}
	s.grid.Set(x, y, !s.erasing)
}

// Toggle flips between drawing and playing. Entering play snapshots the grid
// into the checkpoint.
func (s *Session) Toggle() {
	if s.mode == core.ModePlaying {
		s.mode = core.ModeDrawing
		return
	}
	s.mode = core.ModePlaying
	// Shapes always match; the grids are allocated together in New.
	_ = s.checkpoint.CopyFrom(s.grid)
}

// Reset clears the grid and returns to drawing.
func (s *Session) Reset() {
	s.grid.Clear()
	s.mode = core.ModeDrawing
	s.generation = 0
}

// Restore copies the checkpoint back into the grid and returns to drawing.
func (s *Session) Restore() {
	_ = s.grid.CopyFrom(s.checkpoint)
	s.mode = core.ModeDrawing
	s.generation = 0
}

// Advance accumulates frame time and, while playing, computes one generation
// once the tick threshold is reached. It reports whether a generation ran.
func (s *Session) Advance(dt time.Duration) bool {
	s.timer.Add(dt)
	if s.mode != core.ModePlaying {
		return false
	}
	if !s.timer.ShouldStep() {
		return false
	}
	_ = life.Advance(s.grid, s.scratch)
	s.generation++
	return true
}

// Frame runs one iteration of the loop: handle at most one queued event, then
// advance the simulation. It returns false once a quit event was handled.
func (s *Session) Frame(q *core.EventQueue, dt time.Duration) bool {
	if ev, ok := q.Pop(); ok {
		if !s.Handle(ev) {
			return false
		}
	}
	s.Advance(dt)
	return true
}
