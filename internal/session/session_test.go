package session

import (
	"testing"
	"time"

	"sketchlife/internal/core"
)

func newTestSession() *Session {
	opts := DefaultOptions()
	opts.Width = 10
	opts.Height = 8
	opts.CellSize = 10
	return New(opts)
}

func down(x, y int) core.Event { return core.Event{Kind: core.EventPointerDown, X: x, Y: y} }
func move(x, y int) core.Event { return core.Event{Kind: core.EventPointerMove, X: x, Y: y} }
func up() core.Event { return core.Event{Kind: core.EventPointerUp} }
func key(k core.Key) core.Event {
	return core.Event{Kind: core.EventKeyDown, Key: k}
}
func release(k core.Key) core.Event {
	return core.Event{Kind: core.EventKeyUp, Key: k}
}

func TestInitialState(t *testing.T) {
	s := newTestSession()
	if s.Mode() != core.ModeDrawing {
		t.Fatalf("expected drawing mode, got %v", s.Mode())
	}
	if s.Grid().Population() != 0 {
		t.Fatal("new session grid is not empty")
	}
	if s.Title() != "Game Of Life - Drawing." {
		t.Fatalf("unexpected title %q", s.Title())
	}
}

func TestPointerPaintsAndErases(t *testing.T) {
	s := newTestSession()

	s.Handle(down(25, 37))
	if !s.Grid().Alive(2, 3) {
		t.Fatal("pointer down did not paint cell (2,3)")
	}
	if !s.PointerActive() {
		t.Fatal("pointer down did not activate drag")
	}

	s.Handle(move(45, 37))
	if !s.Grid().Alive(4, 3) {
		t.Fatal("drag did not paint cell (4,3)")
	}

	s.Handle(key(core.KeyModifier))
	if !s.Erasing() {
		t.Fatal("modifier down did not enable erasing")
	}
	s.Handle(move(25, 37))
	if s.Grid().Alive(2, 3) {
		t.Fatal("erasing drag did not clear cell (2,3)")
	}

	s.Handle(release(core.KeyModifier))
	if s.Erasing() {
		t.Fatal("modifier up did not disable erasing")
	}

	s.Handle(up())
	s.Handle(move(5, 5))
	if s.Grid().Alive(0, 0) {
		t.Fatal("move without an active pointer painted a cell")
	}
}

func TestPointerMoveGatedByMode(t *testing.T) {
	s := newTestSession()
	s.Handle(down(0, 0))
	s.Handle(key(core.KeyToggle))
	if s.Mode() != core.ModePlaying {
		t.Fatal("toggle did not enter playing mode")
	}

	before := s.Grid().Clone()
	s.Handle(move(55, 55))
	if !s.Grid().Equal(before) {
		t.Fatal("pointer move mutated the grid while playing")
	}

	s.Handle(key(core.KeyToggle))
	s.Handle(move(55, 55))
	if !s.Grid().Alive(5, 5) {
		t.Fatal("pointer move did not paint after returning to drawing")
	}
}

func TestPointerOutsideGridIgnored(t *testing.T) {
	s := newTestSession()
	for _, p := range [][2]int{{-1, 0}, {0, -5}, {-9, -9}, {100, 0}, {0, 80}, {5000, 5000}} {
		s.Handle(down(p[0], p[1]))
		s.Handle(move(p[0], p[1]))
	}
	if s.Grid().Population() != 0 {
		t.Fatalf("out-of-range pointer edits painted %d cells", s.Grid().Population())
	}
}

func TestCheckpointRestore(t *testing.T) {
	s := newTestSession()
	// Blinker so that ticks change the grid.
	s.Handle(down(35, 25))
	s.Handle(move(45, 25))
	s.Handle(move(55, 25))
	s.Handle(up())
	g := s.Grid().Clone()

	s.Handle(key(core.KeyToggle))
	if !s.Checkpoint().Equal(g) {
		t.Fatal("entering play did not snapshot the grid")
	}

	for i := 0; i < 3; i++ {
		if !s.Advance(core.DefaultTick) {
			t.Fatalf("tick %d did not run", i)
		}
	}
	if s.Grid().Equal(g) {
		t.Fatal("blinker unchanged after an odd number of ticks")
	}

	s.Handle(key(core.KeyRestore))
	if !s.Grid().Equal(g) {
		t.Fatal("restore did not return the checkpointed grid")
	}
	if s.Mode() != core.ModeDrawing {
		t.Fatal("restore did not force drawing mode")
	}
	if s.Generation() != 0 {
		t.Fatalf("restore left generation at %d", s.Generation())
	}
}

func TestLeavingPlayKeepsCheckpoint(t *testing.T) {
	s := newTestSession()
	s.Handle(down(15, 15))
	s.Handle(up())
	snap := s.Grid().Clone()

	s.Handle(key(core.KeyToggle))
	s.Handle(key(core.KeyToggle))
	s.Handle(down(75, 75))
	if !s.Checkpoint().Equal(snap) {
		t.Fatal("leaving play or drawing afterwards changed the checkpoint")
	}
}

func TestResetClearsAndForcesDrawing(t *testing.T) {
	s := newTestSession()
	s.Handle(down(15, 15))
	s.Handle(key(core.KeyToggle))
	s.Handle(key(core.KeyReset))

	if s.Grid().Population() != 0 {
		t.Fatal("reset left live cells")
	}
	if s.Mode() != core.ModeDrawing {
		t.Fatal("reset did not force drawing mode")
	}
}

func TestAdvanceGatedByModeAndTimer(t *testing.T) {
	s := newTestSession()
	if s.Advance(time.Second) {
		t.Fatal("ticked while drawing")
	}

	s.Handle(key(core.KeyToggle))
	// Time accumulated while drawing is still pending.
	if !s.Advance(0) {
		t.Fatal("first frame after play did not tick")
	}
	if s.Advance(10 * time.Millisecond) {
		t.Fatal("ticked before the threshold")
	}
	if !s.Advance(40 * time.Millisecond) {
		t.Fatal("did not tick at the threshold")
	}
	if s.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", s.Generation())
	}
}

func TestTitleFollowsMode(t *testing.T) {
	s := newTestSession()
	s.Handle(key(core.KeyToggle))
	if s.Title() != "Game Of Life - Playing!" {
		t.Fatalf("unexpected title %q", s.Title())
	}
	s.Handle(key(core.KeyToggle))
	if s.Title() != "Game Of Life - Drawing." {
		t.Fatalf("unexpected title %q", s.Title())
	}
}

func TestSeedOnlyWhileDrawing(t *testing.T) {
	s := newTestSession()
	s.Handle(key(core.KeySeed))
	if s.Grid().Population() == 0 {
		t.Fatal("seed key did not populate the grid")
	}

	s.Handle(key(core.KeyReset))
	s.Handle(key(core.KeyToggle))
	s.Handle(key(core.KeySeed))
	if s.Grid().Population() != 0 {
		t.Fatal("seed key populated the grid while playing")
	}
}

func TestFrameConsumesOneEvent(t *testing.T) {
	s := newTestSession()
	var q core.EventQueue
	q.Push(down(5, 5))
	q.Push(key(core.KeyToggle))
	q.Push(core.Event{Kind: core.EventQuit})

	if !s.Frame(&q, 0) {
		t.Fatal("first frame stopped the loop")
	}
	if q.Len() != 2 || s.Mode() != core.ModeDrawing {
		t.Fatalf("first frame handled more than one event (pending %d, mode %v)", q.Len(), s.Mode())
	}
	if !s.Frame(&q, 0) || s.Mode() != core.ModePlaying {
		t.Fatal("second frame did not toggle")
	}
	if s.Frame(&q, 0) {
		t.Fatal("quit event did not stop the loop")
	}
}
