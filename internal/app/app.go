//go:build ebiten

package app

import (
	"sketchlife/internal/core"
	"sketchlife/internal/render"
	"sketchlife/internal/session"
	"sketchlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	input inputCollector
	queue core.EventQueue
	clock *core.Clock
}

// New constructs a Game for the provided session.
func New(sess *session.Session, showHUD bool) *Game {
	size := sess.Grid().Size()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sess),
		hud:     ui.NewHUD(sess, showHUD),
		clock:   core.NewClock(),
	}
}

// Update handles one queued input event and advances the simulation.
func (g *Game) Update() error {
	g.input.collect(&g.queue)
	g.hud.Update()

	if ev, ok := g.queue.Pop(); ok {
		if !g.sess.Handle(ev) {
			return ebiten.Termination
		}
		if ev.Kind == core.EventKeyDown {
			ebiten.SetWindowTitle(g.sess.Title())
		}
	}

	g.sess.Advance(g.clock.Delta())
	return nil
}

// Draw renders the current grid.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid(), render.LiveColor, render.DeadColor, g.sess.CellSize())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Grid().Size()
	return s.W * g.sess.CellSize(), s.H * g.sess.CellSize()
}

// Run opens the window and blocks until it is closed.
func Run(cfg *Config) error {
	sess := session.New(cfg.SessionOptions())
	game := New(sess, cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(sess.Title())
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}
