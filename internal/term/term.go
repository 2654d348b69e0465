// Package term runs a session inside the controlling terminal using tcell.
// Each grid cell is drawn two columns wide so cells come out roughly square.
package term

import (
	"context"
	"time"

	"sketchlife/internal/core"
	"sketchlife/internal/session"
	"sketchlife/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const columnsPerCell = 2

var (
	liveStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	deadStyle = tcell.StyleDefault.Background(tcell.ColorWhite)
	textStyle = tcell.StyleDefault
)

// Terminal drives a session from tcell events.
type Terminal struct {
	screen tcell.Screen
	sess   *session.Session
	queue  core.EventQueue
	clock  *core.Clock
	frame  time.Duration

	buttonDown bool
	altHeld    bool
	eraseLatch bool
	erasing    bool
}

// New wraps an initialized screen. frame is the interval between frames.
func New(screen tcell.Screen, sess *session.Session, frame time.Duration) *Terminal {
	if frame <= 0 {
		frame = time.Second / 60
	}
	return &Terminal{screen: screen, sess: sess, clock: core.NewClock(), frame: frame}
}

// Run opens the terminal screen and blocks until the user quits or ctx ends.
func Run(ctx context.Context, sess *session.Session, frame time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize terminal screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return New(screen, sess, frame).Run(ctx)
}

// Run pumps screen events on a separate goroutine and runs the frame loop on
// the caller's. Only the frame loop touches the session.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return t.loop(ctx, events)
	})
	return g.Wait()
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			for _, e := range t.translate(ev) {
				t.queue.Push(e)
			}
		case <-ticker.C:
			if !t.sess.Frame(&t.queue, t.clock.Delta()) {
				return nil
			}
			t.draw()
		}
	}
}

// translate maps one tcell event onto zero or more session events.
func (t *Terminal) translate(ev tcell.Event) []core.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.translateKey(ev)
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	}
	return nil
}

func (t *Terminal) translateKey(ev *tcell.EventKey) []core.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []core.Event{{Kind: core.EventQuit}}
	case tcell.KeyRune:
	default:
		return nil
	}
	switch ev.Rune() {
	case ' ':
		return []core.Event{{Kind: core.EventKeyDown, Key: core.KeyToggle}}
	case 'r', 'R':
		return []core.Event{{Kind: core.EventKeyDown, Key: core.KeyReset}}
	case 'p', 'P':
		return []core.Event{{Kind: core.EventKeyDown, Key: core.KeyRestore}}
	case 'g', 'G':
		return []core.Event{{Kind: core.EventKeyDown, Key: core.KeySeed}}
	case 'q', 'Q':
		return []core.Event{{Kind: core.EventQuit}}
	case 'e', 'E':
		// Terminals report no key releases, so erase is latched instead of held.
		t.eraseLatch = !t.eraseLatch
		return t.syncErase(nil)
	}
	return nil
}

func (t *Terminal) translateMouse(ev *tcell.EventMouse) []core.Event {
	t.altHeld = ev.Modifiers()&tcell.ModAlt != 0
	out := t.syncErase(nil)

	col, row := ev.Position()
	px, py := t.toPixels(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !t.buttonDown:
		out = append(out, core.Event{Kind: core.EventPointerDown, X: px, Y: py})
	case !pressed && t.buttonDown:
		out = append(out, core.Event{Kind: core.EventPointerUp, X: px, Y: py})
	default:
		out = append(out, core.Event{Kind: core.EventPointerMove, X: px, Y: py})
	}
	t.buttonDown = pressed
	return out
}

// syncErase emits a modifier edge when the latch or held Alt changes the
// effective erase state.
func (t *Terminal) syncErase(out []core.Event) []core.Event {
	want := t.eraseLatch || t.altHeld
	if want == t.erasing {
		return out
	}
	t.erasing = want
	if want {
		return append(out, core.Event{Kind: core.EventKeyDown, Key: core.KeyModifier})
	}
	return append(out, core.Event{Kind: core.EventKeyUp, Key: core.KeyModifier})
}

// toPixels converts a terminal position into the session's pixel space.
func (t *Terminal) toPixels(col, row int) (int, int) {
	size := t.sess.CellSize()
	return (col / columnsPerCell) * size, row * size
}

func (t *Terminal) draw() {
	t.screen.Clear()
	g := t.sess.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			style := deadStyle
			if g.Alive(x, y) {
				style = liveStyle
			}
			for c := 0; c < columnsPerCell; c++ {
				t.screen.SetContent(x*columnsPerCell+c, y, ' ', nil, style)
			}
		}
	}
	drawText(t.screen, 0, g.H, ui.StatusLine(t.sess)+" | e erase latch  q quit")
	drawText(t.screen, 0, g.H+1, ui.KeyHelp)
	t.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, textStyle)
	}
}
