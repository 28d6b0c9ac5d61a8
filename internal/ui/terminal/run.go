package terminal

import (
	"context"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/input"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// Runner drives an App from a terminal: it polls tcell events, ticks the
// game and redraws every frame.
type Runner struct {
	app    *app.App
	screen tcell.Screen
	view   *Screen

	now func() time.Time
}

func NewRunner(a *app.App, s tcell.Screen) *Runner {
	r := &Runner{
		app:    a,
		screen: s,
		view:   NewScreen(s),
		now:    time.Now,
	}
	r.resize()
	return r
}

// Run blocks until the player quits or ctx is done. The screen must already
// be initialized; Run does not call Fini.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.app.Advance(r.now())
			r.draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the player
// asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		r.resize()
	case *tcell.EventKey:
		a, ok := keyAction(ev.Key(), ev.Rune())
		if !ok {
			return false
		}
		return r.apply(a)
	}
	return false
}

func (r *Runner) apply(a input.Action) bool {
	now := r.now()
	switch a.Kind {
	case input.ActionSteer:
		r.app.Steer(a.Direction)
	case input.ActionToggle:
		r.app.Toggle(now)
	case input.ActionRestart:
		r.app.Restart(now)
	case input.ActionQuit:
		return true
	}
	return false
}

func (r *Runner) resize() {
	r.app.Resize(r.view.Surface())
}

func (r *Runner) draw() {
	r.view.Draw(r.app.Frame(), r.app.Layout())
	r.view.Show()
}

func keyAction(key tcell.Key, ch rune) (input.Action, bool) {
	switch key {
	case tcell.KeyUp:
		return input.Steer(domain.DirectionUp), true
	case tcell.KeyDown:
		return input.Steer(domain.DirectionDown), true
	case tcell.KeyLeft:
		return input.Steer(domain.DirectionLeft), true
	case tcell.KeyRight:
		return input.Steer(domain.DirectionRight), true
	case tcell.KeyEnter:
		return input.Action{Kind: input.ActionToggle}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Action{Kind: input.ActionQuit}, true
	case tcell.KeyRune:
		return input.RuneAction(ch)
	}
	return input.Action{}, false
}
