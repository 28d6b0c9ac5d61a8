package graphics

import (
	"time"

	"snake/internal/app"
	"snake/internal/ui/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	DefaultWidth  = 540
	DefaultHeight = 720
)

// Engine is the ebiten.Game for the windowed front end. It forwards input
// to the App, lets it tick, and draws whatever the App renders.
type Engine struct {
	app *app.App

	width  int
	height int

	keyboard *KeyboardHandler
	touch    *TouchHandler

	now func() time.Time
}

func NewEngine(a *app.App, width, height int) *Engine {
	return &Engine{
		app:      a,
		width:    width,
		height:   height,
		keyboard: NewKeyboardHandler(),
		touch:    NewTouchHandler(),
		now:      time.Now,
	}
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	now := e.now()

	for _, a := range e.keyboard.Update() {
		if e.apply(a, now) {
			return ebiten.Termination
		}
	}
	for _, a := range e.touch.Update() {
		e.apply(a, now)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e.app.Layout().OnBoard(ebiten.CursorPosition()) {
			e.app.Toggle(now)
		}
	}

	e.app.Advance(now)
	return nil
}

// apply reports whether the player asked to quit.
func (e *Engine) apply(a input.Action, now time.Time) bool {
	switch a.Kind {
	case input.ActionSteer:
		e.app.Steer(a.Direction)
	case input.ActionToggle:
		e.app.Toggle(now)
	case input.ActionRestart:
		e.app.Restart(now)
	case input.ActionQuit:
		return true
	}
	return false
}

func (e *Engine) Draw(screen *ebiten.Image) {
	for _, cmd := range e.app.Frame() {
		drawCommand(screen, cmd)
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	e.app.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
