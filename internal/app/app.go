package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"snake/internal/domain"
	"snake/internal/render"
)

// App drives one game session: it owns the state, decides when a tick is
// due and keeps the layout in step with the drawing surface. Front ends
// call it from their frame loop and never touch the state directly.
type App struct {
	preset domain.Preset
	theme  render.Theme
	state  *domain.GameState

	config     *domain.GameConfig
	nextConfig *domain.GameConfig
	layout     render.Layout
	surfaceW   int
	surfaceH   int

	tickEvery time.Duration
	lastTick  time.Time
	started   bool
	message   string

	mu sync.Mutex

	eventCh chan AppEvent
}

type AppEvent struct {
	Type   AppEventType
	Result domain.StepResult
	Status domain.Status
}

type AppEventType int

const (
	AppEventStepped AppEventType = iota
	AppEventAte
	AppEventGameOver
	AppEventNewBest
	AppEventBoardFull
)

const (
	MessageGo       = "Go!"
	MessagePaused   = "Paused"
	MessageGameOver = "Game Over! Press Space to play again."
)

type Options struct {
	Preset domain.Preset
	// Theme overrides the preset's theme when its Name is set.
	Theme         render.Theme
	Store         domain.ScoreStore
	Rand          domain.Rand
	SurfaceWidth  int
	SurfaceHeight int
}

func NewApp(opts Options) (*App, error) {
	if opts.Preset == "" {
		opts.Preset = domain.PresetModern
	}
	if _, err := domain.ParsePreset(string(opts.Preset)); err != nil {
		return nil, err
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = render.ThemeFor(opts.Preset)
	}

	config := domain.PresetConfig(opts.Preset, opts.SurfaceWidth, opts.SurfaceHeight)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", opts.Preset, err)
	}
	a := &App{
		preset:     opts.Preset,
		theme:      theme,
		state:      domain.NewGameState(config, opts.Store, opts.Rand),
		config:     config,
		nextConfig: config,
		surfaceW:   opts.SurfaceWidth,
		surfaceH:   opts.SurfaceHeight,
		eventCh:    make(chan AppEvent, 100),
	}
	a.tickEvery = domain.TickInterval(config, 0)
	a.layout = render.ComputeLayout(a.surfaceW, a.surfaceH, a.config)
	return a, nil
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

// Start resumes play, starting over first when the last game has ended.
func (a *App) Start(now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state.Status().IsGameOver {
		a.resetUnlocked()
	}
	a.state.Start()
	a.started = true
	a.tickEvery = domain.TickInterval(a.config, a.state.Status().Score)
	a.lastTick = now
	a.message = MessageGo
}

func (a *App) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.Status().IsRunning {
		return
	}
	a.state.Pause()
	a.message = MessagePaused
}

func (a *App) Toggle(now time.Time) {
	if a.Status().IsRunning {
		a.Pause()
		return
	}
	a.Start(now)
}

// Restart throws the current game away and starts a new one right away.
func (a *App) Restart(now time.Time) {
	a.mu.Lock()
	a.resetUnlocked()
	a.mu.Unlock()

	a.Start(now)
}

func (a *App) resetUnlocked() {
	a.config = a.nextConfig
	a.state.Reset(a.config)
	a.layout = render.ComputeLayout(a.surfaceW, a.surfaceH, a.config)
	a.started = false
	a.message = ""
}

// Steer queues a turn. It reports whether the turn was accepted.
func (a *App) Steer(dir domain.Direction) bool {
	return a.state.EnqueueDirection(dir)
}

// Resize records a new surface size. The layout follows immediately; a
// grid orientation change waits for the next game unless the current one
// has not started yet.
func (a *App) Resize(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if width == a.surfaceW && height == a.surfaceH {
		return
	}
	a.surfaceW, a.surfaceH = width, height
	a.nextConfig = domain.PresetConfig(a.preset, width, height)

	if !a.started && *a.nextConfig != *a.config {
		a.config = a.nextConfig
		a.state.Reset(a.config)
		a.tickEvery = domain.TickInterval(a.config, 0)
	}
	a.layout = render.ComputeLayout(width, height, a.config)
}

// Advance runs at most one tick if a full interval has passed since the
// last one. It reports whether a tick ran.
func (a *App) Advance(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.Status().IsRunning {
		return false
	}
	if now.Sub(a.lastTick) < a.tickEvery {
		return false
	}

	result := a.state.Step()
	status := a.state.Status()
	a.tickEvery = domain.TickInterval(a.config, status.Score)
	a.lastTick = now

	a.emit(AppEvent{Type: AppEventStepped, Result: result, Status: status})
	if result.Ate {
		a.emit(AppEvent{Type: AppEventAte, Result: result, Status: status})
	}
	if result.BoardFull {
		log.Printf("No free cell for the apple, placed it on the snake")
		a.emit(AppEvent{Type: AppEventBoardFull, Result: result, Status: status})
	}
	if result.GameOver() {
		log.Printf("Game over (%s collision), score %d, best %d", result.Collision, status.Score, status.BestScore)
		a.message = MessageGameOver
		a.emit(AppEvent{Type: AppEventGameOver, Result: result, Status: status})
		if result.NewBest {
			a.emit(AppEvent{Type: AppEventNewBest, Result: result, Status: status})
		}
	}
	return true
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("Event channel full, dropping event")
	}
}

// Frame renders the current state plus the status message.
func (a *App) Frame() []render.Command {
	a.mu.Lock()
	layout, theme, msg := a.layout, a.theme, a.message
	a.mu.Unlock()

	snapshot := a.state.Copy()
	cmds := render.Render(snapshot, snapshot.Config, layout, theme)
	if msg != "" {
		cmds = append(cmds, render.Message(msg, layout, theme))
	}
	return cmds
}

func (a *App) Status() domain.Status {
	return a.state.Status()
}

func (a *App) Snapshot() *domain.GameState {
	return a.state.Copy()
}

func (a *App) Layout() render.Layout {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.layout
}

func (a *App) Config() *domain.GameConfig {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.config.Copy()
}

func (a *App) TickInterval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tickEvery
}

func (a *App) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}
