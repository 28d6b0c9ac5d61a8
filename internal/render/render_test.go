package render

import (
	"math/rand"
	"reflect"
	"testing"

	"snake/internal/domain"
)

func TestComputeLayout(t *testing.T) {
	cfg := domain.NewGameConfig(360, 540)
	l := ComputeLayout(360, 540, cfg)

	want := Layout{
		SurfaceWidth:  360,
		SurfaceHeight: 540,
		Padding:       22,
		CellSize:      15,
		BoardWidth:    300,
		BoardHeight:   420,
		OriginX:       30,
		OriginY:       60,
	}
	if l != want {
		t.Errorf("layout = %+v, want %+v", l, want)
	}
}

func TestComputeLayoutFitsAndCenters(t *testing.T) {
	sizes := [][2]int{{360, 540}, {1024, 768}, {1920, 1080}, {390, 844}, {97, 61}}
	for _, sz := range sizes {
		for _, cfg := range []*domain.GameConfig{
			domain.NewGameConfig(sz[0], sz[1]),
			domain.PresetConfig(domain.PresetClassic, sz[0], sz[1]),
		} {
			l := ComputeLayout(sz[0], sz[1], cfg)
			if l.CellSize < 1 {
				t.Fatalf("%v: cell size %d", sz, l.CellSize)
			}
			if l.CellSize > 1 {
				if l.BoardWidth > sz[0]-2*l.Padding || l.BoardHeight > sz[1]-2*l.Padding {
					t.Errorf("%v: board %dx%d exceeds padded area", sz, l.BoardWidth, l.BoardHeight)
				}
				// One more pixel per cell must not fit.
				bigger := l.CellSize + 1
				if bigger*cfg.Columns <= sz[0]-2*l.Padding && bigger*cfg.Rows <= sz[1]-2*l.Padding {
					t.Errorf("%v: cell size %d is not the largest", sz, l.CellSize)
				}
			}
			left, right := l.OriginX, sz[0]-l.OriginX-l.BoardWidth
			top, bottom := l.OriginY, sz[1]-l.OriginY-l.BoardHeight
			if d := right - left; d < 0 || d > 1 {
				t.Errorf("%v: not centered horizontally (%d, %d)", sz, left, right)
			}
			if d := bottom - top; d < 0 || d > 1 {
				t.Errorf("%v: not centered vertically (%d, %d)", sz, top, bottom)
			}
		}
	}
}

func TestLayoutCells(t *testing.T) {
	l := ComputeLayout(360, 540, domain.NewGameConfig(360, 540))

	x, y := l.CellOrigin(domain.Coord{X: 2, Y: 3})
	if x != 60 || y != 105 {
		t.Errorf("CellOrigin = (%v, %v)", x, y)
	}
	cx, cy := l.CellCenter(domain.Coord{X: 0, Y: 0})
	if cx != 37.5 || cy != 67.5 {
		t.Errorf("CellCenter = (%v, %v)", cx, cy)
	}
	if !l.OnBoard(30, 60) || l.OnBoard(330, 60) || l.OnBoard(29, 100) {
		t.Error("OnBoard bounds wrong")
	}
}

func newState(t *testing.T) *domain.GameState {
	t.Helper()
	gs := domain.NewGameState(domain.NewGameConfig(360, 540), nil, rand.New(rand.NewSource(1)))
	gs.Start()
	gs.EnqueueDirection(domain.DirectionUp)
	gs.Step()
	return gs.Copy()
}

func TestRenderDoesNotMutate(t *testing.T) {
	state := newState(t)
	before := state.Copy()

	Render(state, state.Config, ComputeLayout(360, 540, state.Config), ThemeModern)

	if !reflect.DeepEqual(before.Snake, state.Snake) ||
		!reflect.DeepEqual(before.PendingDirections, state.PendingDirections) ||
		before.Apple != state.Apple || before.Direction != state.Direction ||
		before.Status() != state.Status() {
		t.Error("Render changed the state")
	}
}

func TestRenderContents(t *testing.T) {
	state := newState(t)
	layout := ComputeLayout(360, 540, state.Config)

	for _, theme := range []Theme{ThemeModern, ThemeClassic} {
		t.Run(theme.Name, func(t *testing.T) {
			cmds := Render(state, state.Config, layout, theme)

			if cmds[0].Role != RoleBackground || cmds[0].W != 360 || cmds[0].H != 540 {
				t.Errorf("first command does not clear the surface: %+v", cmds[0])
			}

			counts := make(map[Role]int)
			var head, apple Command
			for _, c := range cmds {
				counts[c.Role]++
				switch c.Role {
				case RoleSnakeHead:
					head = c
				case RoleApple:
					apple = c
				}
			}

			if counts[RoleSnakeHead] != 1 || head.Cell != state.Snake.Head() {
				t.Errorf("head commands = %d at %v, want 1 at %v", counts[RoleSnakeHead], head.Cell, state.Snake.Head())
			}
			if counts[RoleSnakeBody] != state.Snake.Len()-1 {
				t.Errorf("body commands = %d, want %d", counts[RoleSnakeBody], state.Snake.Len()-1)
			}
			if counts[RoleApple] != 1 || apple.Cell != state.Apple {
				t.Errorf("apple commands = %d at %v", counts[RoleApple], apple.Cell)
			}
			if head.Color == theme.SnakeBody || apple.Color == theme.SnakeBody || apple.Color == theme.SnakeHead {
				t.Error("head, body and apple share a color")
			}
			if counts[RoleFrame] != 1 || counts[RoleBoard] != 1 {
				t.Error("board boundary missing")
			}
			if want := state.Config.Columns - 1 + state.Config.Rows - 1; counts[RoleGrid] != want {
				t.Errorf("grid lines = %d, want %d", counts[RoleGrid], want)
			}
			if counts[RoleHUD] != 2 {
				t.Errorf("HUD lines = %d, want 2", counts[RoleHUD])
			}
			if theme.Eyes != (counts[RoleEye] == 2) {
				t.Errorf("eyes = %d with theme.Eyes = %v", counts[RoleEye], theme.Eyes)
			}
			if counts[RoleOverlay] != 0 {
				t.Error("overlay drawn while running")
			}
		})
	}
}

func TestRenderOverlay(t *testing.T) {
	state := newState(t)
	layout := ComputeLayout(360, 540, state.Config)

	state.IsRunning = false
	cmds := Render(state, state.Config, layout, ThemeModern)
	if !hasText(cmds, "Press Space to play") {
		t.Error("paused hint missing")
	}

	state.IsGameOver = true
	state.Score = 3
	cmds = Render(state, state.Config, layout, ThemeModern)
	if !hasText(cmds, "Game Over!") || !hasText(cmds, "Score: 3") {
		t.Error("game over overlay missing")
	}
	last := cmds[len(cmds)-1]
	if last.Role != RoleOverlay {
		t.Errorf("overlay is not drawn last: %+v", last)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	state := newState(t)
	layout := ComputeLayout(1024, 768, state.Config)

	a := Render(state, state.Config, layout, ThemeModern)
	b := Render(state, state.Config, layout, ThemeModern)
	if !reflect.DeepEqual(a, b) {
		t.Error("two renders of the same state differ")
	}
}

func TestMessage(t *testing.T) {
	layout := ComputeLayout(360, 540, domain.NewGameConfig(360, 540))
	m := Message("Paused", layout, ThemeClassic)
	if m.Op != OpText || m.Align != AlignCenter || m.Y <= float32(layout.OriginY+layout.BoardHeight) {
		t.Errorf("message = %+v", m)
	}
}

func hasText(cmds []Command, s string) bool {
	for _, c := range cmds {
		if c.Op == OpText && c.Text == s {
			return true
		}
	}
	return false
}
