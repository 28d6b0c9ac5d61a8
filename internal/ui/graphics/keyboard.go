package graphics

import (
	"snake/internal/domain"
	"snake/internal/ui/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type KeyboardHandler struct {
	actions []input.Action
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

var steerKeys = []struct {
	keys []ebiten.Key
	dir  domain.Direction
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, domain.DirectionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, domain.DirectionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, domain.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, domain.DirectionRight},
}

// Update returns the actions for keys pressed since the last frame. Several
// turns in one frame are all kept, the game queues them.
func (kh *KeyboardHandler) Update() []input.Action {
	kh.actions = kh.actions[:0]

	for _, sk := range steerKeys {
		if anyJustPressed(sk.keys...) {
			kh.actions = append(kh.actions, input.Steer(sk.dir))
		}
	}
	if anyJustPressed(ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyP) {
		kh.actions = append(kh.actions, input.Action{Kind: input.ActionToggle})
	}
	if anyJustPressed(ebiten.KeyR) {
		kh.actions = append(kh.actions, input.Action{Kind: input.ActionRestart})
	}
	if anyJustPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		kh.actions = append(kh.actions, input.Action{Kind: input.ActionQuit})
	}

	return kh.actions
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
