package graphics

import (
	"snake/internal/ui/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchHandler follows the first finger down: a swipe steers, a tap
// toggles play.
type TouchHandler struct {
	swipe   *input.SwipeDetector
	id      ebiten.TouchID
	active  bool
	pressed []ebiten.TouchID
	actions []input.Action
}

func NewTouchHandler() *TouchHandler {
	return &TouchHandler{swipe: input.NewSwipeDetector()}
}

func (th *TouchHandler) Update() []input.Action {
	th.actions = th.actions[:0]

	if !th.active {
		th.pressed = inpututil.AppendJustPressedTouchIDs(th.pressed[:0])
		if len(th.pressed) == 0 {
			return th.actions
		}
		th.id = th.pressed[0]
		th.active = true
		th.swipe.Begin(ebiten.TouchPosition(th.id))
		return th.actions
	}

	if inpututil.IsTouchJustReleased(th.id) {
		th.active = false
		if th.swipe.End() {
			th.actions = append(th.actions, input.Action{Kind: input.ActionToggle})
		}
		return th.actions
	}

	if dir, ok := th.swipe.Move(ebiten.TouchPosition(th.id)); ok {
		th.actions = append(th.actions, input.Steer(dir))
	}
	return th.actions
}
