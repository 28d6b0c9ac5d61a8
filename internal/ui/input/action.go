package input

import (
	"unicode"

	"snake/internal/domain"
)

type ActionKind int

const (
	ActionSteer ActionKind = iota
	ActionToggle
	ActionRestart
	ActionQuit
)

// Action is a player intent decoded from a key press or gesture.
type Action struct {
	Kind      ActionKind
	Direction domain.Direction
}

func Steer(dir domain.Direction) Action {
	return Action{Kind: ActionSteer, Direction: dir}
}

// RuneAction maps the letter and space keys shared by every front end.
func RuneAction(r rune) (Action, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return Steer(domain.DirectionUp), true
	case 's':
		return Steer(domain.DirectionDown), true
	case 'a':
		return Steer(domain.DirectionLeft), true
	case 'd':
		return Steer(domain.DirectionRight), true
	case ' ', 'p':
		return Action{Kind: ActionToggle}, true
	case 'r':
		return Action{Kind: ActionRestart}, true
	case 'q':
		return Action{Kind: ActionQuit}, true
	}
	return Action{}, false
}
