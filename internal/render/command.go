package render

import (
	"image/color"

	"snake/internal/domain"
)

type Op int

const (
	OpFillRect Op = iota
	OpStrokeRect
	OpLine
	OpCircle
	OpText
)

// Role says what a command depicts, so backends that cannot draw pixels
// (a terminal) can pick a glyph instead.
type Role int

const (
	RoleBackground Role = iota
	RoleFrame
	RoleBoard
	RoleGrid
	RoleApple
	RoleSnakeBody
	RoleSnakeHead
	RoleEye
	RoleOverlay
	RoleHUD
	RoleMessage
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Command is one drawing instruction.
//
// Rects use X, Y, W, H. Lines run from (X, Y) to (X2, Y2). Circles are
// centered on (X, Y). Text is anchored at (X, Y) on its baseline according
// to Align. Commands for apple and snake roles also carry the grid Cell.
type Command struct {
	Op    Op
	Role  Role
	Color color.RGBA

	X, Y   float32
	W, H   float32
	X2, Y2 float32
	Radius float32
	Stroke float32

	Text  string
	Align Align

	Cell domain.Coord
}

// AlignedX returns the left edge of a text command whose rendered width is
// width, in the same units as X.
func (c Command) AlignedX(width float32) float32 {
	switch c.Align {
	case AlignCenter:
		return c.X - width/2
	case AlignRight:
		return c.X - width
	}
	return c.X
}
