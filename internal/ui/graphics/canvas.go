package graphics

import (
	"snake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawCommand(dst *ebiten.Image, cmd render.Command) {
	switch cmd.Op {
	case render.OpFillRect:
		vector.DrawFilledRect(dst, cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color, false)

	case render.OpStrokeRect:
		vector.StrokeRect(dst, cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Stroke, cmd.Color, false)

	case render.OpLine:
		vector.StrokeLine(dst, cmd.X, cmd.Y, cmd.X2, cmd.Y2, cmd.Stroke, cmd.Color, false)

	case render.OpCircle:
		vector.DrawFilledCircle(dst, cmd.X, cmd.Y, cmd.Radius, cmd.Color, true)

	case render.OpText:
		x := int(cmd.AlignedX(textWidth(cmd.Text)))
		text.Draw(dst, cmd.Text, face, x, int(cmd.Y), cmd.Color)
	}
}
