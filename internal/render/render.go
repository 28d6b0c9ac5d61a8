package render

import (
	"fmt"

	"snake/internal/domain"
)

// Render turns a game snapshot into a full redraw of the surface. It only
// reads state.
func Render(state *domain.GameState, config *domain.GameConfig, layout Layout, theme Theme) []Command {
	cmds := make([]Command, 0, 16+config.Columns+config.Rows+state.Snake.Len()*2)

	cmds = append(cmds, Command{
		Op:    OpFillRect,
		Role:  RoleBackground,
		Color: theme.Background,
		W:     float32(layout.SurfaceWidth),
		H:     float32(layout.SurfaceHeight),
	})

	cmds = appendBoard(cmds, config, layout, theme)
	cmds = appendApple(cmds, state.Apple, layout, theme)
	cmds = appendSnake(cmds, state, layout, theme)
	cmds = appendHUD(cmds, state, layout, theme)
	cmds = appendOverlay(cmds, state, layout, theme)

	return cmds
}

func appendBoard(cmds []Command, config *domain.GameConfig, layout Layout, theme Theme) []Command {
	ox, oy := float32(layout.OriginX), float32(layout.OriginY)
	w, h := float32(layout.BoardWidth), float32(layout.BoardHeight)
	margin := float32(max(1, layout.CellSize/3))

	cmds = append(cmds,
		Command{
			Op:     OpStrokeRect,
			Role:   RoleFrame,
			Color:  theme.Frame,
			X:      ox - margin,
			Y:      oy - margin,
			W:      w + margin*2,
			H:      h + margin*2,
			Stroke: margin,
		},
		Command{
			Op:    OpFillRect,
			Role:  RoleBoard,
			Color: theme.Board,
			X:     ox,
			Y:     oy,
			W:     w,
			H:     h,
		},
	)

	cell := float32(layout.CellSize)
	for c := 1; c < config.Columns; c++ {
		x := ox + float32(c)*cell
		cmds = append(cmds, Command{Op: OpLine, Role: RoleGrid, Color: theme.Grid, X: x, Y: oy, X2: x, Y2: oy + h, Stroke: 1})
	}
	for r := 1; r < config.Rows; r++ {
		y := oy + float32(r)*cell
		cmds = append(cmds, Command{Op: OpLine, Role: RoleGrid, Color: theme.Grid, X: ox, Y: y, X2: ox + w, Y2: y, Stroke: 1})
	}
	return cmds
}

func appendApple(cmds []Command, apple domain.Coord, layout Layout, theme Theme) []Command {
	cx, cy := layout.CellCenter(apple)
	return append(cmds, Command{
		Op:     OpCircle,
		Role:   RoleApple,
		Color:  theme.Apple,
		X:      cx,
		Y:      cy,
		Radius: float32(layout.CellSize) * 0.35,
		Cell:   apple,
	})
}

func appendSnake(cmds []Command, state *domain.GameState, layout Layout, theme Theme) []Command {
	cell := float32(layout.CellSize)
	inset := cell * theme.Inset
	last := state.Snake.Len() - 1

	for i, seg := range state.Snake.Points {
		x, y := layout.CellOrigin(seg)
		cmd := Command{
			Op:    OpFillRect,
			Role:  RoleSnakeBody,
			Color: theme.SnakeBody,
			X:     x + inset,
			Y:     y + inset,
			W:     cell - inset*2,
			H:     cell - inset*2,
			Cell:  seg,
		}
		if i == last {
			cmd.Role = RoleSnakeHead
			cmd.Color = theme.SnakeHead
		}
		cmds = append(cmds, cmd)
	}

	if theme.Eyes && last >= 0 {
		cmds = appendEyes(cmds, state.Snake.Head(), state.Direction, layout, theme)
	}
	return cmds
}

// appendEyes puts two eyes on the head, looking where the snake is going.
func appendEyes(cmds []Command, head domain.Coord, dir domain.Direction, layout Layout, theme Theme) []Command {
	cx, cy := layout.CellCenter(head)
	cell := float32(layout.CellSize)

	fwd := dir.Delta()
	side := domain.Coord{X: -fwd.Y, Y: fwd.X}
	r := max(1, cell*0.08)

	for _, s := range []float32{-1, 1} {
		cmds = append(cmds, Command{
			Op:     OpCircle,
			Role:   RoleEye,
			Color:  theme.Eye,
			X:      cx + float32(fwd.X)*cell*0.15 + float32(side.X)*s*cell*0.2,
			Y:      cy + float32(fwd.Y)*cell*0.15 + float32(side.Y)*s*cell*0.2,
			Radius: r,
			Cell:   head,
		})
	}
	return cmds
}

func hudBaseline(layout Layout) float32 {
	return float32(layout.OriginY - max(1, layout.Padding/2))
}

func appendHUD(cmds []Command, state *domain.GameState, layout Layout, theme Theme) []Command {
	y := hudBaseline(layout)
	return append(cmds,
		Command{
			Op:    OpText,
			Role:  RoleHUD,
			Color: theme.Text,
			X:     float32(layout.OriginX),
			Y:     y,
			Text:  fmt.Sprintf("Score: %d", state.Score),
			Align: AlignLeft,
		},
		Command{
			Op:    OpText,
			Role:  RoleHUD,
			Color: theme.Highlight,
			X:     float32(layout.OriginX + layout.BoardWidth),
			Y:     y,
			Text:  fmt.Sprintf("Best: %d", state.BestScore),
			Align: AlignRight,
		},
	)
}

func appendOverlay(cmds []Command, state *domain.GameState, layout Layout, theme Theme) []Command {
	cx := float32(layout.OriginX) + float32(layout.BoardWidth)/2
	cy := float32(layout.OriginY) + float32(layout.BoardHeight)/2
	line := float32(max(1, layout.CellSize))

	switch {
	case state.IsGameOver:
		return append(cmds,
			Command{
				Op:    OpFillRect,
				Role:  RoleOverlay,
				Color: theme.Overlay,
				X:     float32(layout.OriginX),
				Y:     float32(layout.OriginY),
				W:     float32(layout.BoardWidth),
				H:     float32(layout.BoardHeight),
			},
			Command{Op: OpText, Role: RoleOverlay, Color: theme.Text, X: cx, Y: cy - line, Text: "Game Over!", Align: AlignCenter},
			Command{Op: OpText, Role: RoleOverlay, Color: theme.TextDim, X: cx, Y: cy + line, Text: fmt.Sprintf("Score: %d", state.Score), Align: AlignCenter},
		)
	case !state.IsRunning:
		return append(cmds, Command{Op: OpText, Role: RoleOverlay, Color: theme.TextDim, X: cx, Y: cy, Text: "Press Space to play", Align: AlignCenter})
	}
	return cmds
}

// Message renders a driver status line under the board.
func Message(text string, layout Layout, theme Theme) Command {
	return Command{
		Op:    OpText,
		Role:  RoleMessage,
		Color: theme.TextDim,
		X:     float32(layout.OriginX) + float32(layout.BoardWidth)/2,
		Y:     float32(layout.OriginY + layout.BoardHeight + max(1, layout.Padding/2)),
		Text:  text,
		Align: AlignCenter,
	}
}
