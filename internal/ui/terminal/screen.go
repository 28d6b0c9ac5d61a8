// Package terminal runs the game in a text terminal through tcell.
//
// The terminal is treated as a surface of logical pixels where one pixel is
// two columns wide and one row tall, which keeps grid cells roughly square.
package terminal

import (
	"image/color"

	"snake/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	appleGlyph = '●'
	headGlyph  = '@'
)

// Screen executes render commands on a tcell.Screen.
type Screen struct {
	screen tcell.Screen

	width, height int
	// bg remembers the fill under every column so text keeps it.
	bg []tcell.Color
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Surface returns the drawable size in logical pixels.
func (s *Screen) Surface() (int, int) {
	w, h := s.screen.Size()
	return w / 2, h
}

// Draw replaces the screen contents with cmds. Roles that only make sense
// with real pixels are skipped.
func (s *Screen) Draw(cmds []render.Command, layout render.Layout) {
	s.width, s.height = s.screen.Size()
	if need := s.width * s.height; cap(s.bg) < need {
		s.bg = make([]tcell.Color, need)
	} else {
		s.bg = s.bg[:need]
	}
	clear(s.bg)
	s.screen.Clear()

	for _, cmd := range cmds {
		switch cmd.Role {
		case render.RoleBackground, render.RoleBoard:
			if cmd.Op == render.OpFillRect {
				s.fillRect(int(cmd.X), int(cmd.Y), int(cmd.W), int(cmd.H), toColor(cmd.Color))
			}
		case render.RoleSnakeBody, render.RoleSnakeHead:
			if cmd.Op == render.OpFillRect {
				s.drawCell(cmd, layout)
			}
		case render.RoleApple:
			s.drawCell(cmd, layout)
		case render.RoleHUD, render.RoleMessage, render.RoleOverlay:
			if cmd.Op == render.OpText {
				s.drawText(cmd)
			}
		}
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) fillRect(x, y, w, h int, c tcell.Color) {
	style := tcell.StyleDefault.Background(c)
	for row := y; row < y+h; row++ {
		for col := x * 2; col < (x+w)*2; col++ {
			s.set(col, row, ' ', style, c)
		}
	}
}

func (s *Screen) drawCell(cmd render.Command, layout render.Layout) {
	x, y := layout.CellOrigin(cmd.Cell)
	size := layout.CellSize
	c := toColor(cmd.Color)

	switch cmd.Role {
	case render.RoleApple:
		boardBg := s.bgAt(int(x)*2, int(y))
		s.set(int(x)*2, int(y), appleGlyph, tcell.StyleDefault.Foreground(c).Background(boardBg), boardBg)
	case render.RoleSnakeHead:
		s.fillRect(int(x), int(y), size, size, c)
		s.set(int(x)*2, int(y), headGlyph, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(c), c)
	default:
		s.fillRect(int(x), int(y), size, size, c)
	}
}

func (s *Screen) drawText(cmd render.Command) {
	runes := []rune(cmd.Text)
	// Two columns per pixel, so n runes span n/2 pixels.
	col := int(cmd.AlignedX(float32(len(runes))/2) * 2)
	row := int(cmd.Y)
	fg := toColor(cmd.Color)
	for i, r := range runes {
		bg := s.bgAt(col+i, row)
		s.set(col+i, row, r, tcell.StyleDefault.Foreground(fg).Background(bg), bg)
	}
}

func (s *Screen) set(col, row int, r rune, style tcell.Style, bg tcell.Color) {
	if col < 0 || row < 0 || col >= s.width || row >= s.height {
		return
	}
	s.bg[row*s.width+col] = bg
	s.screen.SetContent(col, row, r, nil, style)
}

func (s *Screen) bgAt(col, row int) tcell.Color {
	if col < 0 || row < 0 || col >= s.width || row >= s.height {
		return tcell.ColorDefault
	}
	return s.bg[row*s.width+col]
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
