package render

import (
	"fmt"
	"image/color"

	"snake/internal/domain"
)

type Theme struct {
	Name string

	Background color.RGBA
	Frame      color.RGBA
	Board      color.RGBA
	Grid       color.RGBA
	Apple      color.RGBA
	SnakeBody  color.RGBA
	SnakeHead  color.RGBA
	Eye        color.RGBA
	Overlay    color.RGBA
	Text       color.RGBA
	TextDim    color.RGBA
	Highlight  color.RGBA

	// Eyes draws eyes on the head.
	Eyes bool
	// Inset is the share of a cell left empty around each snake segment.
	Inset float32
}

var (
	modernBoard  = color.RGBA{15, 26, 51, 255}
	modernBody   = color.RGBA{22, 163, 74, 255}
	classicBoard = color.RGBA{26, 26, 46, 255}
	classicBody  = color.RGBA{34, 197, 94, 255}
)

// headLight is how much brighter the head is than the body.
const headLight = 1.2

var (
	ThemeModern = Theme{
		Name:       "modern",
		Background: color.RGBA{11, 18, 36, 255},
		Frame:      Darken(modernBoard, 0.6),
		Board:      modernBoard,
		Grid:       color.RGBA{30, 41, 66, 255},
		Apple:      color.RGBA{52, 211, 153, 255},
		SnakeBody:  modernBody,
		SnakeHead:  Lighten(modernBody, headLight),
		Eye:        color.RGBA{11, 18, 36, 255},
		Overlay:    color.RGBA{0, 0, 0, 160},
		Text:       color.RGBA{226, 232, 240, 255},
		TextDim:    color.RGBA{148, 163, 184, 255},
		Highlight:  color.RGBA{250, 204, 21, 255},
		Eyes:       true,
		Inset:      0.1,
	}

	ThemeClassic = Theme{
		Name:       "classic",
		Background: color.RGBA{26, 26, 46, 255},
		Frame:      Lighten(classicBoard, 2.3),
		Board:      classicBoard,
		Grid:       color.RGBA{50, 50, 70, 255},
		Apple:      color.RGBA{239, 68, 68, 255},
		SnakeBody:  classicBody,
		SnakeHead:  Lighten(classicBody, headLight),
		Eye:        color.RGBA{26, 26, 46, 255},
		Overlay:    color.RGBA{0, 0, 0, 190},
		Text:       color.RGBA{255, 255, 255, 255},
		TextDim:    color.RGBA{170, 170, 190, 255},
		Highlight:  color.RGBA{255, 255, 100, 255},
		Inset:      0.1,
	}
)

func ThemeFor(p domain.Preset) Theme {
	if p == domain.PresetClassic {
		return ThemeClassic
	}
	return ThemeModern
}

func ParseTheme(name string) (Theme, error) {
	switch name {
	case ThemeModern.Name:
		return ThemeModern, nil
	case ThemeClassic.Name:
		return ThemeClassic, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Darken scales each channel by factor, keeping alpha.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten scales each channel up by factor, clamped at 255.
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}
