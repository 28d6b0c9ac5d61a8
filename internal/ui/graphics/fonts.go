package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// face is used for all text: HUD, overlay and status line.
var face font.Face = basicfont.Face7x13

func textWidth(s string) float32 {
	return float32(font.MeasureString(face, s).Round())
}
