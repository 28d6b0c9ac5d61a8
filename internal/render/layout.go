package render

import (
	"math"

	"snake/internal/domain"
)

// paddingRatio is the share of the shorter surface side kept free around
// the board.
const paddingRatio = 0.06

// Layout places the board on a drawing surface. All values are in surface
// pixels.
type Layout struct {
	SurfaceWidth  int
	SurfaceHeight int
	Padding       int
	CellSize      int
	BoardWidth    int
	BoardHeight   int
	OriginX       int
	OriginY       int
}

// ComputeLayout fits the largest whole-pixel cells into the padded surface
// and centers the board. It has to be recomputed whenever the surface or
// the grid changes.
func ComputeLayout(surfaceWidth, surfaceHeight int, config *domain.GameConfig) Layout {
	padding := int(math.Round(float64(min(surfaceWidth, surfaceHeight)) * paddingRatio))
	availW := surfaceWidth - padding*2
	availH := surfaceHeight - padding*2

	cellSize := int(math.Floor(math.Min(
		float64(availW)/float64(config.Columns),
		float64(availH)/float64(config.Rows),
	)))
	if cellSize < 1 {
		cellSize = 1
	}

	boardW := cellSize * config.Columns
	boardH := cellSize * config.Rows

	return Layout{
		SurfaceWidth:  surfaceWidth,
		SurfaceHeight: surfaceHeight,
		Padding:       padding,
		CellSize:      cellSize,
		BoardWidth:    boardW,
		BoardHeight:   boardH,
		OriginX:       int(math.Floor(float64(surfaceWidth-boardW) / 2)),
		OriginY:       int(math.Floor(float64(surfaceHeight-boardH) / 2)),
	}
}

// CellOrigin returns the top-left pixel of cell c.
func (l Layout) CellOrigin(c domain.Coord) (x, y float32) {
	return float32(l.OriginX + c.X*l.CellSize), float32(l.OriginY + c.Y*l.CellSize)
}

// CellCenter returns the pixel center of cell c.
func (l Layout) CellCenter(c domain.Coord) (x, y float32) {
	x, y = l.CellOrigin(c)
	half := float32(l.CellSize) / 2
	return x + half, y + half
}

// OnBoard reports whether the surface pixel (x, y) falls inside the board.
func (l Layout) OnBoard(x, y int) bool {
	return x >= l.OriginX && x < l.OriginX+l.BoardWidth &&
		y >= l.OriginY && y < l.OriginY+l.BoardHeight
}
