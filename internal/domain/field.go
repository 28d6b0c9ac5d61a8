package domain

// Field is the walled board. Unlike a torus there is no wrap-around:
// leaving it is a collision.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}
