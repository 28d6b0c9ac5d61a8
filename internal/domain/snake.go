package domain

// Snake stores its segments tail first: Points[0] is the tail and the last
// element is the head.
type Snake struct {
	Points []Coord
}

// NewSnake lays out a straight horizontal snake whose tail sits at tail and
// whose head points right.
func NewSnake(tail Coord, length int) *Snake {
	points := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		points = append(points, Coord{X: tail.X + i, Y: tail.Y})
	}
	return &Snake{Points: points}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Len() int {
	return len(s.Points)
}

func (s *Snake) Contains(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

// Advance appends head and, unless the snake grows this tick, drops the tail.
func (s *Snake) Advance(head Coord, grow bool) {
	s.Points = append(s.Points, head)
	if !grow {
		s.Points = s.Points[1:]
	}
}

func (s *Snake) Copy() *Snake {
	points := make([]Coord, len(s.Points))
	copy(points, s.Points)
	return &Snake{Points: points}
}
