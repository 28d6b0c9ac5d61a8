package input

import (
	"math"

	"snake/internal/domain"
)

// DefaultSwipeThreshold is how far, in pixels, a finger has to travel along
// one axis before the gesture counts as a swipe.
const DefaultSwipeThreshold = 18

// SwipeDetector turns one touch into at most one direction. After a swipe
// fires it stays quiet until the next Begin.
type SwipeDetector struct {
	Threshold float64

	startX, startY float64
	armed          bool
	fired          bool
}

func NewSwipeDetector() *SwipeDetector {
	return &SwipeDetector{Threshold: DefaultSwipeThreshold}
}

func (s *SwipeDetector) Begin(x, y int) {
	s.startX, s.startY = float64(x), float64(y)
	s.armed = true
	s.fired = false
}

// Move reports a direction once the touch has moved past the threshold;
// the dominant axis wins.
func (s *SwipeDetector) Move(x, y int) (domain.Direction, bool) {
	if !s.armed {
		return 0, false
	}

	dx := float64(x) - s.startX
	dy := float64(y) - s.startY
	if math.Abs(dx) < s.Threshold && math.Abs(dy) < s.Threshold {
		return 0, false
	}
	s.armed = false
	s.fired = true

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return domain.DirectionRight, true
		}
		return domain.DirectionLeft, true
	}
	if dy > 0 {
		return domain.DirectionDown, true
	}
	return domain.DirectionUp, true
}

// End finishes the touch. It reports a tap: a touch that never turned into
// a swipe.
func (s *SwipeDetector) End() bool {
	tap := s.armed && !s.fired
	s.armed = false
	s.fired = false
	return tap
}
