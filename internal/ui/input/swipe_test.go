package input

import (
	"testing"

	"snake/internal/domain"
)

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   domain.Direction
		ok     bool
	}{
		{"below threshold", 10, -17, 0, false},
		{"right", 30, 5, domain.DirectionRight, true},
		{"left", -18, 0, domain.DirectionLeft, true},
		{"down", 4, 25, domain.DirectionDown, true},
		{"up", -10, -40, domain.DirectionUp, true},
		{"diagonal tie goes vertical", 20, 20, domain.DirectionDown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipeDetector()
			s.Begin(100, 100)
			got, ok := s.Move(100+tt.dx, 100+tt.dy)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Move = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSwipeFiresOncePerTouch(t *testing.T) {
	s := NewSwipeDetector()
	s.Begin(0, 0)

	if _, ok := s.Move(40, 0); !ok {
		t.Fatal("first swipe not detected")
	}
	if _, ok := s.Move(0, 80); ok {
		t.Error("second swipe in the same touch detected")
	}
	if s.End() {
		t.Error("swipe reported as tap")
	}

	if _, ok := s.Move(40, 0); ok {
		t.Error("move without Begin detected")
	}
}

func TestSwipeTap(t *testing.T) {
	s := NewSwipeDetector()
	s.Begin(50, 50)
	s.Move(55, 52)
	if !s.End() {
		t.Error("short touch not reported as tap")
	}
	if s.End() {
		t.Error("second End reported a tap")
	}
}

func TestRuneAction(t *testing.T) {
	tests := []struct {
		r    rune
		want Action
		ok   bool
	}{
		{'w', Steer(domain.DirectionUp), true},
		{'A', Steer(domain.DirectionLeft), true},
		{'s', Steer(domain.DirectionDown), true},
		{'d', Steer(domain.DirectionRight), true},
		{' ', Action{Kind: ActionToggle}, true},
		{'p', Action{Kind: ActionToggle}, true},
		{'R', Action{Kind: ActionRestart}, true},
		{'q', Action{Kind: ActionQuit}, true},
		{'x', Action{}, false},
	}
	for _, tt := range tests {
		got, ok := RuneAction(tt.r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RuneAction(%q) = %+v, %v; want %+v, %v", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}
