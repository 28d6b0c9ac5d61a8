package domain

import "testing"

func TestNewGameConfigOrientation(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		cols, rows int
	}{
		{"portrait", 390, 844, 20, 28},
		{"square counts as portrait", 600, 600, 20, 28},
		{"landscape", 1280, 720, 28, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGameConfig(tt.w, tt.h)
			if c.Columns != tt.cols || c.Rows != tt.rows {
				t.Errorf("grid = %dx%d, want %dx%d", c.Columns, c.Rows, tt.cols, tt.rows)
			}
			if c.InitialSnakeLength != 4 || c.BaseSpeedMs != 140 || c.MinSpeedMs != 70 || c.SpeedupEvery != 5 {
				t.Errorf("constants changed: %+v", c)
			}
			if err := c.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"tiny grid", func(c *GameConfig) { c.Columns = 1 }},
		{"no snake", func(c *GameConfig) { c.InitialSnakeLength = 0 }},
		{"snake too long", func(c *GameConfig) { c.InitialSnakeLength = 15 }},
		{"speed range", func(c *GameConfig) { c.MinSpeedMs = 200 }},
		{"speedup", func(c *GameConfig) { c.SpeedupEvery = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultGameConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"modern", "classic"} {
		p, err := ParsePreset(name)
		if err != nil {
			t.Fatalf("ParsePreset(%q): %v", name, err)
		}
		if err := PresetConfig(p, 800, 600).Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := ParsePreset("neon"); err == nil {
		t.Error("unknown preset accepted")
	}

	classic := PresetConfig(PresetClassic, 800, 600)
	if classic.Columns != 20 || classic.Rows != 20 || SpeedForScore(classic, 100) != 200 {
		t.Errorf("classic = %+v", classic)
	}
}

func TestDirection(t *testing.T) {
	pairs := [][2]Direction{{DirectionUp, DirectionDown}, {DirectionLeft, DirectionRight}}
	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%v/%v not opposite", p[0], p[1])
		}
		if p[0].IsOpposite(p[0]) {
			t.Errorf("%v opposite itself", p[0])
		}
		d, err := ParseDirection(p[0].String())
		if err != nil || d != p[0] {
			t.Errorf("ParseDirection(%q) = %v, %v", p[0].String(), d, err)
		}
	}
	if Direction(0).IsOpposite(Direction(0)) {
		t.Error("zero direction opposite itself")
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("unknown direction parsed")
	}
}
