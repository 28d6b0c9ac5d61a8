package domain

import (
	"errors"
	"fmt"
)

// GameConfig is fixed for the lifetime of a game. A restart may swap it
// for a fresh one, but nothing mutates it in place.
type GameConfig struct {
	Columns            int
	Rows               int
	InitialSnakeLength int
	BaseSpeedMs        int
	MinSpeedMs         int
	// SpeedupEvery is the number of points between two speed increases.
	SpeedupEvery int
}

const (
	portraitColumns  = 20
	portraitRows     = 28
	landscapeColumns = 28
	landscapeRows    = 20
)

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Columns:            portraitColumns,
		Rows:               portraitRows,
		InitialSnakeLength: 4,
		BaseSpeedMs:        140,
		MinSpeedMs:         70,
		SpeedupEvery:       5,
	}
}

// NewGameConfig picks the grid orientation from the viewport: a viewport
// at least as tall as it is wide gets the portrait grid.
func NewGameConfig(viewportWidth, viewportHeight int) *GameConfig {
	c := DefaultGameConfig()
	if viewportHeight < viewportWidth {
		c.Columns = landscapeColumns
		c.Rows = landscapeRows
	}
	return c
}

func (c *GameConfig) Validate() error {
	var errs []error
	if c.Columns < 2 || c.Rows < 1 {
		errs = append(errs, fmt.Errorf("grid %dx%d too small", c.Columns, c.Rows))
	}
	if c.InitialSnakeLength < 1 {
		errs = append(errs, fmt.Errorf("initial snake length %d must be positive", c.InitialSnakeLength))
	} else if c.Columns/3+c.InitialSnakeLength > c.Columns {
		errs = append(errs, fmt.Errorf("initial snake length %d does not fit %d columns", c.InitialSnakeLength, c.Columns))
	}
	if c.MinSpeedMs < 1 || c.BaseSpeedMs < c.MinSpeedMs {
		errs = append(errs, fmt.Errorf("speed range %d..%dms invalid", c.MinSpeedMs, c.BaseSpeedMs))
	}
	if c.SpeedupEvery < 1 {
		errs = append(errs, fmt.Errorf("speedup threshold %d must be positive", c.SpeedupEvery))
	}
	return errors.Join(errs...)
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

func (c *GameConfig) Field() *Field {
	return NewField(c.Columns, c.Rows)
}

// Preset names a parameter set together with the theme it is drawn with.
type Preset string

const (
	PresetModern  Preset = "modern"
	PresetClassic Preset = "classic"
)

func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case PresetModern, PresetClassic:
		return Preset(s), nil
	}
	return "", fmt.Errorf("unknown preset %q", s)
}

// PresetConfig builds the config for p. Only the modern preset depends on
// the viewport; classic is a square board at a constant speed.
func PresetConfig(p Preset, viewportWidth, viewportHeight int) *GameConfig {
	if p == PresetClassic {
		return &GameConfig{
			Columns:            20,
			Rows:               20,
			InitialSnakeLength: 3,
			BaseSpeedMs:        200,
			MinSpeedMs:         200,
			SpeedupEvery:       1,
		}
	}
	return NewGameConfig(viewportWidth, viewportHeight)
}
