package world

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot produce a world.
var ErrInvalidConfig = errors.New("invalid world config")

// Config holds the fixed parameters of a generated world.
type Config struct {
	CellSize      int     // grid cell size in world units
	Diameter      int     // boundary circle diameter
	WallDensity   float64 // multiplier on BaseWallCount
	BaseWallCount int     // walls generated at density 1.0

	// MaxSampleAttempts bounds the rejection loop for a single start point.
	MaxSampleAttempts int
}

// DefaultConfig returns the stock world: 50000 walls in a 100000-unit circle.
func DefaultConfig() Config {
	return Config{
		CellSize:          5,
		Diameter:          100000,
		WallDensity:       10.0,
		BaseWallCount:     5000,
		MaxSampleAttempts: 1000,
	}
}

// Radius returns half the diameter.
func (c Config) Radius() int { return c.Diameter / 2 }

// InnerRadius is the radius of the always-drawn core.
func (c Config) InnerRadius() int { return int(float64(c.Radius()) * 0.75) }

// WallCount returns the number of walls GenerateWalls will produce.
func (c Config) WallCount() int {
	return int(roundHalfUp(c.WallDensity * float64(c.BaseWallCount)))
}

// Validate reports the first parameter that makes generation impossible.
func (c Config) Validate() error {
	switch {
	case c.Diameter <= 0:
		return fmt.Errorf("%w: diameter %d must be positive", ErrInvalidConfig, c.Diameter)
	case c.Radius() <= 0:
		return fmt.Errorf("%w: radius of diameter %d rounds to zero", ErrInvalidConfig, c.Diameter)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.WallDensity < 0:
		return fmt.Errorf("%w: wall density %g is negative", ErrInvalidConfig, c.WallDensity)
	case c.BaseWallCount < 0:
		return fmt.Errorf("%w: base wall count %d is negative", ErrInvalidConfig, c.BaseWallCount)
	case c.MaxSampleAttempts <= 0:
		return fmt.Errorf("%w: max sample attempts %d must be positive", ErrInvalidConfig, c.MaxSampleAttempts)
	}
	return nil
}
