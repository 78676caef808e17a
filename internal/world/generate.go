package world

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrSampleExhausted is returned when rejection sampling never lands inside the circle.
var ErrSampleExhausted = errors.New("no sample inside circle")

// Wall lengths are drawn from [1, maxWallCells] grid cells.
const maxWallCells = 10

// Source is the random capability generation draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3)))
}

// Snap maps a coordinate onto the wall lattice: round(v/cellSize) * 2.
// The factor 2 is the lattice spacing, so Snap is not idempotent.
func Snap(v, cellSize int) int {
	return int(roundHalfUp(float64(v)/float64(cellSize))) * 2
}

// SampleInCircle draws integer points uniformly from [-radius, radius) on both
// axes until one lies inside the circle centred on the origin.
func SampleInCircle(rng Source, radius, maxAttempts int) (Point, error) {
	if radius <= 0 {
		return Point{}, fmt.Errorf("%w: radius %d", ErrInvalidConfig, radius)
	}
	span := 2 * radius
	for i := 0; i < maxAttempts; i++ {
		x := rng.IntN(span) - radius
		y := rng.IntN(span) - radius
		if InsideCircle(x, y, 0, 0, radius) {
			return Point{x, y}, nil
		}
	}
	return Point{}, fmt.Errorf("%w after %d attempts (radius %d)", ErrSampleExhausted, maxAttempts, radius)
}

// GenerateWalls builds cfg.WallCount() walls from rng.
//
// Each wall starts at a snapped in-circle sample and extends 1-10 cells
// horizontally or vertically. If the far end would leave the circle the
// extension is mirrored to the other side of the start; the mirrored end is
// not checked again and may itself lie outside the circle.
func GenerateWalls(cfg Config, rng Source) ([]Wall, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	radius := cfg.Radius()
	n := cfg.WallCount()
	walls := make([]Wall, 0, n)

	for i := 0; i < n; i++ {
		p, err := SampleInCircle(rng, radius, cfg.MaxSampleAttempts)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		sx := Snap(p.X, cfg.CellSize)
		sy := Snap(p.Y, cfg.CellSize)

		horizontal := rng.IntN(2) == 0
		length := (1 + rng.IntN(maxWallCells)) * cfg.CellSize

		walls = append(walls, extendWall(sx, sy, length, horizontal, radius))
	}
	return walls, nil
}

// extendWall places the far endpoint, mirroring it once if it exits the circle.
func extendWall(sx, sy, length int, horizontal bool, radius int) Wall {
	ex, ey := sx, sy
	if horizontal {
		ex += length
	} else {
		ey += length
	}
	if !InsideCircle(ex, ey, 0, 0, radius) {
		if horizontal {
			ex = sx - length
		} else {
			ey = sy - length
		}
	}
	return Wall{X1: sx, Y1: sy, X2: ex, Y2: ey}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
