package render

import (
	"math"

	"github.com/worlddungeon/worlddungeon/internal/world"
)

// Rect is an inclusive axis-aligned world rectangle.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Line is a world-space segment produced for the alignment grid.
type Line struct {
	X1, Y1 int
	X2, Y2 int
}

// Frame is everything one paint pass needs, computed from the view and the
// viewport size. It never refers back to mutable state.
type Frame struct {
	Threshold  float64
	GridActive bool
	Grid       Rect // visible area snapped to cell multiples
	Extended   Rect // Grid doubled about its midpoint
	GridLines  []Line
	Walls      []world.Wall
}

// GridThreshold is the scale above which the grid and the extended region
// are computed for a width×height viewport.
func GridThreshold(width, height int) float64 {
	return 25.0 * float64(min(width, height)) / 10000
}

// PlanFrame selects what to draw for view over a width×height viewport.
//
// Walls with an endpoint inside the inner core (0.75 of the boundary radius)
// are always kept. Above the grid threshold, walls with an endpoint inside
// the extended region are kept as well.
func PlanFrame(cfg world.Config, view View, walls []world.Wall, width, height int) Frame {
	f := Frame{Threshold: GridThreshold(width, height)}

	if view.Scale() > f.Threshold {
		f.GridActive = true
		f.Grid = visibleGrid(view, width, height, cfg.CellSize)
		f.Extended = extend(f.Grid)
		f.GridLines = gridLines(f.Grid, cfg.CellSize)
	}

	f.Walls = selectWalls(walls, cfg.InnerRadius(), f.GridActive, f.Extended)
	return f
}

// visibleGrid inverse-transforms the viewport and snaps it down to cell multiples.
func visibleGrid(view View, width, height, cell int) Rect {
	minX, minY := view.ScreenToWorld(0, 0)
	maxX, maxY := view.ScreenToWorld(float64(width), float64(height))
	return Rect{
		MinX: snapDown(minX, cell),
		MinY: snapDown(minY, cell),
		MaxX: snapDown(maxX, cell),
		MaxY: snapDown(maxY, cell),
	}
}

func snapDown(v float64, cell int) int {
	return int(math.Floor(v/float64(cell))) * cell
}

func extend(g Rect) Rect {
	midX := (g.MinX + g.MaxX) / 2
	midY := (g.MinY + g.MaxY) / 2
	halfW := (g.MaxX - g.MinX) / 2
	halfH := (g.MaxY - g.MinY) / 2
	return Rect{
		MinX: midX - 2*halfW,
		MinY: midY - 2*halfH,
		MaxX: midX + 2*halfW,
		MaxY: midY + 2*halfH,
	}
}

func gridLines(g Rect, cell int) []Line {
	cols := (g.MaxX-g.MinX)/cell + 1
	rows := (g.MaxY-g.MinY)/cell + 1
	lines := make([]Line, 0, cols+rows)
	for x := g.MinX; x <= g.MaxX; x += cell {
		lines = append(lines, Line{X1: x, Y1: g.MinY, X2: x, Y2: g.MaxY})
	}
	for y := g.MinY; y <= g.MaxY; y += cell {
		lines = append(lines, Line{X1: g.MinX, Y1: y, X2: g.MaxX, Y2: y})
	}
	return lines
}

func selectWalls(walls []world.Wall, innerRadius int, extActive bool, ext Rect) []world.Wall {
	out := make([]world.Wall, 0, len(walls))
	for _, w := range walls {
		inInner := world.InsideCircle(w.X1, w.Y1, 0, 0, innerRadius) ||
			world.InsideCircle(w.X2, w.Y2, 0, 0, innerRadius)
		inExt := extActive && (ext.Contains(w.X1, w.Y1) || ext.Contains(w.X2, w.Y2))
		if inInner || inExt {
			out = append(out, w)
		}
	}
	return out
}
