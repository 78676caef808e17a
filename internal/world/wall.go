package world

// Point is an integer world-space coordinate.
type Point struct {
	X, Y int
}

// Wall is an axis-aligned segment from (X1, Y1) to (X2, Y2).
// Walls are created once by GenerateWalls and never modified.
type Wall struct {
	X1, Y1 int
	X2, Y2 int
}

// Start returns the generating endpoint.
func (w Wall) Start() Point { return Point{w.X1, w.Y1} }

// Horizontal reports whether the wall runs along the X axis.
func (w Wall) Horizontal() bool { return w.Y1 == w.Y2 && w.X1 != w.X2 }

// Length returns the wall length in world units.
func (w Wall) Length() int {
	if w.Horizontal() {
		return abs(w.X2 - w.X1)
	}
	return abs(w.Y2 - w.Y1)
}

// InsideCircle reports whether (x, y) lies within radius of (cx, cy), boundary included.
func InsideCircle(x, y, cx, cy, radius int) bool {
	dx := int64(x - cx)
	dy := int64(y - cy)
	r := int64(radius)
	return dx*dx+dy*dy <= r*r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
