package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the 2D drawing target Paint renders to. Translate and Scale
// compose onto the current transform the way a canvas does: later calls
// apply to coordinates first.
type Surface interface {
	SetColor(c color.Color)
	SetStrokeWidth(w float32)
	Translate(dx, dy float64)
	Scale(s float64)
	Line(x1, y1, x2, y2 float64)
	Circle(cx, cy, r float64)
}

// EbitenSurface draws onto an ebiten image using the vector package.
// Stroke widths are in world units and never thinner than one pixel.
type EbitenSurface struct {
	dst   *ebiten.Image
	geom  ebiten.GeoM
	zoom  float64
	clr   color.Color
	width float32
}

// NewEbitenSurface wraps dst with an identity transform.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, zoom: 1, clr: color.Black, width: 1}
}

func (s *EbitenSurface) SetColor(c color.Color)   { s.clr = c }
func (s *EbitenSurface) SetStrokeWidth(w float32) { s.width = w }

func (s *EbitenSurface) Translate(dx, dy float64) {
	var t ebiten.GeoM
	t.Translate(dx, dy)
	t.Concat(s.geom)
	s.geom = t
}

func (s *EbitenSurface) Scale(f float64) {
	var t ebiten.GeoM
	t.Scale(f, f)
	t.Concat(s.geom)
	s.geom = t
	s.zoom *= f
}

func (s *EbitenSurface) pixelWidth() float32 {
	return max(1, s.width*float32(s.zoom))
}

// Line strokes a segment, skipping it when it lies wholly off one image edge.
func (s *EbitenSurface) Line(x1, y1, x2, y2 float64) {
	sx1, sy1 := s.geom.Apply(x1, y1)
	sx2, sy2 := s.geom.Apply(x2, y2)

	b := s.dst.Bounds()
	pad := float64(s.pixelWidth())
	minX, maxX := float64(b.Min.X)-pad, float64(b.Max.X)+pad
	minY, maxY := float64(b.Min.Y)-pad, float64(b.Max.Y)+pad
	if (sx1 < minX && sx2 < minX) || (sx1 > maxX && sx2 > maxX) ||
		(sy1 < minY && sy2 < minY) || (sy1 > maxY && sy2 > maxY) {
		return
	}
	vector.StrokeLine(s.dst, float32(sx1), float32(sy1), float32(sx2), float32(sy2), s.pixelWidth(), s.clr, true)
}

// Circle strokes a circle outline, skipping it when the outline cannot
// cross the image.
func (s *EbitenSurface) Circle(cx, cy, r float64) {
	scx, scy := s.geom.Apply(cx, cy)
	sr := r * s.zoom
	w := float64(s.pixelWidth())

	b := s.dst.Bounds()
	// Nearest and farthest image points from the centre.
	nx := math.Max(float64(b.Min.X), math.Min(scx, float64(b.Max.X)))
	ny := math.Max(float64(b.Min.Y), math.Min(scy, float64(b.Max.Y)))
	near := math.Hypot(nx-scx, ny-scy)
	fx := math.Max(math.Abs(scx-float64(b.Min.X)), math.Abs(scx-float64(b.Max.X)))
	fy := math.Max(math.Abs(scy-float64(b.Min.Y)), math.Abs(scy-float64(b.Max.Y)))
	far := math.Hypot(fx, fy)
	if near > sr+w || far < sr-w {
		return
	}
	vector.StrokeCircle(s.dst, float32(scx), float32(scy), float32(sr), s.pixelWidth(), s.clr, true)
}
