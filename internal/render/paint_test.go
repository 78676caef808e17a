package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddungeon/worlddungeon/internal/world"
)

// recordSurface logs every call as a string.
type recordSurface struct {
	ops []string
}

func (r *recordSurface) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordSurface) SetColor(c color.Color) {
	cr, cg, cb, _ := c.RGBA()
	r.add("color %d,%d,%d", cr>>8, cg>>8, cb>>8)
}
func (r *recordSurface) SetStrokeWidth(w float32)    { r.add("width %g", w) }
func (r *recordSurface) Translate(dx, dy float64)    { r.add("translate %g,%g", dx, dy) }
func (r *recordSurface) Scale(s float64)             { r.add("scale %g", s) }
func (r *recordSurface) Line(x1, y1, x2, y2 float64) { r.add("line %g,%g %g,%g", x1, y1, x2, y2) }
func (r *recordSurface) Circle(cx, cy, rad float64)  { r.add("circle %g,%g r%g", cx, cy, rad) }

func TestPaintLayerOrder(t *testing.T) {
	cfg := world.DefaultConfig()
	v := View{scale: 8, translateX: -800, translateY: 400}
	wall := world.Wall{X1: 200, Y1: 0, X2: 210, Y2: 0}
	f := PlanFrame(cfg, v, []world.Wall{wall}, 1600, 1200)
	require.True(t, f.GridActive)

	rec := &recordSurface{}
	Paint(rec, cfg, v, f)

	want := []string{
		"translate -800,400",
		"scale 8",
		"color 0,0,0",
		"width 27",
		"circle 0,0 r50001",
		"color 128,128,128",
		"width 1",
		"circle 0,0 r50000",
		"color 192,192,192",
		"width 0.5",
	}
	require.GreaterOrEqual(t, len(rec.ops), len(want)+len(f.GridLines)+3)
	assert.Equal(t, want, rec.ops[:len(want)])

	grid := rec.ops[len(want) : len(want)+len(f.GridLines)]
	assert.Equal(t, "line 100,-50 100,100", grid[0])

	tail := rec.ops[len(want)+len(f.GridLines):]
	assert.Equal(t, []string{"color 0,0,255", "width 4", "line 200,0 210,0"}, tail)
}

func TestPaintWithoutGrid(t *testing.T) {
	cfg := world.DefaultConfig()
	v := *NewView()
	f := PlanFrame(cfg, v, nil, 1600, 1200)

	rec := &recordSurface{}
	Paint(rec, cfg, v, f)

	for _, op := range rec.ops {
		assert.NotEqual(t, "width 0.5", op)
	}
	assert.Equal(t, "width 4", rec.ops[len(rec.ops)-1])
}

func TestStatusLines(t *testing.T) {
	v := View{scale: 8, translateX: -800, translateY: 400}
	f := PlanFrame(world.DefaultConfig(), v, nil, 1600, 1200)
	lines := StatusLines(v, f, 50000)
	assert.Equal(t, []string{
		"Scale: 8.0000  Offset: -800,400",
		"Walls: 0/50000 drawn",
		"Grid:  on (72 lines)  threshold 3.00",
	}, lines)
}
