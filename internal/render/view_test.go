package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWheelDirection(t *testing.T) {
	dir, ok := WheelDirection(1)
	assert.True(t, ok)
	assert.Equal(t, ZoomIn, dir)

	dir, ok = WheelDirection(-0.5)
	assert.True(t, ok)
	assert.Equal(t, ZoomOut, dir)

	_, ok = WheelDirection(0)
	assert.False(t, ok)
}

func TestApplyZoomKeepsCursorPoint(t *testing.T) {
	v := NewView()
	wx, wy := v.ScreenToWorld(100, 100)

	v.ApplyZoom(100, 100, ZoomIn)

	assert.InDelta(t, 1.1, v.Scale(), 1e-12)
	tx, ty := v.Translate()
	assert.Equal(t, -10, tx)
	assert.Equal(t, -10, ty)

	sx, sy := v.WorldToScreen(wx, wy)
	assert.InDelta(t, 100, sx, 1e-9)
	assert.InDelta(t, 100, sy, 1e-9)
}

func TestApplyZoomOutInverse(t *testing.T) {
	v := NewView()
	v.ApplyZoom(0, 0, ZoomOut)
	assert.InDelta(t, 1/1.1, v.Scale(), 1e-12)

	v.ApplyZoom(0, 0, ZoomIn)
	assert.InDelta(t, 1.0, v.Scale(), 1e-12)
	tx, ty := v.Translate()
	assert.Zero(t, tx)
	assert.Zero(t, ty)
}

// Translation is truncated each step, so the cursor point may drift by less
// than a pixel per step but never more.
func TestApplyZoomDriftBounded(t *testing.T) {
	v := NewView()
	const cx, cy = 640, 377
	for i := 0; i < 30; i++ {
		wx, wy := v.ScreenToWorld(cx, cy)
		dir := ZoomIn
		if i%3 == 2 {
			dir = ZoomOut
		}
		v.ApplyZoom(cx, cy, dir)
		sx, sy := v.WorldToScreen(wx, wy)
		assert.InDelta(t, cx, sx, 1, "step %d", i)
		assert.InDelta(t, cy, sy, 1, "step %d", i)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	v := View{scale: 2.5, translateX: -300, translateY: 120}
	wx, wy := v.ScreenToWorld(800, 600)
	assert.InDelta(t, 440, wx, 1e-9)
	assert.InDelta(t, 192, wy, 1e-9)
	sx, sy := v.WorldToScreen(wx, wy)
	assert.InDelta(t, 800, sx, 1e-9)
	assert.InDelta(t, 600, sy, 1e-9)
}
