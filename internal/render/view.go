package render

// ZoomFactor is the scale change applied per wheel step.
const ZoomFactor = 1.1

// ZoomDirection selects whether a wheel step magnifies or shrinks the view.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// WheelDirection maps a vertical wheel offset to a zoom direction.
// Scrolling up (positive offset) zooms in. A zero offset is not a step.
func WheelDirection(dy float64) (ZoomDirection, bool) {
	switch {
	case dy > 0:
		return ZoomIn, true
	case dy < 0:
		return ZoomOut, true
	default:
		return ZoomIn, false
	}
}

// View is the pan/zoom transform from world space to screen space:
// screen = world*scale + translate. It changes only through ApplyZoom.
type View struct {
	scale      float64
	translateX int
	translateY int
}

// NewView returns the identity view.
func NewView() *View {
	return &View{scale: 1}
}

// Scale returns the current zoom factor.
func (v View) Scale() float64 { return v.scale }

// Translate returns the current screen-space offset of the world origin.
func (v View) Translate() (int, int) { return v.translateX, v.translateY }

// ApplyZoom scales the view by one wheel step while keeping the world point
// under the cursor at the same screen position. Translation is truncated to
// whole pixels after each step. Scale is not clamped.
func (v *View) ApplyZoom(cursorX, cursorY int, dir ZoomDirection) {
	old := v.scale
	if dir == ZoomIn {
		v.scale *= ZoomFactor
	} else {
		v.scale /= ZoomFactor
	}
	change := v.scale / old
	v.translateX = int(float64(cursorX) - change*float64(cursorX-v.translateX))
	v.translateY = int(float64(cursorY) - change*float64(cursorY-v.translateY))
}

// WorldToScreen maps a world point to screen pixels.
func (v View) WorldToScreen(x, y float64) (float64, float64) {
	return x*v.scale + float64(v.translateX), y*v.scale + float64(v.translateY)
}

// ScreenToWorld maps a screen pixel back to world space.
func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - float64(v.translateX)) / v.scale, (sy - float64(v.translateY)) / v.scale
}
