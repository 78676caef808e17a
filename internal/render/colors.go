package render

import "image/color"

// Named colors used by the layers.
var (
	ColorBlack     = color.RGBA{0, 0, 0, 255}
	ColorGray      = color.RGBA{128, 128, 128, 255}
	ColorLightGray = color.RGBA{192, 192, 192, 255}
	ColorBlue      = color.RGBA{0, 0, 255, 255}
	ColorDarkGray  = color.RGBA{64, 64, 64, 255}

	// Background is the panel fill behind all layers.
	Background = color.RGBA{238, 238, 238, 255}
)

// Stroke pairs a color with a world-space line width.
type Stroke struct {
	Color color.RGBA
	Width float32
}

// Layer strokes, back to front.
var (
	StrokeBoundaryOuter = Stroke{ColorBlack, 27}
	StrokeBoundaryInner = Stroke{ColorGray, 1}
	StrokeGrid          = Stroke{ColorLightGray, 0.5}
	StrokeWall          = Stroke{ColorBlue, 4}
)
