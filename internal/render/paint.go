package render

import "github.com/worlddungeon/worlddungeon/internal/world"

// Paint draws frame onto s under view, back to front: the thick outer
// boundary, the thin inner boundary, the grid, then the selected walls.
func Paint(s Surface, cfg world.Config, view View, frame Frame) {
	tx, ty := view.Translate()
	s.Translate(float64(tx), float64(ty))
	s.Scale(view.Scale())

	r := float64(cfg.Radius())

	applyStroke(s, StrokeBoundaryOuter)
	s.Circle(0, 0, r+1)

	applyStroke(s, StrokeBoundaryInner)
	s.Circle(0, 0, r)

	if frame.GridActive {
		applyStroke(s, StrokeGrid)
		for _, l := range frame.GridLines {
			s.Line(float64(l.X1), float64(l.Y1), float64(l.X2), float64(l.Y2))
		}
	}

	applyStroke(s, StrokeWall)
	for _, w := range frame.Walls {
		s.Line(float64(w.X1), float64(w.Y1), float64(w.X2), float64(w.Y2))
	}
}

func applyStroke(s Surface, st Stroke) {
	s.SetColor(st.Color)
	s.SetStrokeWidth(st.Width)
}
