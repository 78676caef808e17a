package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 15

// HUD prints a small status block in the top-left corner.
type HUD struct {
	face *text.GoXFace
}

// NewHUD builds a HUD using the 7x13 bitmap font.
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw writes lines at the top-left of screen.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(ColorDarkGray)
		text.Draw(screen, line, h.face, op)
	}
}

// StatusLines describes the view and the frame for the HUD.
func StatusLines(view View, frame Frame, totalWalls int) []string {
	tx, ty := view.Translate()
	grid := "off"
	if frame.GridActive {
		grid = fmt.Sprintf("on (%d lines)", len(frame.GridLines))
	}
	return []string{
		fmt.Sprintf("Scale: %.4f  Offset: %d,%d", view.Scale(), tx, ty),
		fmt.Sprintf("Walls: %d/%d drawn", len(frame.Walls), totalWalls),
		fmt.Sprintf("Grid:  %s  threshold %.2f", grid, frame.Threshold),
	}
}
