package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/worlddungeon/worlddungeon/internal/render"
	"github.com/worlddungeon/worlddungeon/internal/world"
)

const (
	screenWidth  = 1600
	screenHeight = 1200
	title        = "World Dungeon"
)

var (
	// seedFlag fixes the wall layout; 0 picks one from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for wall generation (0 = time based)")

	densityFlag = flag.Float64("density", world.DefaultConfig().WallDensity, "wall density multiplier")

	// hudFlag shows the scale and wall-count overlay.
	hudFlag = flag.Bool("hud", false, "show the status overlay")
)

// Game is the Ebitengine game struct. It owns the view and the wall set;
// all drawing decisions are made by render.PlanFrame.
type Game struct {
	cfg   world.Config
	walls []world.Wall
	view  *render.View
	hud   *render.HUD

	width, height int
}

func NewGame(cfg world.Config, seed int64) (*Game, error) {
	start := time.Now()
	walls, err := world.GenerateWalls(cfg, world.NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("generate walls: %w", err)
	}
	log.Printf("generated %d walls (seed %d, radius %d) in %s", len(walls), seed, cfg.Radius(), time.Since(start))

	g := &Game{
		cfg:    cfg,
		walls:  walls,
		view:   render.NewView(),
		width:  screenWidth,
		height: screenHeight,
	}
	if *hudFlag {
		g.hud = render.NewHUD()
	}
	return g, nil
}

func (g *Game) Update() error {
	_, dy := ebiten.Wheel()
	if dir, ok := render.WheelDirection(dy); ok {
		cx, cy := ebiten.CursorPosition()
		g.view.ApplyZoom(cx, cy, dir)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	frame := render.PlanFrame(g.cfg, *g.view, g.walls, g.width, g.height)
	render.Paint(render.NewEbitenSurface(screen), g.cfg, *g.view, frame)

	if g.hud != nil {
		lines := render.StatusLines(*g.view, frame, len(g.walls))
		lines = append(lines, fmt.Sprintf("FPS:   %.0f", ebiten.ActualFPS()))
		g.hud.Draw(screen, lines)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	cfg := world.DefaultConfig()
	cfg.WallDensity = *densityFlag
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := NewGame(cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
