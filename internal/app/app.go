//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"grainfall/internal/render"
	"grainfall/internal/sims/sand"
	"grainfall/internal/ui"
)

// Game adapts the sand world to the ebiten.Game interface and adds the paint
// input: left mouse stamps the selected element, right mouse erases.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	palette []color.RGBA
	hud     *ui.HUD

	paintable []string
	selected  int
	brush     int

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale int, seed int64) *Game {
	size := world.Size()
	var names []string
	for _, e := range world.Registry().All() {
		if !e.IsEmpty() {
			names = append(names, e.Name)
		}
	}
	return &Game{
		world:     world,
		painter:   render.NewGridPainter(size.W, size.H),
		palette:   world.Palette(),
		hud:       ui.NewHUD(),
		paintable: names,
		brush:     2,
		scale:     scale,
		seed:      seed,
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = (g.selected + 1) % len(g.paintable)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brush > 0 {
		g.brush--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brush < 16 {
		g.brush++
	}

	g.paint()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) paint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	name := "empty"
	if left {
		name = g.paintable[g.selected]
	}
	// Painting outside the grid clips silently inside PaintCircle.
	_ = g.world.PaintCircle(cx, cy, g.brush, name)
}

// Draw renders the current world state plus the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, []string{
		fmt.Sprintf("element: %s (tab)", g.paintable[g.selected]),
		fmt.Sprintf("brush: %d ([ ])", g.brush),
		fmt.Sprintf("cells: %d", g.world.Grid().ActiveCount()),
		fmt.Sprintf("frame: %d%s", g.world.Frame(), pausedSuffix(g.paused)),
	})
}

func pausedSuffix(paused bool) string {
	if paused {
		return " [paused]"
	}
	return ""
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
