//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/slaiyer/wasm-game-of-life/internal/life"
	"github.com/slaiyer/wasm-game-of-life/internal/render"
	"github.com/slaiyer/wasm-game-of-life/internal/ui"
)

// Game adapts a life.Universe to the ebiten.Game interface. The game loop
// owns the universe; every mutation happens on the Update goroutine.
type Game struct {
	universe *life.Universe
	painter  *render.GridPainter
	hud      *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale         int
	ticksPerFrame int
	paused        bool
	tickOnce      bool
	seed          int64
	probability   float64
}

// New constructs a Game around the provided universe.
func New(u *life.Universe, cfg *Config) *Game {
	return &Game{
		universe:      u,
		painter:       render.NewGridPainter(u.Width(), u.Height()),
		hud:           ui.NewHUD(),
		onColor:       color.White,
		offColor:      color.Black,
		scale:         cfg.Scale,
		ticksPerFrame: cfg.TicksPerFrame,
		seed:          cfg.Seed,
		probability:   cfg.Probability,
	}
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
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.universe.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.universe.Reset(g.seed, g.probability)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.universe.Reset(time.Now().UnixNano(), g.probability)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.ticksPerFrame > 1 {
		g.ticksPerFrame /= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.ticksPerFrame < 64 {
		g.ticksPerFrame *= 2
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick()
	}

	if !g.paused || g.tickOnce {
		steps := g.ticksPerFrame
		if g.tickOnce {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			g.universe.Tick()
		}
		g.tickOnce = false
	}
	return nil
}

// handleClick maps the cursor to a cell and applies the modifier scheme:
// plain click toggles, ctrl-click deploys a glider, shift-click a pulsar.
func (g *Game) handleClick() {
	x, y := ebiten.CursorPosition()
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	row, col := y/scale, x/scale

	var err error
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		err = g.universe.Deploy("glider", row, col)
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		err = g.universe.Deploy("pulsar", row, col)
	default:
		g.universe.ToggleCell(row, col)
	}
	if err != nil {
		log.Printf("deploy: %v", err)
	}
}

// Draw renders the current universe state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.universe.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.universe.Generation(), g.universe.Population(), g.ticksPerFrame, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.universe.Size()
	return s.W * g.scale, s.H * g.scale
}
