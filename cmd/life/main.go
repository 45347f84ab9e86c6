//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"github.com/slaiyer/wasm-game-of-life/internal/app"
	"github.com/slaiyer/wasm-game-of-life/internal/life"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life in a window")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "width of the universe in cells")
	flaggy.Int(&cfg.Height, "y", "height", "height of the universe in cells")
	flaggy.Float64(&cfg.Probability, "p", "probability", "chance in [0,1] that a cell starts alive")
	flaggy.Int(&cfg.Scale, "s", "scale", "pixel scale multiplier")
	flaggy.Int(&cfg.TPS, "t", "tps", "frames per second")
	flaggy.Int(&cfg.TicksPerFrame, "f", "ticks-per-frame", "generations advanced per frame")
	flaggy.Int64(&cfg.Seed, "d", "seed", "seed used by the R-key reseed")
	flaggy.Parse()

	u, err := life.New(cfg.Width, cfg.Height, cfg.Probability)
	if err != nil {
		log.Fatalf("create universe: %v", err)
	}

	game := app.New(u, cfg)

	ebiten.SetWindowTitle(fmt.Sprintf("life — %dx%d", u.Width(), u.Height()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(u.Width()*cfg.Scale, u.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
