package main

import (
	"log"

	"github.com/integrii/flaggy"

	"github.com/slaiyer/wasm-game-of-life/internal/app"
	"github.com/slaiyer/wasm-game-of-life/internal/life"
	"github.com/slaiyer/wasm-game-of-life/internal/view"
)

func main() {
	cfg := app.NewConfig()
	// terminal-friendly defaults; a 256x256 universe does not fit a tty
	cfg.Width, cfg.Height = 64, 32
	cfg.TPS = 10

	flaggy.SetName("life-tui")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "width of the universe in cells")
	flaggy.Int(&cfg.Height, "y", "height", "height of the universe in cells")
	flaggy.Float64(&cfg.Probability, "p", "probability", "chance in [0,1] that a cell starts alive")
	flaggy.Int(&cfg.TPS, "t", "tps", "generations per second while running")
	flaggy.Int(&cfg.TicksPerFrame, "f", "ticks-per-step", "generations advanced per paced step")
	flaggy.Parse()

	u, err := life.New(cfg.Width, cfg.Height, cfg.Probability)
	if err != nil {
		log.Fatalf("create universe: %v", err)
	}

	view.NewTerminal(u, cfg).Start()
}
