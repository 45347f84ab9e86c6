//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout over the simulation view.
type HUD struct {
	face  *basicfont.Face
	color color.Color
}

// NewHUD constructs a HUD using the stock bitmap face.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13, color: color.RGBA{R: 255, G: 216, B: 0, A: 255}}
}

// Draw paints the status line in the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image, generation, population, ticksPerFrame int, paused bool) {
	if h == nil {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  pop %d  %dx/frame  %s", generation, population, ticksPerFrame, state)
	text.Draw(screen, line, h.face, 4, 14, h.color)
}
