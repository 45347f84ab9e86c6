package core

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidDimensions reports a grid constructed with a non-positive width
// or height.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// BitGrid stores a 2D grid of binary cells packed one bit per cell. Cells
// are laid out row-major: cell (row, col) lives at bit idx%8 of byte idx/8,
// least significant bit first, with idx = row*W + col. The buffer is exactly
// ceil(W*H/8) bytes long and the unused high bits of the final byte are
// always zero.
type BitGrid struct {
	W, H int
	data []byte
}

// NewBitGrid allocates an all-dead grid with the given dimensions.
func NewBitGrid(w, h int) (*BitGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &BitGrid{W: w, H: h, data: make([]byte, (w*h+7)/8)}, nil
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Index returns the linear bit index for already-normalized coordinates.
func (g *BitGrid) Index(row, col int) int { return row*g.W + col }

// Get reports whether the cell at (row, col) is alive. Coordinates outside
// the grid are wrapped toroidally.
func (g *BitGrid) Get(row, col int) bool {
	row, col = g.Wrap(row, col)
	i := g.Index(row, col)
	return g.data[i/8]&(1<<(i%8)) != 0
}

// Set writes the cell at (row, col), wrapping coordinates toroidally.
func (g *BitGrid) Set(row, col int, alive bool) {
	row, col = g.Wrap(row, col)
	i := g.Index(row, col)
	if alive {
		g.data[i/8] |= 1 << (i % 8)
		return
	}
	g.data[i/8] &^= 1 << (i % 8)
}

// Toggle flips the cell at (row, col), wrapping coordinates toroidally. No
// other bit changes.
func (g *BitGrid) Toggle(row, col int) {
	row, col = g.Wrap(row, col)
	i := g.Index(row, col)
	g.data[i/8] ^= 1 << (i % 8)
}

// Clear fills the grid with dead cells.
func (g *BitGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population returns the number of live cells.
func (g *BitGrid) Population() int {
	n := 0
	for _, b := range g.data {
		n += bits.OnesCount8(b)
	}
	return n
}

// Bytes exposes the packed backing buffer. The slice aliases grid-owned
// memory and is only guaranteed valid until the next mutating call; callers
// must treat it as read-only.
func (g *BitGrid) Bytes() []byte { return g.data }
