package life

import (
	"fmt"
	"log"
	"time"

	"github.com/slaiyer/wasm-game-of-life/internal/core"
)

// Universe simulates Conway's Game of Life on a fixed-size toroidal grid.
// All operations run synchronously to completion; a Universe is not safe for
// concurrent use and callers that share one across goroutines must serialize
// access themselves.
type Universe struct {
	cur *core.BitGrid
	nxt *core.BitGrid

	generation int
}

// New constructs a universe of the given dimensions and seeds each cell
// alive independently with the given probability (clamped to [0,1]). Width
// and height must both be positive; nothing else fails.
func New(width, height int, probability float64) (*Universe, error) {
	cur, err := core.NewBitGrid(width, height)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewBitGrid(width, height)
	if err != nil {
		return nil, err
	}
	u := &Universe{cur: cur, nxt: nxt}
	u.Reset(time.Now().UnixNano(), probability)
	log.Printf("universe created: %dx%d, %d alive cells", width, height, u.Population())
	return u, nil
}

// Reset reseeds the whole grid from the given seed, making each cell alive
// with the given probability (clamped to [0,1]), and rewinds the generation
// counter.
func (u *Universe) Reset(seed int64, probability float64) {
	core.FillBernoulli(core.NewRNG(seed).Source(), u.cur, probability)
	u.generation = 0
}

// Width returns the grid width, fixed for the universe's lifetime.
func (u *Universe) Width() int { return u.cur.W }

// Height returns the grid height, fixed for the universe's lifetime.
func (u *Universe) Height() int { return u.cur.H }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.cur.W, H: u.cur.H} }

// Generation returns how many ticks have been applied since the last reset
// or clear. Out-of-band edits (toggle, deploy) do not advance it.
func (u *Universe) Generation() int { return u.generation }

// Population returns the number of live cells.
func (u *Universe) Population() int { return u.cur.Population() }

// Cells exposes the packed cell buffer: ceil(W*H/8) bytes, row-major, least
// significant bit first within each byte. The slice aliases engine-owned
// memory; it is valid only until the next mutating call and must be
// re-fetched afterwards. Callers must not write through it.
func (u *Universe) Cells() []byte { return u.cur.Bytes() }

// CopyCells copies the packed cell buffer into dst and returns the number of
// bytes copied. Use this instead of Cells when the snapshot has to outlive
// later mutations.
func (u *Universe) CopyCells(dst []byte) int { return copy(dst, u.cur.Bytes()) }

// liveNeighbors counts the live cells among the 8 toroidal neighbors of
// (row, col). Wraparound makes the rule uniform everywhere; edges are not
// special.
func (u *Universe) liveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if u.cur.Get(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// Tick advances the universe by exactly one generation under the B3/S23
// rule: a live cell survives with 2 or 3 live neighbors, a dead cell is born
// with exactly 3. The next generation is computed in full against the
// previous one and published as a single buffer swap, so no cell ever reads
// a half-updated neighborhood. The destination buffer is reused across
// ticks.
func (u *Universe) Tick() {
	h, w := u.cur.H, u.cur.W
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			n := u.liveNeighbors(row, col)
			alive := u.cur.Get(row, col)
			u.nxt.Set(row, col, (alive && (n == 2 || n == 3)) || (!alive && n == 3))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}

// ToggleCell flips exactly the targeted cell, wrapping out-of-range
// coordinates toroidally.
func (u *Universe) ToggleCell(row, col int) {
	u.cur.Toggle(row, col)
}

// Clear kills every cell and rewinds the generation counter.
func (u *Universe) Clear() {
	u.cur.Clear()
	u.generation = 0
}

// Deploy overlays the named pattern with its anchor at (row, col): every
// offset in the pattern becomes alive, wrapped toroidally, while cells
// outside the pattern's footprint keep their prior state. An unregistered
// name returns ErrUnknownPattern and leaves the grid untouched.
func (u *Universe) Deploy(name string, row, col int) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	for _, off := range p.Offsets {
		u.cur.Set(row+off[0], col+off[1], true)
	}
	return nil
}
