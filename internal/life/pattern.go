package life

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownPattern reports a deploy of a pattern name that was never
// registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named multi-cell shape described as (row, col) offsets
// relative to its anchor cell. Deploying a pattern sets only the listed
// offsets alive.
type Pattern struct {
	Name    string
	Offsets [][2]int
}

var patterns = map[string]Pattern{}

// Register adds a pattern to the library. Names are matched
// case-insensitively; registering an existing name replaces it.
func Register(p Pattern) {
	if p.Name == "" || len(p.Offsets) == 0 {
		return
	}
	patterns[strings.ToLower(p.Name)] = p
}

// Lookup finds a registered pattern by name, case-insensitively.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// A glider in the phase that translates by (+1,+1) every 4 generations.
	Register(Pattern{Name: "glider", Offsets: [][2]int{
		{-1, 1},
		{0, -1}, {0, 1},
		{1, 0}, {1, 1},
	}})

	// A pulsar: 48 cells, oscillates with period 3. Offsets are grouped by
	// quadrant around the anchor.
	Register(Pattern{Name: "pulsar", Offsets: [][2]int{
		// NW
		{-6, -4}, {-6, -3}, {-6, -2},
		{-4, -6}, {-3, -6}, {-2, -6},
		{-4, -1}, {-3, -1}, {-2, -1},
		{-1, -4}, {-1, -3}, {-1, -2},
		// NE
		{-6, 4}, {-6, 3}, {-6, 2},
		{-4, 6}, {-3, 6}, {-2, 6},
		{-4, 1}, {-3, 1}, {-2, 1},
		{-1, 4}, {-1, 3}, {-1, 2},
		// SW
		{6, -4}, {6, -3}, {6, -2},
		{4, -6}, {3, -6}, {2, -6},
		{4, -1}, {3, -1}, {2, -1},
		{1, -4}, {1, -3}, {1, -2},
		// SE
		{6, 4}, {6, 3}, {6, 2},
		{4, 6}, {3, 6}, {2, 6},
		{4, 1}, {3, 1}, {2, 1},
		{1, 4}, {1, 3}, {1, 2},
	}})
}
