package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a set of live cells given as (row, col) offsets from an anchor
type Pattern [][2]int

var patterns = map[string]Pattern{
	// the seed the simulator has always started from
	"original": {{-1, 0}, {0, -1}, {0, 0}, {0, 1}, {1, -1}, {1, 1}, {2, 0}},
	"glider":   {{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1}},
	"blinker":  {{0, -1}, {0, 0}, {0, 1}},
}

// LookupPattern returns the named pattern
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the known pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets the pattern's cells alive around (r, c). The grid is left
// untouched when any cell would fall outside it.
func (g *Grid) Place(p Pattern, r, c int) error {
	for _, off := range p {
		pr, pc := r+off[0], c+off[1]
		if pr < 0 || pr >= g.rows || pc < 0 || pc >= g.cols {
			return errors.Errorf("[Place] pattern cell (%d, %d) does not fit a %dx%d grid", pr, pc, g.rows, g.cols)
		}
	}
	for _, off := range p {
		g.SetAlive(r+off[0], c+off[1])
	}
	return nil
}

// PlaceCentered places the pattern anchored on the middle cell of the grid
func (g *Grid) PlaceCentered(p Pattern) error {
	return g.Place(p, g.rows/2, g.cols/2)
}
