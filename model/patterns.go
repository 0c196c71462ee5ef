package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for a name with no registered pattern
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of live cells relative to a top-left origin
type Pattern struct {
	Name  string
	Cells []Point
}

var (
	// Glider travels one cell down and right every 4 generations
	Glider = Pattern{Name: "glider", Cells: []Point{
		{X: 1, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}}
	// Blinker is a horizontal period-2 oscillator
	Blinker = Pattern{Name: "blinker", Cells: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}}
	// Block is the 2x2 still life
	Block = Pattern{Name: "block", Cells: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}}
)

var patterns = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Block.Name:   Block,
}

// LookupPattern finds a built-in pattern by name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q (known: %v)", name, PatternNames())
	}
	return p, nil
}

// PatternNames lists the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp marks the pattern's cells Alive with its origin at (x, y).
// Every cell must land on the board; otherwise nothing is written.
func (b *Board) Stamp(p Pattern, x, y int) error {
	for _, c := range p.Cells {
		if !b.contains(x+c.X, y+c.Y) {
			return errors.Wrapf(
				outOfRange("Stamp", x+c.X, y+c.Y, b.width, b.height),
				"%s at (%d, %d)", p.Name, x, y,
			)
		}
	}
	for _, c := range p.Cells {
		b.cells[(y+c.Y)*b.width+x+c.X] = Alive
	}
	return nil
}

// Randomize sets every cell Alive with the given probability, Dead otherwise
func (b *Board) Randomize(rng *rand.Rand, density float64) {
	for i := range b.cells {
		b.cells[i] = cellOf(rng.Float64() < density)
	}
}
