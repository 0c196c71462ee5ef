package model

import (
	"crypto/md5"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/rules"
)

// Board is a fixed-size, hard-edged Game of Life grid.
// Cells are stored in row-major order: (x, y) lives at y*width + x.
type Board struct {
	generation uint64
	width      int
	height     int
	cells      []Cell
	pool       *CellPool
}

// NewBoard creates a board of all Dead cells at generation 1.
// Both dimensions must be positive and their product must fit in an int.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] %dx%d", width, height)
	}
	pool := NewCellPool(width * height)
	return &Board{
		generation: 1,
		width:      width,
		height:     height,
		cells:      pool.Get(),
		pool:       pool,
	}, nil
}

// Generation returns the current generation number
func (b *Board) Generation() uint64 {
	return b.generation
}

// Width returns the width of the board
func (b *Board) Width() int {
	return b.width
}

// Height returns the height of the board
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of cells, always width*height
func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IndexOf maps (x, y) to its linear index.
// It fails with ErrOutOfRange if either coordinate is off the board.
func (b *Board) IndexOf(x, y int) (int, error) {
	if !b.contains(x, y) {
		return 0, outOfRange("IndexOf", x, y, b.width, b.height)
	}
	return y*b.width + x, nil
}

// CoordOf is the inverse of IndexOf
func (b *Board) CoordOf(index int) (x, y int, err error) {
	if index < 0 || index >= len(b.cells) {
		return 0, 0, indexOutOfRange("CoordOf", index, len(b.cells))
	}
	return index % b.width, index / b.width, nil
}

// GetCell returns the cell at a linear index
func (b *Board) GetCell(index int) (Cell, error) {
	if index < 0 || index >= len(b.cells) {
		return Dead, indexOutOfRange("GetCell", index, len(b.cells))
	}
	return b.cells[index], nil
}

// CellAt returns the cell at (x, y)
func (b *Board) CellAt(x, y int) (Cell, error) {
	if !b.contains(x, y) {
		return Dead, outOfRange("CellAt", x, y, b.width, b.height)
	}
	return b.cells[y*b.width+x], nil
}

// SetCell overwrites the cell at (x, y). The board is untouched on error.
func (b *Board) SetCell(x, y int, value Cell) error {
	if !b.contains(x, y) {
		return outOfRange("SetCell", x, y, b.width, b.height)
	}
	b.cells[y*b.width+x] = value
	return nil
}

// Seed marks every point Alive. All points are validated before any is applied.
func (b *Board) Seed(points []Point) error {
	for _, p := range points {
		if !b.contains(p.X, p.Y) {
			return outOfRange("Seed", p.X, p.Y, b.width, b.height)
		}
	}
	for _, p := range points {
		b.cells[p.Y*b.width+p.X] = Alive
	}
	return nil
}

// CountLiveNeighbors counts the Alive cells among the up to 8 positions around (x, y).
// Positions off the board edge are skipped; there is no wrap-around.
func (b *Board) CountLiveNeighbors(x, y int) (int, error) {
	if !b.contains(x, y) {
		return 0, outOfRange("CountLiveNeighbors", x, y, b.width, b.height)
	}
	return countLiveNeighbors(b.cells, b.width, b.height, x, y), nil
}

// countLiveNeighbors assumes (x, y) is on the board
func countLiveNeighbors(cells []Cell, width, height, x, y int) (count int) {
	minX := max(0, x-1)
	maxX := min(width-1, x+1)
	minY := max(0, y-1)
	maxY := min(height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[ny*width+nx] == Alive {
				count++
			}
		}
	}
	return
}

// Advance moves the board forward one generation.
// The next generation is computed from the current cells only and swapped in whole.
func (b *Board) Advance() {
	next := b.pool.Get()
	for y := range b.height {
		for x := range b.width {
			i := y*b.width + x
			neighbors := countLiveNeighbors(b.cells, b.width, b.height, x, y)
			next[i] = cellOf(rules.ApplyConwayRules(neighbors, b.cells[i] == Alive))
		}
	}

	prev := b.cells
	b.cells = next
	b.generation++
	b.pool.Put(prev)
}

// Population returns the number of Alive cells
func (b *Board) Population() (count int) {
	for _, c := range b.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the cell state, independent of the generation
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// View returns a read-only snapshot of the board
func (b *Board) View() View {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return View{
		generation: b.generation,
		width:      b.width,
		height:     b.height,
		cells:      cells,
	}
}
