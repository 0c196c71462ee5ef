package model

import "iter"

// View is an immutable snapshot of a Board, handed to renderers.
// It shares no memory with the board it was taken from.
type View struct {
	generation uint64
	width      int
	height     int
	cells      []Cell
}

func (v View) Generation() uint64 { return v.generation }
func (v View) Width() int         { return v.width }
func (v View) Height() int        { return v.height }
func (v View) Len() int           { return len(v.cells) }

// Cell returns the cell at linear index i; it panics if i is out of range, like a slice
func (v View) Cell(i int) Cell {
	return v.cells[i]
}

// All iterates cells in row-major order
func (v View) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, c := range v.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Rows iterates rows top to bottom. Each row is a copy.
func (v View) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for y := range v.height {
			row := make([]Cell, v.width)
			copy(row, v.cells[y*v.width:(y+1)*v.width])
			if !yield(y, row) {
				return
			}
		}
	}
}
