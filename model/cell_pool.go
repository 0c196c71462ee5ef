package model

import "sync"

// CellPool recycles cell buffers between generations
type CellPool struct {
	size int
	pool sync.Pool
}

// NewCellPool creates a pool handing out buffers of exactly size cells
func NewCellPool(size int) *CellPool {
	p := &CellPool{size: size}
	p.pool.New = func() interface{} {
		buf := make([]Cell, size)
		return &buf
	}
	return p
}

// Get retrieves a zeroed buffer from the pool
func (p *CellPool) Get() []Cell {
	return *p.pool.Get().(*[]Cell)
}

// Put returns a buffer to the pool, clearing its state.
// Buffers of the wrong size are dropped.
func (p *CellPool) Put(buf []Cell) {
	if p == nil || len(buf) != p.size {
		return
	}
	clear(buf)
	p.pool.Put(&buf)
}
