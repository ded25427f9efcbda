package model

import "sync"

// CellBufferPool recycles the survivor flags SpawnParallel fills in.
// Buffers are scratch space only and never end up inside a World.
type CellBufferPool struct {
	pool sync.Pool
}

// NewCellBufferPool creates an empty pool
func NewCellBufferPool() *CellBufferPool {
	return &CellBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]bool)
			},
		},
	}
}

// Get retrieves a cleared buffer of length n
func (p *CellBufferPool) Get(n int) *[]bool {
	buf := p.pool.Get().(*[]bool)
	if cap(*buf) < n {
		*buf = make([]bool, n)
	} else {
		*buf = (*buf)[:n]
		clear(*buf)
	}
	return buf
}

// Put returns a buffer to the pool
func (p *CellBufferPool) Put(buf *[]bool) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
