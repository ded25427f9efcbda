package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/utils"
)

// World is one generation: the ordered sequence of living cells.
// A World is never modified after construction; Spawn returns a new one.
type World struct {
	cells []Cell
}

// Bounds is the smallest rectangle holding every living cell
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// NewWorld creates generation 0 from cells. The slice is copied, duplicates
// are kept as given.
func NewWorld(cells []Cell) *World {
	return &World{cells: copyCells(cells)}
}

// LivingCells returns a copy of the living cells in order
func (w *World) LivingCells() []Cell {
	return copyCells(w.cells)
}

// CountLivingCells returns the length of the live sequence, duplicates included
func (w *World) CountLivingCells() int {
	return len(w.cells)
}

// Spawn computes the next generation. Each living cell is kept, in order,
// if it survives among all current cells. Dead cells are not candidates,
// so no cell absent from w is ever born.
func (w *World) Spawn() *World {
	next := make([]Cell, 0, len(w.cells))
	for _, c := range w.cells {
		if c.WillSurviveIn(w.cells) {
			next = append(next, c)
		}
	}
	return &World{cells: next}
}

// SpawnParallel computes the same generation as Spawn, splitting the
// survival checks across workers. pool may be nil.
func (w *World) SpawnParallel(pool *CellBufferPool) *World {
	n := len(w.cells)
	if n == 0 {
		return &World{cells: []Cell{}}
	}

	var survives *[]bool
	if pool != nil {
		survives = pool.Get(n)
		defer pool.Put(survives)
	} else {
		buf := make([]bool, n)
		survives = &buf
	}

	var (
		eg             errgroup.Group
		numWorkers     = runtime.NumCPU()
		cellsPerWorker = (n + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, n)
		)
		if start >= n {
			break
		}

		eg.Go(func() error {
			for j := start; j < end; j++ {
				(*survives)[j] = w.cells[j].WillSurviveIn(w.cells)
			}
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	next := make([]Cell, 0, n)
	for j, ok := range *survives {
		if ok {
			next = append(next, w.cells[j])
		}
	}
	return &World{cells: next}
}

// NextGeneration calculates the next generation based on configuration
func (w *World) NextGeneration(config utils.Config, pool *CellBufferPool) *World {
	if config.UseParallel {
		return w.SpawnParallel(pool)
	}
	return w.Spawn()
}

// BoundingBox returns the bounds of the living cells, false when there are none
func (w *World) BoundingBox() (Bounds, bool) {
	if len(w.cells) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinX: w.cells[0].X, MaxX: w.cells[0].X,
		MinY: w.cells[0].Y, MaxY: w.cells[0].Y,
	}
	for _, c := range w.cells[1:] {
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b, true
}

// Area returns the number of positions inside the bounds, capped at math.MaxInt
func (b Bounds) Area() int {
	w, okW := span(b.MinX, b.MaxX)
	h, okH := span(b.MinY, b.MaxY)
	if !okW || !okH {
		return math.MaxInt
	}

	hi, lo := bits.Mul(w, h)
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}

// span returns hi-lo+1, false when it does not fit in an int
func span(lo, hi int) (uint, bool) {
	d := uint(hi) - uint(lo)
	if d >= math.MaxInt {
		return 0, false
	}
	return d + 1, true
}

// Hash returns an MD5 digest of the ordered live sequence
func (w *World) Hash() string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range w.cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func copyCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}
