package model

import (
	"fmt"

	"github.com/sheikhrachel/sparse-gol/rules"
)

// Cell is the position of one living cell. Two cells are the same cell
// when both coordinates match.
type Cell struct {
	X, Y int
}

// NewCell creates a cell at (x, y)
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// WillSurviveIn reports whether the cell is alive in the next generation,
// given every cell alive in the current one. cells is not modified.
func (c Cell) WillSurviveIn(cells []Cell) bool {
	count := 0
	for _, other := range cells {
		if c.isNeighbourTo(other) {
			count++
		}
	}
	return rules.ApplyConwayRules(count, c.isAlive(cells))
}

// isNeighbourTo reports Moore adjacency; a cell is never its own neighbour.
func (c Cell) isNeighbourTo(other Cell) bool {
	return within1(c.X, other.X) && within1(c.Y, other.Y) && c != other
}

func (c Cell) isAlive(cells []Cell) bool {
	for _, other := range cells {
		if c == other {
			return true
		}
	}
	return false
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// within1 reports |a-b| <= 1 without signed overflow
func within1(a, b int) bool {
	if a < b {
		a, b = b, a
	}
	return uint(a)-uint(b) <= 1
}
