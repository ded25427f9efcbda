package model

import (
	"sort"

	"github.com/pkg/errors"
)

var patterns = map[string][]Cell{
	// 2x2 still life
	"block": {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	// period 2 oscillator
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"beehive": {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
}

// Pattern returns the named pattern with its top-left corner at (x, y)
func Pattern(name string, x, y int) ([]Cell, error) {
	offsets, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[Pattern] unknown pattern: %+v", name)
	}

	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = NewCell(x+o.X, y+o.Y)
	}
	return cells, nil
}

// PatternNames lists the known patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
