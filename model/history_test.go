package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	h := NewHistory(5)
	w := NewWorld([]Cell{NewCell(0, 0), NewCell(0, 1), NewCell(1, 0), NewCell(1, 1)})

	for i := 0; i < 2; i++ {
		h.Record(w)
		w = w.Spawn()
	}
	if h.IsStagnant(w) {
		t.Error("expected no verdict before three generations are recorded")
	}

	h.Record(w)
	if !h.IsStagnant(w.Spawn()) {
		t.Error("expected a stable block to be stagnant")
	}
}

func TestHistoryWindow(t *testing.T) {
	var (
		h = NewHistory(3)
		a = NewWorld([]Cell{NewCell(0, 0)})
		b = NewWorld([]Cell{NewCell(1, 0)})
		c = NewWorld([]Cell{NewCell(2, 0)})
		d = NewWorld([]Cell{NewCell(3, 0)})
	)

	h.Record(a)
	h.Record(b)
	h.Record(c)
	if !h.IsStagnant(b) {
		t.Error("expected a repeat two generations back to be stagnant")
	}
	if h.IsStagnant(d) {
		t.Error("expected an unseen world not to be stagnant")
	}

	h.Record(d)
	if h.IsStagnant(a) {
		t.Error("expected the oldest entry to have been dropped")
	}

	h.Reset()
	if h.IsStagnant(d) {
		t.Error("expected an empty history after reset")
	}
}
