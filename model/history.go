package model

const stagnationWindow = 3

// History keeps the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history remembering the last size generations
func NewHistory(size int) *History {
	return &History{size: max(size, stagnationWindow)}
}

// Record adds w to the history, dropping the oldest entry when full
func (h *History) Record(w *World) {
	h.hashes = append(h.hashes, w.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether w repeats one of the last three recorded
// generations: a still life or an oscillator of period up to 3.
func (h *History) IsStagnant(w *World) bool {
	if len(h.hashes) < stagnationWindow {
		return false
	}

	current := w.Hash()
	for i := 1; i <= stagnationWindow; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
