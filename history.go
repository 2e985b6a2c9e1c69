package cubesim

// History records the inverse of each recorded move, oldest first, so that
// every recorded move since the last reset can be undone.
//
// History is not safe for concurrent use.
type History struct {
	inverses []Move
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Record stores the inverse of a move that was just applied.
func (h *History) Record(m Move) {
	h.inverses = append(h.inverses, m.Inverse())
}

// RecordInverse stores a move that undoes the one just applied.
func (h *History) RecordInverse(inverse Move) {
	h.inverses = append(h.inverses, inverse)
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.inverses)
}

// Inverses returns a copy of the recorded inverses, oldest first.
func (h *History) Inverses() []Move {
	out := make([]Move, len(h.inverses))
	copy(out, h.inverses)
	return out
}

// Pop removes and returns the most recent inverse.
func (h *History) Pop() (Move, bool) {
	if len(h.inverses) == 0 {
		return Move{}, false
	}
	last := h.inverses[len(h.inverses)-1]
	h.inverses = h.inverses[:len(h.inverses)-1]
	return last, true
}

// UndoAll applies every recorded inverse, most recent first, and clears
// the history. Replayed moves are not recorded. An empty history returns c
// unchanged.
func (h *History) UndoAll(c Cube) Cube {
	for i := len(h.inverses) - 1; i >= 0; i-- {
		c = Apply(c, h.inverses[i])
	}
	h.Reset()
	return c
}

// Reset forgets every recorded move.
func (h *History) Reset() {
	h.inverses = nil
}
