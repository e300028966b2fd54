package blocks

// State returns the frozen cells together with the falling piece.
// Cells above the visible height may be present.
func (e *Engine) State() map[Point]Kind {
	out := e.board.Cells()
	e.current.eachCell(e.current.Height(), func(p Point, k Kind) {
		out[p] = k
	})
	return out
}

// NextPiece returns the queued piece for preview. A new pointer is
// returned only after the queue advances, so renderers can compare
// pointers to detect a change.
func (e *Engine) NextPiece() *Piece {
	return e.next
}

// GhostCells returns where the falling piece would land if dropped now.
// It does not change the engine.
func (e *Engine) GhostCells() map[Point]Kind {
	ghost := e.current.Clone()
	for e.fits(ghost) {
		ghost.Y--
	}
	ghost.Y++
	return ghost.Cells()
}

// Diff returns the cells that differ between two snapshots.
// Cells present in prev but missing from next map to Empty.
func Diff(prev, next map[Point]Kind) map[Point]Kind {
	out := make(map[Point]Kind)
	for p, k := range next {
		if old, ok := prev[p]; !ok || old != k {
			out[p] = k
		}
	}
	for p := range prev {
		if _, ok := next[p]; !ok {
			out[p] = Empty
		}
	}
	return out
}
