package blocks

import "slices"

// Snapshot contains the observable game state for replays and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	Score       int
	Level       int
	RowsCleared int
	Status      string

	CurrentKind int
	CurrentX    int
	CurrentY    int
	NextKind    int

	// Occupied cells sorted by (Y, X), each as 3 ints: X, Y, Kind
	CellData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine

	pts := make([]Point, 0, 64)
	state := e.State()
	for p := range state {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	cellData := make([]int, 0, len(pts)*3)
	for _, p := range pts {
		cellData = append(cellData, p.X, p.Y, int(state[p]))
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:       e.Score(),
		Level:       e.Level(),
		RowsCleared: e.RowsCleared(),
		Status:      e.Status().String(),
		CurrentKind: int(e.Current().Kind),
		CurrentX:    e.Current().X,
		CurrentY:    e.Current().Y,
		NextKind:    int(e.Next().Kind),
		CellData:    cellData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RowsCleared) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurrentKind) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurrentX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurrentY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextKind)    //#nosec G115 -- hash computation
	for _, c := range snap.Status {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.CellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
