package blocks

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// cellKey packs a Point into one integer: Y in the high half, X in the low.
type cellKey int64

func keyOf(p Point) cellKey {
	return cellKey(int64(p.Y)<<32 | int64(uint32(p.X)))
}

func (k cellKey) point() Point {
	return Point{X: int(int32(uint32(k))), Y: int(int64(k) >> 32)}
}

// Board holds the frozen cells.
type Board struct {
	width int
	cells *intmap.Map[cellKey, Kind]
}

// NewBoard creates an empty board with the given column count.
func NewBoard(width int) *Board {
	return &Board{
		width: width,
		cells: intmap.New[cellKey, Kind](width * 8),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Len returns the number of occupied cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

// Occupied reports whether p holds a frozen cell.
func (b *Board) Occupied(p Point) bool {
	return b.cells.Has(keyOf(p))
}

// Freeze merges cells into the board unconditionally.
// Callers check for collisions beforehand.
func (b *Board) Freeze(cells map[Point]Kind) {
	for p, k := range cells {
		b.cells.Put(keyOf(p), k)
	}
}

// Cells returns a copy of the occupied cells.
func (b *Board) Cells() map[Point]Kind {
	out := make(map[Point]Kind, b.cells.Len())
	for k, v := range b.cells.All() {
		out[k.point()] = v
	}
	return out
}

// Clear removes all cells.
func (b *Board) Clear() {
	b.cells.Clear()
}

// Compact removes every full row in a single pass and drops the rows
// above each removed row by the number of full rows beneath them.
// It returns the number of rows removed.
func (b *Board) Compact() int {
	type cell struct {
		x int
		k Kind
	}
	rows := make(map[int][]cell)
	for k, v := range b.cells.All() {
		p := k.point()
		rows[p.Y] = append(rows[p.Y], cell{p.X, v})
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	slices.Sort(ys)

	cleared := 0
	next := intmap.New[cellKey, Kind](b.cells.Len())
	for _, y := range ys {
		row := rows[y]
		if len(row) == b.width {
			cleared++
			continue
		}
		for _, c := range row {
			next.Put(keyOf(Point{X: c.x, Y: y - cleared}), c.k)
		}
	}
	if cleared > 0 {
		b.cells = next
	}
	return cleared
}

// CheckConsistency verifies the settled-board invariants: every cell lies
// within the columns and at or above the floor, and no row is full.
func (b *Board) CheckConsistency() error {
	perRow := make(map[int]int)
	var err error
	b.cells.ForEach(func(k cellKey, v Kind) bool {
		p := k.point()
		switch {
		case p.X < 0 || p.X >= b.width:
			err = fmt.Errorf("cell %v outside columns [0,%d)", p, b.width)
		case p.Y < 0:
			err = fmt.Errorf("cell %v below the floor", p)
		case !v.Valid():
			err = fmt.Errorf("cell %v holds invalid kind %d", p, v)
		}
		perRow[p.Y]++
		return err == nil
	})
	if err != nil {
		return err
	}
	for y, n := range perRow {
		if n >= b.width {
			return fmt.Errorf("row %d is full but was not cleared", y)
		}
	}
	return nil
}
