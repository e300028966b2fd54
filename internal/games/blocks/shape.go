package blocks

import "strings"

// Rotation is a quarter-turn direction.
type Rotation int

const (
	Clockwise        Rotation = -1
	CounterClockwise Rotation = 1
)

// NormalizeRotation maps any positive value to CounterClockwise and
// everything else to Clockwise.
func NormalizeRotation(dir int) Rotation {
	if dir > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// Opposite returns the reverse direction.
func (r Rotation) Opposite() Rotation {
	return -r
}

// Shape is a rectangular grid of cells, top row first.
// A cell holds the piece kind or Empty.
type Shape [][]Kind

// Height is the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width is the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns a new shape turned a quarter in the given direction.
// Width and height swap.
func (s Shape) Rotate(dir Rotation) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]Kind, h)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if dir == Clockwise {
				out[j][h-1-i] = s[i][j]
			} else {
				out[w-1-j][i] = s[i][j]
			}
		}
	}
	return out
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = append([]Kind(nil), s[i]...)
	}
	return out
}

// String draws the shape with 'X' for solid cells, one row per line.
func (s Shape) String() string {
	var b strings.Builder
	for i, row := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, k := range row {
			if k == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte('X')
			}
		}
	}
	return b.String()
}
