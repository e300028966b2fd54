// Package blocks implements a falling-blocks puzzle game.
// Pieces fall under gravity, the player shifts and rotates them, and
// completed rows are cleared from the board.
package blocks

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven standard pieces.
type Kind int8

// Empty marks an unoccupied template cell.
const Empty Kind = -1

const (
	KindI Kind = iota
	KindS
	KindZ
	KindJ
	KindL
	KindO
	KindT
)

// NumKinds is the size of the standard piece set.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "S", "Z", "J", "L", "O", "T"}

var kindColors = [NumKinds]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorSteel,
}

// Templates are written top row first; 'X' is solid.
var kindRows = [NumKinds][]string{
	{"X", "X", "X", "X"},
	{".XX", "XX."},
	{"XX.", ".XX"},
	{".X", ".X", "XX"},
	{"X.", "X.", "XX"},
	{"XX", "XX"},
	{".X.", "XXX"},
}

// Valid reports whether k is one of the standard kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "."
	}
	return kindNames[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Template returns a fresh copy of the kind's spawn orientation.
// Callers may mutate the result freely.
func (k Kind) Template() Shape {
	rows := kindRows[k]
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]Kind, len(row))
		for j := range row {
			if row[j] == 'X' {
				s[i][j] = k
			} else {
				s[i][j] = Empty
			}
		}
	}
	return s
}

// Kinds returns all standard kinds in template order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
