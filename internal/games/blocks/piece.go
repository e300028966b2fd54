package blocks

// Point is a cell coordinate on the board. Y grows upward from the floor.
type Point struct {
	X, Y int
}

// Piece is a positioned, oriented piece.
// (X, Y) is the bottom-left corner of the shape's bounding box.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece creates a piece of the given kind in its spawn orientation.
func NewPiece(k Kind, x, y int) *Piece {
	return &Piece{Kind: k, Shape: k.Template(), X: x, Y: y}
}

// Width of the current orientation.
func (p *Piece) Width() int { return p.Shape.Width() }

// Height of the current orientation.
func (p *Piece) Height() int { return p.Shape.Height() }

// LeftEdge is the leftmost column of the bounding box.
func (p *Piece) LeftEdge() int { return p.X }

// RightEdge is the rightmost column of the bounding box.
func (p *Piece) RightEdge() int { return p.X + p.Width() - 1 }

// Bottom is the lowest row of the bounding box.
func (p *Piece) Bottom() int { return p.Y }

// Rotate turns the piece in place. It does not check validity.
func (p *Piece) Rotate(dir Rotation) {
	p.Shape = p.Shape.Rotate(dir)
}

// Cells returns the absolute coordinates of the solid cells.
func (p *Piece) Cells() map[Point]Kind {
	h := p.Height()
	out := make(map[Point]Kind, 4)
	p.eachCell(h, func(pt Point, k Kind) {
		out[pt] = k
	})
	return out
}

// eachCell visits solid cells; shape row 0 maps to the top of the box.
func (p *Piece) eachCell(h int, fn func(Point, Kind)) {
	for i, row := range p.Shape {
		for j, k := range row {
			if k == Empty {
				continue
			}
			fn(Point{X: p.X + j, Y: p.Y + h - 1 - i}, k)
		}
	}
}

// Clone returns a deep copy.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}
