package blocks

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRotationInvolution(t *testing.T) {
	for _, k := range Kinds() {
		for _, dir := range []Rotation{Clockwise, CounterClockwise} {
			orig := k.Template()
			s := orig
			for range 4 {
				s = s.Rotate(dir)
			}
			if !s.Equal(orig) {
				t.Errorf("%s rotated 4x (%d) = \n%s\nwant\n%s", k, dir, s, orig)
			}
		}
	}
}

func TestRotationSwapsDimensions(t *testing.T) {
	bar := KindI.Template()
	if bar.Width() != 1 || bar.Height() != 4 {
		t.Fatalf("I template is %dx%d, want 1x4", bar.Width(), bar.Height())
	}

	r := bar.Rotate(Clockwise)
	if r.Width() != 4 || r.Height() != 1 {
		t.Errorf("rotated I is %dx%d, want 4x1", r.Width(), r.Height())
	}
}

func TestRotateDirection(t *testing.T) {
	tee := KindT.Template()

	if got, want := tee.Rotate(Clockwise).String(), "X.\nXX\nX."; got != want {
		t.Errorf("T clockwise =\n%s\nwant\n%s", got, want)
	}
	if got, want := tee.Rotate(CounterClockwise).String(), ".X\nXX\n.X"; got != want {
		t.Errorf("T counterclockwise =\n%s\nwant\n%s", got, want)
	}

	back := tee.Rotate(Clockwise).Rotate(Clockwise.Opposite())
	if !back.Equal(tee) {
		t.Errorf("rotating back did not restore T:\n%s", back)
	}
}

func TestTemplateIsIndependentCopy(t *testing.T) {
	s := KindL.Template()
	s[0][0] = Empty
	s[2][1] = KindZ

	fresh := KindL.Template()
	if fresh[0][0] != KindL || fresh[2][1] != KindL {
		t.Errorf("template mutated through a copy:\n%s", fresh)
	}
}

func TestTemplateCellCounts(t *testing.T) {
	for _, k := range Kinds() {
		n := 0
		for _, row := range k.Template() {
			for _, c := range row {
				switch c {
				case Empty:
				case k:
					n++
				default:
					t.Errorf("%s template holds foreign kind %s", k, c)
				}
			}
		}
		if n != 4 {
			t.Errorf("%s template has %d solid cells, want 4", k, n)
		}
	}
}

func TestKindColorsDistinct(t *testing.T) {
	seen := make(map[core.Color]Kind)
	for _, k := range Kinds() {
		c := k.Color()
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %d", k, other, c)
		}
		seen[c] = k
	}
	if Empty.String() != "." {
		t.Errorf("Empty.String() = %q", Empty.String())
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in   int
		want Rotation
	}{
		{1, CounterClockwise},
		{7, CounterClockwise},
		{-1, Clockwise},
		{-9, Clockwise},
		{0, Clockwise},
	}
	for _, tt := range tests {
		if got := NormalizeRotation(tt.in); got != tt.want {
			t.Errorf("NormalizeRotation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(KindJ, 2, 0)

	want := map[Point]Kind{
		{3, 2}: KindJ,
		{3, 1}: KindJ,
		{2, 0}: KindJ,
		{3, 0}: KindJ,
	}
	got := p.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for pt, k := range want {
		if got[pt] != k {
			t.Errorf("Cells()[%v] = %v, want %v", pt, got[pt], k)
		}
	}

	if p.LeftEdge() != 2 || p.RightEdge() != 3 || p.Bottom() != 0 {
		t.Errorf("edges = (%d, %d, %d), want (2, 3, 0)", p.LeftEdge(), p.RightEdge(), p.Bottom())
	}
}

func TestPieceRotateRecomputesExtent(t *testing.T) {
	p := NewPiece(KindI, 3, 5)
	if p.RightEdge() != 3 {
		t.Fatalf("vertical I right edge = %d, want 3", p.RightEdge())
	}

	p.Rotate(Clockwise)
	if p.Width() != 4 || p.Height() != 1 {
		t.Errorf("rotated I is %dx%d, want 4x1", p.Width(), p.Height())
	}
	if p.RightEdge() != 6 {
		t.Errorf("horizontal I right edge = %d, want 6", p.RightEdge())
	}
	for pt := range p.Cells() {
		if pt.Y != 5 {
			t.Errorf("horizontal I cell %v not on anchor row", pt)
		}
	}
}

func TestPieceClone(t *testing.T) {
	p := NewPiece(KindS, 1, 1)
	c := p.Clone()
	c.Rotate(Clockwise)
	c.X = 4

	if p.X != 1 || !p.Shape.Equal(KindS.Template()) {
		t.Error("Clone shares state with original")
	}
}
