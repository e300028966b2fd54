package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// Side panel layout
const (
	panelGap   = 2
	panelWidth = 14
)

// boardView caches the visible grid and the next-piece preview.
// It is updated from engine snapshots by diffing against the previous one.
type boardView struct {
	width, height int
	grid          [][]Kind
	prev          map[Point]Kind

	nextRef *Piece
	preview Shape
}

func newBoardView(width, height int) *boardView {
	grid := make([][]Kind, height)
	for y := range grid {
		grid[y] = make([]Kind, width)
		for x := range grid[y] {
			grid[y][x] = Empty
		}
	}
	return &boardView{
		width:  width,
		height: height,
		grid:   grid,
		prev:   make(map[Point]Kind),
	}
}

// sync applies the changes since the last snapshot. Cells in the buffer
// rows above the visible area are ignored.
func (v *boardView) sync(e *Engine) {
	cur := e.State()
	for p, k := range Diff(v.prev, cur) {
		if p.X < 0 || p.X >= v.width || p.Y < 0 || p.Y >= v.height {
			continue
		}
		v.grid[p.Y][p.X] = k
	}
	v.prev = cur

	if next := e.NextPiece(); next != v.nextRef {
		v.nextRef = next
		v.preview = next.Shape.Clone()
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	w, h := g.engine.Width(), g.engine.Height()
	boxW, boxH := 2*w+2, h+2
	ox := (dst.Width() - (boxW + panelGap + panelWidth)) / 2
	// Bottom-align when the terminal is shorter than the board; the top rows
	// are clipped.
	oy := (dst.Height() - boxH) / 2
	if dst.Height() < boxH {
		oy = dst.Height() - boxH
	}

	dst.DrawBox(core.NewRect(ox, oy, boxW, boxH))
	g.renderBoard(dst, ox+1, oy+1)
	g.renderPanel(dst, ox+boxW+panelGap, max(oy, 0))
	g.renderOverlay(dst)
}

// renderBoard draws the cached grid with (left, top) as the top-left cell.
// Board row 0 is the bottom screen row.
func (g *Game) renderBoard(dst *core.Screen, left, top int) {
	var ghost map[Point]Kind
	if g.cfg.Gameplay.ShowGhost && g.engine.Status() == StatusActive {
		ghost = g.engine.GhostCells()
	}

	v := g.view
	for y := 0; y < v.height; y++ {
		sy := top + v.height - 1 - y
		for x := 0; x < v.width; x++ {
			sx := left + 2*x
			switch k := v.grid[y][x]; {
			case k != Empty:
				dst.SetCell(sx, sy, BlockChar, k.Color())
				dst.SetCell(sx+1, sy, BlockChar, k.Color())
			case hasPoint(ghost, x, y):
				dst.SetCell(sx, sy, GhostChar, core.ColorGray)
				dst.SetCell(sx+1, sy, GhostChar, core.ColorGray)
			default:
				dst.SetCell(sx+1, sy, EmptyChar, core.ColorGray)
			}
		}
	}
}

func hasPoint(cells map[Point]Kind, x, y int) bool {
	_, ok := cells[Point{X: x, Y: y}]
	return ok
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, left, top int) {
	e := g.engine

	dst.DrawText(left, top, "NEXT")
	if s := g.view.preview; s != nil {
		for i, row := range s {
			for j, k := range row {
				if k == Empty {
					continue
				}
				dst.SetCell(left+2*j, top+2+i, BlockChar, k.Color())
				dst.SetCell(left+2*j+1, top+2+i, BlockChar, k.Color())
			}
		}
	}

	y := top + 7
	dst.DrawText(left, y, "SCORE")
	dst.DrawTextColor(left, y+1, fmt.Sprintf("%d", e.Score()), core.ColorBrightWhite)
	dst.DrawText(left, y+3, "LEVEL")
	dst.DrawTextColor(left, y+4, fmt.Sprintf("%d", e.Level()), core.ColorBrightWhite)
	dst.DrawText(left, y+6, "ROWS")
	dst.DrawTextColor(left, y+7, fmt.Sprintf("%d", e.RowsCleared()), core.ColorBrightWhite)
	dst.DrawTextColor(left, y+9, fmt.Sprintf("%.2fs/row", e.TickInterval().Seconds()), core.ColorGray)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.engine.Status() {
	case StatusPaused:
		g.drawCenteredBox(dst, "PAUSED", "P resume  |  R restart")
	case StatusOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.engine.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
