package blocks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical games
	cfg := testRuntime(12345)

	inputSequence := make([]core.InputFrame, 4000)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%97 == 0:
			inputSequence[i].Set(core.ActionDrop)
		case i%11 == 0:
			inputSequence[i].Set(core.ActionRotateCW)
		case i%7 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%13 == 0:
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if len(snap1.CellData) == 0 {
		t.Error("expected frozen cells after 4000 frames")
	}
}

func TestGameOverWithoutInput(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	noInput := core.NewInputFrame()
	var state core.GameState
	for i := 0; i < 200000 && !state.GameOver; i++ {
		state = g.Step(noInput).State
	}

	if !state.GameOver {
		t.Fatal("unattended game never ended")
	}
	if state.Score != 0 {
		t.Errorf("pieces stacked in the middle cannot clear rows, score = %d", state.Score)
	}
	if g.timer.Armed() {
		t.Error("gravity timer still armed after game over")
	}

	// Further frames change nothing
	before := g.Snapshot()
	for range 120 {
		g.Step(frameWith(core.ActionLeft, core.ActionDrop, core.ActionRotateCW))
	}
	after := g.Snapshot()
	if !equalCells(before.CellData, after.CellData) {
		t.Error("board changed after game over")
	}
}

func equalCells(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGamePauseAndRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	y := g.engine.Current().Y
	now := g.clock.Now()
	for range 200 {
		g.Step(core.NewInputFrame())
	}
	if g.engine.Current().Y != y {
		t.Errorf("piece moved while paused: %d -> %d", y, g.engine.Current().Y)
	}
	if g.clock.Now() != now {
		t.Error("simulated time advanced while paused")
	}

	g.engine.score = 99
	g.Step(frameWith(core.ActionRestart))
	if s := g.State(); s.Paused || s.Score != 0 {
		t.Errorf("after restart state = %+v, want fresh active game", s)
	}
}

func TestGameRestartIgnoredWhileActive(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.engine.score = 50

	g.Step(frameWith(core.ActionRestart))
	if g.State().Score != 50 {
		t.Error("restart should be ignored during play")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	for i := range 500 {
		in := core.NewInputFrame()
		if i%40 == 0 {
			in.Set(core.ActionDrop)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.engine.Board().Len() != 0 {
		t.Errorf("Reset should clear the board, got %d cells", g.engine.Board().Len())
	}
	if s := g.State(); s.Score != 0 || s.Level != 0 || s.GameOver || s.Paused {
		t.Errorf("Reset state = %+v", s)
	}
}

func TestBoardViewIgnoresBufferRows(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	g.Step(core.NewInputFrame())

	if g.engine.Current().Bottom() < g.engine.Height() {
		t.Fatal("piece should still be in the buffer rows")
	}
	for y, row := range g.view.grid {
		for x, k := range row {
			if k != Empty {
				t.Errorf("grid (%d,%d) = %s, want empty", x, y, k)
			}
		}
	}
}

func TestPreviewRebuiltOnNewPiece(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	first := g.view.nextRef
	if first != g.engine.NextPiece() {
		t.Fatal("preview not built on reset")
	}

	for i := 0; i < 5000 && g.engine.NextPiece() == first; i++ {
		g.Step(frameWith(core.ActionDrop))
	}
	if g.view.nextRef == first {
		t.Fatal("preview not rebuilt after the next piece changed")
	}
	if !g.view.preview.Equal(g.engine.NextPiece().Shape) {
		t.Error("preview does not match next piece")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testRuntime(1)
	g := New()
	g.Reset(cfg)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "NEXT") {
		t.Error("Render should draw the next-piece panel")
	}

	// Board layout: 22 wide frame centered with the side panel
	ox, oy := (cfg.ScreenW-(2*DefaultWidth+2+panelGap+panelWidth))/2, 0
	if screen.Get(ox, oy) != '┌' {
		t.Errorf("frame corner = %q at (%d,%d)", screen.Get(ox, oy), ox, oy)
	}

	toScreen := func(p Point) (int, int) {
		return ox + 1 + 2*p.X, oy + 1 + DefaultHeight - 1 - p.Y
	}

	for p := range g.engine.GhostCells() {
		x, y := toScreen(p)
		if c := screen.GetCell(x, y); c.Rune != GhostChar {
			t.Errorf("ghost cell %v rendered as %q", p, c.Rune)
		}
	}

	g.Step(frameWith(core.ActionDrop))
	g.Render(screen)
	cur := g.engine.Current()
	for p := range cur.Cells() {
		x, y := toScreen(p)
		c := screen.GetCell(x, y)
		if c.Rune != BlockChar || c.Color != cur.Kind.Color() {
			t.Errorf("piece cell %v rendered as %q color %d", p, c.Rune, c.Color)
		}
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Step(frameWith(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(frameWith(core.ActionPause))
	g.engine.over = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})
	y := g.engine.Current().Y
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.engine.Current().Y != y {
		t.Error("game should not advance when the screen is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small message")
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.screenTooSmall {
		t.Error("Resize should recompute the layout")
	}
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"blocks", "blocks_bag"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestBagModeUsesBag(t *testing.T) {
	g := NewBag()
	g.Reset(testRuntime(9))
	if _, ok := g.engine.rand.(*BagRandomizer); !ok {
		t.Errorf("randomizer = %T, want *BagRandomizer", g.engine.rand)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	SetDifficultyPreset("fixed")
	g := New()
	g.Reset(testRuntime(1))
	if g.engine.Rules().Progression {
		t.Error("fixed preset should disable progression")
	}

	SetDifficultyPreset("hard")
	g.Reset(testRuntime(1))
	if got := g.engine.Rules().FreezeDelay.Milliseconds(); got != 150 {
		t.Errorf("hard FreezeDelay = %dms, want 150ms", got)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear, got %q", difficultyPreset)
	}
}

func TestGameCustomConfig(t *testing.T) {
	t.Cleanup(func() { SetConfigPath("") })

	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := "gameplay:\n  grid_width: 8\n  grid_height: 16\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	g := New()
	g.Reset(testRuntime(1))
	if g.ConfigErr() != nil {
		t.Fatalf("ConfigErr() = %v", g.ConfigErr())
	}
	if g.engine.Width() != 8 || g.engine.Height() != 16 {
		t.Errorf("grid = %dx%d, want 8x16", g.engine.Width(), g.engine.Height())
	}

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Reset(testRuntime(1))
	if g.ConfigErr() == nil {
		t.Error("missing config should be reported")
	}
	if g.engine.Width() != DefaultWidth || g.engine.Height() != DefaultHeight {
		t.Errorf("fallback grid = %dx%d, want defaults", g.engine.Width(), g.engine.Height())
	}
}
