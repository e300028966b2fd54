package blocks

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts the Engine to the platform's fixed-rate Game interface.
// Each Step is one frame: simulated time advances by 1/TickRate and the
// gravity timer fires as many ticks as are due.
type Game struct {
	bag bool // force the bag randomizer

	runtime core.RuntimeConfig
	cfg     config.BlocksConfig
	cfgErr  error

	engine *Engine
	clock  *SimClock
	timer  *GravityTimer
	view   *boardView
	frame  time.Duration

	tickCount      int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game using the configured randomizer.
func New() *Game {
	return &Game{}
}

// NewBag creates a game that always deals from a seven-piece bag.
func NewBag() *Game {
	return &Game{bag: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.bag {
		return "blocks_bag"
	}
	return "blocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.bag {
		return "Blockfall (7-bag)"
	}
	return "Blockfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBlocks(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}

	config.ApplyBlocksPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	name := cfg.Gameplay.Randomizer
	if g.bag {
		name = config.RandomizerBag
	}
	rnd, err := NewRandomizer(name, runtime.Seed)
	if err != nil {
		rnd = NewUniformRandomizer(runtime.Seed)
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)

	g.clock = &SimClock{}
	g.timer = &GravityTimer{}
	g.engine = NewEngine(Options{
		Width:      cfg.Gameplay.GridWidth,
		Height:     cfg.Gameplay.GridHeight,
		Rules:      RulesFromConfig(cfg),
		Clock:      g.clock,
		Scheduler:  g.timer,
		Randomizer: rnd,
	})
	g.view = newBoardView(g.engine.Width(), g.engine.Height())
	g.view.sync(g.engine)
	g.tickCount = 0

	g.calculateLayout()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

func (g *Game) calculateLayout() {
	g.minScreenW = 2*g.engine.Width() + 2 + panelGap + panelWidth
	g.minScreenH = 12
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Simulated time only passes while the game is running
	if g.engine.Status() == StatusActive {
		g.clock.Advance(g.frame)
	}

	g.handleInput(in)

	g.timer.Advance(g.frame)
	for g.timer.Fire() {
		g.engine.Tick()
	}

	g.view.sync(g.engine)
	return core.StepResult{State: g.State()}
}

// handleInput forwards actions to the engine, which ignores them when
// they are not allowed in the current state.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.engine.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		g.engine.Restart()
	}
	if in.Has(core.ActionLeft) {
		g.engine.Move(-1)
	}
	if in.Has(core.ActionRight) {
		g.engine.Move(1)
	}
	if in.Has(core.ActionRotateCW) {
		g.engine.Rotate(int(Clockwise))
	}
	if in.Has(core.ActionRotateCCW) {
		g.engine.Rotate(int(CounterClockwise))
	}
	if in.Has(core.ActionDrop) {
		g.engine.Drop()
	}
}

// Engine exposes the underlying state machine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Config returns the effective configuration.
func (g *Game) Config() config.BlocksConfig {
	return g.cfg
}

// ConfigErr returns the error that made the last Reset fall back to the
// built-in defaults, or nil.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: g.engine.Over(),
		Paused:   g.engine.Paused(),
	}
}

// Register the games with the registry
func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_bag", func() registry.Game {
		return NewBag()
	})
}
