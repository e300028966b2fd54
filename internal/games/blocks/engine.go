package blocks

import "time"

// Status is the engine's lifecycle state.
type Status int

const (
	StatusActive Status = iota
	StatusPaused
	StatusOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game over"
	default:
		return "unknown"
	}
}

// wiggleOffsets are the horizontal shifts tried, in order, to rescue a
// rotation that collides.
var wiggleOffsets = [...]int{-1, 1, -2, -3}

// Options configures a new Engine. Zero fields take defaults.
type Options struct {
	Width      int
	Height     int // visible rows
	Rules      Rules
	Clock      Clock
	Scheduler  Scheduler
	Randomizer Randomizer
}

// Engine is the game state machine. It is not safe for concurrent use;
// all calls must come from one goroutine.
type Engine struct {
	width  int
	height int
	rules  Rules
	clock  Clock
	sched  Scheduler
	rand   Randomizer

	board   *Board
	current *Piece
	next    *Piece

	score       int
	level       int
	rowsCleared int
	lastAction  time.Duration
	paused      bool
	over        bool
}

// NewEngine creates an engine with a fresh game and arms the scheduler.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		width:  opts.Width,
		height: opts.Height,
		rules:  opts.Rules,
		clock:  opts.Clock,
		sched:  opts.Scheduler,
		rand:   opts.Randomizer,
	}
	if e.width <= 0 {
		e.width = DefaultWidth
	}
	if e.height <= 0 {
		e.height = DefaultHeight
	}
	if e.rules == (Rules{}) {
		e.rules = DefaultRules()
	}
	if e.clock == nil {
		e.clock = &SimClock{}
	}
	if e.sched == nil {
		e.sched = nopScheduler{}
	}
	if e.rand == nil {
		e.rand = NewUniformRandomizer(0)
	}

	e.reset()
	e.sched.Schedule(e.TickInterval())
	return e
}

func (e *Engine) reset() {
	if e.board == nil {
		e.board = NewBoard(e.width)
	} else {
		e.board.Clear()
	}
	e.score = 0
	e.level = 0
	e.rowsCleared = 0
	e.paused = false
	e.over = false
	e.current = e.spawn(e.rand.NextKind())
	e.next = NewPiece(e.rand.NextKind(), 0, 0)
	e.lastAction = e.clock.Now()
}

// spawn places a new piece above the visible area.
func (e *Engine) spawn(k Kind) *Piece {
	return NewPiece(k, e.width/2, e.height+1)
}

func (e *Engine) active() bool {
	return !e.paused && !e.over
}

func (e *Engine) touch() {
	e.lastAction = e.clock.Now()
}

func normalizeDirection(dir int) int {
	if dir > 0 {
		return 1
	}
	return -1
}

// Valid reports whether the current piece lies inside the side walls,
// at or above the floor, and clear of frozen cells.
func (e *Engine) Valid() bool {
	return e.fits(e.current)
}

func (e *Engine) fits(p *Piece) bool {
	if p.Bottom() < 0 || p.LeftEdge() < 0 || p.RightEdge() >= e.width {
		return false
	}
	ok := true
	p.eachCell(p.Height(), func(pt Point, _ Kind) {
		if ok && e.board.Occupied(pt) {
			ok = false
		}
	})
	return ok
}

// Move shifts the current piece one column. Positive dir moves right,
// anything else moves left. Blocked moves are dropped silently.
func (e *Engine) Move(dir int) {
	if !e.active() {
		return
	}
	dx := normalizeDirection(dir)
	e.current.X += dx
	if !e.Valid() {
		e.current.X -= dx
		return
	}
	e.touch()
}

// Rotate turns the current piece. Positive dir is counterclockwise,
// anything else clockwise. A colliding rotation is retried at each wiggle
// offset; if none fits the rotation is undone.
func (e *Engine) Rotate(dir int) {
	if !e.active() {
		return
	}
	r := NormalizeRotation(dir)
	e.current.Rotate(r)
	if e.Valid() || e.wiggle() {
		e.touch()
		return
	}
	e.current.Rotate(r.Opposite())
}

func (e *Engine) wiggle() bool {
	for _, dx := range wiggleOffsets {
		e.current.X += dx
		if e.Valid() {
			return true
		}
		e.current.X -= dx
	}
	return false
}

// Drop moves the current piece to the lowest row it can occupy.
// The piece still freezes through Tick.
func (e *Engine) Drop() {
	if !e.active() {
		return
	}
	for e.Valid() {
		e.current.Y--
	}
	e.current.Y++
}

// Tick applies one step of gravity. A piece that cannot fall freezes once
// the grace delay since the last move or rotate has passed.
func (e *Engine) Tick() {
	if !e.active() {
		return
	}
	e.current.Y--
	if e.Valid() {
		return
	}
	e.current.Y++
	if e.clock.Now()-e.lastAction > e.rules.FreezeDelay {
		e.finishFall()
	}
}

func (e *Engine) finishFall() {
	frozen := e.current.Cells()
	e.board.Freeze(frozen)

	rows := e.board.Compact()
	e.score += e.rules.ScoreDelta(e.level, rows)
	e.rowsCleared += rows
	for target := e.rules.LevelFor(e.rowsCleared); e.level < target; {
		e.level++
		e.sched.Unschedule()
		e.sched.Schedule(e.TickInterval())
	}

	for p := range frozen {
		if p.Y >= e.height {
			e.over = true
			e.sched.Unschedule()
			return
		}
	}

	e.current = e.next
	e.current.X, e.current.Y = e.width/2, e.height+1
	e.next = NewPiece(e.rand.NextKind(), 0, 0)
	if !e.Valid() {
		e.over = true
		e.sched.Unschedule()
	}
}

// TogglePause pauses or resumes an unfinished game.
func (e *Engine) TogglePause() {
	if e.over {
		return
	}
	e.paused = !e.paused
	if e.paused {
		e.sched.Unschedule()
	} else {
		e.sched.Schedule(e.TickInterval())
	}
}

// Restart starts a fresh game. It is ignored while a game is in progress;
// pause first.
func (e *Engine) Restart() {
	if e.active() {
		return
	}
	e.reset()
	e.sched.Unschedule()
	e.sched.Schedule(e.TickInterval())
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// RowsCleared returns the total rows cleared this game.
func (e *Engine) RowsCleared() int { return e.rowsCleared }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.paused }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.over }

// Status returns the lifecycle state. Over takes precedence over paused.
func (e *Engine) Status() Status {
	switch {
	case e.over:
		return StatusOver
	case e.paused:
		return StatusPaused
	default:
		return StatusActive
	}
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.width }

// Height returns the number of visible rows.
func (e *Engine) Height() int { return e.height }

// Rules returns the rule set in effect.
func (e *Engine) Rules() Rules { return e.rules }

// Board returns the frozen cells. Callers must not modify it.
func (e *Engine) Board() *Board { return e.board }

// Current returns the falling piece. Callers must not modify it.
func (e *Engine) Current() *Piece { return e.current }

// Next returns the queued piece. Callers must not modify it.
func (e *Engine) Next() *Piece { return e.next }

// TickInterval returns the gravity interval for the current level.
func (e *Engine) TickInterval() time.Duration {
	return e.rules.TickInterval(e.level)
}
