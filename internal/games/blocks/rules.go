package blocks

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 22
)

// Rules holds the timing and scoring parameters of a game.
type Rules struct {
	FreezeDelay  time.Duration // grace window after the last move or rotate
	RowsPerLevel int
	BaseInterval time.Duration // gravity interval at level 0
	IntervalStep time.Duration // interval reduction per level
	MinInterval  time.Duration
	Progression  bool // false pins the level at 0
	ScoreFactor  int
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		FreezeDelay:  300 * time.Millisecond,
		RowsPerLevel: 20,
		BaseInterval: 500 * time.Millisecond,
		IntervalStep: 60 * time.Millisecond,
		MinInterval:  50 * time.Millisecond,
		Progression:  true,
		ScoreFactor:  10,
	}
}

// RulesFromConfig converts YAML rules (seconds) into Rules.
func RulesFromConfig(cfg config.BlocksConfig) Rules {
	r := cfg.Rules
	return Rules{
		FreezeDelay:  seconds(r.FreezeDelay),
		RowsPerLevel: r.RowsPerLevel,
		BaseInterval: seconds(r.BaseInterval),
		IntervalStep: seconds(r.IntervalStep),
		MinInterval:  seconds(r.MinInterval),
		Progression:  cfg.Difficulty.Enabled,
		ScoreFactor:  r.ScoreFactor,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Millisecond)
}

// ScoreDelta returns the points for clearing rows at the given level:
// (level+1)^2 * rows^2 * ScoreFactor.
func (r Rules) ScoreDelta(level, rows int) int {
	l := level + 1
	return l * l * rows * rows * r.ScoreFactor
}

// TickInterval returns the gravity interval for a level.
func (r Rules) TickInterval(level int) time.Duration {
	d := r.BaseInterval - time.Duration(level)*r.IntervalStep
	return max(d, r.MinInterval)
}

// LevelFor returns the level reached after clearing rows in total.
func (r Rules) LevelFor(rows int) int {
	if !r.Progression || r.RowsPerLevel <= 0 {
		return 0
	}
	return rows / r.RowsPerLevel
}
