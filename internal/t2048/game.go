// Package t2048 implements the 2048 board engine: grid, tiles, score and the
// game state machine. It knows nothing about rendering; front-ends read the
// board through View after every call.
package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	// DefaultSize is the default board side.
	DefaultSize = 4

	// DefaultTarget is the score that wins the game.
	DefaultTarget = 2048

	minSize = 2
)

// State is the game state machine.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateWon
	StateLost
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Engine owns the grid, score and state of a single game.
// It is not safe for concurrent use; callers drive it from one event loop.
type Engine struct {
	size   int
	target int
	rng    *rand.Rand

	grid  [][]Tile
	score int
	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithSize sets the board side. Values below 2 are ignored.
func WithSize(size int) Option {
	return func(e *Engine) {
		if size >= minSize {
			e.size = size
		}
	}
}

// WithTarget sets the winning score. Non-positive values are ignored.
func WithTarget(target int) Option {
	return func(e *Engine) {
		if target > 0 {
			e.target = target
		}
	}
}

// WithSeed seeds the spawn RNG. 0 means seed from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates an engine in StateNotStarted with an empty grid.
func New(opts ...Option) *Engine {
	e := &Engine{
		size:   DefaultSize,
		target: DefaultTarget,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.grid = newGrid(e.size)
	return e
}

// StartGame resets the board and spawns two tiles.
// Does nothing and returns false while a game is running.
func (e *Engine) StartGame() bool {
	if e.state == StateRunning {
		return false
	}

	e.grid = newGrid(e.size)
	e.score = 0
	e.state = StateRunning

	e.spawnRandomTile()
	e.spawnRandomTile()
	return true
}

// Move slides all tiles in the given direction.
// Returns whether any tile moved or merged. Outside StateRunning it is a no-op.
func (e *Engine) Move(dir Direction) bool {
	if e.state != StateRunning {
		return false
	}

	moved, gained := e.slide(dir, true)
	if !moved {
		return false
	}

	e.score += gained
	e.clearMerged()
	e.spawnRandomTile()

	// Order matters: a win on the move that also locks the board reports Won.
	if !e.MoveAvailable() {
		e.state = StateLost
	}
	if e.score == e.target {
		e.state = StateWon
	}

	return true
}

// MoveAvailable returns true if a move in any direction would change the board.
// It never mutates the engine.
func (e *Engine) MoveAvailable() bool {
	for _, dir := range Directions {
		if ok, _ := e.slide(dir, false); ok {
			return true
		}
	}
	return false
}

// Step applies one frame of input.
// Start is handled before moves; at most one move is applied per frame.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	changed := false

	if in.Has(core.ActionStart) {
		changed = e.StartGame()
	}

	switch {
	case in.Has(core.ActionUp):
		changed = e.Move(DirUp) || changed
	case in.Has(core.ActionDown):
		changed = e.Move(DirDown) || changed
	case in.Has(core.ActionLeft):
		changed = e.Move(DirLeft) || changed
	case in.Has(core.ActionRight):
		changed = e.Move(DirRight) || changed
	}

	return core.StepResult{State: e.GameState(), Changed: changed}
}

// GameState summarizes the engine for the platform layer.
func (e *Engine) GameState() core.GameState {
	return core.GameState{
		Score:    e.score,
		Running:  e.state == StateRunning,
		GameOver: e.state.Terminal(),
		Won:      e.state == StateWon,
	}
}

// Size returns the board side.
func (e *Engine) Size() int {
	return e.size
}

// Target returns the winning score.
func (e *Engine) Target() int {
	return e.target
}

// Score returns the accumulated merge score.
func (e *Engine) Score() int {
	return e.score
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Cell returns the tile value at (row, col) and whether the cell is occupied.
// Out-of-range coordinates report an empty cell.
func (e *Engine) Cell(row, col int) (int, bool) {
	if !e.inBounds(row, col) {
		return 0, false
	}
	t := e.grid[row][col]
	return t.Value, !t.Empty()
}

// MaxTile returns the highest tile value on the board.
func (e *Engine) MaxTile() int {
	maxVal := 0
	for row := range e.grid {
		for _, t := range e.grid[row] {
			if t.Value > maxVal {
				maxVal = t.Value
			}
		}
	}
	return maxVal
}
