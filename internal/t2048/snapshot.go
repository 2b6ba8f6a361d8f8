package t2048

// View is the read-only board contract consumed by renderers.
// Renderers call it after every engine operation and never mutate the game.
type View interface {
	Size() int
	Target() int
	Score() int
	State() State
	Cell(row, col int) (value int, ok bool)
	MaxTile() int
}

var (
	_ View = (*Engine)(nil)
	_ View = Snapshot{}
)

// Snapshot is an immutable copy of the engine state.
type Snapshot struct {
	board  [][]int
	score  int
	target int
	state  State
}

// Snapshot copies the current board, score and state.
func (e *Engine) Snapshot() Snapshot {
	board := make([][]int, e.size)
	for row := range e.grid {
		board[row] = make([]int, e.size)
		for col, t := range e.grid[row] {
			board[row][col] = t.Value
		}
	}
	return Snapshot{
		board:  board,
		score:  e.score,
		target: e.target,
		state:  e.state,
	}
}

// Board returns a copy of the tile values, 0 for empty cells.
func (s Snapshot) Board() [][]int {
	board := make([][]int, len(s.board))
	for row := range s.board {
		board[row] = append([]int(nil), s.board[row]...)
	}
	return board
}

// Size returns the board side.
func (s Snapshot) Size() int {
	return len(s.board)
}

// Target returns the winning score.
func (s Snapshot) Target() int {
	return s.target
}

// Score returns the score at snapshot time.
func (s Snapshot) Score() int {
	return s.score
}

// State returns the state at snapshot time.
func (s Snapshot) State() State {
	return s.state
}

// Cell returns the tile value at (row, col) and whether the cell is occupied.
func (s Snapshot) Cell(row, col int) (int, bool) {
	if row < 0 || row >= len(s.board) || col < 0 || col >= len(s.board[row]) {
		return 0, false
	}
	v := s.board[row][col]
	return v, v != 0
}

// MaxTile returns the highest tile value.
func (s Snapshot) MaxTile() int {
	maxVal := 0
	for _, row := range s.board {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (s Snapshot) Sum() int {
	total := 0
	for _, row := range s.board {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Occupied returns the number of non-empty cells.
func (s Snapshot) Occupied() int {
	count := 0
	for _, row := range s.board {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}
