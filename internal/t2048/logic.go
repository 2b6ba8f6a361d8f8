package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all move directions in probe order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// offset returns the row and column step for the direction.
func (d Direction) offset() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// fromFarEdge reports whether cells are visited in reverse row-major order.
// Tiles closest to the edge they slide towards must move first.
func (d Direction) fromFarEdge() bool {
	return d == DirDown || d == DirRight
}

// Tile is a grid cell occupant. The zero Tile is an empty cell.
type Tile struct {
	Value  int
	merged bool
}

// Empty returns true if the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// canMergeWith returns true if both tiles hold the same value and
// neither has merged during the current move.
func (t Tile) canMergeWith(other Tile) bool {
	return !t.Empty() && t.Value == other.Value && !t.merged && !other.merged
}

// newGrid allocates an empty size x size grid.
func newGrid(size int) [][]Tile {
	grid := make([][]Tile, size)
	for row := range grid {
		grid[row] = make([]Tile, size)
	}
	return grid
}

// slide walks every occupied cell in the direction's processing order and
// moves each tile step by step until it hits the edge, a blocking tile, or
// completes a merge.
//
// With commit=false the grid is left untouched and the function returns true
// as soon as one step or merge would be possible.
// With commit=true the grid is updated in place and the gained score is added.
func (e *Engine) slide(dir Direction, commit bool) (moved bool, gained int) {
	n := e.size
	dRow, dCol := dir.offset()
	last := n*n - 1

	for i := range n * n {
		idx := i
		if dir.fromFarEdge() {
			idx = last - i
		}
		row, col := idx/n, idx%n
		if e.grid[row][col].Empty() {
			continue
		}

		nextRow, nextCol := row+dRow, col+dCol
		for e.inBounds(nextRow, nextCol) {
			current := e.grid[row][col]
			next := e.grid[nextRow][nextCol]

			if next.Empty() {
				if !commit {
					return true, 0
				}
				e.grid[nextRow][nextCol] = current
				e.grid[row][col] = Tile{}
				row, col = nextRow, nextCol
				nextRow += dRow
				nextCol += dCol
				moved = true
				continue
			}

			if next.canMergeWith(current) {
				if !commit {
					return true, 0
				}
				merged := Tile{Value: next.Value * 2, merged: true}
				e.grid[nextRow][nextCol] = merged
				e.grid[row][col] = Tile{}
				gained += merged.Value
				moved = true
			}
			break
		}
	}

	return moved, gained
}

// inBounds returns true if (row, col) lies on the grid.
func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.size && col >= 0 && col < e.size
}

// clearMerged resets every tile's merge flag for the next move.
func (e *Engine) clearMerged() {
	for row := range e.grid {
		for col := range e.grid[row] {
			e.grid[row][col].merged = false
		}
	}
}

// Position identifies a grid cell.
type Position struct {
	Row, Col int
}

// emptyCells returns coordinates of all empty cells in row-major order.
func (e *Engine) emptyCells() []Position {
	var cells []Position
	for row := range e.grid {
		for col := range e.grid[row] {
			if e.grid[row][col].Empty() {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}
	return cells
}

// spawnRandomTile places a 2 or a 4 (even odds) in a uniformly chosen empty cell.
// Returns false when the grid is full.
func (e *Engine) spawnRandomTile() (Position, bool) {
	cells := e.emptyCells()
	if len(cells) == 0 {
		return Position{}, false
	}

	pos := cells[e.rng.Intn(len(cells))]

	value := 2
	if e.rng.Intn(2) == 1 {
		value = 4
	}

	e.grid[pos.Row][pos.Col] = Tile{Value: value}
	return pos, true
}
