package snake

import "strings"

// Cell is a single board symbol.
type Cell byte

const (
	CellEmpty Cell = '-'
	CellHead  Cell = 'o'
	CellBody  Cell = '*'
	CellFood  Cell = '@'
)

func (c Cell) String() string {
	return string(rune(c))
}

// Grid is a square board projection indexed as grid[y][x].
type Grid [][]Cell

// newGrid allocates a size×size grid filled with CellEmpty.
func newGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		row := make([]Cell, size)
		for x := range row {
			row[x] = CellEmpty
		}
		g[y] = row
	}
	return g
}

// Size returns the board edge length.
func (g Grid) Size() int {
	return len(g)
}

// At returns the cell at p.
func (g Grid) At(p Point) Cell {
	return g[p.Y][p.X]
}

// Row returns row y as a string.
func (g Grid) Row(y int) string {
	var sb strings.Builder
	sb.Grow(len(g[y]))
	for _, c := range g[y] {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// String joins the rows with newlines, without a trailing newline.
func (g Grid) String() string {
	rows := make([]string, len(g))
	for y := range g {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Grid projects the state onto a fresh board.
// Overlay order: body, then head, then food.
func (s *State) Grid() Grid {
	g := newGrid(s.boardSize)

	for _, seg := range s.snake {
		g[seg.Y][seg.X] = CellBody
	}

	head := s.snake[0]
	g[head.Y][head.X] = CellHead

	g[s.food.Y][s.food.X] = CellFood

	return g
}

// String renders the board as a multi-line text block.
func (s *State) String() string {
	return s.Grid().String()
}
