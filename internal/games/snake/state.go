package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the construction-time configuration of a State.
// Reset rebuilds the state from the same Config.
type Config struct {
	BoardSize    int  // Board edge length, at least 2
	TimerEnabled bool // When false, accepted direction changes move the snake immediately
}

// State is the complete, mutable state of one Snake game.
// It performs no I/O and is owned by a single host loop.
type State struct {
	config Config
	picker Picker

	boardSize int
	snake     []Point // Head at index 0
	food      Point
	direction Direction
	won       bool
}

// NewState creates a fresh game: a one-segment snake at the origin heading right,
// and food on a random free cell chosen by picker.
func NewState(cfg Config, picker Picker) *State {
	if cfg.BoardSize < 2 || cfg.BoardSize > core.MaxBoardSize {
		panic(fmt.Sprintf("snake: board size %d, need 2 to %d", cfg.BoardSize, core.MaxBoardSize))
	}
	if picker == nil {
		panic("snake: nil picker")
	}

	s := &State{
		config:    cfg,
		picker:    picker,
		boardSize: cfg.BoardSize,
		snake:     []Point{{X: 0, Y: 0}},
		food:      Point{X: 0, Y: 0},
		direction: DirRight,
	}
	s.food = s.randomFoodPosition()
	return s
}

// BoardSize returns the board edge length.
func (s *State) BoardSize() int { return s.boardSize }

// TimerEnabled reports whether ticks drive the snake.
func (s *State) TimerEnabled() bool { return s.config.TimerEnabled }

// Direction returns the current heading.
func (s *State) Direction() Direction { return s.direction }

// Food returns the food position.
func (s *State) Food() Point { return s.food }

// Won reports whether the snake fills the whole board.
func (s *State) Won() bool { return s.won }

// Head returns the head position.
func (s *State) Head() Point { return s.snake[0] }

// Len returns the number of snake segments.
func (s *State) Len() int { return len(s.snake) }

// Snake returns a copy of the segments, head first.
func (s *State) Snake() []Point {
	out := make([]Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// ChangeDirection switches the heading unless the game is won or d
// would reverse the snake onto its own neck. Reports whether d was accepted.
func (s *State) ChangeDirection(d Direction) bool {
	if s.won {
		return false
	}
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// MoveSnake advances the snake by one cell.
// Eating food grows the snake; filling the board wins the game and freezes it.
func (s *State) MoveSnake() {
	if s.won {
		return
	}

	newHead := s.direction.Apply(s.snake[0], s.boardSize)
	s.snake = append([]Point{newHead}, s.snake...)

	if newHead != s.food {
		s.snake = s.snake[:len(s.snake)-1]
		return
	}

	// Win check comes first: a full board has no cell left for food.
	if len(s.snake) == s.boardSize*s.boardSize {
		s.won = true
		return
	}
	s.food = s.randomFoodPosition()
}

// FreeCells returns every cell holding neither food nor snake, row by row.
func (s *State) FreeCells() []Point {
	g := s.Grid()
	var free []Point
	for y, row := range g {
		for x, c := range row {
			if c == CellEmpty {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	return free
}

// randomFoodPosition picks a free cell through the injected picker.
func (s *State) randomFoodPosition() Point {
	free := s.FreeCells()
	if len(free) == 0 {
		panic("snake: no free cell for food")
	}

	i := s.picker.Pick(len(free))
	if i < 0 || i >= len(free) {
		panic(fmt.Sprintf("snake: picker returned %d for %d free cells", i, len(free)))
	}
	return free[i]
}
