package core

import "time"

// MaxBoardSize is the largest supported board edge. A framed board this
// size still fits a wide terminal, and its cell count cannot overflow int.
const MaxBoardSize = 100

// RuntimeConfig contains configuration passed to games at initialization.
// Board settings come from the config layer already normalized.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	BoardSize    int           // Board edge length in cells
	TickInterval time.Duration // Delay between ticks for timer-driven games
	Seed         int64         // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		BoardSize:    5,
		TickInterval: 300 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a game for the platform after each step.
type GameState struct {
	Score  int  // Food eaten so far
	Length int  // Snake length
	Won    bool // Board is full; the game is frozen
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board changed this step
}
