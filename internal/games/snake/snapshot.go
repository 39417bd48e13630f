package snake

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	Mode      string // "timer" or "step"
	BoardSize int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	Won       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	head := s.Head()
	food := s.Food()

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		BoardSize: s.BoardSize(),
		SnakeLen:  s.Len(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       s.Direction(),
		FoodX:     food.X,
		FoodY:     food.Y,
		Won:       s.Won(),
	}
}

// SameBoard reports whether two snapshots differ only in their tick count.
func (s Snapshot) SameBoard(o Snapshot) bool {
	s.Tick = o.Tick
	return s == o
}
