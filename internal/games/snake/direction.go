package snake

import "fmt"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		panic(fmt.Sprintf("snake: unknown direction %d", int(d)))
	}
}

// Apply moves p one cell in direction d on a size×size board.
// Leaving an edge re-enters at the opposite edge.
func (d Direction) Apply(p Point, size int) Point {
	if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
		panic(fmt.Sprintf("snake: point (%d, %d) outside %dx%d board", p.X, p.Y, size, size))
	}

	switch d {
	case DirUp:
		if p.Y > 0 {
			p.Y--
		} else {
			p.Y = size - 1
		}
	case DirDown:
		if p.Y < size-1 {
			p.Y++
		} else {
			p.Y = 0
		}
	case DirLeft:
		if p.X > 0 {
			p.X--
		} else {
			p.X = size - 1
		}
	case DirRight:
		if p.X < size-1 {
			p.X++
		} else {
			p.X = 0
		}
	default:
		panic(fmt.Sprintf("snake: unknown direction %d", int(d)))
	}
	return p
}

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
