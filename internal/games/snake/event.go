package snake

import "fmt"

// EventKind identifies what the host loop is asking the engine to do.
type EventKind int

const (
	EventNone EventKind = iota
	EventDirection
	EventReset
	EventTick
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventDirection:
		return "direction"
	case EventReset:
		return "reset"
	case EventTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event is one input to OnEvent. Dir is only meaningful for EventDirection.
type Event struct {
	Kind EventKind
	Dir  Direction
}

var (
	// ResetEvent discards the game and starts a new one with the same config.
	ResetEvent = Event{Kind: EventReset}
	// TickEvent advances the snake by one cell.
	TickEvent = Event{Kind: EventTick}
)

// DirectionRequest asks the engine to turn the snake towards d.
func DirectionRequest(d Direction) Event {
	return Event{Kind: EventDirection, Dir: d}
}

func (e Event) String() string {
	if e.Kind == EventDirection {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Dir)
	}
	return e.Kind.String()
}

// OnEvent dispatches a host event.
//
// In immediate-move mode (timer disabled) an accepted direction change also
// moves the snake one step. Reset replaces the whole state value, keeping
// the config and picker.
func (s *State) OnEvent(ev Event) {
	switch ev.Kind {
	case EventDirection:
		if s.ChangeDirection(ev.Dir) && !s.config.TimerEnabled {
			s.MoveSnake()
		}
	case EventReset:
		*s = *NewState(s.config, s.picker)
	case EventTick:
		s.MoveSnake()
	default:
		panic(fmt.Sprintf("snake: unknown event kind %d", int(ev.Kind)))
	}
}
