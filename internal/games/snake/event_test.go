package snake

import (
	"reflect"
	"testing"
)

func TestOnEventTick(t *testing.T) {
	s := newTestState(5, []Point{{1, 1}}, DirDown, Point{4, 4}, true)
	s.OnEvent(TickEvent)

	if s.Head() != (Point{1, 2}) {
		t.Errorf("head after tick = %v, expected (1,2)", s.Head())
	}
}

func TestOnEventDirectionTimerMode(t *testing.T) {
	s := newTestState(5, []Point{{1, 1}}, DirRight, Point{4, 4}, true)
	s.OnEvent(DirectionRequest(DirUp))

	if s.Direction() != DirUp {
		t.Errorf("direction = %s, expected up", s.Direction())
	}
	if s.Head() != (Point{1, 1}) {
		t.Error("timer mode must not move on a direction change")
	}
}

func TestOnEventDirectionImmediateMode(t *testing.T) {
	s := newTestState(5, []Point{{1, 1}}, DirRight, Point{4, 4}, false)

	s.OnEvent(DirectionRequest(DirUp))
	if s.Head() != (Point{1, 0}) {
		t.Errorf("accepted change should move immediately, head = %v", s.Head())
	}

	s.OnEvent(DirectionRequest(DirDown))
	if s.Head() != (Point{1, 0}) || s.Direction() != DirUp {
		t.Error("rejected reversal must not move")
	}

	s.OnEvent(DirectionRequest(DirUp))
	if s.Head() != (Point{1, 4}) {
		t.Errorf("repeating the heading should step again with wrap, head = %v", s.Head())
	}
}

func TestOnEventReset(t *testing.T) {
	s := newTestState(3, []Point{{2, 2}, {1, 2}, {0, 2}}, DirLeft, Point{1, 1}, false)
	s.won = true

	s.OnEvent(ResetEvent)

	if s.Len() != 1 || s.Head() != (Point{0, 0}) {
		t.Errorf("reset snake = %v, expected [(0,0)]", s.Snake())
	}
	if s.Won() {
		t.Error("reset should clear the win")
	}
	if s.Direction() != DirRight {
		t.Errorf("reset direction = %s, expected right", s.Direction())
	}
	if s.TimerEnabled() || s.BoardSize() != 3 {
		t.Error("reset should keep the configuration")
	}
	// firstPicker: first free cell after the origin.
	if s.Food() != (Point{1, 0}) {
		t.Errorf("reset food = %v, expected (1,0)", s.Food())
	}
}

func TestOnEventUnknownPanics(t *testing.T) {
	s := newTestState(3, []Point{{0, 0}}, DirRight, Point{1, 1}, true)
	expectPanic(t, "none event", func() { s.OnEvent(Event{}) })
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{DirectionRequest(DirLeft), "direction(left)"},
		{ResetEvent, "reset"},
		{TickEvent, "tick"},
		{Event{}, "none"},
	}
	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite() == d || d.Opposite().Opposite() != d {
			t.Errorf("Opposite broken for %s", d)
		}
	}
}

func TestImmediateModeSequence(t *testing.T) {
	// Walk right along the top row on a 3x3 board eating food each step.
	s := newTestState(3, []Point{{0, 0}}, DirRight, Point{1, 0}, false)
	s.OnEvent(DirectionRequest(DirRight))

	want := []Point{{1, 0}, {0, 0}}
	if !reflect.DeepEqual(s.Snake(), want) {
		t.Errorf("snake = %v, expected %v", s.Snake(), want)
	}
	if s.Food() != (Point{2, 0}) {
		t.Errorf("food = %v, expected (2,0) from first-cell picker", s.Food())
	}
}
