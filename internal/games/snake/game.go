package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode represents how the snake is driven.
type Mode string

const (
	// ModeTimer moves the snake on every tick.
	ModeTimer Mode = "timer"
	// ModeStep moves the snake once per accepted direction key (immediate-move).
	ModeStep Mode = "step"
)

// Layout of the playfield on screen.
const (
	hudHeight  = 2 // Title line and separator
	boardLeft  = 0
	boardTop   = hudHeight
	statusRows = 1 // Line below the board frame
)

// Game adapts the engine State to the platform's registry.Game interface.
type Game struct {
	mode  Mode
	state *State
	tick  uint64

	lastEvent Event
	tooSmall  bool
}

// New creates a timer-driven Snake game.
func New() *Game {
	return &Game{mode: ModeTimer}
}

// NewStep creates an immediate-move Snake game.
func NewStep() *Game {
	return &Game{mode: ModeStep}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_step", func() registry.Game {
		return NewStep()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	if g.mode == ModeStep {
		return "snake_step"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeStep {
		return "Snake (Step)"
	}
	return "Snake"
}

// UsesTimer reports whether ticks drive the snake.
func (g *Game) UsesTimer() bool {
	return g.mode == ModeTimer
}

// Reset starts a new game on a cfg.BoardSize board seeded with cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(Config{
		BoardSize:    cfg.BoardSize,
		TimerEnabled: g.mode == ModeTimer,
	}, NewRandPicker(cfg.Seed))
	g.tick = 0
	g.lastEvent = Event{}
	g.tooSmall = !fits(cfg.ScreenW, cfg.ScreenH, cfg.BoardSize)
}

// fits reports whether a board of the given size, its frame, the HUD and
// the status line fit on a w×h screen.
func fits(w, h, boardSize int) bool {
	return w >= boardSize+2 && h >= hudHeight+boardSize+2+statusRows
}

// Step translates platform actions into engine events.
// Restart wins over movement; at most one direction is honored per frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.Snapshot()

	switch {
	case in.Has(core.ActionRestart):
		g.dispatch(ResetEvent)
		g.tick = 0
	case in.Has(core.ActionUp):
		g.dispatch(DirectionRequest(DirUp))
	case in.Has(core.ActionDown):
		g.dispatch(DirectionRequest(DirDown))
	case in.Has(core.ActionLeft):
		g.dispatch(DirectionRequest(DirLeft))
	case in.Has(core.ActionRight):
		g.dispatch(DirectionRequest(DirRight))
	}

	// Step mode has no clock; stray ticks are dropped.
	if in.Has(core.ActionTick) && g.mode == ModeTimer {
		g.tick++
		g.dispatch(TickEvent)
	}

	after := g.Snapshot()
	return core.StepResult{
		State:   g.State(),
		Changed: !before.SameBoard(after),
	}
}

func (g *Game) dispatch(ev Event) {
	g.state.OnEvent(ev)
	g.lastEvent = ev
}

// Resize records new screen dimensions without disturbing the game.
func (g *Game) Resize(w, h int) {
	if g.state == nil {
		return
	}
	g.tooSmall = !fits(w, h, g.state.BoardSize())
}

// Engine exposes the underlying state.
func (g *Game) Engine() *State {
	return g.state
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Len() - 1,
		Length: g.state.Len(),
		Won:    g.state.Won(),
	}
}

// Render draws the HUD, the framed board and a status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		_, cy := dst.Bounds().Center()
		dst.DrawTextCentered(cy, "Window too small")
		dst.DrawTextCentered(cy+1, "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderStatus(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	n := g.state.BoardSize()
	hud := fmt.Sprintf(" %s — Length: %d/%d  Mode: %s", g.Title(), g.state.Len(), n*n, g.mode)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard blits the grid projection inside a frame.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.state.Grid()
	n := grid.Size()

	dst.DrawBox(core.NewRect(boardLeft, boardTop, n+2, n+2), core.ColorGray)

	for y, row := range grid {
		for x, c := range row {
			dst.SetColor(boardLeft+1+x, boardTop+1+y, rune(c), cellColor(c))
		}
	}
}

func cellColor(c Cell) core.Color {
	switch c {
	case CellHead:
		return core.ColorBrightGreen
	case CellBody:
		return core.ColorGreen
	case CellFood:
		return core.ColorBrightRed
	default:
		return core.ColorGray
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := boardTop + g.state.BoardSize() + 2

	switch {
	case g.state.Won():
		dst.DrawTextColor(0, y, "You win! Press R to play again", core.ColorBrightYellow)
	case g.mode == ModeStep:
		dst.DrawTextColor(0, y, "Each arrow key moves one cell", core.ColorCyan)
	}
}

// DebugState returns a one-line dump of the engine state.
func (g *Game) DebugState() string {
	s := g.state
	return fmt.Sprintf("board=%d dir=%s len=%d head=(%d,%d) food=(%d,%d) won=%v timer=%v tick=%d last=%s",
		s.BoardSize(), s.Direction(), s.Len(), s.Head().X, s.Head().Y,
		s.Food().X, s.Food().Y, s.Won(), s.TimerEnabled(), g.tick, g.lastEvent)
}
