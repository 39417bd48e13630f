package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return cfg
}

// update feeds msg to m and returns the resulting Model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := snake.New()
	m := NewModel(g, testRuntime(), Options{})

	if g.Engine() == nil {
		t.Fatal("game should be reset on construction")
	}
	if st := m.GameState(); st.Length != 1 || st.Won {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestInitSchedulesTicksForTimerOnly(t *testing.T) {
	if NewModel(snake.New(), testRuntime(), Options{}).Init() == nil {
		t.Error("timer variant should start the tick loop")
	}
	if NewModel(snake.NewStep(), testRuntime(), Options{}).Init() != nil {
		t.Error("step variant should not tick")
	}
}

func TestTickMovesSnake(t *testing.T) {
	g := snake.New()
	m := NewModel(g, testRuntime(), Options{})

	_, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.Engine().Head() != (snake.Point{X: 1, Y: 0}) {
		t.Errorf("head = %v after one tick", g.Engine().Head())
	}
}

func TestPauseSuppressesTicks(t *testing.T) {
	g := snake.New()
	m := NewModel(g, testRuntime(), Options{})

	m, _ = update(t, m, runeKey("p"))
	if !m.Paused() {
		t.Fatal("p should pause a timer game")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("paused model should keep the tick loop alive")
	}
	if g.Engine().Head() != (snake.Point{}) {
		t.Errorf("paused tick moved the snake to %v", g.Engine().Head())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if g.Engine().Direction() != snake.DirRight {
		t.Error("direction keys should be ignored while paused")
	}

	m, _ = update(t, m, runeKey("p"))
	if m.Paused() {
		t.Error("second p should resume")
	}
}

func TestPauseIgnoredInStepMode(t *testing.T) {
	m := NewModel(snake.NewStep(), testRuntime(), Options{})
	m, _ = update(t, m, runeKey("p"))
	if m.Paused() {
		t.Error("step variant has no ticks to pause")
	}
}

func TestDirectionKeyStepMode(t *testing.T) {
	g := snake.NewStep()
	m := NewModel(g, testRuntime(), Options{})

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if g.Engine().Head() != (snake.Point{X: 0, Y: 1}) {
		t.Errorf("head = %v, expected (0,1)", g.Engine().Head())
	}
}

func TestRestartKey(t *testing.T) {
	g := snake.NewStep()
	m := NewModel(g, testRuntime(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	_, _ = update(t, m, runeKey("r"))

	if g.Engine().Head() != (snake.Point{}) || g.Engine().Len() != 1 {
		t.Errorf("restart should start over, snake = %v", g.Engine().Snake())
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(snake.New(), testRuntime(), Options{})

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := snake.NewStep()
	m := NewModel(g, testRuntime(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.Engine().Head() != (snake.Point{X: 0, Y: 1}) {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-m.footerHeight() {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestResizeTooSmall(t *testing.T) {
	m := NewModel(snake.New(), testRuntime(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the resize hint")
	}
}

func TestViewFooter(t *testing.T) {
	m := NewModel(snake.New(), testRuntime(), Options{Debug: true})
	m, _ = update(t, m, runeKey("x"))

	view := m.View()
	for _, want := range []string{"Input: x", "board=5", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpToggleShrinksScreen(t *testing.T) {
	m := NewModel(snake.New(), testRuntime(), Options{})
	before := m.screen.Height()

	m, _ = update(t, m, runeKey("?"))
	if m.screen.Height() >= before {
		t.Errorf("full help should take rows from the game, height %d -> %d", before, m.screen.Height())
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.SetColor(1, 1, 'x', core.ColorGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "x") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
