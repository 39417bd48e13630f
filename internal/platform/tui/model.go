package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options tune a game session.
type Options struct {
	// Debug shows the game's internal state under the board.
	Debug bool

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	lastKey   string
	paused    bool
	debug     bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// cfg.ScreenW and cfg.ScreenH are the full terminal size; the footer rows
// are taken off before the game sees them.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		debug:  opts.Debug,
	}
	m.help.Width = cfg.ScreenW

	gameCfg := m.gameConfig()
	m.screen = core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH)
	m.game.Reset(gameCfg)
	m.gameState = m.game.State()

	m.logger.Info("game started",
		"variant", game.ID(),
		"board", cfg.BoardSize,
		"seed", cfg.Seed,
		"timer", game.UsesTimer(),
	)
	return m
}

// footerHeight is the number of rows below the game screen:
// the input line, the optional debug line and the help view.
func (m Model) footerHeight() int {
	h := 1
	if m.debug {
		h++
	}
	if m.help.ShowAll {
		rows := 0
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
		return h + rows
	}
	return h + 1
}

// gameConfig returns the runtime config with the footer rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW = max(cfg.ScreenW, 0)
	cfg.ScreenH = max(cfg.ScreenH-m.footerHeight(), 0)
	return cfg
}

// Init starts the tick loop for timer-driven games.
func (m Model) Init() tea.Cmd {
	if !m.game.UsesTimer() {
		return nil
	}
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastKey = msg.String()
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("game ended", "variant", m.game.ID(), "length", m.gameState.Length, "won", m.gameState.Won)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
		return m, nil

	case action == core.ActionPause:
		// Pausing only means something when ticks drive the game.
		if m.game.UsesTimer() && !m.gameState.Won {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
		return m, nil

	case action == core.ActionRestart:
		m.paused = false
		m.step(core.FrameOf(core.ActionRestart))
		m.logger.Info("game restarted", "variant", m.game.ID())
		return m, nil

	case action.IsDirection():
		if !m.paused {
			m.step(core.FrameOf(action))
		}
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.applySize()
	return m, nil
}

// applySize propagates the space left for the game to the screen and game.
func (m *Model) applySize() {
	gameCfg := m.gameConfig()
	m.screen.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
	}
}

// handleTick processes simulation ticks and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.step(core.FrameOf(core.ActionTick))
	}
	return m, tickCmd(m.config.TickInterval)
}

// step forwards one frame to the game and records the result.
func (m *Model) step(in core.InputFrame) {
	wasWon := m.gameState.Won

	result := m.game.Step(in)
	m.gameState = result.State

	if result.State.Won && !wasWon {
		m.logger.Info("board filled", "variant", m.game.ID(), "length", result.State.Length)
	}
	if m.debug && result.Changed {
		m.logger.Debug("step", "state", m.game.DebugState())
	}
}

// Paused reports whether ticks are currently suppressed.
func (m Model) Paused() bool {
	return m.paused
}

// GameState returns the summary after the last step.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')

	status := inputStyle.Render("Input: " + m.lastKey)
	if m.paused {
		status = pausedStyle.Render("PAUSED") + "  " + status
	}
	sb.WriteString(status)

	if m.debug {
		sb.WriteRune('\n')
		sb.WriteString(debugStyle.Render(m.game.DebugState()))
	}

	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
