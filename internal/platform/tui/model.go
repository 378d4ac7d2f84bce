package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// helpHeight is the number of terminal rows reserved for the help bar.
const helpHeight = 1

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// bestSetter is implemented by games that can seed their best score
// from the round log.
type bestSetter interface {
	SetBest(best int)
}

// errMsg carries a fatal game error into the update loop.
type errMsg struct{ err error }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	queue      *core.InputQueue
	keys       GameKeyMap
	help       help.Model
	gameState  core.GameState
	savedRound string // RoundID of the last round written to the log
	status     string
	quitting   bool
	backToMenu bool
	err        error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		store:  store,
		config: cfg,
		queue:  core.NewInputQueue(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
	}
}

// Init resets the game, seeds its best score and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Reset(m.config); err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}

	if bs, ok := m.game.(bestSetter); ok && m.store != nil {
		if best, err := m.store.HighScore(m.game.ID()); err == nil {
			bs.SetBest(best)
		}
	}

	return tickCmd(m.config.TickRate)
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

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues movement actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot(screenshotDir())
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action.IsMovement():
		m.queue.Push(action)
	}

	return m, nil
}

// handleResize resizes the screen buffer. The running round is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.queue.Drain())
	m.gameState = result.State
	if result.Err != nil {
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	m.recordRound()

	return m, tickCmd(m.config.TickRate)
}

// recordRound writes a finished round to the log exactly once.
func (m *Model) recordRound() {
	st := m.gameState
	if !st.GameOver || st.RoundID == "" || st.RoundID == m.savedRound {
		return
	}
	m.savedRound = st.RoundID
	if m.store == nil {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(storage.RoundResult{
		GameID:   m.game.ID(),
		RoundID:  st.RoundID,
		Score:    st.Score,
		Reason:   st.EndReason,
		Moves:    st.Moves,
		Duration: st.Elapsed,
	})
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(config.DirName, "screenshots")
	}
	return filepath.Join(home, config.DirName, "screenshots")
}

// saveScreenshot writes the current screen as plain text into dir.
func (m Model) saveScreenshot(dir string) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys)
	if m.status != "" {
		bar += "  " + m.status
	}
	return RenderScreen(m.screen) + "\n" + helpBarStyle.Render(bar)
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a single game.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	if m.err != nil {
		return false, m.err
	}
	return m.backToMenu, nil
}
