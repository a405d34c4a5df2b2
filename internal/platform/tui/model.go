package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/registry"
	"github.com/vovakirdan/bonarun/internal/storage"
)

// helpRows is the number of terminal rows below the game screen.
const helpRows = 1

// Options configures the terminal front end. Every field is optional.
type Options struct {
	Store         *storage.Store
	Logger        *log.Logger
	Sound         core.Sound // nil: silent
	ScreenshotDir string     // empty: screenshots disabled
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	epoch      int // Incremented on restart to drop stale ticks
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over

	swipe core.GestureTracker

	flash    string // One-line status shown in place of the help bar
	shotDir  string
	copyText func(string) error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if a, ok := game.(registry.Audible); ok && opts.Sound != nil {
		a.SetSound(opts.Sound)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		store:      opts.Store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		shotDir:    opts.ScreenshotDir,
		copyText:   clipboard.WriteAll,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.refreshHighScore()
	m.logger.Info("session started", "game", game.ID(), "seed", cfg.Seed)

	return m
}

// Init starts the tick loop and the game timer.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.epoch)}
	if t, ok := m.game.(registry.Timed); ok {
		cmds = append(cmds, timerCmd(t.TimerInterval(), m.epoch))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case TimerMsg:
		return m.handleTimer(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Platform commands
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if m.gameState.GameOver {
			m.copyScore()
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
	case core.ActionNone:
	default:
		if !m.gameState.GameOver {
			m.inputFrame.Push(action, core.SourceKey)
		}
	}

	return m, nil
}

// handleMouse turns a press/release pair into a swipe gesture.
// A click on the game-over screen restarts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.swipe.Press(float64(msg.X), float64(msg.Y))

	case tea.MouseActionRelease:
		g, ok := m.swipe.Release(float64(msg.X), float64(msg.Y))
		if !ok {
			return m, nil
		}

		if m.gameState.GameOver {
			return m.restart()
		}

		if s, ok := m.game.(registry.Swipeable); ok {
			m.inputFrame.Push(s.Swipe(g, m.screen.Width(), m.screen.Height()), core.SourceSwipe)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// Games simulate in their own coordinates, so only the screen buffer follows
// the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks. Nothing is rescheduled after game
// over; restart starts a new tick chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.epoch || m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		// Only a press made on the game over screen may restart
		m.swipe.Cancel()
		m.onGameOver()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.epoch)
}

// handleTimer fires the game's wall-clock timer and reschedules it.
func (m Model) handleTimer(msg TimerMsg) (tea.Model, tea.Cmd) {
	t, ok := m.game.(registry.Timed)
	if !ok || msg.Epoch != m.epoch || m.gameState.GameOver {
		return m, nil
	}
	t.TimerFire()
	return m, timerCmd(t.TimerInterval(), m.epoch)
}

// onGameOver saves the final score (once) and logs the result.
func (m *Model) onGameOver() {
	m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)

	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// restart begins a new run with a fresh seed and a new tick chain.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.refreshHighScore()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.flash = ""
	m.epoch++

	m.logger.Info("restart", "game", m.game.ID(), "seed", m.config.Seed)
	return m, m.startCmds()
}

// refreshHighScore pushes the stored best score into the game HUD.
func (m *Model) refreshHighScore() {
	r, ok := m.game.(registry.Ranked)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	r.SetHighScore(best)
}

// copyScore puts a share line on the system clipboard.
func (m *Model) copyScore() {
	line := fmt.Sprintf("I scored %d in %s", m.gameState.Score, m.game.Title())
	if err := m.copyText(line); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.flash = "Clipboard unavailable"
		return
	}
	m.flash = "Copied: " + line
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.flash = "Screenshot failed"
		return
	}
	m.flash = "Saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.flash != "" {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Render(m.flash)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press/release pairs become swipes
	)

	_, err := p.Run()
	return err
}
