package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/loop"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

// LoopOptions selects the frame pacing policy for interactive play.
type LoopOptions struct {
	Uncapped bool // do not sleep away the frame budget surplus
	Catchup  bool // skip simulation on frames that arrive over budget
}

// gameHandler adapts a registry.Game to the scheduler's frame callbacks
// and collects finished puzzles until the model persists them.
type gameHandler struct {
	game   registry.Game
	screen *core.Screen
	state  core.GameState
	solves []core.Solve
}

func (h *gameHandler) HandleEvent(ev core.Event) {
	h.game.HandleEvent(ev)
}

func (h *gameHandler) Update(dt time.Duration) {
	res := h.game.Update(dt)
	h.state = res.State
	if res.Solve != nil {
		h.solves = append(h.solves, *res.Solve)
	}
}

func (h *gameHandler) Render() {
	h.game.Render(h.screen)
}

func (h *gameHandler) drainSolves() []core.Solve {
	s := h.solves
	h.solves = nil
	return s
}

// Model is the Bubble Tea model for running arcade games. Bubble Tea
// owns the terminal while the frame scheduler decides when the next
// tick fires and how much simulated time it carries.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	events     *eventQueue
	handler    *gameHandler
	sched      *loop.Scheduler
	keymap     *KeyMapper
	gameState  core.GameState
	bestScore  int
	menuReturn bool // Esc/b leaves the game while paused or solved
	backToMenu bool
	quitting   bool
	scoreSaved bool // Whether the session score has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts LoopOptions) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = core.DefaultConfig().TargetFPS
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	events := &eventQueue{}
	handler := &gameHandler{game: game, screen: screen}

	sched, err := loop.New(events, handler, loop.Options{
		TargetFPS: cfg.TargetFPS,
		CapUpper:  !opts.Uncapped,
		CapLower:  opts.Catchup,
	})
	if err != nil {
		return Model{}, err
	}

	return Model{
		game:    game,
		screen:  screen,
		store:   store,
		config:  cfg,
		events:  events,
		handler: handler,
		sched:   sched,
		keymap:  NewKeyMapper(),
	}, nil
}

// EnableMenuReturn lets Esc/b leave the game while it is paused or
// solved. Used by session flows that have a menu to return to.
func (m Model) EnableMenuReturn() Model {
	m.menuReturn = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the frame loop
	return tickCmd(0)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.menuReturn && (m.gameState.Paused || m.gameState.Solved) &&
		m.keymap.MapKeyToMenuAction(msg) == MenuActionBack {
		m.saveSessionScore()
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		// The scheduler observes the quit on its next iteration, so the
		// frame in flight still completes.
		m.events.push(core.Event{Kind: core.EventQuit})
		return m, nil
	}
	if action != core.ActionNone {
		m.events.push(core.Event{Kind: core.EventKey, Action: action})
	}

	return m, nil
}

// handleMouse forwards left-button presses as pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.events.push(core.Event{Kind: core.EventPointerDown, X: msg.X, Y: msg.Y})
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions
	// Note: This resets the game - could be improved to preserve state
	m.game.Reset(m.config)

	return m, nil
}

// handleTick runs one scheduler iteration and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wait, running := m.sched.Frame()
	if !running {
		m.saveSessionScore()
		m.quitting = true
		return m, tea.Quit
	}

	m.gameState = m.handler.state
	if m.gameState.Score > m.bestScore {
		m.bestScore = m.gameState.Score
	}

	m.persistSolves()
	m.drawFPS()

	return m, tickCmd(wait)
}

// persistSolves stores finished puzzles reported since the last tick.
func (m Model) persistSolves() {
	for _, s := range m.handler.drainSolves() {
		if m.store == nil {
			continue
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveSolve(storage.SolveEntry{
			GameID:    m.game.ID(),
			Moves:     s.Moves,
			Duration:  s.Elapsed,
			BoardSize: s.BoardSize,
		})
	}
}

// saveSessionScore records the session's best score once, on quit.
// The high-water mark survives the resets a window resize causes.
func (m *Model) saveSessionScore() {
	if m.scoreSaved || m.bestScore <= 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.bestScore)
	m.scoreSaved = true
}

// drawFPS overlays the measured frame rate in the top-right corner.
func (m Model) drawFPS() {
	fps := m.sched.FPS()
	if fps <= 0 {
		return
	}
	label := fmt.Sprintf("%d fps", fps)
	m.screen.DrawTextColor(m.screen.Width()-len(label)-1, 0, label, core.ColorGray)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the screen produced by the last completed frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the frame loop has terminated.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts LoopOptions) error {
	model, err := NewModel(game, store, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for tile clicks
	)

	_, err = p.Run()
	return err
}
