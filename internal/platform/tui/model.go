package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/registry"
	"github.com/vovakirdan/voicerun/internal/voice"
)

// maxFrameDelta caps the wall-clock time a single frame may report.
const maxFrameDelta = 250 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Options configures the runner screen.
type Options struct {
	Voice  *voice.Controller // nil plays without voice control
	Logger *log.Logger
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	hud        HUD
	voice      *voice.Controller
	logger     *log.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	width      int
	height     int
	started    bool      // Start button pressed
	lastTick   time.Time // Time of the previous frame
	level      float64   // Most recent voice reading
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys := NewKeyMapper()
	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-hudHeight)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		hud:        NewHUD(keys.Keys(), cfg.ScreenW),
		voice:      opts.Voice,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init waits for the start button; nothing runs before it is pressed.
func (m Model) Init() tea.Cmd {
	return nil
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
		return m.handleTick(time.Time(msg))

	case ReadingMsg:
		if !m.gameState.GameOver {
			m.inputFrame.AddVolume(msg.Volume)
		}
		m.level = msg.Volume
		if m.voice == nil {
			return m, nil
		}
		return m, waitForReading(m.voice.Readings())

	case readingsClosedMsg:
		if m.voice == nil {
			return m, nil
		}
		status, err := m.voice.Status()
		m.logger.Debug("voice readings closed", "status", status, "error", err)
		m.level = 0
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	if !m.started {
		if action == core.ActionStart {
			return m.start()
		}
		return m, nil
	}

	switch action {
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
	}

	return m, nil
}

// handleMouse presses the start button on a left click inside it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.started || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.buttonRect().Contains(msg.X, msg.Y) {
		return m.start()
	}
	return m, nil
}

// start hides the button, opens the audio source and begins ticking.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.started = true
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.lastTick = time.Now()
	m.logger.Info("run started", "variant", m.game.Variant(), "seed", m.config.Seed)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.voice != nil {
		m.voice.Start(m.ctx)
		cmds = append(cmds, waitForReading(m.voice.Readings()))
	}
	return m, tea.Batch(cmds...)
}

// restart begins a new run with a fresh seed. The tick loop stopped at game
// over, so it is started again here.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.lastTick = time.Now()
	m.inputFrame.Clear()
	m.logger.Info("run restarted", "seed", m.config.Seed)
	return m, tickCmd(m.config.TickRate)
}

// quit releases the audio source and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// handleResize processes window resize events. The world is measured in
// canvas units, so the running session is kept and only rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-hudHeight))
	m.hud.SetWidth(msg.Width)
	return m, nil
}

// handleTick processes simulation ticks. Ticking stops once the run is over
// and resumes on restart.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.started || m.quitting || m.gameState.GameOver {
		return m, nil
	}

	elapsed := now.Sub(m.lastTick)
	m.lastTick = now
	m.inputFrame.Elapsed = min(max(elapsed, 0), maxFrameDelta)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.CoinsCollected > 0 {
		m.logger.Debug("coins collected", "count", result.CoinsCollected, "score", result.State.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score)
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// voiceStatus summarises the controller for the HUD.
func (m Model) voiceStatus() VoiceStatus {
	if m.voice == nil {
		return VoiceStatus{Label: "voice off"}
	}
	status, err := m.voice.Status()
	if err != nil {
		return VoiceStatus{Label: fmt.Sprintf("voice %s: %v", status, err)}
	}
	return VoiceStatus{Label: "voice " + status.String(), OK: status == voice.StatusListening}
}

// startBlock lays out the start screen: title, button and hint.
func (m Model) startBlock() (title, button, hint string) {
	title = titleStyle.Render(m.game.Title())
	button = buttonStyle.Render("Start")
	hint = hintStyle.Render("Make some noise to jump. Louder is higher and faster.")
	return title, button, hint
}

// buttonRect returns the cells covered by the start button.
func (m Model) buttonRect() core.Rect {
	title, button, hint := m.startBlock()
	block := lipgloss.JoinVertical(lipgloss.Center, title, "", button, "", hint)

	blockW, blockH := lipgloss.Size(block)
	buttonW, buttonH := lipgloss.Size(button)

	left := centerOffset(m.width, blockW) + centerOffset(blockW, buttonW)
	top := centerOffset(m.height, blockH) + lipgloss.Height(title) + 1
	return core.NewRect(left, top, buttonW, buttonH)
}

// centerOffset matches how lipgloss centres inner within outer.
func centerOffset(outer, inner int) int {
	if outer <= inner {
		return 0
	}
	return int(math.Round(float64(outer-inner) * 0.5))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.started {
		title, button, hint := m.startBlock()
		block := lipgloss.JoinVertical(lipgloss.Center, title, "", button, "", hint)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.hud.View(m.level, m.voiceStatus())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks press the start button
	)

	_, err := p.Run()
	return err
}
