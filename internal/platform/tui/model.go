package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/bridge"
	"github.com/vovakirdan/tui-invaders/internal/clock"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// Options configures one game session.
type Options struct {
	Game    config.InvadersConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Assets  *assets.Registry

	// Scheduler drives the simulation. Nil means a ticker at Game.TickInterval().
	Scheduler game.Scheduler
	// TimeSource feeds the simulation clock and the input cooldowns.
	TimeSource clock.TimeSource
}

// Model is the Bubble Tea model for one invaders session.
type Model struct {
	loop     *game.Loop
	runner   *game.Runner
	ctrl     *bridge.Controller
	assets   *assets.Registry
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	showHelp bool
	config   core.RuntimeConfig
	snap     *game.Snapshot
	quitting bool
}

// NewModel creates the session and starts its simulation goroutine, which
// runs until ctx is done or the model quits.
func NewModel(ctx context.Context, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	src := opts.TimeSource
	if src == nil {
		src = clock.System()
	}
	reg := opts.Assets
	if reg == nil {
		reg = assets.Default()
	}

	loopOpts := []game.Option{
		game.WithTimeSource(src),
		game.WithSeed(cfg.Seed),
		game.WithLogger(logger),
	}
	// Until the first size arrives the loop has no viewport and idles.
	vp := cfg.Viewport()
	if cfg.ScreenW > 0 && cfg.ScreenH > 0 {
		loopOpts = append(loopOpts, game.WithViewport(vp))
	}
	loop := game.New(opts.Game, loopOpts...)

	sched := opts.Scheduler
	if sched == nil {
		sched = game.NewTicker(opts.Game.TickInterval())
	}
	runner := game.NewRunner(loop, sched, nil)
	go func() {
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("game loop stopped", "error", err)
		}
	}()

	return Model{
		loop:     loop,
		runner:   runner,
		ctrl:     bridge.NewController(loop, opts.Game, src),
		assets:   reg,
		screen:   core.NewScreen(vp.W, vp.H),
		keys:     DefaultKeyMap(),
		help:     newHelp(),
		showHelp: true,
		config:   cfg,
		snap:     loop.Snapshot(),
	}
}

// newHelp returns a help model styled to sit inside the HUD row.
func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = hudKeyStyle
	h.Styles.ShortDesc = hudDescStyle
	h.Styles.ShortSeparator = hudDescStyle
	h.Styles.Ellipsis = hudDescStyle
	return h
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
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

	case FrameMsg:
		m.snap = m.loop.Snapshot()
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.runner.Stop()
		return m, tea.Quit
	case core.ActionLeft:
		m.ctrl.Move(game.DirLeft)
	case core.ActionRight:
		m.ctrl.Move(game.DirRight)
	case core.ActionStop:
		m.ctrl.Move(game.DirStop)
	case core.ActionShoot:
		// Like a tap: fire while playing, start otherwise.
		if m.loop.State() == game.StatePlaying {
			m.ctrl.Shoot()
		} else {
			m.ctrl.Start()
		}
	case core.ActionStart:
		m.ctrl.Start()
	case core.ActionHelp:
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// handleMouse maps left button presses inside the playfield and all left
// button releases to pointer input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if !m.config.Viewport().Rect().Contains(msg.X, msg.Y-core.HUDRows) {
			return m, nil
		}
		m.ctrl.PointerDown(float64(msg.X))
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; the
// loop picks up the new viewport on its next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	vp := m.config.Viewport()
	m.screen.Resize(vp.W, vp.H)
	m.ctrl.ViewportChanged(vp.W, vp.H)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the HUD row above the playfield.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.snap, m.assets)

	helpText := ""
	if m.showHelp {
		helpText = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return RenderHUD(m.snap, m.config.ScreenW, helpText) + "\n" + RenderScreen(m.screen)
}

// Close stops the simulation goroutine.
func (m Model) Close() {
	m.runner.Stop()
}

// Done is closed once the simulation goroutine has exited.
func (m Model) Done() <-chan struct{} {
	return m.runner.Done()
}

// Run starts a local Bubble Tea program for one game.
func Run(opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := NewModel(ctx, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
