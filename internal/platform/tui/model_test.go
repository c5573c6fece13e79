package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/clock"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

type testSession struct {
	model Model
	sched *game.ManualScheduler
	clock *clock.Manual
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.DefaultInvadersConfig()
	cfg.Enemies.SpawnOneIn = 1 << 30

	sched := game.NewManualScheduler()
	src := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewModel(ctx, Options{
		Game:       cfg,
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 30, Seed: 1},
		Scheduler:  sched,
		TimeSource: src,
	})
	return &testSession{model: m, sched: sched, clock: src}
}

func (s *testSession) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := s.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	s.model = m
	return cmd
}

// step fires one scheduler tick and waits for its snapshot.
func (s *testSession) step(t *testing.T) *game.Snapshot {
	t.Helper()
	before := s.model.loop.Snapshot().Tick
	if !s.sched.Fire() {
		t.Fatal("Fire() = false, runner not running")
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.model.loop.Snapshot().Tick == before {
		if time.Now().After(deadline) {
			t.Fatal("tick not published")
		}
		time.Sleep(time.Millisecond)
	}
	return s.model.loop.Snapshot()
}

func TestModelInitialViewportExcludesHUD(t *testing.T) {
	s := newTestSession(t)
	snap := s.step(t)

	expected := core.Viewport{W: 80, H: 23}
	if snap.Viewport != expected {
		t.Errorf("Viewport = %v, expected %v", snap.Viewport, expected)
	}
}

func TestModelResize(t *testing.T) {
	s := newTestSession(t)
	s.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})

	snap := s.step(t)
	expected := core.Viewport{W: 100, H: 29}
	if snap.Viewport != expected {
		t.Errorf("Viewport = %v, expected %v", snap.Viewport, expected)
	}
	if s.model.screen.Width() != 100 || s.model.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", s.model.screen.Width(), s.model.screen.Height())
	}
}

func TestModelKeysDriveGame(t *testing.T) {
	s := newTestSession(t)

	s.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	snap := s.step(t)
	if snap.State != game.StatePlaying {
		t.Fatalf("State = %v, expected %v", snap.State, game.StatePlaying)
	}
	startX := snap.Player.X

	s.send(t, runeKey('a'))
	s.clock.Advance(100 * time.Millisecond)
	snap = s.step(t)
	if snap.Player.X >= startX {
		t.Errorf("player x = %v, expected less than %v", snap.Player.X, startX)
	}

	s.send(t, tea.KeyMsg{Type: tea.KeySpace})
	snap = s.step(t)
	if len(snap.Projectiles) != 1 {
		t.Errorf("projectiles = %d, expected 1", len(snap.Projectiles))
	}
}

func TestModelSpaceStartsFromMenu(t *testing.T) {
	s := newTestSession(t)
	s.send(t, tea.KeyMsg{Type: tea.KeySpace})

	if snap := s.step(t); snap.State != game.StatePlaying {
		t.Errorf("State = %v, expected %v", snap.State, game.StatePlaying)
	}
}

func TestModelMouse(t *testing.T) {
	s := newTestSession(t)

	s.send(t, tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	snap := s.step(t)
	if snap.State != game.StatePlaying {
		t.Fatalf("State = %v, expected %v", snap.State, game.StatePlaying)
	}

	// The starting press already steered right.
	startX := snap.Player.X
	s.clock.Advance(100 * time.Millisecond)
	snap = s.step(t)
	if snap.Player.X <= startX {
		t.Errorf("player x = %v, expected more than %v", snap.Player.X, startX)
	}

	s.send(t, tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	x := snap.Player.X
	s.clock.Advance(100 * time.Millisecond)
	snap = s.step(t)
	if snap.Player.X != x {
		t.Errorf("player x after release = %v, expected %v", snap.Player.X, x)
	}
}

func TestModelMouseOnHUDIgnored(t *testing.T) {
	s := newTestSession(t)

	s.send(t, tea.MouseMsg{X: 10, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if snap := s.step(t); snap.State != game.StateMenu {
		t.Errorf("State = %v, expected %v", snap.State, game.StateMenu)
	}
}

func TestModelView(t *testing.T) {
	s := newTestSession(t)
	s.step(t)
	s.send(t, FrameMsg(time.Now()))

	view := s.model.View()
	if !strings.Contains(view, "SCORE 0") {
		t.Errorf("View() missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "SPACE INVADERS") {
		t.Errorf("View() missing menu overlay:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("View() lines = %d, expected 24", lines)
	}

	s.send(t, runeKey('?'))
	if s.model.showHelp {
		t.Error("help still shown after toggle")
	}
}

func TestModelQuitStopsLoop(t *testing.T) {
	s := newTestSession(t)

	cmd := s.send(t, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}

	select {
	case <-s.model.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("simulation goroutine still running after quit")
	}
	if s.model.View() != "" {
		t.Error("View() after quit not empty")
	}
}

func TestModelContextCancelStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewModel(ctx, Options{
		Game:      config.DefaultInvadersConfig(),
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
		Scheduler: game.NewManualScheduler(),
	})

	cancel()
	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("simulation goroutine still running after cancel")
	}
}
