// Package game runs the invaders simulation: a fixed-cadence loop that moves
// entities, resolves collisions, spawns enemies, decides win/lose and
// publishes an immutable snapshot after every tick.
//
// All simulation state is owned by the goroutine calling Step. Other
// goroutines talk to the loop only through atomic command slots (intent,
// shot, start, viewport) and read results through Snapshot.
package game

import (
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/clock"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/world"
)

// Option customizes a Loop.
type Option func(*Loop)

// WithTimeSource replaces the wall clock used to measure elapsed time.
func WithTimeSource(src clock.TimeSource) Option {
	return func(l *Loop) { l.timeSrc = src }
}

// WithSeed seeds the spawn policy's RNG.
func WithSeed(seed int64) Option {
	return func(l *Loop) { l.seed = seed }
}

// WithLogger sets the logger for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithViewport sets the initial viewport.
func WithViewport(vp core.Viewport) Option {
	return func(l *Loop) { l.SetViewport(vp.W, vp.H) }
}

// WithViewportSource makes the loop pull the viewport from fn each tick
// instead of using SetViewport. fn returning false means no size is
// available and the tick does nothing.
func WithViewportSource(fn func() (core.Viewport, bool)) Option {
	return func(l *Loop) { l.viewportSrc = fn }
}

// Loop is the game state machine.
type Loop struct {
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
	timeSrc    clock.TimeSource
	clock      *clock.Clock
	spawn      *SpawnPolicy
	reg        *world.Registry
	logger     *log.Logger
	seed       int64

	// Owned by the tick goroutine.
	state     State
	score     int
	tick      uint64
	gameTicks int
	lastVP    core.Viewport

	// Cross-goroutine command slots.
	intent      atomic.Int32
	shot        atomic.Bool
	start       atomic.Bool
	viewport    atomic.Pointer[core.Viewport]
	viewportSrc func() (core.Viewport, bool)

	published atomic.Pointer[Snapshot]
}

// New creates a loop in the Menu state.
func New(cfg config.InvadersConfig, opts ...Option) *Loop {
	l := &Loop{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		timeSrc:    clock.System(),
		logger:     log.New(io.Discard),
		seed:       time.Now().UnixNano(),
		state:      StateMenu,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.clock = clock.New(l.timeSrc, cfg.MaxElapsed())
	l.spawn = NewSpawnPolicy(rand.New(rand.NewSource(l.seed)), &l.cfg.Enemies, l.difficulty)

	vp, _ := l.currentViewport()
	l.lastVP = vp
	l.reg = world.NewRegistry(newPlayer(&l.cfg.Player, vp))
	l.publish(vp)
	return l
}

// SetIntent sets the steering direction applied at the start of the next tick.
func (l *Loop) SetIntent(d Direction) {
	l.intent.Store(int32(d))
}

// RequestShot asks for a projectile on the next tick. Ignored unless Playing.
// Rate limiting is the caller's job (see the bridge package).
func (l *Loop) RequestShot() {
	if l.State() == StatePlaying {
		l.shot.Store(true)
	}
}

// RequestStart asks for a new game on the next tick. Ignored while Playing.
func (l *Loop) RequestStart() {
	if l.State() != StatePlaying {
		l.start.Store(true)
	}
}

// SetViewport records the latest viewport; the next tick reads it.
func (l *Loop) SetViewport(w, h int) {
	l.viewport.Store(&core.Viewport{W: w, H: h})
}

// Snapshot returns the state published by the most recent tick.
func (l *Loop) Snapshot() *Snapshot {
	return l.published.Load()
}

// State returns the state published by the most recent tick.
func (l *Loop) State() State {
	return l.published.Load().State
}

// Config returns the loop configuration.
func (l *Loop) Config() config.InvadersConfig {
	return l.cfg
}

// Registry exposes the entity registry. Only the tick goroutine may use it.
func (l *Loop) Registry() *world.Registry {
	return l.reg
}

func (l *Loop) currentViewport() (core.Viewport, bool) {
	if l.viewportSrc != nil {
		return l.viewportSrc()
	}
	vp := l.viewport.Load()
	if vp == nil {
		return core.Viewport{}, false
	}
	return *vp, true
}

// Step runs one tick and publishes its snapshot.
func (l *Loop) Step() *Snapshot {
	vp, ok := l.currentViewport()
	if !ok {
		return l.Snapshot()
	}
	l.tick++

	if l.start.Swap(false) && l.state != StatePlaying {
		l.reset(vp)
	}
	if l.state != StatePlaying {
		l.shot.Store(false)
		return l.publish(vp)
	}
	l.gameTicks++

	elapsed := clock.SanitizeMillis(l.clock.Tick())
	l.applyViewport(vp)
	l.applyIntent()

	player := l.reg.Player()
	player.Update(elapsed, vp)
	for _, e := range l.reg.Enemies() {
		e.Update(elapsed, vp)
	}
	for _, p := range l.reg.Projectiles() {
		p.Update(elapsed, vp)
	}

	l.resolveHits()

	if l.breached(vp) {
		l.finish(StateLose)
		return l.publish(vp)
	}

	l.reg.Purge()

	if l.shot.Swap(false) {
		l.reg.Add(newShot(&l.cfg.Shots, player))
	}

	if !vp.Degenerate() && l.reg.EnemyCount() <= l.score && l.spawn.Roll(l.score, l.gameTicks) {
		e := l.spawn.Enemy(vp, l.score, l.gameTicks)
		l.reg.Add(e)
		l.logger.Debug("enemy spawned", "x", e.Pos().X(), "vx", e.Vel().X(), "vy", e.Vel().Y())
	}

	if l.score > l.cfg.Rules.WinScore {
		l.finish(StateWin)
	}

	return l.publish(vp)
}

// resolveHits pairs every live projectile with every live enemy it touches.
// A projectile is spent on its first hit.
func (l *Loop) resolveHits() {
	for _, p := range l.reg.Projectiles() {
		if !p.Alive() {
			continue
		}
		for _, e := range l.reg.Enemies() {
			if !e.Alive() || !p.CollidedWith(e) {
				continue
			}
			p.OnCollision(e)
			e.OnCollision(p)
			l.score++
			break
		}
	}
}

// breached reports whether any enemy present this tick touches the player or
// has crossed the bottom edge. Enemies shot down this tick still count, so a
// kill and a breach in the same tick end in a loss.
func (l *Loop) breached(vp core.Viewport) bool {
	player := l.reg.Player()
	for _, e := range l.reg.Enemies() {
		if e.CollidedWith(player) {
			player.OnCollision(e)
			return true
		}
		if !vp.Degenerate() && e.Box().Bottom() > vp.H {
			return true
		}
	}
	return false
}

func (l *Loop) applyIntent() {
	d := Direction(l.intent.Load())
	l.reg.Player().SetVX(float64(d) * l.cfg.Player.Speed)
}

// applyViewport keeps the ship on the bottom edge when the host resizes.
func (l *Loop) applyViewport(vp core.Viewport) {
	if vp == l.lastVP {
		return
	}
	l.lastVP = vp
	if vp.Degenerate() {
		return
	}
	player := l.reg.Player()
	player.SetY(playerY(&l.cfg.Player, vp))
	player.CheckBounds(vp)
}

// reset starts a fresh game: empty registry, zero score, new ship.
func (l *Loop) reset(vp core.Viewport) {
	l.reg.Reset(newPlayer(&l.cfg.Player, vp))
	l.score = 0
	l.gameTicks = 0
	l.lastVP = vp
	l.shot.Store(false)
	l.clock.Reset()
	l.state = StatePlaying
	l.logger.Info("game started", "tick", l.tick, "viewport", vp)
}

func (l *Loop) finish(s State) {
	l.state = s
	l.logger.Info("game over", "result", s, "score", l.score, "ticks", l.gameTicks)
}

// publish builds and swaps in the snapshot for this tick.
func (l *Loop) publish(vp core.Viewport) *Snapshot {
	snap := &Snapshot{
		Tick:        l.tick,
		State:       l.state,
		Score:       l.score,
		Viewport:    vp,
		Player:      spriteOf(l.reg.Player()),
		Enemies:     liveSprites(l.reg.Enemies()),
		Projectiles: liveSprites(l.reg.Projectiles()),
	}
	l.published.Store(snap)
	return snap
}
