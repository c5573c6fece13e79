// Package bridge turns host input (keys, pointer presses, resizes) into loop
// commands. It owns the rate limits the loop does not enforce: the shot
// cooldown and the start/restart debounce.
package bridge

import (
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/clock"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// Commander is the command surface of a game loop.
type Commander interface {
	SetIntent(d game.Direction)
	RequestShot()
	RequestStart()
	SetViewport(w, h int)
	Snapshot() *game.Snapshot
}

// Controller forwards input to a Commander. Safe for concurrent use.
type Controller struct {
	cmd           Commander
	now           clock.TimeSource
	shotCooldown  time.Duration
	startCooldown time.Duration

	mu        sync.Mutex
	lastShot  time.Time
	lastTouch time.Time
}

// NewController creates a controller using the cooldowns from cfg.
// A nil src uses the system clock.
func NewController(cmd Commander, cfg config.InvadersConfig, src clock.TimeSource) *Controller {
	if src == nil {
		src = clock.System()
	}
	return &Controller{
		cmd:           cmd,
		now:           src,
		shotCooldown:  cfg.ShotCooldown(),
		startCooldown: cfg.StartCooldown(),
	}
}

// Move sets the steering intent.
func (c *Controller) Move(d game.Direction) {
	c.cmd.SetIntent(d)
}

// Shoot requests a projectile if the game is running and the shot cooldown
// has passed. Reports whether the request was forwarded.
func (c *Controller) Shoot() bool {
	if c.cmd.Snapshot().State != game.StatePlaying {
		return false
	}
	now := c.now.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shootLocked(now)
}

// Start requests a new game if none is running and the debounce window since
// the last touch has passed. Reports whether the request was forwarded.
func (c *Controller) Start() bool {
	state := c.cmd.Snapshot().State
	now := c.now.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked(state, now)
}

// ViewportChanged forwards a new drawable size.
func (c *Controller) ViewportChanged(w, h int) {
	c.cmd.SetViewport(w, h)
}

// PointerDown handles a press at horizontal position x: it starts a game when
// none is running, steers the ship toward x and fires.
func (c *Controller) PointerDown(x float64) {
	snap := c.cmd.Snapshot()
	now := c.now.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.startLocked(snap.State, now)

	switch {
	case x < snap.Player.X:
		c.cmd.SetIntent(game.DirLeft)
	case x > snap.Player.X:
		c.cmd.SetIntent(game.DirRight)
	}

	if snap.State == game.StatePlaying {
		c.shootLocked(now)
	}
}

// PointerUp handles a release: the ship stops.
func (c *Controller) PointerUp() {
	now := c.now.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cmd.SetIntent(game.DirStop)
	c.lastTouch = now
}

func (c *Controller) shootLocked(now time.Time) bool {
	if since(c.lastShot, now) <= c.shotCooldown {
		return false
	}
	c.lastShot = now
	c.cmd.RequestShot()
	return true
}

// startLocked records the touch whether or not the start is accepted, so a
// burst of taps keeps extending the debounce window.
func (c *Controller) startLocked(state game.State, now time.Time) bool {
	ok := state != game.StatePlaying && since(c.lastTouch, now) > c.startCooldown
	c.lastTouch = now
	if ok {
		c.cmd.RequestStart()
	}
	return ok
}

// since returns the time from last to now; a zero last means never.
func since(last, now time.Time) time.Duration {
	if last.IsZero() {
		return time.Duration(math.MaxInt64)
	}
	return now.Sub(last)
}
