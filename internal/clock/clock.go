// Package clock measures simulation time between ticks.
package clock

import (
	"math"
	"sync"
	"time"
)

// TimeSource supplies the current time.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// System returns the wall-clock time source.
func System() TimeSource { return systemTime{} }

// DefaultMaxElapsed caps a single tick so that a stalled host (suspended
// process, debugger) does not teleport entities across the screen.
const DefaultMaxElapsed = 250 * time.Millisecond

// Clock turns successive readings of a TimeSource into per-tick elapsed
// milliseconds. It is used from the tick goroutine only.
type Clock struct {
	src        TimeSource
	maxElapsed time.Duration
	last       time.Time
	started    bool
}

// New creates a clock over src. maxElapsed <= 0 selects DefaultMaxElapsed.
func New(src TimeSource, maxElapsed time.Duration) *Clock {
	if src == nil {
		src = System()
	}
	if maxElapsed <= 0 {
		maxElapsed = DefaultMaxElapsed
	}
	return &Clock{src: src, maxElapsed: maxElapsed}
}

// Tick returns the milliseconds elapsed since the previous Tick.
// The first call after New or Reset returns 0. The result is never negative:
// a host clock that steps backwards yields 0 and becomes the new baseline.
// Gaps longer than the configured maximum are clamped to it.
func (c *Clock) Tick() float64 {
	now := c.src.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		// Later ticks measure from the stepped-back reading.
		return 0
	}
	return Millis(min(d, c.maxElapsed))
}

// Reset forgets the previous reading so the next Tick returns 0.
func (c *Clock) Reset() {
	c.started = false
}

// Now returns the current reading of the underlying source.
func (c *Clock) Now() time.Time {
	return c.src.Now()
}

// Millis converts a duration to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// SanitizeMillis maps NaN, infinities and negative values to 0.
func SanitizeMillis(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return 0
	}
	return ms
}

// Manual is a TimeSource that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual time source starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the manual time by d (which may be negative).
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set jumps the manual time to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
