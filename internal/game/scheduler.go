package game

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler delivers tick signals.
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

// tickerScheduler wraps time.Ticker.
type tickerScheduler struct {
	t *time.Ticker
}

// NewTicker returns a scheduler firing every interval. Intervals below one
// millisecond are raised to one millisecond so the loop never starves the host.
func NewTicker(interval time.Duration) Scheduler {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return &tickerScheduler{t: time.NewTicker(interval)}
}

func (s *tickerScheduler) C() <-chan time.Time { return s.t.C }
func (s *tickerScheduler) Stop()               { s.t.Stop() }

// ManualScheduler fires only when told to, for tests and step-by-step hosts.
type ManualScheduler struct {
	ch   chan time.Time
	done chan struct{}
	once sync.Once
}

// NewManualScheduler creates a manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		ch:   make(chan time.Time),
		done: make(chan struct{}),
	}
}

// C returns the tick channel.
func (s *ManualScheduler) C() <-chan time.Time { return s.ch }

// Fire delivers one tick and blocks until a runner takes it.
// Returns false if the scheduler was stopped first.
func (s *ManualScheduler) Fire() bool {
	select {
	case s.ch <- time.Now():
		return true
	case <-s.done:
		return false
	}
}

// Stop releases any pending Fire.
func (s *ManualScheduler) Stop() {
	s.once.Do(func() { close(s.done) })
}

// Stepper advances a simulation by one tick.
type Stepper interface {
	Step() *Snapshot
}

// ErrRunnerStarted is returned when Run is called on a runner that already ran.
var ErrRunnerStarted = errors.New("game: runner already started")

// Runner drives a Stepper from a Scheduler on a single goroutine.
type Runner struct {
	stepper   Stepper
	sched     Scheduler
	afterTick func(*Snapshot)

	started atomic.Bool
	mu      sync.Mutex // held for the duration of a Step
	stopped bool
	stop    chan struct{}
	once    sync.Once
	done    chan struct{}
}

// NewRunner creates a runner. afterTick, if non-nil, is called on the run
// goroutine with each published snapshot.
func NewRunner(stepper Stepper, sched Scheduler, afterTick func(*Snapshot)) *Runner {
	return &Runner{
		stepper:   stepper,
		sched:     sched,
		afterTick: afterTick,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Run ticks until ctx is cancelled or Stop is called. It returns nil after
// Stop and ctx.Err() after cancellation. The scheduler is stopped on return.
func (r *Runner) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrRunnerStarted
	}
	defer close(r.done)
	defer r.sched.Stop()

	for {
		// Stop and cancellation win over a pending tick.
		select {
		case <-r.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		select {
		case <-r.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-r.sched.C():
			snap, ok := r.step()
			if !ok {
				return nil
			}
			if r.afterTick != nil {
				r.afterTick(snap)
			}
		}
	}
}

func (r *Runner) step() (*Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return nil, false
	}
	return r.stepper.Step(), true
}

// Stop ends the run loop. Safe to call from any goroutine, including from
// afterTick, and more than once. A tick in progress is allowed to finish
// before Stop returns; no tick starts afterwards.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
	r.once.Do(func() { close(r.stop) })
}

// Done is closed once Run has returned.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
