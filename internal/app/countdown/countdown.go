// Package countdown runs the per-game time budget on its own goroutine.
package countdown

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is the part of time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Tests substitute a manual clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// RealClock ticks on wall time.
type RealClock struct{}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// EventKind identifies what the countdown reports.
type EventKind int

const (
	EventTick EventKind = iota + 1
	EventTimeout
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Event is sent on the countdown's channel. Remaining is in whole seconds.
type Event struct {
	Kind      EventKind
	Remaining int
}

const eventBuffer = 16

// Countdown counts a budget of seconds down to zero. Ticks that find the
// channel full are dropped; Remaining always reports the current value.
type Countdown struct {
	clock     Clock
	remaining atomic.Int64
	events    chan Event

	mu     sync.Mutex
	budget int
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a stopped countdown holding budgetSeconds.
func New(budgetSeconds int, clock Clock) *Countdown {
	if clock == nil {
		clock = RealClock{}
	}
	c := &Countdown{
		clock:  clock,
		events: make(chan Event, eventBuffer),
		budget: budgetSeconds,
	}
	c.remaining.Store(int64(budgetSeconds))
	return c
}

// Events is the receive side of the countdown's channel.
func (c *Countdown) Events() <-chan Event {
	return c.events
}

// Remaining is the number of seconds left.
func (c *Countdown) Remaining() int {
	return int(c.remaining.Load())
}

// Running reports whether the countdown goroutine is active.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runningLocked()
}

func (c *Countdown) runningLocked() bool {
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Start launches the countdown. It returns false when the countdown is
// already running or has no time left.
func (c *Countdown) Start(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.runningLocked() || c.remaining.Load() <= 0 {
		return false
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := c.clock.NewTicker(time.Second)
	c.cancel, c.done = cancel, done

	go c.run(runCtx, ticker, done)
	return true
}

func (c *Countdown) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			left := c.remaining.Add(-1)
			if left <= 0 {
				c.remaining.Store(0)
				select {
				case c.events <- Event{Kind: EventTimeout}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case c.events <- Event{Kind: EventTick, Remaining: int(left)}:
			default:
			}
		}
	}
}

// Stop halts the countdown and waits for its goroutine to exit. Stopping a
// stopped countdown does nothing.
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Reset stops the countdown, restores the full budget and discards events
// nobody has read yet.
func (c *Countdown) Reset() {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining.Store(int64(c.budget))
	for {
		select {
		case <-c.events:
		default:
			return
		}
	}
}
