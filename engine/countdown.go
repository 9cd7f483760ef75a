package engine

import (
	"sync"
	"time"
)

// Scheduler arms and disarms the recurring session tick
type Scheduler interface {
	Arm()
	Disarm()
}

// Countdown is a cancellable recurring timer consumed by a single event loop
// The loop selects on C(); a disarmed countdown returns a nil channel which never fires
type Countdown struct {
	mu       sync.Mutex
	interval time.Duration
	ticker   *time.Ticker
}

// NewCountdown creates a disarmed countdown with the given cadence
func NewCountdown(interval time.Duration) *Countdown {
	return &Countdown{interval: interval}
}

// Arm starts the cadence, restarting it if already armed
func (c *Countdown) Arm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker != nil {
		c.ticker.Reset(c.interval)
		return
	}
	c.ticker = time.NewTicker(c.interval)
}

// Disarm stops the cadence; pending ticks are dropped
func (c *Countdown) Disarm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Armed reports whether ticks are being delivered
func (c *Countdown) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticker != nil
}

// C returns the tick channel, nil while disarmed
func (c *Countdown) C() <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}
