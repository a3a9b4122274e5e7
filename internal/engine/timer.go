package engine

import (
	"sync"
	"time"
)

// Countdown drives a session's once-per-second tick from a goroutine. It is
// a cancellable handle: Stop is idempotent and must be called whenever the
// session leaves the active phase, so a stale tick can never fire against a
// replaced session. The callback returns false to stop the countdown from
// the inside (e.g. the session left Active on its own).
type Countdown struct {
	stop chan struct{}
	once sync.Once
}

// StartCountdown begins calling fn every interval until fn returns false or
// Stop is called.
func StartCountdown(interval time.Duration, fn func() bool) *Countdown {
	c := &Countdown{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				if !fn() {
					return
				}
			}
		}
	}()
	return c
}

// Stop cancels the countdown. Safe to call multiple times and from any
// goroutine.
func (c *Countdown) Stop() {
	c.once.Do(func() { close(c.stop) })
}
