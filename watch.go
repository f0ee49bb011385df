package stlot

import (
	"context"
	"log"
	"sync"
	"time"
)

// Watcher periodically refreshes the quotes of the currently active portfolio
// and republishes an aggregated snapshot, for interactive consumers that keep
// a display up to date.
//
// A single lock guards the active-portfolio reference. The refresh itself
// runs outside the lock since it blocks on the network; after re-acquiring
// the lock the watcher checks that the portfolio it refreshed is still the
// active one and otherwise discards the stale result. Cancellation is
// cooperative: Stop sets a flag that the loop polls in short sleep increments
// between refreshes.
type Watcher struct {
	interval time.Duration
	poll     time.Duration
	publish  func(Summary)

	mu      sync.Mutex
	active  *Portfolio
	stopped bool
}

// NewWatcher creates a watcher publishing a snapshot after each refresh pass.
// A non-positive interval defaults to 15s.
func NewWatcher(interval time.Duration, publish func(Summary)) *Watcher {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Watcher{
		interval: interval,
		poll:     100 * time.Millisecond,
		publish:  publish,
	}
}

// SetActive swaps the portfolio being watched. A nil portfolio pauses
// publishing without stopping the loop.
func (w *Watcher) SetActive(p *Portfolio) {
	w.mu.Lock()
	w.active = p
	w.mu.Unlock()
}

// Active returns the portfolio currently being watched.
func (w *Watcher) Active() *Portfolio {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// Stop requests cooperative termination. The loop exits on its next wake
// rather than being interrupted.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// Run refreshes and publishes until Stop is called or ctx is done. It is
// meant to run on a dedicated goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		p := w.Active()
		if p != nil {
			// Blocking network work happens outside the lock. A failed
			// refresh is retried on the next interval, no backoff.
			if err := p.RefreshAll(ctx); err != nil {
				log.Printf("watch: refresh failed, retrying next interval: %v", err)
			}

			w.mu.Lock()
			if w.active == p && !w.stopped {
				if s, err := p.Summary(ctx); err != nil {
					log.Printf("watch: summary failed: %v", err)
				} else if w.publish != nil {
					w.publish(s)
				}
			}
			w.mu.Unlock()
		}

		deadline := time.Now().Add(w.interval)
		for time.Now().Before(deadline) {
			if w.isStopped() || ctx.Err() != nil {
				return
			}
			time.Sleep(w.poll)
		}
	}
}
