package search

import (
	"sync"
	"time"
)

// Debouncer collapses a stream of raw values into one emission per quiet
// period, suppressing an emission whose value matches the previous one.
// Stop acts as the view-lifetime cancellation token: after Stop no further
// emissions fire.
type Debouncer struct {
	quiet time.Duration
	emit  func(string)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	dirty   bool
	last    string
	fired   bool
	stopped bool
}

// NewDebouncer returns a debouncer that calls emit with the settled value
// after quiet has elapsed without a newer Push.
func NewDebouncer(quiet time.Duration, emit func(string)) *Debouncer {
	return &Debouncer{quiet: quiet, emit: emit}
}

// Push records a new raw value and restarts the quiet period.
func (d *Debouncer) Push(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = value
	d.dirty = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.settle)
}

// Flush fires the pending value immediately instead of waiting out the
// quiet period.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.settle()
}

// Stop cancels any pending emission. The debouncer is dead afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) settle() {
	d.mu.Lock()
	if d.stopped || !d.dirty {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.dirty = false
	if d.fired && value == d.last {
		// Unchanged since the previous emission.
		d.mu.Unlock()
		return
	}
	d.last = value
	d.fired = true
	d.mu.Unlock()

	d.emit(value)
}
