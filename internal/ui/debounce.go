package ui

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid calls, such as per-keystroke persistence of the
// search term, into one trailing invocation.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	pending  func()
	duration time.Duration
}

// NewDebouncer creates a new debouncer with the specified duration
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Debounce executes the function after the debounce duration has elapsed
// without any new calls. Rapid successive calls reset the timer.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		call := d.pending
		d.pending = nil
		d.timer = nil
		d.mu.Unlock()
		if call != nil {
			call()
		}
	})
}

// Flush runs the pending debounced function immediately, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	call := d.pending
	d.pending = nil
	d.mu.Unlock()
	if call != nil {
		call()
	}
}

// Cancel discards any pending debounced function call
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
