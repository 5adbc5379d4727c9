// Package search provides the per-view debounced search controller. Raw
// keystroke input goes in; a settled term comes out once the input has been
// quiet for the configured interval, so a query runs per pause rather than
// per keystroke.
package search

import (
	"sync"
	"time"
)

// DefaultQuiet is the quiet interval after which an input value settles.
const DefaultQuiet = 300 * time.Millisecond

// Debouncer converts a stream of raw input changes into settled values. Each
// search box owns exactly one Debouncer; it is not a shared facility. A new
// raw input before the quiet interval elapses cancels the pending emission
// and restarts the timer, so at most one settled value is emitted per quiet
// period. Close cancels any pending emission.
type Debouncer struct {
	quiet time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	out chan string
}

// New returns a Debouncer with the given quiet interval. A non-positive
// interval falls back to DefaultQuiet.
func New(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{
		quiet: quiet,
		out:   make(chan string, 1),
	}
}

// Input records a raw input change and restarts the quiet timer.
func (d *Debouncer) Input(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.emit(term) })
}

func (d *Debouncer) emit(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	// Drop a not-yet-consumed older settled value; the view only cares
	// about the latest one.
	select {
	case <-d.out:
	default:
	}
	d.out <- term
}

// Settled is the stream of settled values. The channel holds at most the
// latest settled value; an unconsumed older value is replaced, never queued.
func (d *Debouncer) Settled() <-chan string {
	return d.out
}

// Close tears the controller down. A pending timer is cancelled with no
// emission; later Inputs are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
