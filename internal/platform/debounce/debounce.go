// Package debounce coalesces bursts of triggers into a single delayed call.
package debounce

import (
	"sync"
	"time"
)

// afterFunc is replaced in tests.
var afterFunc = time.AfterFunc

// Debouncer runs fn once the triggers have been quiet for delay.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
	fn    func()
}

// New creates a Debouncer. It does nothing until Trigger is called.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger (re)starts the quiet period. Only the latest trigger fires.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = afterFunc(d.delay, func() { d.fire(gen) })
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// fire runs fn unless a newer Trigger or a Stop superseded gen.
// A timer that already fired cannot be stopped, hence the generation check.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	current := gen == d.gen
	if current {
		d.timer = nil
	}
	d.mu.Unlock()
	if current {
		d.fn()
	}
}
