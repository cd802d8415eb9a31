package tile

import (
	"sync"
	"time"
)

// Subscribe registers fn to receive a deep snapshot after each settled
// mutation. Callbacks fire synchronously, in subscription order, from
// the goroutine performing the mutation. The returned function removes
// the subscription; calling it more than once is harmless.
func (w *Workspace) Subscribe(fn func(Snapshot)) func() {
	id := w.nextSub
	w.nextSub++
	w.subs = append(w.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range w.subs {
			if s.id == id {
				w.subs = append(w.subs[:i], w.subs[i+1:]...)
				return
			}
		}
	}
}

// SubscribeDebounced registers fn like [Workspace.Subscribe] but
// coalesces bursts of notifications down to one delivery per interval,
// carrying the most recent snapshot. It fires once immediately with the
// current state on subscribe. Debounced deliveries run on a timer
// goroutine, so fn must be safe to call from there. The returned
// function removes the subscription and stops any pending delivery.
func (w *Workspace) SubscribeDebounced(fn func(Snapshot), interval time.Duration) func() {
	d := &debouncer{fn: fn, interval: interval}
	fn(w.Snapshot())
	unsub := w.Subscribe(d.push)
	return func() {
		unsub()
		d.stop()
	}
}

// notify delivers a snapshot to all current subscribers. It is called
// once per public mutation, after the tree has settled.
func (w *Workspace) notify() {
	if len(w.subs) == 0 {
		return
	}
	snap := w.Snapshot()
	for _, s := range w.subs {
		s.fn(snap)
	}
}

// debouncer coalesces snapshot deliveries onto a single timer tick.
type debouncer struct {
	mu       sync.Mutex
	fn       func(Snapshot)
	interval time.Duration
	timer    *time.Timer
	pending  *Snapshot
}

func (d *debouncer) push(s Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = &s
	if d.timer == nil {
		d.timer = time.AfterFunc(d.interval, d.flush)
	}
}

func (d *debouncer) flush() {
	d.mu.Lock()
	s := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	if s != nil {
		d.fn(*s)
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
