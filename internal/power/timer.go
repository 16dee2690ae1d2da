package power

import (
	"sync"
	"time"
)

// Timer is a single-slot, fire-once alarm. Resetting it replaces any pending
// firing; a firing that was superseded never reaches the callback.
type Timer struct {
	mu       sync.Mutex
	t        *time.Timer
	gen      uint64
	onExpire func()
}

// NewTimer creates a disarmed timer.
func NewTimer(onExpire func()) *Timer {
	return &Timer{onExpire: onExpire}
}

// Reset arms the timer to fire once after d. d <= 0 only disarms.
func (t *Timer) Reset(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.disarm()
	if d <= 0 {
		return
	}
	gen := t.gen
	t.t = time.AfterFunc(d, func() { t.fire(gen) })
}

// Cancel disarms without firing. It waits for a callback already in
// progress, so after Cancel returns the callback is not running.
func (t *Timer) Cancel() {
	t.mu.Lock()
	t.disarm()
	t.mu.Unlock()
}

// Armed reports whether a firing is pending.
func (t *Timer) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.t != nil
}

func (t *Timer) disarm() {
	t.gen++
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

// fire runs the callback under the lock so it is serialized with Cancel
// and Reset.
func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return
	}
	t.t = nil
	t.gen++
	if t.onExpire != nil {
		t.onExpire()
	}
}
