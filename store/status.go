package store

import (
	"sync"

	"github.com/thrivehealth/thriveGo/gateway"
)

// Status is the request state of a single operation kind.
type Status struct {
	Pending bool
	Err     string
}

// Tracker maps every operation kind to its own status record, so unrelated
// operations issued against the same store cannot clobber each other's
// loading or error state. Stores embed one Tracker each.
type Tracker struct {
	mu  sync.RWMutex
	ops map[string]Status
}

// dispatch runs one remote operation through the uniform state machine:
// pending -> fulfilled or pending -> rejected. Failures are recorded against
// the operation kind and never escape to the caller; the returned channel
// closes once the operation settles either way.
func (t *Tracker) dispatch(kind, fallback string, call func() error) chan struct{} {
	t.begin(kind)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := call(); err != nil {
			t.fail(kind, gateway.Reason(err, fallback))
			return
		}
		t.succeed(kind)
	}()
	return done
}

func (t *Tracker) begin(kind string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ops == nil {
		t.ops = make(map[string]Status)
	}
	t.ops[kind] = Status{Pending: true}
}

func (t *Tracker) succeed(kind string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops[kind] = Status{}
}

func (t *Tracker) fail(kind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops[kind] = Status{Err: message}
}

// Loading reports whether any operation kind is in flight on this store.
func (t *Tracker) Loading() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, status := range t.ops {
		if status.Pending {
			return true
		}
	}
	return false
}

// Err returns the stored failure text for one operation kind, or "" when its
// last run settled clean.
func (t *Tracker) Err(kind string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ops[kind].Err
}

// FirstErr returns the failure text of any failed operation kind, or ""
// when none failed. Inline error states render through this.
func (t *Tracker) FirstErr() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, status := range t.ops {
		if len(status.Err) > 0 {
			return status.Err
		}
	}
	return ""
}

// ClearErr drops the stored error for one operation kind.
func (t *Tracker) ClearErr(kind string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	status := t.ops[kind]
	status.Err = ""
	t.ops[kind] = status
}
