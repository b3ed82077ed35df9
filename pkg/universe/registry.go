package universe

import (
	"sync"
	"sync/atomic"
)

// Subscription identifies a registered callback. Handles are assigned
// from a process-wide counter, so they are unique across all universes
// and are never reused. The zero value is never a valid handle.
type Subscription uint64

var nextHandle atomic.Uint64

// subscriber is one registry entry. The canceled flag is set before the
// entry is unlinked so that an in-flight notification snapshot skips it.
type subscriber struct {
	handle   Subscription
	notify   func()
	canceled atomic.Bool
}

// registry is an insertion-ordered collection of subscribers.
type registry struct {
	mu   sync.Mutex
	subs []*subscriber
}

// add registers a callback and returns its fresh handle.
func (r *registry) add(notify func()) Subscription {
	sub := &subscriber{
		handle: Subscription(nextHandle.Add(1)),
		notify: notify,
	}
	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()
	return sub.handle
}

// remove unlinks the entry for handle, reporting whether it was live.
func (r *registry) remove(handle Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sub := range r.subs {
		if sub.handle == handle {
			sub.canceled.Store(true)
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot copies the current subscriber list in registration order.
func (r *registry) snapshot() []*subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := make([]*subscriber, len(r.subs))
	copy(subs, r.subs)
	return subs
}

// size returns the number of live subscribers.
func (r *registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
