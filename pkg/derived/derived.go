// Package derived provides read-only values selected from a Universe's
// state, with change notification. A derived Value is the piece UI
// bindings listen to: it re-runs its selector after every dispatch and
// notifies listeners only when the selected value actually changed.
package derived

import (
	"reflect"
	"sync"

	"github.com/go-drift/universe/pkg/universe"
)

// Value caches the most recent result of a selector over a Universe's
// state. Safe for concurrent use.
type Value[T any] struct {
	mu        sync.Mutex
	current   T
	equal     func(a, b T) bool
	listeners []*listener[T]
	nextID    int

	detach func() error
	once   sync.Once
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Option configures a Value.
type Option[T any] func(*Value[T])

// WithEquality sets the comparison that decides whether the selected
// value changed. The default is reflect.DeepEqual.
func WithEquality[T any](equal func(a, b T) bool) Option[T] {
	return func(v *Value[T]) { v.equal = equal }
}

// From creates a Value that tracks selector over u's state. It selects
// the initial value immediately and re-selects after every dispatch.
// Call Dispose when the Value is no longer needed.
func From[S universe.Core[M], M any, T any](u *universe.Universe[S, M], selector func(state S) T, opts ...Option[T]) *Value[T] {
	v := &Value[T]{
		equal: func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(v)
	}

	v.current = universe.Get(u, selector)
	sub := u.Subscribe(func(u *universe.Universe[S, M]) {
		v.update(universe.Get(u, selector))
	})
	v.detach = func() error { return u.Unsubscribe(sub) }
	return v
}

// Get returns the last selected value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// AddListener registers fn to be called with the new value after each
// change, in registration order. The returned function cancels the
// registration.
func (v *Value[T]) AddListener(fn func(T)) (cancel func()) {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, &listener[T]{id: id, fn: fn})
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (v *Value[T]) ListenerCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// Dispose detaches the Value from its Universe and drops all listeners.
// Get keeps returning the last selected value. Dispose is idempotent.
func (v *Value[T]) Dispose() {
	v.once.Do(func() {
		_ = v.detach()
		v.mu.Lock()
		v.listeners = nil
		v.mu.Unlock()
	})
}

func (v *Value[T]) update(next T) {
	v.mu.Lock()
	if v.equal(v.current, next) {
		v.mu.Unlock()
		return
	}
	v.current = next
	ls := make([]*listener[T], len(v.listeners))
	copy(ls, v.listeners)
	v.mu.Unlock()

	for _, l := range ls {
		l.fn(next)
	}
}
