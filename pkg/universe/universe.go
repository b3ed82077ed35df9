package universe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/universe/pkg/observe"
	"github.com/google/uuid"
)

// Core is the mutable capability a state type provides: applying one
// message to the state in place. HandleMessage runs under the container's
// write lock and must not block indefinitely; a handler that cannot apply
// a message records that as a state transition or ignores the message.
type Core[M any] interface {
	HandleMessage(msg M)
}

// Universe owns a single state value and serializes every mutation of it.
// Share the *Universe pointer; all methods are safe for concurrent use.
type Universe[S Core[M], M any] struct {
	id   string
	name string

	mu    sync.RWMutex
	state S

	subs registry

	observer observe.Observer
	seq      atomic.Uint64
}

// Option configures a Universe at construction.
type Option func(*options)

type options struct {
	name     string
	observer observe.Observer
}

// WithName sets a human-readable name used in instrumentation events.
// The default is derived from the instance ID.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithObserver sets the observer that receives lifecycle events.
// Without one, instrumentation is disabled.
func WithObserver(obs observe.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// New creates a Universe holding initial. The state must not be read or
// mutated directly afterwards; use Read and Dispatch.
func New[S Core[M], M any](initial S, opts ...Option) *Universe[S, M] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	u := &Universe[S, M]{
		id:       uuid.NewString(),
		name:     o.name,
		state:    initial,
		observer: o.observer,
	}
	if u.name == "" {
		u.name = "universe-" + u.id[:8]
	}
	return u
}

// ID returns the unique instance ID.
func (u *Universe[S, M]) ID() string {
	return u.id
}

// Name returns the instance name used in instrumentation events.
func (u *Universe[S, M]) Name() string {
	return u.name
}

// Dispatch applies msg to the state, then notifies subscribers.
//
// The mutation runs under the write lock: at most one mutation executes
// at a time, and Read is blocked while it runs. The lock is released
// before notification, so callbacks may Read, Dispatch, Subscribe, and
// Unsubscribe. Subscribers present when the notification phase begins are
// invoked in registration order; one removed before its turn is skipped.
// Callbacks observe the live state, which is at least as new as this
// dispatch's mutation.
func (u *Universe[S, M]) Dispatch(msg M) {
	seq := u.seq.Add(1)

	var start time.Time
	var msgType string
	if u.observer != nil {
		start = time.Now()
		msgType = fmt.Sprintf("%T", msg)
		u.emit(EventDispatchStart, slog.LevelDebug, map[string]any{
			"seq":     seq,
			"message": msgType,
		})
	}

	u.mu.Lock()
	u.state.HandleMessage(msg)
	u.mu.Unlock()

	notified := 0
	for _, sub := range u.subs.snapshot() {
		if !sub.canceled.Load() {
			sub.notify()
			notified++
		}
	}

	if u.observer != nil {
		u.emit(EventDispatchComplete, slog.LevelDebug, map[string]any{
			"seq":      seq,
			"message":  msgType,
			"notified": notified,
			"duration": time.Since(start),
		})
	}
}

// Read runs fn with shared access to the state. Reads run concurrently
// with each other and with notification; only an in-progress mutation
// blocks them. The state must not be retained or mutated through fn.
func (u *Universe[S, M]) Read(fn func(state S)) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	fn(u.state)
}

// Get extracts one value from the state under the read lock.
func Get[S Core[M], M any, T any](u *Universe[S, M], extract func(state S) T) T {
	var v T
	u.Read(func(state S) { v = extract(state) })
	return v
}

// Subscribe registers fn to be called after every dispatch, passing this
// Universe so the callback can read the updated state. It returns the
// subscription handle used to unsubscribe. Subscribing the same function
// twice creates two independent subscriptions.
func (u *Universe[S, M]) Subscribe(fn func(u *Universe[S, M])) Subscription {
	handle := u.subs.add(func() { fn(u) })
	if u.observer != nil {
		u.emit(EventSubscribe, slog.LevelDebug, map[string]any{
			"subscription": uint64(handle),
			"subscribers":  u.subs.size(),
		})
	}
	return handle
}

// Unsubscribe removes the subscription for the handle. After it returns,
// the callback will not be invoked by dispatches whose notification has
// not yet reached it. Unsubscribing a handle that is not live returns
// ErrUnknownSubscription.
func (u *Universe[S, M]) Unsubscribe(sub Subscription) error {
	if !u.subs.remove(sub) {
		return fmt.Errorf("%w: %d", ErrUnknownSubscription, sub)
	}
	if u.observer != nil {
		u.emit(EventUnsubscribe, slog.LevelDebug, map[string]any{
			"subscription": uint64(sub),
			"subscribers":  u.subs.size(),
		})
	}
	return nil
}

// SubscriberCount returns the number of live subscriptions.
func (u *Universe[S, M]) SubscriberCount() int {
	return u.subs.size()
}

// emit forwards one event to the observer. Callers check the observer is
// set first so event data is only built when someone is listening.
func (u *Universe[S, M]) emit(t observe.EventType, level slog.Level, data map[string]any) {
	data["universe_id"] = u.id
	u.observer.OnEvent(context.Background(), observe.Event{
		Type:   t,
		Level:  level,
		Time:   time.Now(),
		Source: u.name,
		Data:   data,
	})
}
