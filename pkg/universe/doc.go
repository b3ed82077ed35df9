// Package universe provides a framework-agnostic container for application state.
//
// A Universe owns exactly one state value. The state type implements Core,
// the capability that applies typed messages to the state; after
// construction, dispatching messages is the only way the state changes.
// Subscribers registered on the Universe are notified after every
// dispatch, in registration order, and read the updated state through the
// container's shared read path.
//
// # Defining a State
//
// Declare a state type, a message type, and a HandleMessage method that
// folds one message into the state:
//
//	type counterMsg int
//
//	const (
//	    increment counterMsg = iota
//	    reset
//	)
//
//	type counter struct {
//	    Count int
//	}
//
//	func (c *counter) HandleMessage(msg counterMsg) {
//	    switch msg {
//	    case increment:
//	        c.Count++
//	    case reset:
//	        c.Count = 0
//	    }
//	}
//
// Create the container with the initial state and dispatch messages:
//
//	u := universe.New[*counter, counterMsg](&counter{})
//	u.Dispatch(increment)
//	count := universe.Get(u, func(c *counter) int { return c.Count })
//
// # Dispatch and Notification
//
// Dispatch serializes mutations: the message handler runs under the
// container's write lock, so at most one mutation executes at a time and
// Read is blocked only while a handler runs. The lock is released before
// subscribers are notified, which means callbacks are free to Read,
// Dispatch, Subscribe, and Unsubscribe without deadlocking.
//
// Each dispatch notifies the subscribers registered at the moment its
// notification phase begins, in registration order. A subscriber removed
// before its turn is skipped; one added during notification is first
// called on the next dispatch. Callbacks observe the live state, which is
// at least as new as the mutation that triggered them.
//
// # Sharing
//
// The *Universe pointer is the shared handle: pass it to every component
// that reads, dispatches, or subscribes. All methods are safe for
// concurrent use without external locking.
//
// # Background Dispatch
//
// Queue moves dispatch onto a dedicated goroutine for producers that must
// not block on mutation or notification:
//
//	q := universe.NewQueue(u, 64)
//	q.Post(increment)
//	q.Close() // drains pending messages
//
// # Instrumentation
//
// New accepts an observer for lifecycle events (see the observe package):
//
//	u := universe.New[*counter, counterMsg](&counter{},
//	    universe.WithName("counter"),
//	    universe.WithObserver(observe.NewSlog(logger)),
//	)
package universe
