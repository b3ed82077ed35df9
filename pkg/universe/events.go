package universe

import "github.com/go-drift/universe/pkg/observe"

// Event types emitted to the configured observer. Dispatch events form a
// start/complete pair carrying the dispatch sequence number, the message
// type name, and on completion the subscriber count notified and the
// total duration.
const (
	EventDispatchStart    observe.EventType = "universe.dispatch.start"
	EventDispatchComplete observe.EventType = "universe.dispatch.complete"
	EventSubscribe        observe.EventType = "universe.subscribe"
	EventUnsubscribe      observe.EventType = "universe.unsubscribe"
)
