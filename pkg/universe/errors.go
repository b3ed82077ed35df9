package universe

import "errors"

// Sentinel errors for container operations.
var (
	// ErrUnknownSubscription is returned by Unsubscribe when the handle
	// does not identify a live subscription: it was already removed,
	// never issued, or issued by a different Universe.
	ErrUnknownSubscription = errors.New("universe: unknown subscription")
)
