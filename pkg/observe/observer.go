// Package observe provides pluggable instrumentation for state containers.
//
// Containers emit Events at lifecycle points (dispatch, subscribe,
// unsubscribe) to an Observer supplied by the application. The package
// ships observers that log through log/slog, fan out to several
// destinations, record OpenTelemetry spans, or discard everything.
//
// Observers are optional. A container with no observer pays nothing.
package observe

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of event. Each emitting package defines
// its own constants using this type (e.g., "universe.dispatch.start").
// Paired phase events share a prefix and end in ".start" and ".complete".
type EventType string

// Event is a single instrumentation event.
type Event struct {
	// Type names the event.
	Type EventType
	// Level is the severity used by logging observers.
	Level slog.Level
	// Time is when the event occurred.
	Time time.Time
	// Source identifies the emitting component, typically the
	// container name.
	Source string
	// Data carries event-specific attributes.
	Data map[string]any
}

// Observer receives events for logging, tracing, or metrics.
//
// OnEvent is called synchronously from the emitting operation and may run
// concurrently from multiple goroutines; implementations must be safe for
// concurrent use and should return quickly.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
