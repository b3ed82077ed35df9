package universetest

import (
	"context"
	"sync"

	"github.com/go-drift/universe/pkg/observe"
)

// Recorder is an observe.Observer that stores every event it receives.
// Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []observe.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnEvent(_ context.Context, event observe.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []observe.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observe.Event(nil), r.events...)
}

// EventsOf returns the recorded events of one type, in arrival order.
func (r *Recorder) EventsOf(t observe.EventType) []observe.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []observe.Event
	for _, e := range r.events {
		if e.Type == t {
			matched = append(matched, e)
		}
	}
	return matched
}

// Reset discards the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
