package observe

import (
	"context"
	"log/slog"
)

// MinLevel returns an Observer that forwards only events whose level is at
// or above min.
func MinLevel(next Observer, min slog.Level) Observer {
	return &levelFilter{next: next, min: min}
}

type levelFilter struct {
	next Observer
	min  slog.Level
}

func (f *levelFilter) OnEvent(ctx context.Context, event Event) {
	if event.Level >= f.min {
		f.next.OnEvent(ctx, event)
	}
}
