package observe

import (
	"context"
	"log/slog"
)

// SlogObserver emits events to a slog.Logger. The event type becomes the
// log message, the source becomes a "source" attribute, and Data keys are
// flattened as top-level attributes.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlog creates a SlogObserver that emits to the given logger.
// A nil logger means slog.Default.
func NewSlog(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}

	o.logger.LogAttrs(ctx, event.Level, string(event.Type), attrs...)
}
