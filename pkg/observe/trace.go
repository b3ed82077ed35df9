package observe

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracingObserver records events as OpenTelemetry spans.
//
// Paired phase events become one span: an event whose type ends in
// ".start" opens a span named after the shared prefix, and the matching
// ".complete" event ends it. Pairs are matched on source, the
// "universe_id" and "seq" data attributes, and the prefix. Events without
// a phase suffix, and ".complete" events whose start was never seen, are
// recorded as zero-length spans.
type TracingObserver struct {
	tracer trace.Tracer

	mu     sync.Mutex
	active map[string]trace.Span
}

// NewTracing creates a TracingObserver using a tracer from the given
// provider.
func NewTracing(provider trace.TracerProvider) *TracingObserver {
	return &TracingObserver{
		tracer: provider.Tracer("github.com/go-drift/universe/pkg/observe"),
		active: make(map[string]trace.Span),
	}
}

func (o *TracingObserver) OnEvent(ctx context.Context, event Event) {
	name := string(event.Type)
	switch {
	case strings.HasSuffix(name, ".start"):
		prefix := strings.TrimSuffix(name, ".start")
		_, span := o.tracer.Start(ctx, prefix, startOpts(event)...)
		o.mu.Lock()
		o.active[pairKey(event, prefix)] = span
		o.mu.Unlock()

	case strings.HasSuffix(name, ".complete"):
		prefix := strings.TrimSuffix(name, ".complete")
		key := pairKey(event, prefix)
		o.mu.Lock()
		span, ok := o.active[key]
		if ok {
			delete(o.active, key)
		}
		o.mu.Unlock()
		if !ok {
			_, span = o.tracer.Start(ctx, prefix, startOpts(event)...)
		}
		span.SetAttributes(eventAttrs(event)...)
		span.End(endOpts(event)...)

	default:
		_, span := o.tracer.Start(ctx, name, startOpts(event)...)
		span.End(endOpts(event)...)
	}
}

func startOpts(event Event) []trace.SpanStartOption {
	opts := []trace.SpanStartOption{trace.WithAttributes(eventAttrs(event)...)}
	if !event.Time.IsZero() {
		opts = append(opts, trace.WithTimestamp(event.Time))
	}
	return opts
}

func endOpts(event Event) []trace.SpanEndOption {
	if event.Time.IsZero() {
		return nil
	}
	return []trace.SpanEndOption{trace.WithTimestamp(event.Time)}
}

func pairKey(event Event, prefix string) string {
	id, _ := event.Data["universe_id"].(string)
	return fmt.Sprintf("%s|%s|%v|%s", event.Source, id, event.Data["seq"], prefix)
}

func eventAttrs(event Event) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(event.Data)+1)
	attrs = append(attrs, attribute.String("source", event.Source))
	for k, v := range event.Data {
		switch v := v.(type) {
		case string:
			attrs = append(attrs, attribute.String(k, v))
		case bool:
			attrs = append(attrs, attribute.Bool(k, v))
		case int:
			attrs = append(attrs, attribute.Int(k, v))
		case int64:
			attrs = append(attrs, attribute.Int64(k, v))
		case uint64:
			attrs = append(attrs, attribute.Int64(k, int64(v)))
		case float64:
			attrs = append(attrs, attribute.Float64(k, v))
		case time.Duration:
			attrs = append(attrs, attribute.String(k, v.String()))
		default:
			attrs = append(attrs, attribute.String(k, fmt.Sprint(v)))
		}
	}
	return attrs
}
