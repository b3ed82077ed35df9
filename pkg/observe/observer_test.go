package observe_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/universe/pkg/observe"
)

// captureObserver records events for test assertions.
type captureObserver struct {
	mu     sync.Mutex
	events []observe.Event
}

func (c *captureObserver) OnEvent(_ context.Context, event observe.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureObserver) Events() []observe.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]observe.Event(nil), c.events...)
}

func TestSlogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	obs := observe.NewSlog(logger)
	obs.OnEvent(context.Background(), observe.Event{
		Type:   "universe.dispatch.complete",
		Level:  slog.LevelInfo,
		Time:   time.Now(),
		Source: "cart",
		Data:   map[string]any{"seq": uint64(3)},
	})

	out := buf.String()
	if !strings.Contains(out, "msg=universe.dispatch.complete") {
		t.Errorf("log output missing event type: %q", out)
	}
	if !strings.Contains(out, "source=cart") {
		t.Errorf("log output missing source attribute: %q", out)
	}
	if !strings.Contains(out, "seq=3") {
		t.Errorf("log output missing data attribute: %q", out)
	}
}

func TestSlogObserver_LevelMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := observe.NewSlog(logger)

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "debug", level: slog.LevelDebug, want: "level=DEBUG"},
		{name: "info", level: slog.LevelInfo, want: "level=INFO"},
		{name: "warn", level: slog.LevelWarn, want: "level=WARN"},
		{name: "error", level: slog.LevelError, want: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			obs.OnEvent(context.Background(), observe.Event{Type: "test.event", Level: tt.level})
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output = %q, want substring %q", buf.String(), tt.want)
			}
		})
	}
}

func TestMulti(t *testing.T) {
	first := &captureObserver{}
	second := &captureObserver{}

	multi := observe.Multi(first, second)
	multi.OnEvent(context.Background(), observe.Event{Type: "test.event", Level: slog.LevelInfo})

	if got := len(first.Events()); got != 1 {
		t.Errorf("first observer received %d events, want 1", got)
	}
	if got := len(second.Events()); got != 1 {
		t.Errorf("second observer received %d events, want 1", got)
	}
	if got := first.Events()[0].Type; got != "test.event" {
		t.Errorf("first observer event type = %q, want %q", got, "test.event")
	}
}

func TestMulti_NilFiltering(t *testing.T) {
	capture := &captureObserver{}

	multi := observe.Multi(nil, capture, nil)
	multi.OnEvent(context.Background(), observe.Event{Type: "test.event"})

	if got := len(capture.Events()); got != 1 {
		t.Errorf("observer received %d events, want 1", got)
	}
}

func TestDiscard(t *testing.T) {
	observe.Discard.OnEvent(context.Background(), observe.Event{
		Type:   "test.event",
		Level:  slog.LevelError,
		Time:   time.Now(),
		Source: "test",
		Data:   map[string]any{"key": "value"},
	})
}

func TestMinLevel(t *testing.T) {
	tests := []struct {
		name      string
		min       slog.Level
		level     slog.Level
		forwarded bool
	}{
		{name: "below minimum dropped", min: slog.LevelInfo, level: slog.LevelDebug, forwarded: false},
		{name: "at minimum forwarded", min: slog.LevelInfo, level: slog.LevelInfo, forwarded: true},
		{name: "above minimum forwarded", min: slog.LevelInfo, level: slog.LevelError, forwarded: true},
		{name: "debug minimum forwards debug", min: slog.LevelDebug, level: slog.LevelDebug, forwarded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capture := &captureObserver{}
			obs := observe.MinLevel(capture, tt.min)

			obs.OnEvent(context.Background(), observe.Event{Type: "test.event", Level: tt.level})

			got := len(capture.Events()) == 1
			if got != tt.forwarded {
				t.Errorf("forwarded = %v, want %v", got, tt.forwarded)
			}
		})
	}
}
