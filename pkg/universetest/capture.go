package universetest

import (
	"sync"

	"github.com/go-drift/universe/pkg/universe"
)

// CaptureCore wraps another Core. While capturing is enabled, dispatched
// messages are recorded instead of applied, so tests can assert on
// message traffic without state changing underneath them. Safe for
// concurrent use.
type CaptureCore[M any] struct {
	mu        sync.Mutex
	inner     universe.Core[M]
	capturing bool
	captured  []M
}

// NewCaptureCore wraps inner with capturing disabled, so messages pass
// through until SetCapture(true).
func NewCaptureCore[M any](inner universe.Core[M]) *CaptureCore[M] {
	return &CaptureCore[M]{inner: inner}
}

// HandleMessage records msg when capturing, otherwise forwards it to the
// wrapped core.
func (c *CaptureCore[M]) HandleMessage(msg M) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capturing {
		c.captured = append(c.captured, msg)
		return
	}
	c.inner.HandleMessage(msg)
}

// SetCapture turns capturing on or off. Already-captured messages are
// kept either way.
func (c *CaptureCore[M]) SetCapture(capture bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capturing = capture
}

// Messages returns a copy of the captured messages in dispatch order.
func (c *CaptureCore[M]) Messages() []M {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]M(nil), c.captured...)
}

// Reset discards the captured messages.
func (c *CaptureCore[M]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captured = nil
}
