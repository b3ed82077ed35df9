package universe

import "sync"

// Queue dispatches messages to a Universe from a dedicated goroutine, for
// producers that must not block on mutation or notification. Messages
// posted from one goroutine are dispatched in post order; posts from
// different goroutines are serialized in arrival order. Subscriber
// callbacks for queued messages run on the queue goroutine.
type Queue[S Core[M], M any] struct {
	universe *Universe[S, M]
	msgs     chan M
	quit     chan struct{}
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
	once   sync.Once
}

// NewQueue creates a Queue for u and starts its dispatch goroutine.
// Up to buffer messages may be pending before Post blocks.
func NewQueue[S Core[M], M any](u *Universe[S, M], buffer int) *Queue[S, M] {
	if buffer < 0 {
		buffer = 0
	}
	q := &Queue[S, M]{
		universe: u,
		msgs:     make(chan M, buffer),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go q.loop()
	return q
}

// Post enqueues msg for background dispatch, blocking while the buffer is
// full. It reports whether the message was accepted; after Close it
// returns false without enqueueing.
func (q *Queue[S, M]) Post(msg M) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	q.msgs <- msg
	return true
}

// Close stops intake, dispatches every already-accepted message, and then
// returns. It is idempotent and safe to call from multiple goroutines;
// every call blocks until the drain is finished.
func (q *Queue[S, M]) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.quit)
	})
	<-q.done
}

func (q *Queue[S, M]) loop() {
	defer close(q.done)
	for {
		select {
		case msg := <-q.msgs:
			q.universe.Dispatch(msg)
		case <-q.quit:
			// Intake is closed; drain what was accepted.
			for {
				select {
				case msg := <-q.msgs:
					q.universe.Dispatch(msg)
				default:
					return
				}
			}
		}
	}
}
