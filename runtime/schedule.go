package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-graph/state"
)

// coalescer posts a wake-up message at most once until reset.
type coalescer struct {
	post    func(Message) bool
	msg     Message
	pending atomic.Bool
}

func (c *coalescer) wake() {
	if c.post == nil {
		return
	}
	if c.pending.CompareAndSwap(false, true) && !c.post(c.msg) {
		c.pending.Store(false)
	}
}

func (c *coalescer) reset() {
	c.pending.Store(false)
}

// Invalidator requests render passes, coalescing repeated requests
// until the loop handles the pending InvalidateMsg.
type Invalidator struct {
	c coalescer
}

// NewInvalidator creates an invalidator that posts through post.
func NewInvalidator(post func(Message) bool) *Invalidator {
	return &Invalidator{c: coalescer{post: post, msg: InvalidateMsg{}}}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil {
		return
	}
	i.c.wake()
}

// Schedule runs fn now and requests a render pass.
// It lets the invalidator act as a state.Scheduler.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

func (i *Invalidator) resetPending() {
	if i != nil {
		i.c.reset()
	}
}

// QueueScheduler defers callbacks to a state queue and wakes the loop
// to flush it.
type QueueScheduler struct {
	queue *state.Queue
	c     coalescer
}

// NewQueueScheduler wires queue to post. A nil queue gets a fresh one.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{queue: queue, c: coalescer{post: post, msg: QueueFlushMsg{}}}
}

// Schedule enqueues fn and requests a flush.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	s.c.wake()
}

func (s *QueueScheduler) resetPending() {
	if s != nil {
		s.c.reset()
	}
}

// QueueFlushPolicy selects which messages flush the state queue.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes after every message.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage flushes after every message except ticks.
	FlushOnMessage
	// FlushOnTick flushes only on ticks.
	FlushOnTick
	// FlushManual flushes only on QueueFlushMsg.
	FlushManual
)

func (p QueueFlushPolicy) flushes(msg Message) bool {
	if _, ok := msg.(QueueFlushMsg); ok {
		return true
	}
	_, tick := msg.(TickMsg)
	switch p {
	case FlushManual:
		return false
	case FlushOnMessage:
		return !tick
	case FlushOnTick:
		return tick
	default:
		return true
	}
}

// WithQueue wraps update so queue is flushed according to policy.
// A nil update falls back to DefaultUpdate.
func WithQueue(queue *state.Queue, policy QueueFlushPolicy, update UpdateFunc) UpdateFunc {
	if update == nil {
		update = DefaultUpdate
	}
	return func(app *App, msg Message) bool {
		dirty := update(app, msg)
		if queue != nil && policy.flushes(msg) && queue.Flush() > 0 {
			dirty = true
		}
		return dirty
	}
}
