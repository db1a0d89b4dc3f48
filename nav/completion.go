package nav

import (
	"sync"

	"github.com/google/uuid"
)

// Completion is a single-shot result channel carried inside a context
// payload. The screen that produced the result delivers it; the code that
// started the trip receives it. Delivery happens at most once, and never
// after Cancel.
type Completion[T any] struct {
	mu        sync.Mutex
	id        uuid.UUID
	fn        func(T)
	delivered bool
	cancelled bool
}

func NewCompletion[T any](fn func(T)) *Completion[T] {
	return &Completion[T]{id: uuid.New(), fn: fn}
}

func (c *Completion[T]) ID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.id
}

// Deliver hands v to the receiver. It reports false when the completion is
// nil, already delivered or cancelled; in that case nothing is called.
func (c *Completion[T]) Deliver(v T) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	if c.delivered || c.cancelled || c.fn == nil {
		c.mu.Unlock()
		return false
	}
	c.delivered = true
	fn := c.fn
	c.fn = nil
	c.mu.Unlock()

	fn(v)
	return true
}

// Cancel drops the receiver. Used when the producing screen goes away
// before it had a result.
func (c *Completion[T]) Cancel() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.delivered {
		c.cancelled = true
	}
	c.fn = nil
}

// Pending reports whether a Deliver call would still reach the receiver.
func (c *Completion[T]) Pending() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.delivered && !c.cancelled && c.fn != nil
}
