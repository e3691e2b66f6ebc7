package dropper

import "sync"

// Coalescer is a single-slot mailbox that keeps only the latest offered value.
// Producers may Offer from any goroutine; the owner drains it with Take once per
// tick. A value replaced before it was taken is counted as dropped.
type Coalescer[T any] struct {
	mu      sync.Mutex
	pending T
	full    bool
	dropped uint64
}

// Offer stores v, replacing any value not yet taken.
func (c *Coalescer[T]) Offer(v T) {
	c.mu.Lock()
	if c.full {
		c.dropped++
	}
	c.pending = v
	c.full = true
	c.mu.Unlock()
}

// Take removes and returns the pending value, if any.
func (c *Coalescer[T]) Take() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.pending, c.full
	var zero T
	c.pending = zero
	c.full = false
	return v, ok
}

// Dropped returns how many offered values were superseded before being taken.
func (c *Coalescer[T]) Dropped() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}
