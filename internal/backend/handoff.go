package backend

import "sync"

// Handoff passes a single value from a producer goroutine to the UI loop. The
// value is written at most once and read at most once; the reader never blocks.
type Handoff[T any] struct {
	ch   chan T
	once sync.Once
}

// NewHandoff returns an empty slot.
func NewHandoff[T any]() *Handoff[T] {
	return &Handoff[T]{ch: make(chan T, 1)}
}

// Deliver stores v. Only the first call has any effect; it reports whether v
// was stored.
func (h *Handoff[T]) Deliver(v T) bool {
	delivered := false
	h.once.Do(func() {
		h.ch <- v
		delivered = true
	})
	return delivered
}

// Poll takes the delivered value if one is waiting. After a successful Poll
// every later call reports false.
func (h *Handoff[T]) Poll() (T, bool) {
	select {
	case v := <-h.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
