package backend

import (
	"context"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
)

// WindowLister is the part of the aerospace client the loader needs.
type WindowLister interface {
	FetchWindows(ctx context.Context) []aerospace.Window
}

// Fetch runs fn once on its own goroutine and returns the slot it fills. There
// is no cancellation: if nobody polls the slot any more, the result is dropped.
func Fetch[T any](ctx context.Context, fn func(context.Context) T) *Handoff[T] {
	slot := NewHandoff[T]()
	go func() {
		slot.Deliver(fn(ctx))
	}()
	return slot
}

// LoadWindows starts the one background enumeration performed at startup.
func LoadWindows(ctx context.Context, lister WindowLister) *Handoff[[]aerospace.Window] {
	return Fetch(ctx, func(ctx context.Context) []aerospace.Window {
		windows := lister.FetchWindows(ctx)
		events.Source.Delivered(len(windows))
		return windows
	})
}
