package command

import (
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
)

// Focuser launches a focus request without waiting for its outcome.
type Focuser interface {
	FocusDetached(windowID string, delay time.Duration) error
}

// Request encapsulates a focus invocation for a committed window.
type Request struct {
	ID    string
	Label string
	Delay time.Duration
}

// Bus submits focus requests on behalf of the UI.
type Bus struct {
	focuser Focuser
}

// New initialises a command bus instance. A nil focuser turns every request
// into a traced no-op.
func New(focuser Focuser) *Bus {
	return &Bus{focuser: focuser}
}

// Execute hands the request to the focuser while emitting trace logs. The
// request is fire-and-forget: failures are traced and never reach the caller.
func (b *Bus) Execute(req Request) {
	events.Command.Queue(req.ID, req.Label)
	if b == nil || b.focuser == nil {
		events.Command.Skip(req.ID, req.Label)
		return
	}
	err := b.focuser.FocusDetached(req.ID, req.Delay)
	events.Command.Result(req.ID, req.Label, err)
}
