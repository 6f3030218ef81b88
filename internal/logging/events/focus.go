package events

import (
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/logging"
)

type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Spawn(binary, windowID string, delay time.Duration) {
	logging.Trace("focus.spawn", map[string]interface{}{
		"binary":   binary,
		"window":   windowID,
		"delay_ms": delay.Milliseconds(),
	})
}

func (FocusTracer) Failed(windowID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("focus.failed", map[string]interface{}{"window": windowID, "error": err.Error()})
}
