package events

import (
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/logging"
)

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Fetch(binary string, args []string) {
	logging.Trace("source.fetch", map[string]interface{}{"binary": binary, "args": args})
}

func (SourceTracer) Failed(err error, stderr string) {
	payload := map[string]interface{}{"stderr": stderr}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.failed", payload)
}

func (SourceTracer) Parsed(lines, windows int, took time.Duration) {
	logging.Trace("source.parsed", map[string]interface{}{
		"lines":   lines,
		"windows": windows,
		"took_ms": took.Milliseconds(),
	})
}

func (SourceTracer) Delivered(windows int) {
	logging.Trace("source.delivered", map[string]interface{}{"windows": windows})
}
