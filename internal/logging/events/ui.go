package events

import "github.com/atomicstack/aerospace-switcher/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type ReadyReason string

const (
	ReadyDelivered ReadyReason = "delivered"
	ReadyTimeout   ReadyReason = "timeout"
)

type QuitReason string

const (
	QuitCancel QuitReason = "cancel"
	QuitCommit QuitReason = "commit"
)

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Ready(reason ReadyReason, windows int, waited int64) {
	logging.Trace("ui.ready", map[string]interface{}{
		"reason":    string(reason),
		"windows":   windows,
		"waited_ms": waited,
	})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Commit(windowID, label, query string) {
	logging.Trace("ui.commit", map[string]interface{}{
		"window": windowID,
		"label":  label,
		"query":  query,
	})
}

func (UITracer) Quit(reason QuitReason) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": string(reason)})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Rank(query string, total, matches int) {
	logging.Trace("filter.rank", map[string]interface{}{
		"query":   query,
		"total":   total,
		"matches": matches,
	})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
