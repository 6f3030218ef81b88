package state

import "github.com/atomicstack/aerospace-switcher/internal/aerospace"

// Level holds everything the switcher needs to draw and navigate the list:
// the full window snapshot, the query, the ranked view over the snapshot, and
// the cursor into that ranked view.
type Level struct {
	Full           []aerospace.Window
	Ranked         []int
	Query          string
	QueryCursor    int
	Cursor         int
	HasCursor      bool
	ViewportOffset int
}

// NewLevel constructs a Level over windows. No ranking pass has run yet, so
// the cursor is unset until Rerank (or a query edit) happens.
func NewLevel(windows []aerospace.Window) *Level {
	return &Level{Full: windows}
}

// SetWindows replaces the snapshot wholesale and ranks it with the current query.
func (l *Level) SetWindows(windows []aerospace.Window) {
	l.Full = windows
	l.Rerank()
}

// Rerank recomputes Ranked for the current query. The cursor always returns
// to the top result, even if the previously selected window is still listed.
func (l *Level) Rerank() {
	l.Ranked = Rank(l.Full, l.Query)
	l.Cursor = 0
	l.HasCursor = true
	l.ViewportOffset = 0
}

// Len is the number of ranked rows.
func (l *Level) Len() int {
	return len(l.Ranked)
}

// WindowAt resolves a ranked position to its window.
func (l *Level) WindowAt(pos int) (aerospace.Window, bool) {
	if pos < 0 || pos >= len(l.Ranked) {
		return aerospace.Window{}, false
	}
	idx := l.Ranked[pos]
	if idx < 0 || idx >= len(l.Full) {
		return aerospace.Window{}, false
	}
	return l.Full[idx], true
}

// Selected resolves the cursor through Ranked to a window.
func (l *Level) Selected() (aerospace.Window, bool) {
	if !l.HasCursor {
		return aerospace.Window{}, false
	}
	return l.WindowAt(l.Cursor)
}
