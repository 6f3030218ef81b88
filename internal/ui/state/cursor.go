package state

// MoveNext advances the cursor one row, wrapping from the last row to the
// first. It reports false when there is nothing to select.
func (l *Level) MoveNext() bool {
	n := len(l.Ranked)
	if n == 0 {
		return false
	}
	l.normalizeCursor()
	l.Cursor = (l.Cursor + 1) % n
	return true
}

// MovePrev retreats the cursor one row, wrapping from the first row to the last.
func (l *Level) MovePrev() bool {
	n := len(l.Ranked)
	if n == 0 {
		return false
	}
	l.normalizeCursor()
	l.Cursor = (l.Cursor - 1 + n) % n
	return true
}

// SelectRow moves the cursor to a ranked position, as when a row is clicked.
func (l *Level) SelectRow(pos int) bool {
	if pos < 0 || pos >= len(l.Ranked) {
		return false
	}
	l.Cursor = pos
	l.HasCursor = true
	return true
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Ranked) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.normalizeCursor()
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Ranked)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.normalizeCursor()
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) normalizeCursor() {
	l.HasCursor = true
	if l.Cursor < 0 || l.Cursor >= len(l.Ranked) {
		l.Cursor = 0
	}
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Ranked) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.normalizeCursor()
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Ranked) {
		l.Cursor = len(l.Ranked) - 1
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Ranked)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Ranked) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Ranked) {
		l.Cursor = len(l.Ranked) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Ranked) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
