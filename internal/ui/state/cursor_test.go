package state

import (
	"testing"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
)

func newTestLevel(names ...string) *Level {
	windows := make([]aerospace.Window, len(names))
	for i, name := range names {
		windows[i] = aerospace.Window{ID: name, Name: name}
	}
	l := NewLevel(windows)
	l.Rerank()
	return l
}

func TestMoveNextAndPrevWrap(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveNext() || l.Cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", l.Cursor)
	}
	if !l.MovePrev() || l.Cursor != 2 {
		t.Fatalf("expected wrap to 2, got %d", l.Cursor)
	}
}

func TestMoveNextKTimesReturnsToStart(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	for start := 0; start < l.Len(); start++ {
		l.Cursor = start
		for i := 0; i < l.Len(); i++ {
			l.MoveNext()
		}
		if l.Cursor != start {
			t.Fatalf("next: expected %d, got %d", start, l.Cursor)
		}
		for i := 0; i < l.Len(); i++ {
			l.MovePrev()
		}
		if l.Cursor != start {
			t.Fatalf("prev: expected %d, got %d", start, l.Cursor)
		}
	}
}

func TestNavigationOnEmptyLevel(t *testing.T) {
	l := newTestLevel()
	if l.MoveNext() || l.MovePrev() {
		t.Fatal("expected navigation to be a no-op")
	}
	if _, ok := l.Selected(); ok {
		t.Fatal("expected no selection on empty level")
	}
	unranked := NewLevel(nil)
	if unranked.MoveNext() || unranked.HasCursor {
		t.Fatal("expected unranked empty level to stay without cursor")
	}
}

func TestSelectedBeforeFirstRank(t *testing.T) {
	l := NewLevel([]aerospace.Window{{ID: "1", Name: "Terminal"}})
	if l.HasCursor {
		t.Fatal("expected no cursor before ranking")
	}
	if _, ok := l.Selected(); ok {
		t.Fatal("expected unresolved selection before ranking")
	}
}

func TestSelectedResolvesThroughRanked(t *testing.T) {
	l := NewLevel(sampleWindows())
	l.Ranked = []int{2}
	l.Cursor = 0
	l.HasCursor = true
	w, ok := l.Selected()
	if !ok || w.ID != "3" {
		t.Fatalf("expected window 3, got %#v (ok=%v)", w, ok)
	}
}

func TestSelectRow(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.SelectRow(1) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.SelectRow(3) || l.SelectRow(-1) {
		t.Fatal("expected out of range rows to be rejected")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor unchanged, got %d", l.Cursor)
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}
