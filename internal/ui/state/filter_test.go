package state

import (
	"reflect"
	"testing"
)

func TestSetQueryReranksAndResetsCursor(t *testing.T) {
	l := NewLevel(sampleWindows())
	l.Rerank()
	l.Cursor = 2

	if !l.SetQuery("e", 1) {
		t.Fatal("expected query change to be reported")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor reset to top result, got %d", l.Cursor)
	}
	if len(l.Ranked) == 0 {
		t.Fatal("expected matches for 'e'")
	}
}

// Every keystroke re-anchors the selection on the best match, even when the
// previously selected window is still in the result set.
func TestSetQueryResetsCursorEvenWhenSelectionSurvives(t *testing.T) {
	l := NewLevel(sampleWindows())
	l.SetQuery("r", 1)
	if l.Len() < 2 {
		t.Fatalf("expected several matches for 'r', got %v", l.Ranked)
	}
	l.Cursor = 1
	before, _ := l.Selected()

	l.SetQuery("", 0)
	stillPresent := false
	for _, idx := range l.Ranked {
		if l.Full[idx].ID == before.ID {
			stillPresent = true
		}
	}
	if !stillPresent {
		t.Fatalf("expected %s in the widened result set", before.ID)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0 after re-rank, got %d", l.Cursor)
	}
}

func TestSetQueryUnchangedTextKeepsCursor(t *testing.T) {
	l := NewLevel(sampleWindows())
	l.SetQuery("e", 1)
	if l.Len() < 2 {
		t.Fatalf("expected at least two matches, got %v", l.Ranked)
	}
	l.Cursor = 1
	if l.SetQuery("e", 0) {
		t.Fatal("expected no change to be reported")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor untouched, got %d", l.Cursor)
	}
	if l.QueryCursor != 0 {
		t.Fatalf("expected query cursor moved, got %d", l.QueryCursor)
	}
}

func TestInsertAndDeleteQueryText(t *testing.T) {
	l := NewLevel(sampleWindows())

	if !l.InsertQueryText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if l.Query != "ab" || l.QueryCursor != 2 {
		t.Fatalf("unexpected query state %q/%d", l.Query, l.QueryCursor)
	}

	l.QueryCursor = 1
	if !l.InsertQueryText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if l.Query != "azb" || l.QueryCursor != 2 {
		t.Fatalf("expected insert into middle, got %q/%d", l.Query, l.QueryCursor)
	}

	if !l.DeleteQueryRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if l.Query != "ab" || l.QueryCursor != 1 {
		t.Fatalf("unexpected query state after delete %q/%d", l.Query, l.QueryCursor)
	}

	l.SetQuery("abc def", len("abc def"))
	if !l.DeleteQueryWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if l.Query != "abc " {
		t.Fatalf("expected trailing word removed, got %q", l.Query)
	}

	l.SetQuery("abc", 0)
	if l.DeleteQueryRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}

	if !l.ClearQuery() || l.Query != "" {
		t.Fatalf("expected query cleared, got %q", l.Query)
	}
	if !reflect.DeepEqual(l.Ranked, []int{0, 1, 2}) {
		t.Fatalf("expected identity ranking after clear, got %v", l.Ranked)
	}
	if l.ClearQuery() {
		t.Fatal("expected clearing an empty query to report no change")
	}
}

func TestQueryCursorNavigation(t *testing.T) {
	l := NewLevel(nil)
	l.SetQuery("one two", len("one two"))

	if !l.MoveQueryCursorWordBackward() || l.QueryCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", l.QueryCursor)
	}
	if !l.MoveQueryCursorWordForward() || l.QueryCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", l.QueryCursor)
	}
	if !l.MoveQueryCursorRuneBackward() || l.QueryCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", l.QueryCursor)
	}
	if !l.MoveQueryCursorRuneForward() || l.QueryCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", l.QueryCursor)
	}
	if !l.MoveQueryCursorStart() || l.QueryCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.QueryCursor)
	}
	if !l.MoveQueryCursorEnd() {
		t.Fatal("expected move back to end")
	}
	if l.MoveQueryCursorEnd() {
		t.Fatal("expected no movement when already at end")
	}
}

func TestSetWindowsRanksWithCurrentQuery(t *testing.T) {
	l := NewLevel(nil)
	l.SetQuery("term", 4)
	if l.Len() != 0 {
		t.Fatalf("expected no matches before windows arrive, got %v", l.Ranked)
	}
	l.SetWindows(sampleWindows())
	if !reflect.DeepEqual(l.Ranked, []int{0}) || !l.HasCursor || l.Cursor != 0 {
		t.Fatalf("unexpected state after delivery: ranked=%v cursor=%d has=%v", l.Ranked, l.Cursor, l.HasCursor)
	}
}
