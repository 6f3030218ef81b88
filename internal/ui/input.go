package ui

import (
	"unicode"

	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.level.QueryCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies query edits and caret motion. Editing is allowed
// while the list is still loading; the ranking then runs over no windows.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.level
	switch msg.String() {
	case "ctrl+u":
		before := current.QueryCursorPos()
		if !current.ClearQuery() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		m.afterQueryChange()
		return true
	case "ctrl+w":
		before := current.QueryCursorPos()
		if !current.DeleteQueryWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(current.Query)
		m.afterQueryChange()
		return true
	case "ctrl+a":
		return m.moveQueryCursor(current.MoveQueryCursorStart, false)
	case "ctrl+e":
		return m.moveQueryCursor(current.MoveQueryCursorEnd, false)
	case "alt+b":
		return m.moveQueryCursor(current.MoveQueryCursorWordBackward, true)
	case "alt+f":
		return m.moveQueryCursor(current.MoveQueryCursorWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.moveQueryCursor(current.MoveQueryCursorRuneBackward, false)
	case tea.KeyRight:
		return m.moveQueryCursor(current.MoveQueryCursorRuneForward, false)
	}
	return false
}

func (m *Model) moveQueryCursor(move func() bool, word bool) bool {
	before := m.level.QueryCursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(before)
	if word {
		events.Filter.CursorWord(m.level.QueryCursor)
	} else {
		events.Filter.Cursor(m.level.QueryCursor)
	}
	return true
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	before := m.level.QueryCursorPos()
	if !m.level.InsertQueryText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(m.level.Query)
	m.afterQueryChange()
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.level.QueryCursorPos()
	if !m.level.DeleteQueryRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Backspace(m.level.Query)
	m.afterQueryChange()
	return true
}

func (m *Model) afterQueryChange() {
	events.Filter.Rank(m.level.Query, len(m.level.Full), m.level.Len())
	m.syncViewport()
}
