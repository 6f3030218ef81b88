package ui

import (
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
	"github.com/atomicstack/aerospace-switcher/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m.cancel()
	case key.Matches(keyMsg, m.keys.Commit):
		return m.commit()
	case key.Matches(keyMsg, m.keys.Next):
		m.moveCursor(m.level.MoveNext)
	case key.Matches(keyMsg, m.keys.Prev):
		m.moveCursor(m.level.MovePrev)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.level.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.level.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.level.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.level.MoveCursorEnd)
	default:
		m.handleTextInput(keyMsg)
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.UI.Cursor(m.level.Cursor)
	}
	m.syncViewport()
}

// commit resolves the selected row and submits the focus request. With
// nothing selected (still loading, or no matches) it does nothing.
func (m *Model) commit() tea.Cmd {
	w, ok := m.level.Selected()
	if !ok {
		return nil
	}
	m.pendingFocusID = w.ID
	events.UI.Commit(w.ID, w.Label(), m.level.Query)
	m.submitFocus(w.Label())
	return m.quit(events.QuitCommit)
}

// submitFocus consumes pendingFocusID. Only the exit trace still sees the id,
// through focusedID.
func (m *Model) submitFocus(label string) {
	id := m.pendingFocusID
	m.pendingFocusID = ""
	if id == "" {
		return
	}
	m.focusedID = id
	m.bus.Execute(command.Request{ID: id, Label: label, Delay: m.focusDelay})
}

func (m *Model) cancel() tea.Cmd {
	m.pendingFocusID = ""
	m.focusedID = ""
	return m.quit(events.QuitCancel)
}

func (m *Model) quit(reason events.QuitReason) tea.Cmd {
	m.quitting = true
	events.UI.Quit(reason)
	return tea.Quit
}

func (m *Model) syncViewport() {
	m.level.EnsureCursorVisible(m.maxVisibleItems())
}
