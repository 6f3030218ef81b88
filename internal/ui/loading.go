package ui

import (
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// pollMsg fires once per frame while the window list is outstanding.
type pollMsg struct {
	at time.Time
}

func (m *Model) pollCmd() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollMsg{at: t}
	})
}

// handlePollMsg checks the handoff slot once without blocking. Loading ends
// either with the delivered list or, after the timeout, with an empty one;
// Ready is terminal so no further polls are scheduled.
func (m *Model) handlePollMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(pollMsg); !ok || !m.loading {
		return nil
	}
	if m.windows != nil {
		if windows, ok := m.windows.Poll(); ok {
			m.becomeReady(windows, events.ReadyDelivered)
			return nil
		}
	}
	if m.now().Sub(m.loadStarted) > m.loadTimeout {
		m.becomeReady(nil, events.ReadyTimeout)
		return nil
	}
	return m.pollCmd()
}

func (m *Model) becomeReady(windows []aerospace.Window, reason events.ReadyReason) {
	m.loading = false
	m.level.SetWindows(windows)
	events.UI.Ready(reason, len(windows), m.now().Sub(m.loadStarted).Milliseconds())
	events.Filter.Rank(m.level.Query, len(m.level.Full), m.level.Len())
	m.syncViewport()
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.loading {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}
