package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/aerospace-switcher/internal/format/table"
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	promptGlyph       = "» "
	queryPlaceholder  = "(type to search)"
	rowIndicator      = "▌"
	columnSeparator   = " | "
	loadingText       = "Loading windows…"
	noWindowsText     = "(no windows)"
	listTopRow        = 2 // prompt + blank line
	footerReserveRows = 2 // blank line + help
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	promptText := m.filterPrompt()
	lines := []styledLine{{text: promptText, raw: true}, {}}
	lines = append(lines, m.listLines()...)
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.ShortHelpView(m.keys.ShortHelp()), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) listLines() []styledLine {
	current := m.level
	if m.loading {
		return []styledLine{{text: m.spinner.View() + " " + styles.Loading.Render(loadingText), raw: true}}
	}
	if current.Len() == 0 {
		msg := noWindowsText
		if len(current.Full) > 0 {
			msg = fmt.Sprintf("No matches for %q", current.Query)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	m.syncViewport()
	labels := m.rowLabels()
	start, end := m.visibleRange()
	lines := make([]styledLine, 0, end-start)
	for pos := start; pos < end; pos++ {
		lines = append(lines, m.buildItemLine(labels[pos], pos))
	}
	return lines
}

// rowLabels renders every ranked window as "name | info" with the name
// column padded, so rows do not shift sideways while scrolling.
func (m *Model) rowLabels() []string {
	rows := make([][]string, 0, m.level.Len())
	for pos := 0; pos < m.level.Len(); pos++ {
		w, _ := m.level.WindowAt(pos)
		rows = append(rows, []string{w.Name, w.Info})
	}
	return table.Format(rows, nil, columnSeparator)
}

// visibleRange returns the [start, end) window of ranked positions on screen.
func (m *Model) visibleRange() (int, int) {
	total := m.level.Len()
	start := m.level.ViewportOffset
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || total <= maxItems {
		return 0, total
	}
	if start < 0 {
		start = 0
	}
	if start+maxItems > total {
		start = total - maxItems
		m.level.ViewportOffset = start
	}
	return start, start + maxItems
}

func (m *Model) buildItemLine(label string, pos int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if pos == m.level.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := rowIndicator + " " + label
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the indicator
	}
}

// filterPrompt draws the query line with the blinking caret. The prompt is
// always focused; an empty query shows a placeholder behind the caret.
func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, promptGlyph)
	text := m.level.Query
	if text == "" {
		runes := []rune(queryPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.level.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

// handleMouseMsg commits on a left click over a visible row; the wheel moves
// the selection.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.quitting || m.loading {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.level.MovePrev)
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.level.MoveNext)
		return nil
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	pos, ok := m.rowAt(ev.Y)
	if !ok || !m.level.SelectRow(pos) {
		return nil
	}
	events.UI.Cursor(m.level.Cursor)
	return m.commit()
}

// rowAt maps a screen row to a ranked position.
func (m *Model) rowAt(y int) (int, bool) {
	idx := y - listTopRow
	if idx < 0 {
		return 0, false
	}
	start, end := m.visibleRange()
	if start+idx >= end {
		return 0, false
	}
	return start + idx, true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := listTopRow
	if m.showFooter {
		used += footerReserveRows
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText clips text to width display columns. ANSI sequences are kept
// intact so styled prompt and footer lines can be clipped too.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
