package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/atomicstack/aerospace-switcher/internal/backend"
	"github.com/atomicstack/aerospace-switcher/internal/theme"
	"github.com/atomicstack/aerospace-switcher/internal/ui/command"
	uistate "github.com/atomicstack/aerospace-switcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	DefaultLoadTimeout  = 2 * time.Second
	DefaultFocusDelay   = 50 * time.Millisecond
	defaultPollInterval = 16 * time.Millisecond
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Zero values pick the defaults.
type Options struct {
	Width       int
	Height      int
	ShowFooter  bool
	LoadTimeout time.Duration
	FocusDelay  time.Duration
	Focuser     command.Focuser
}

// Model implements the Bubble Tea model for the window switcher.
type Model struct {
	level   *level
	windows *backend.Handoff[[]aerospace.Window]

	loading      bool
	loadStarted  time.Time
	loadTimeout  time.Duration
	pollInterval time.Duration
	now          func() time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	focusDelay     time.Duration
	pendingFocusID string
	focusedID      string
	quitting       bool

	keys              keyMap
	help              help.Model
	spinner           spinner.Model
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel builds the switcher in its Loading state. windows is the slot the
// background enumeration fills; a nil slot never delivers and the model falls
// back to an empty list once the load timeout passes.
func NewModel(windows *backend.Handoff[[]aerospace.Window], opts Options) *Model {
	m := &Model{
		level:        uistate.NewLevel(nil),
		windows:      windows,
		loading:      true,
		loadTimeout:  opts.LoadTimeout,
		pollInterval: defaultPollInterval,
		now:          time.Now,
		showFooter:   opts.ShowFooter,
		focusDelay:   opts.FocusDelay,
		keys:         defaultKeyMap(),
		bus:          command.New(opts.Focuser),
	}
	if m.loadTimeout <= 0 {
		m.loadTimeout = DefaultLoadTimeout
	}
	if m.focusDelay < 0 {
		m.focusDelay = 0
	}
	m.loadStarted = m.now()
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	s := spinner.New()
	s.Spinner = spinner.Dot
	if styles.Spinner != nil {
		s.Style = styles.Spinner.Copy()
	}
	m.spinner = s

	h := help.New()
	if styles.Footer != nil {
		h.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		h.Styles.ShortDesc = styles.Footer.Copy()
		h.Styles.ShortSeparator = styles.Footer.Copy()
	}
	m.help = h

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pollCmd(), m.spinner.Tick}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(pollMsg{}):           m.handlePollMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty && !m.quitting {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Loading reports whether the model is still waiting for the window list.
func (m *Model) Loading() bool {
	return m.loading
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// FocusedWindowID is the window handed to the focus request on commit, or
// empty when the switcher was cancelled.
func (m *Model) FocusedWindowID() string {
	return m.focusedID
}
