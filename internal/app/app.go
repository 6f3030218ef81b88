package app

import (
	"context"
	"errors"
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/atomicstack/aerospace-switcher/internal/backend"
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
	"github.com/atomicstack/aerospace-switcher/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Binary      string
	Width       int
	Height      int
	ShowFooter  bool
	LoadTimeout time.Duration
	FocusDelay  time.Duration
}

// runProgram is swapped in tests so Run can be exercised without a terminal.
var runProgram = func(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return program.Run()
}

// Run bootstraps and executes the Bubble Tea program. The window list is
// fetched in the background while the popup is already drawn.
func Run(cfg Config) error {
	client := aerospace.NewClient(cfg.Binary)
	windows := backend.LoadWindows(context.Background(), client)
	model := ui.NewModel(windows, ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		LoadTimeout: cfg.LoadTimeout,
		FocusDelay:  cfg.FocusDelay,
		Focuser:     client,
	})
	final, err := runProgram(model)
	focused := ""
	if m, ok := final.(*ui.Model); ok {
		focused = m.FocusedWindowID()
	}
	events.App.Exit(focused, err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ListWindows runs the enumeration synchronously and reports failures, for
// the non-interactive list command.
func ListWindows(ctx context.Context, cfg Config) ([]aerospace.Window, error) {
	return aerospace.NewClient(cfg.Binary).ListWindows(ctx)
}
