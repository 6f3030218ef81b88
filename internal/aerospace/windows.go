package aerospace

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/logging"
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
)

// Window is one row of list-windows output.
type Window struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Info string `yaml:"info" json:"info"`
}

// Label is the text shown for the window in lists.
func (w Window) Label() string {
	return w.Name + " | " + w.Info
}

const fieldSeparator = "|"

var listWindowsArgs = []string{"list-windows", "--all"}

// ListWindows enumerates every window known to the window manager. Launch
// failures and non-zero exits are returned as errors; a non-zero exit wraps
// ErrCommandFailed.
func (c *Client) ListWindows(ctx context.Context) ([]Window, error) {
	events.Source.Fetch(c.binary, listWindowsArgs)
	started := time.Now()
	out, err := c.run(ctx, listWindowsArgs...)
	if err != nil {
		return nil, err
	}
	windows, lines := parseWindows(bytes.NewReader(out))
	events.Source.Parsed(lines, len(windows), time.Since(started))
	return windows, nil
}

// FetchWindows is ListWindows for callers that cannot act on a failure: the
// error is logged and an empty list is returned. Having no windows is a valid
// outcome, so the caller keeps working either way.
func (c *Client) FetchWindows(ctx context.Context) []Window {
	windows, err := c.ListWindows(ctx)
	if err == nil {
		return windows
	}
	var cmdErr *CommandError
	stderr := ""
	if errors.As(err, &cmdErr) {
		stderr = cmdErr.Stderr
	}
	events.Source.Failed(err, stderr)
	logging.Error(err, "binary", c.binary)
	return nil
}

// ParseWindows reads list-windows output. Blank lines and lines with fewer
// than three fields are dropped; anything after the second separator belongs
// to Info.
func ParseWindows(r io.Reader) []Window {
	windows, _ := parseWindows(r)
	return windows
}

func parseWindows(r io.Reader) ([]Window, int) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var windows []Window
	lines := 0
	for scanner.Scan() {
		lines++
		if w, ok := parseLine(scanner.Text()); ok {
			windows = append(windows, w)
		}
	}
	return windows, lines
}

func parseLine(line string) (Window, bool) {
	if strings.TrimSpace(line) == "" {
		return Window{}, false
	}
	parts := strings.SplitN(line, fieldSeparator, 3)
	if len(parts) < 3 {
		return Window{}, false
	}
	return Window{
		ID:   strings.TrimSpace(parts[0]),
		Name: strings.TrimSpace(parts[1]),
		Info: strings.TrimSpace(parts[2]),
	}, true
}
