package aerospace

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
)

// ErrEmptyWindowID is returned when asked to focus a blank identifier.
var ErrEmptyWindowID = errors.New("empty window id")

// startDetached launches cmd without waiting for it. Tests replace it.
var startDetached = func(cmd *exec.Cmd) error {
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// FocusDetached asks the window manager to focus windowID and returns as soon
// as the request is launched. The command runs in its own process group after
// delay so that it survives the popup exiting and runs once the popup's
// terminal has given up focus. Its outcome is never observed.
func (c *Client) FocusDetached(windowID string, delay time.Duration) error {
	id := strings.TrimSpace(windowID)
	if id == "" {
		return ErrEmptyWindowID
	}
	events.Focus.Spawn(c.binary, id, delay)
	if err := startDetached(focusCommand(c.binary, id, delay)); err != nil {
		events.Focus.Failed(id, err)
		return fmt.Errorf("start focus for window %s: %w", id, err)
	}
	return nil
}

func focusCommand(binary, id string, delay time.Duration) *exec.Cmd {
	if delay <= 0 {
		return exec.Command(binary, "focus", "--window-id", id)
	}
	// binary and id are passed as positional parameters, never spliced into
	// the script text.
	script := fmt.Sprintf(`sleep %s; exec "$0" focus --window-id "$1"`, seconds(delay))
	return exec.Command("sh", "-c", script, binary, id)
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
