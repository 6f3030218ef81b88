// Package aerospace talks to the AeroSpace window manager through its
// command-line tool. Only two commands are used: list-windows to enumerate
// every managed window and focus to raise one of them.
package aerospace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the command looked up on PATH when no binary is configured.
const DefaultBinary = "aerospace"

// ErrCommandFailed is wrapped by every error describing a non-zero exit.
var ErrCommandFailed = errors.New("aerospace command failed")

// CommandError describes a command that started but exited unsuccessfully.
type CommandError struct {
	Binary   string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s exited with status %d", e.Binary, strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// Client invokes the aerospace binary.
type Client struct {
	binary string
}

// NewClient returns a client for the given binary, falling back to
// DefaultBinary when it is blank.
func NewClient(binary string) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary}
}

// Binary reports the command the client runs.
func (c *Client) Binary() string {
	return c.binary
}

// runCommand executes a command to completion and returns stdout and stderr
// separately. Tests replace it to avoid spawning processes.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	stdout, stderr, err := runCommand(ctx, c.binary, args...)
	if err == nil {
		return stdout, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &CommandError{
			Binary:   c.binary,
			Args:     append([]string(nil), args...),
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(string(stderr)),
		}
	}
	return nil, fmt.Errorf("run %s: %w", c.binary, err)
}
