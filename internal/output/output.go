// Package output renders the window list for the non-interactive list
// command.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/atomicstack/aerospace-switcher/internal/format/table"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat resolves a --format value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml, json, or text)", value)
	}
}

// WriteWindows serializes windows to w in the given format.
func WriteWindows(w io.Writer, format Format, windows []aerospace.Window) error {
	if windows == nil {
		windows = []aerospace.Window{}
	}
	switch format {
	case FormatYAML:
		return writeYAML(w, windows)
	case FormatJSON:
		return writeJSON(w, windows)
	case FormatText:
		return writeText(w, windows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func writeText(w io.Writer, windows []aerospace.Window) error {
	rows := make([][]string, 0, len(windows))
	for _, win := range windows {
		rows = append(rows, []string{win.ID, win.Name, win.Info})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight}, "  ") {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
