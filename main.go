package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/aerospace-switcher/internal/app"
	"github.com/atomicstack/aerospace-switcher/internal/config"
	"github.com/atomicstack/aerospace-switcher/internal/logging"
	"github.com/atomicstack/aerospace-switcher/internal/logging/events"
	"github.com/atomicstack/aerospace-switcher/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	exitRuntime = 1
	exitConfig  = 2
)

// configError marks failures that exit with the configuration status code.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// runPopup and listWindows are swapped in tests.
var (
	runPopup    = app.Run
	listWindows = app.ListWindows
)

func main() {
	root := newRootCommand(os.Args[1:], os.Environ(), os.Stdout)
	if err := root.Execute(); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(exitConfig)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitRuntime)
	}
}

func newRootCommand(args, environ []string, stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "aerospace-switcher",
		Short:         "Fuzzy-find and focus an AeroSpace window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd, args, environ)
			if err != nil {
				return err
			}
			if err := runPopup(cfg.App); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().AddFlagSet(config.NewFlagSet())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the windows reported by aerospace list-windows --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(mustString(cmd, "format"))
			if err != nil {
				return configError{err}
			}
			cfg, err := setup(cmd, args, environ)
			if err != nil {
				return err
			}
			windows, err := listWindows(cmd.Context(), cfg.App)
			if err != nil {
				logging.Error(err)
				return err
			}
			return output.WriteWindows(stdout, format, windows)
		},
	}
	list.Flags().String("format", string(output.FormatText), "output format: yaml, json, or text")
	root.AddCommand(list)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetContext(context.Background())
	return root
}

// setup resolves configuration from the parsed command flags and prepares
// logging before anything else runs.
func setup(cmd *cobra.Command, args, environ []string) (config.Config, error) {
	cfg, err := config.FromFlags(cmd.Flags(), environ)
	if err != nil {
		return config.Config{}, configError{err}
	}
	cfg.Args = append([]string(nil), args...)
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, configError{err}
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	return cfg, nil
}

func mustString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
