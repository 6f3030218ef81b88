package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/atomicstack/aerospace-switcher/internal/app"
	"github.com/atomicstack/aerospace-switcher/internal/ui"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	flagBinary      = "binary"
	flagFocusDelay  = "focus-delay"
	flagLoadTimeout = "load-timeout"
	flagWidth       = "width"
	flagHeight      = "height"
	flagFooter      = "footer"
	flagTrace       = "trace"
	flagLogFile     = "log-file"
	flagConfig      = "config"
)

const (
	envBinary      = "AEROSPACE_SWITCHER_BINARY"
	envFocusDelay  = "AEROSPACE_SWITCHER_FOCUS_DELAY"
	envLoadTimeout = "AEROSPACE_SWITCHER_LOAD_TIMEOUT"
	envWidth       = "AEROSPACE_SWITCHER_WIDTH"
	envHeight      = "AEROSPACE_SWITCHER_HEIGHT"
	envShowFooter  = "AEROSPACE_SWITCHER_FOOTER"
	envTrace       = "AEROSPACE_SWITCHER_TRACE"
	envLogFile     = "AEROSPACE_SWITCHER_LOG_FILE"
	envConfig      = "AEROSPACE_SWITCHER_CONFIG"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish keys
// that are absent from keys set to their zero value.
type fileConfig struct {
	Binary      *string `yaml:"binary"`
	FocusDelay  *string `yaml:"focus-delay"`
	LoadTimeout *string `yaml:"load-timeout"`
	Width       *int    `yaml:"width"`
	Height      *int    `yaml:"height"`
	Footer      *bool   `yaml:"footer"`
	Trace       *bool   `yaml:"trace"`
	LogFile     *string `yaml:"log-file"`
}

// NewFlagSet defines every option with its built-in default. The CLI adds it
// to the root command's persistent flags.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("aerospace-switcher", pflag.ContinueOnError)
	fs.String(flagBinary, aerospace.DefaultBinary, "aerospace binary to run")
	fs.Duration(flagFocusDelay, ui.DefaultFocusDelay, "grace period before the focus command runs")
	fs.Duration(flagLoadTimeout, ui.DefaultLoadTimeout, "how long to wait for the window list before showing an empty one")
	fs.Int(flagWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(flagHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(flagFooter, false, "show the key help footer")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, "", "path to the log file")
	fs.String(flagConfig, "", "path to a YAML config file")
	return fs
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := NewFlagSet()
	fs.SetOutput(new(strings.Builder))
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration from a parsed flag set. Values are layered
// as defaults, then the config file, then the environment, then flags the
// user actually passed.
func FromFlags(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)

	binary, _ := fs.GetString(flagBinary)
	focusDelay, _ := fs.GetDuration(flagFocusDelay)
	loadTimeout, _ := fs.GetDuration(flagLoadTimeout)
	width, _ := fs.GetInt(flagWidth)
	height, _ := fs.GetInt(flagHeight)
	footer, _ := fs.GetBool(flagFooter)
	trace, _ := fs.GetBool(flagTrace)
	logFile, _ := fs.GetString(flagLogFile)

	configPath, _ := fs.GetString(flagConfig)
	if !fs.Changed(flagConfig) {
		configPath = envOrDefault(env, envConfig, configPath)
	}
	if configPath != "" {
		file, err := readFile(configPath)
		if err != nil {
			return Config{}, err
		}
		if !fs.Changed(flagBinary) && file.Binary != nil {
			binary = *file.Binary
		}
		if !fs.Changed(flagWidth) && file.Width != nil {
			width = *file.Width
		}
		if !fs.Changed(flagHeight) && file.Height != nil {
			height = *file.Height
		}
		if !fs.Changed(flagFooter) && file.Footer != nil {
			footer = *file.Footer
		}
		if !fs.Changed(flagTrace) && file.Trace != nil {
			trace = *file.Trace
		}
		if !fs.Changed(flagLogFile) && file.LogFile != nil {
			logFile = *file.LogFile
		}
		if !fs.Changed(flagFocusDelay) && file.FocusDelay != nil {
			if focusDelay, err = time.ParseDuration(*file.FocusDelay); err != nil {
				return Config{}, fmt.Errorf("config %s: %s: %w", configPath, flagFocusDelay, err)
			}
		}
		if !fs.Changed(flagLoadTimeout) && file.LoadTimeout != nil {
			if loadTimeout, err = time.ParseDuration(*file.LoadTimeout); err != nil {
				return Config{}, fmt.Errorf("config %s: %s: %w", configPath, flagLoadTimeout, err)
			}
		}
	}

	if !fs.Changed(flagBinary) {
		binary = envOrDefault(env, envBinary, binary)
	}
	if !fs.Changed(flagFocusDelay) {
		focusDelay = envOrDuration(env, envFocusDelay, focusDelay)
	}
	if !fs.Changed(flagLoadTimeout) {
		loadTimeout = envOrDuration(env, envLoadTimeout, loadTimeout)
	}
	if !fs.Changed(flagWidth) {
		width = envOrInt(env, envWidth, width)
	}
	if !fs.Changed(flagHeight) {
		height = envOrInt(env, envHeight, height)
	}
	if !fs.Changed(flagFooter) {
		footer = envOrBool(env, envShowFooter, footer)
	}
	if !fs.Changed(flagTrace) {
		trace = envOrBool(env, envTrace, trace)
	}
	if !fs.Changed(flagLogFile) {
		logFile = envOrDefault(env, envLogFile, logFile)
	}

	cfg := Config{
		App: app.Config{
			Binary:      binary,
			Width:       width,
			Height:      height,
			ShowFooter:  footer,
			LoadTimeout: loadTimeout,
			FocusDelay:  focusDelay,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			flagBinary:      binary,
			flagFocusDelay:  focusDelay.String(),
			flagLoadTimeout: loadTimeout.String(),
			flagWidth:       strconv.Itoa(width),
			flagHeight:      strconv.Itoa(height),
			flagFooter:      strconv.FormatBool(footer),
			flagTrace:       strconv.FormatBool(trace),
			"logFile":       logFile,
			flagConfig:      configPath,
		},
		Args: fs.Args(),
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects values the program cannot run with.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Binary) == "" {
		return fmt.Errorf("%s must not be empty", flagBinary)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.FocusDelay < 0 {
		return fmt.Errorf("%s must be >= 0 (got %s)", flagFocusDelay, cfg.App.FocusDelay)
	}
	if cfg.App.LoadTimeout <= 0 {
		return fmt.Errorf("%s must be > 0 (got %s)", flagLoadTimeout, cfg.App.LoadTimeout)
	}
	return nil
}
