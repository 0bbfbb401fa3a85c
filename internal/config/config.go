package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-grid-switch/internal/app"
	"github.com/atomicstack/tmux-grid-switch/internal/grid"
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
	envSocketPath = "TMUX_GRID_SWITCH_SOCKET"
	envWidth      = "TMUX_GRID_SWITCH_WIDTH"
	envHeight     = "TMUX_GRID_SWITCH_HEIGHT"
	envScope      = "TMUX_GRID_SWITCH_SCOPE"
	envAnchor     = "TMUX_GRID_SWITCH_ANCHOR"
	envMinCellW   = "TMUX_GRID_SWITCH_MIN_CELL_WIDTH"
	envMinCellH   = "TMUX_GRID_SWITCH_MIN_CELL_HEIGHT"
	envWrap       = "TMUX_GRID_SWITCH_WRAP"
	envPaging     = "TMUX_GRID_SWITCH_PAGING"
	envRefresh    = "TMUX_GRID_SWITCH_REFRESH"
	envTrace      = "TMUX_GRID_SWITCH_TRACE"
	envLogFile    = "TMUX_GRID_SWITCH_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-grid-switch", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	scope := fs.String("scope", envOrDefault(env, envScope, "sessions"), "grid contents: sessions or windows")
	anchor := fs.String("anchor", envOrDefault(env, envAnchor, ""), "session whose windows populate the grid (windows scope; empty uses the current session)")
	minCellW := fs.Int("min-cell-width", envOrInt(env, envMinCellW, 20), "minimum cell width in columns")
	minCellH := fs.Int("min-cell-height", envOrInt(env, envMinCellH, 6), "minimum cell height in rows")
	wrap := fs.Bool("wrap", envOrBool(env, envWrap, true), "wrap prev/next selection around the catalog")
	paging := fs.Bool("paging", envOrBool(env, envPaging, true), "enable page-up/page-down bindings")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, time.Second), "preview refresh interval")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *scope != "sessions" && *scope != "windows" {
		return Config{}, fmt.Errorf("scope must be sessions or windows (got %q)", *scope)
	}
	if *minCellW < grid.MinCellFloor || *minCellH < grid.MinCellFloor {
		return Config{}, fmt.Errorf("minimum cell size must be at least %d (got %dx%d)", grid.MinCellFloor, *minCellW, *minCellH)
	}
	if *refresh <= 0 {
		return Config{}, fmt.Errorf("refresh interval must be positive (got %s)", *refresh)
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			Scope:      *scope,
			Anchor:     *anchor,
			MinCellW:   *minCellW,
			MinCellH:   *minCellH,
			Wrap:       *wrap,
			Paging:     *paging,
			Refresh:    *refresh,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":          *socket,
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"scope":           *scope,
			"anchor":          *anchor,
			"min-cell-width":  strconv.Itoa(*minCellW),
			"min-cell-height": strconv.Itoa(*minCellH),
			"wrap":            strconv.FormatBool(*wrap),
			"paging":          strconv.FormatBool(*paging),
			"refresh":         refresh.String(),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Scope != "windows" && cfg.App.Anchor != "" {
		return fmt.Errorf("anchor is only meaningful with -scope windows")
	}
	return nil
}
