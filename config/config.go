// Package config parses command-line options.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lixenwraith/cvterm/constants"
	"github.com/lixenwraith/cvterm/terminal"
)

// Backend selects the terminal implementation
type Backend string

const (
	BackendNative Backend = "native"
	BackendTcell  Backend = "tcell"
)

// Config is the resolved command line
type Config struct {
	ColorMode   string // auto, 256, truecolor
	Backend     Backend
	Tick        time.Duration
	ContentPath string // empty selects the embedded deck
	Debug       bool
	LogPath     string
	Sound       bool
	KeepRunning bool // keep rendering after a keyboard read failure
	Check       bool // validate content and exit
	ShowVersion bool
}

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid configuration")

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		ColorMode: "auto",
		Backend:   BackendNative,
		Tick:      constants.TickInterval,
		LogPath:   constants.DefaultLogPath,
	}
}

// Parse reads flags from args (without the program name). Usage and flag
// errors are written to out.
func Parse(name string, args []string, out io.Writer) (Config, error) {
	cfg := Default()
	backend := string(cfg.Backend)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "Color mode: auto, truecolor, 256")
	fs.StringVar(&backend, "backend", backend, "Terminal backend: native, tcell")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "Ticker interval")
	fs.StringVar(&cfg.ContentPath, "content", "", "YAML content file (default: embedded)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Write debug log to -log")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Debug log path")
	fs.BoolVar(&cfg.Sound, "sound", false, "Click on tab change")
	fs.BoolVar(&cfg.KeepRunning, "keep-running-on-input-error", false, "Keep rendering after a keyboard read failure")
	fs.BoolVar(&cfg.Check, "check", false, "Validate content and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", ErrInvalid, fs.Args())
	}

	cfg.Backend = Backend(strings.ToLower(backend))
	return cfg, cfg.Validate()
}

// Validate rejects unknown enum values and a non-positive tick
func (c Config) Validate() error {
	if _, err := terminal.ParseColorMode(c.ColorMode); err != nil {
		return fmt.Errorf("%w: -color: %v", ErrInvalid, err)
	}
	switch c.Backend {
	case BackendNative, BackendTcell:
	default:
		return fmt.Errorf("%w: -backend: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: -tick must be positive, got %v", ErrInvalid, c.Tick)
	}
	if c.Debug && c.LogPath == "" {
		return fmt.Errorf("%w: -debug requires -log", ErrInvalid)
	}
	return nil
}

// Color resolves the color mode flag, detecting from the environment for auto
func (c Config) Color() terminal.ColorMode {
	m, err := terminal.ParseColorMode(c.ColorMode)
	if err != nil {
		return terminal.DetectColorMode()
	}
	return m
}
