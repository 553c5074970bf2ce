package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/cvterm/app"
	"github.com/lixenwraith/cvterm/audio"
	"github.com/lixenwraith/cvterm/config"
	"github.com/lixenwraith/cvterm/content"
	"github.com/lixenwraith/cvterm/terminal"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

var version = "dev"

func main() {
	// Panic Recovery: Ensure terminal is reset even if the dashboard crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	os.Exit(run(os.Args[0], os.Args[1:]))
}

// crash restores the terminal and reports r; shared by main and producer goroutines
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	// \r\n keeps the trace readable if raw mode survived the reset
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCVTERM CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func run(name string, args []string) int {
	cfg, err := config.Parse(name, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if cfg.ShowVersion {
		fmt.Println("cvterm", version)
		return 0
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogPath); logFile != nil {
		defer logFile.Close()
	}

	deck, err := loadDeck(cfg.ContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "content: %v\n", err)
		return 1
	}
	if cfg.Check {
		fmt.Printf("content ok: %d tabs\n", len(deck.Tabs))
		return 0
	}

	term, err := newTerminal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		Terminal:                term,
		Deck:                    deck,
		Theme:                   tui.DefaultTheme,
		Tick:                    cfg.Tick,
		KeepRunningOnInputError: cfg.KeepRunning,
		CrashHandler:            crash,
	}

	if cfg.Sound {
		clicker := audio.NewClicker()
		if err := clicker.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer clicker.Cleanup()
			opts.OnTabChange = func(int, string) { clicker.Click() }
		}
	}

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	slog.Info("starting", "version", version, "backend", cfg.Backend, "tabs", len(deck.Tabs))
	if err := a.Run(ctx); err != nil {
		slog.Error("exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "cvterm: %v\n", err)
		return 1
	}
	slog.Info("exited", "frames", a.Frames())
	return 0
}

// loadDeck reads path, or the embedded deck when path is empty
func loadDeck(path string) (*content.Deck, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

func newTerminal(cfg config.Config) (terminal.Terminal, error) {
	if cfg.Backend == config.BackendTcell {
		return terminal.NewTcellScreen()
	}
	return terminal.New(cfg.Color()), nil
}
