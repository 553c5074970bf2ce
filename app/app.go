// Package app runs the dashboard: it owns the terminal, the tab state and the frame
// buffer, and drives them from a single event queue.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cvterm/constants"
	"github.com/lixenwraith/cvterm/content"
	"github.com/lixenwraith/cvterm/event"
	"github.com/lixenwraith/cvterm/render"
	"github.com/lixenwraith/cvterm/tabs"
	"github.com/lixenwraith/cvterm/terminal"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

// State of the application loop
type State int32

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// ErrNoDeck is returned by New without content
var ErrNoDeck = errors.New("app: no content deck")

// Options configures an App
type Options struct {
	Terminal terminal.Terminal
	Deck     *content.Deck
	Theme    tui.Theme

	// Tick is the ticker interval for the default producers
	Tick time.Duration

	// Producers replace the default keyboard and ticker producers when set
	Producers []event.Producer

	// OnTabChange is called on the loop goroutine after the selection moves
	OnTabChange func(index int, title string)

	// KeepRunningOnInputError logs keyboard read failures instead of terminating
	KeepRunningOnInputError bool

	// CrashHandler receives panics from producer goroutines; nil re-panics
	CrashHandler func(any)
}

// App is the application loop
type App struct {
	term  terminal.Terminal
	deck  *content.Deck
	theme tui.Theme
	opts  Options

	tabs  *tabs.Set
	queue *event.Queue
	buf   *render.Buffer

	width, height int

	state  atomic.Int32
	frames atomic.Int64
}

// New builds an App; the terminal is not touched until Run
func New(opts Options) (*App, error) {
	if opts.Terminal == nil {
		return nil, errors.New("app: no terminal")
	}
	if opts.Deck == nil {
		return nil, ErrNoDeck
	}
	set, err := tabs.New(opts.Deck.Titles()...)
	if err != nil {
		return nil, err
	}
	if opts.Theme == (tui.Theme{}) {
		opts.Theme = tui.DefaultTheme
	}
	if opts.Tick <= 0 {
		opts.Tick = constants.TickInterval
	}

	return &App{
		term:  opts.Terminal,
		deck:  opts.Deck,
		theme: opts.Theme,
		opts:  opts,
		tabs:  set,
		queue: event.NewQueue(),
		buf:   render.NewBuffer(0, 0, opts.Theme.Bg),
	}, nil
}

// IsQuit reports whether ev ends the application: 'q' or Ctrl+C
func IsQuit(ev event.Event) bool {
	return ev.IsRune(constants.QuitRune) || ev.IsKey(terminal.KeyCtrlC)
}

// Run acquires the terminal, runs the loop until quit, ctx cancellation or a
// fatal input error, and always releases the terminal before returning.
func (a *App) Run(ctx context.Context) error {
	if err := a.term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer a.release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.state.Store(int32(Running))
	a.startProducers(ctx)
	slog.Debug("loop started", "tabs", a.tabs.Len())

	for a.State() == Running {
		a.draw()

		ev, err := a.queue.Next(ctx)
		if err != nil {
			slog.Debug("loop cancelled", "reason", err)
			a.state.Store(int32(Terminated))
			return nil
		}
		if err := a.handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) startProducers(ctx context.Context) {
	producers := a.opts.Producers
	if producers == nil {
		producers = []event.Producer{
			event.Keys(a.term, IsQuit),
			event.Ticker(a.opts.Tick),
		}
	}
	for _, p := range producers {
		go a.runProducer(ctx, p)
	}
}

func (a *App) runProducer(ctx context.Context, p event.Producer) {
	if h := a.opts.CrashHandler; h != nil {
		defer func() {
			if r := recover(); r != nil {
				h(r)
			}
		}()
	}
	p(ctx, a.queue)
}

// handle applies one event; a non-nil error terminates the loop
func (a *App) handle(ev event.Event) error {
	switch ev.Type {
	case event.KeyPress:
		switch {
		case IsQuit(ev):
			slog.Debug("quit requested", "key", ev.Key.String())
			a.state.Store(int32(Terminated))
		case ev.IsKey(terminal.KeyLeft):
			a.tabs.Previous()
			a.tabChanged()
		case ev.IsKey(terminal.KeyRight):
			a.tabs.Next()
			a.tabChanged()
		}
	case event.Resize:
		slog.Debug("resize", "width", ev.Width, "height", ev.Height)
	case event.InputError:
		slog.Error("keyboard input failed", "error", ev.Err)
		if !a.opts.KeepRunningOnInputError {
			a.state.Store(int32(Terminated))
			return fmt.Errorf("keyboard input: %w", ev.Err)
		}
	}
	return nil
}

func (a *App) tabChanged() {
	idx, title := a.tabs.Selected(), a.tabs.Title()
	slog.Debug("tab changed", "index", idx, "title", title)
	if a.opts.OnTabChange != nil {
		a.opts.OnTabChange(idx, title)
	}
}

// draw renders one full frame at the current terminal size
func (a *App) draw() {
	w, h := a.term.Size()
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.buf.Resize(w, h)
		a.term.Sync()
	}

	a.buf.Clear()
	render.Draw(a.buf, a.frameRoot(), a.buf.Bounds(), a.theme)
	a.buf.FlushTo(a.term)
	a.frames.Add(1)
}

// release restores the terminal; safe on every exit path
func (a *App) release() {
	a.term.Clear(a.theme.Bg)
	a.term.SetCursorVisible(true)
	a.term.Fini()
}

// State returns the loop state
func (a *App) State() State {
	return State(a.state.Load())
}

// Frames returns the number of frames flushed so far
func (a *App) Frames() int64 {
	return a.frames.Load()
}

// Selected returns the active tab index; only stable once Run has returned
func (a *App) Selected() int {
	return a.tabs.Selected()
}
