// Package tui provides the terminal display host: a core.Host that renders
// frames with Bubble Tea and Lip Gloss, either on the local terminal or
// inside an SSH session served by Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

const (
	defaultCols = 80
	defaultRows = 24
	footerLines = 1 // Help line below the playfield
)

// HostName is the registry name of the terminal host.
const HostName = "terminal"

func init() {
	registry.Register(HostName, "Bubble Tea renderer for the local terminal", func(cfg config.Config) (core.Host, error) {
		return New(cfg), nil
	})
}

// ErrNotATerminal is returned by Init when stdout is not a terminal.
var ErrNotATerminal = errors.New("terminal host: stdout is not a terminal")

// Host is a core.Host drawing into a character canvas. The game loop calls
// the core.Host methods from its own goroutine; the Bubble Tea model talks to
// the host through frames, key presses and resizes.
type Host struct {
	keys   KeyMap
	canvas *Canvas
	held   *heldKeys
	clock  *core.Clock

	mu      sync.Mutex
	events  []core.Event
	pending *[2]int // Resize to apply at the next Clear

	frames   chan string
	done     chan struct{} // Closed when the display goes away
	stopOnce sync.Once

	attached    bool // Program owned by someone else (Wish)
	programOpts []tea.ProgramOption
	exited      chan struct{}
	runErr      error
}

var _ core.Host = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithProgramOptions adds Bubble Tea options for the locally run program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(h *Host) {
		h.programOpts = append(h.programOpts, opts...)
	}
}

// WithTime replaces the time sources used for key-hold expiry and pacing.
func WithTime(now func() time.Time, sleep func(time.Duration)) Option {
	return func(h *Host) {
		h.held.now = now
		h.clock = core.NewClock(now, sleep)
	}
}

func newHost(cfg config.Config, cols, rows int, opts ...Option) *Host {
	h := &Host{
		keys:   DefaultKeyMap(),
		canvas: NewCanvas(cols, rows, float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		held:   newHeldKeys(cfg.Host.KeyHold(), nil),
		clock:  &core.Clock{},
		frames: make(chan string),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// New creates a host that runs its own Bubble Tea program on the local
// terminal once Init is called.
func New(cfg config.Config, opts ...Option) *Host {
	return newHost(cfg, defaultCols, defaultRows-footerLines, opts...)
}

// Attach creates a host for a Bubble Tea program run by the caller, as Wish
// does for SSH sessions. The returned model must be the program's model.
// Cancelling ctx counts as the player closing the window.
func Attach(ctx context.Context, cfg config.Config, cols, rows int, opts ...Option) (*Host, Model) {
	h := newHost(cfg, cols, rows-footerLines, opts...)
	h.attached = true

	go func() {
		select {
		case <-ctx.Done():
			h.stop()
		case <-h.done:
		}
	}()

	return h, NewModel(h)
}

// Init starts the Bubble Tea program on the local terminal.
func (h *Host) Init() error {
	if h.attached {
		return nil
	}

	fd := int(os.Stdout.Fd()) //#nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return ErrNotATerminal
	}
	if cols, rows, err := term.GetSize(fd); err == nil {
		h.resize(cols, rows-footerLines)
	}

	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, h.programOpts...)
	program := tea.NewProgram(NewModel(h), opts...)

	h.exited = make(chan struct{})
	go func() {
		defer close(h.exited)
		if _, err := program.Run(); err != nil {
			h.runErr = fmt.Errorf("terminal host: %w", err)
		}
		h.stop()
	}()
	return nil
}

// Teardown ends the Bubble Tea program and waits for the terminal to be
// restored.
func (h *Host) Teardown() {
	close(h.frames)
	if h.exited != nil {
		<-h.exited
	}
	h.held.releaseAll()
}

// Err returns the error the local Bubble Tea program exited with, if any.
// Only meaningful after Teardown.
func (h *Host) Err() error {
	return h.runErr
}

// Clear starts a new frame, applying any pending resize.
func (h *Host) Clear(c core.Color) {
	h.mu.Lock()
	pending := h.pending
	h.pending = nil
	h.mu.Unlock()

	if pending != nil {
		h.canvas.Resize(pending[0], pending[1])
	}
	h.canvas.Clear(c)
}

// DrawRect fills the cells covered by r.
func (h *Host) DrawRect(r core.Rect, c core.Color) {
	h.canvas.DrawRect(r, c)
}

// DrawCircle draws the ball cell.
func (h *Host) DrawCircle(center core.Vec, radius float64, c core.Color) {
	h.canvas.DrawCircle(center, radius, c)
}

// DrawText writes text; large text is framed and bold.
func (h *Host) DrawText(text string, pos core.Vec, large bool) {
	h.canvas.DrawText(text, pos, large)
}

// Present hands the composed frame to the model. Frames are dropped once
// the display is gone.
func (h *Host) Present() {
	frame := RenderScreen(h.canvas.Screen(), h.canvas.Background())
	select {
	case h.frames <- frame:
	case <-h.done:
	}
}

// PollEvents returns and clears the queued events.
func (h *Host) PollEvents() []core.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	events := h.events
	h.events = nil
	return events
}

// HeldKeys returns the keys pressed within the hold window.
func (h *Host) HeldKeys() core.KeySet {
	return h.held.snapshot()
}

// TickClock paces the loop to fps frames per second.
func (h *Host) TickClock(fps int) {
	h.clock.Tick(fps)
}

// Wait sleeps for ms milliseconds, returning early if the display goes away.
func (h *Host) Wait(ms int) {
	t := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer t.Stop()

	select {
	case <-t.C:
	case <-h.done:
	}
}

func (h *Host) push(ev core.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

// keyDown records a key press from the model.
func (h *Host) keyDown(k core.Key) {
	if k == core.KeyUnknown {
		return
	}
	h.held.press(k)
	h.push(core.KeyDownEvent(k))
}

// requestQuit queues a quit event, as closing a window would.
func (h *Host) requestQuit() {
	h.push(core.QuitEvent())
}

// resize schedules a canvas resize for the next frame.
func (h *Host) resize(cols, rows int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = &[2]int{cols, rows}
}

// stop marks the display as gone and asks the loop to quit.
func (h *Host) stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.requestQuit()
	})
}
