// Package desktop provides the window display host, rendering with Ebitengine.
//
// Ebitengine's event loop must own the main goroutine, so the game loop runs
// on another goroutine via RunMain. Drawing calls build a display list that
// Present hands to the window; input is sampled once per window update.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// HostName is the registry name of the window host.
const HostName = "window"

func init() {
	registry.Register(HostName, "Ebitengine window", func(cfg config.Config) (core.Host, error) {
		return New(cfg), nil
	})
}

// ErrNotOnMainThread is returned by Init when the host is not driven by RunMain.
var ErrNotOnMainThread = errors.New("window host: must be driven through RunMain")

type opKind uint8

const (
	opRect opKind = iota
	opCircle
	opText
)

// drawOp is one recorded drawing call.
type drawOp struct {
	kind   opKind
	rect   core.Rect
	center core.Vec
	radius float64
	color  core.Color
	text   string
	large  bool
}

// frame is a complete display list.
type frame struct {
	bg  core.Color
	ops []drawOp
}

// Host is a core.Host backed by an Ebitengine window.
type Host struct {
	width  int
	height int
	title  string
	clock  *core.Clock

	back frame // Owned by the game loop

	mu     sync.Mutex
	front  frame
	events []core.Event
	held   core.KeySet

	running   atomic.Bool // RunMain is active
	finished  atomic.Bool // Teardown was called
	ready     chan struct{}
	readyOnce sync.Once
	failed    chan struct{}
	runErr    error
}

var (
	_ core.Host           = (*Host)(nil)
	_ core.MainThreadHost = (*Host)(nil)
)

// New creates a window host sized to the configured world.
func New(cfg config.Config) *Host {
	return &Host{
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
		title:  cfg.Host.Title,
		clock:  &core.Clock{},
		held:   core.NewKeySet(),
		ready:  make(chan struct{}),
		failed: make(chan struct{}),
	}
}

// RunMain opens the window on the calling goroutine, which must be the main
// one, and runs loop on a new goroutine. It returns after both have ended.
func (h *Host) RunMain(loop func() error) error {
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowClosingHandled(true)

	h.running.Store(true)
	loopErr := make(chan error, 1)
	go func() {
		err := loop()
		// Close the window even if the loop never got to Teardown
		h.finished.Store(true)
		loopErr <- err
	}()

	runErr := ebiten.RunGame(&game{host: h})
	if runErr != nil {
		h.runErr = fmt.Errorf("window host: %w", runErr)
	}
	close(h.failed)
	h.push(core.QuitEvent())

	return errors.Join(<-loopErr, h.runErr)
}

// Init waits until the window is up.
func (h *Host) Init() error {
	if !h.running.Load() {
		return ErrNotOnMainThread
	}
	select {
	case <-h.ready:
		return nil
	case <-h.failed:
		if h.runErr != nil {
			return h.runErr
		}
		return errors.New("window host: window closed before start")
	}
}

// Teardown closes the window.
func (h *Host) Teardown() {
	h.finished.Store(true)
}

// Clear starts a new display list.
func (h *Host) Clear(c core.Color) {
	h.back = frame{bg: c, ops: h.back.ops[:0]}
}

// DrawRect records a filled rectangle.
func (h *Host) DrawRect(r core.Rect, c core.Color) {
	h.back.ops = append(h.back.ops, drawOp{kind: opRect, rect: r, color: c})
}

// DrawCircle records a filled circle.
func (h *Host) DrawCircle(center core.Vec, radius float64, c core.Color) {
	h.back.ops = append(h.back.ops, drawOp{kind: opCircle, center: center, radius: radius, color: c})
}

// DrawText records a text label.
func (h *Host) DrawText(text string, pos core.Vec, large bool) {
	h.back.ops = append(h.back.ops, drawOp{kind: opText, center: pos, text: text, large: large})
}

// Present publishes the display list to the window.
func (h *Host) Present() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.front.bg = h.back.bg
	h.front.ops = append(h.front.ops[:0], h.back.ops...)
}

// PollEvents returns and clears the queued events.
func (h *Host) PollEvents() []core.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	events := h.events
	h.events = nil
	return events
}

// HeldKeys returns the keys down at the last window update.
func (h *Host) HeldKeys() core.KeySet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.held.Clone()
}

// TickClock paces the loop to fps frames per second.
func (h *Host) TickClock(fps int) {
	h.clock.Tick(fps)
}

// Wait sleeps for ms milliseconds while the window keeps showing the last frame.
func (h *Host) Wait(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (h *Host) push(evs ...core.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, evs...)
}

// publishInput stores the input sampled by the window.
func (h *Host) publishInput(evs []core.Event, held core.KeySet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, evs...)
	h.held = held
}

// snapshot returns a copy of the published display list.
func (h *Host) snapshot() frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return frame{bg: h.front.bg, ops: append([]drawOp(nil), h.front.ops...)}
}

// rgba converts a palette color for Ebitengine.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
