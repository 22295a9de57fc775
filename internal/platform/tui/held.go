package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// heldKeys emulates key-up events, which terminals never report. A press
// keeps its key held for a window; auto-repeat refreshes it while the key is
// physically down. Pressing one direction releases the other.
type heldKeys struct {
	mu     sync.Mutex
	until  map[core.Key]time.Time
	window time.Duration
	now    func() time.Time
}

func newHeldKeys(window time.Duration, now func() time.Time) *heldKeys {
	if now == nil {
		now = time.Now
	}
	return &heldKeys{
		until:  make(map[core.Key]time.Time),
		window: window,
		now:    now,
	}
}

var opposite = map[core.Key][]core.Key{
	core.KeyLeft:  {core.KeyRight, core.KeyD},
	core.KeyA:     {core.KeyRight, core.KeyD},
	core.KeyRight: {core.KeyLeft, core.KeyA},
	core.KeyD:     {core.KeyLeft, core.KeyA},
}

func (h *heldKeys) press(k core.Key) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, o := range opposite[k] {
		delete(h.until, o)
	}
	h.until[k] = h.now().Add(h.window)
}

// snapshot returns the keys still inside their hold window.
func (h *heldKeys) snapshot() core.KeySet {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	held := core.NewKeySet()
	for k, t := range h.until {
		if now.Before(t) {
			held.Set(k)
		} else {
			delete(h.until, k)
		}
	}
	return held
}

func (h *heldKeys) releaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.until)
}
