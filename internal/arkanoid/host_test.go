package arkanoid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
)

type drawnText struct {
	Text  string
	Pos   core.Vec
	Large bool
}

type drawnRect struct {
	Rect  core.Rect
	Color core.Color
}

// recordingHost is a core.Host that records every call. PollEvents hands out
// script entries in order and reports a quit once the script is exhausted
// and quitAfter frames have been polled.
type recordingHost struct {
	initErr   error
	script    [][]core.Event
	held      core.KeySet
	quitAfter int

	calls     []string
	polls     int
	teardowns int
	presents  int
	waits     []int

	clearColor core.Color
	rects      []drawnRect
	circles    []core.Vec
	texts      []drawnText
	frames     [][]drawnText // Texts of each presented frame
}

func (h *recordingHost) Init() error {
	h.calls = append(h.calls, "init")
	return h.initErr
}

func (h *recordingHost) Teardown() {
	h.calls = append(h.calls, "teardown")
	h.teardowns++
}

func (h *recordingHost) Clear(c core.Color) {
	h.clearColor = c
	h.rects = nil
	h.circles = nil
	h.texts = nil
}

func (h *recordingHost) DrawRect(r core.Rect, c core.Color) {
	h.rects = append(h.rects, drawnRect{Rect: r, Color: c})
}

func (h *recordingHost) DrawCircle(center core.Vec, _ float64, _ core.Color) {
	h.circles = append(h.circles, center)
}

func (h *recordingHost) DrawText(text string, pos core.Vec, large bool) {
	h.texts = append(h.texts, drawnText{Text: text, Pos: pos, Large: large})
}

func (h *recordingHost) Present() {
	h.calls = append(h.calls, "present")
	h.presents++
	h.frames = append(h.frames, h.texts)
}

func (h *recordingHost) PollEvents() []core.Event {
	h.calls = append(h.calls, "poll")
	h.polls++
	if h.polls <= len(h.script) {
		return h.script[h.polls-1]
	}
	if h.polls > h.quitAfter {
		return []core.Event{core.QuitEvent()}
	}
	return nil
}

func (h *recordingHost) HeldKeys() core.KeySet {
	return h.held
}

func (h *recordingHost) TickClock(int) {
	h.calls = append(h.calls, "clock")
}

func (h *recordingHost) Wait(ms int) {
	h.calls = append(h.calls, fmt.Sprintf("wait %d", ms))
	h.waits = append(h.waits, ms)
}

// lastLarge returns the large texts of the last presented frame.
func (h *recordingHost) lastLarge() []string {
	if len(h.frames) == 0 {
		return nil
	}
	var out []string
	for _, t := range h.frames[len(h.frames)-1] {
		if t.Large {
			out = append(out, t.Text)
		}
	}
	return out
}

// redTens is a symbol table with a single red block worth 10 points.
var redTens = map[string]config.SymbolConfig{"B": {Color: "red", Points: 10}}

// newTestSession builds a session on the default config with the given level
// text and optional config tweaks.
func newTestSession(t *testing.T, levelText string, tweak func(*config.Config)) *Session {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Symbols = redTens
	if tweak != nil {
		tweak(&cfg)
	}
	require.NoError(t, cfg.Validate())

	grid, err := level.Parse("test", []byte(levelText))
	require.NoError(t, err)

	s, err := New(cfg, grid)
	require.NoError(t, err)
	return s
}
