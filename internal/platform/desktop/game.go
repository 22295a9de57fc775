package desktop

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16

	largeScale = 2
)

// keyMap maps window keys to game keys.
var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyEnter:      core.KeyEnter,
}

// translateKeys converts fresh presses to key-down events and samples the
// held state of every mapped key.
func translateKeys(justPressed []ebiten.Key, isPressed func(ebiten.Key) bool) ([]core.Event, core.KeySet) {
	var evs []core.Event
	for _, k := range justPressed {
		if ck, ok := keyMap[k]; ok {
			evs = append(evs, core.KeyDownEvent(ck))
		}
	}

	held := core.NewKeySet()
	for ek, ck := range keyMap {
		if isPressed(ek) {
			held.Set(ck)
		}
	}
	return evs, held
}

// game adapts Host to ebiten.Game.
type game struct {
	host    *Host
	pressed []ebiten.Key
	labels  map[string]*ebiten.Image // Pre-rendered large text
}

func (g *game) Update() error {
	h := g.host
	if h.finished.Load() {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	evs, held := translateKeys(g.pressed, ebiten.IsKeyPressed)
	if ebiten.IsWindowBeingClosed() {
		evs = append(evs, core.QuitEvent())
	}
	h.publishInput(evs, held)

	h.readyOnce.Do(func() { close(h.ready) })
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.host.snapshot()
	screen.Fill(rgba(f.bg))

	for _, op := range f.ops {
		switch op.kind {
		case opRect:
			vector.DrawFilledRect(screen,
				float32(op.rect.X), float32(op.rect.Y), float32(op.rect.W), float32(op.rect.H),
				rgba(op.color), false)
		case opCircle:
			vector.DrawFilledCircle(screen,
				float32(op.center.X), float32(op.center.Y), float32(op.radius),
				rgba(op.color), true)
		case opText:
			g.drawText(screen, op)
		}
	}
}

func (g *game) drawText(screen *ebiten.Image, op drawOp) {
	x, y := int(op.center.X), int(op.center.Y)
	if !op.large {
		ebitenutil.DebugPrintAt(screen, op.text, x, y)
		return
	}

	img := g.label(op.text)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(largeScale, largeScale)
	opts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, opts)
}

// label returns text rendered once into an offscreen image.
func (g *game) label(text string) *ebiten.Image {
	if img, ok := g.labels[text]; ok {
		return img
	}
	if g.labels == nil {
		g.labels = make(map[string]*ebiten.Image)
	}

	w := max(utf8.RuneCountInString(text)*glyphW, 1)
	img := ebiten.NewImage(w, glyphH)
	ebitenutil.DebugPrint(img, text)
	g.labels[text] = img
	return img
}

func (g *game) Layout(int, int) (int, int) {
	return g.host.width, g.host.height
}
