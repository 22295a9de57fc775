package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// ApplyInput moves the paddle by speed for each held direction and keeps it
// on screen. Left (arrow or A) and right (arrow or D) both apply when held
// together.
func ApplyInput(p Paddle, held core.KeySet, speed, screenWidth float64) Paddle {
	if held.Any(core.KeyLeft, core.KeyA) {
		p.X -= speed
	}
	if held.Any(core.KeyRight, core.KeyD) {
		p.X += speed
	}

	if p.Left() < 0 {
		p.X = 0
	}
	if p.Right() > screenWidth {
		p.X = screenWidth - p.W
	}
	return p
}
