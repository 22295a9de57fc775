// Package arkanoid implements a single-screen Arkanoid-style brick breaker:
// a block grid built from a level, ball/paddle physics and the frame loop
// that drives them on a core.Host.
package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// MaxBounceAngle is the deflection from vertical for a hit on the paddle's
// outermost edge (60 degrees).
const MaxBounceAngle = math.Pi / 3

// Block is a destructible rectangle. Color, symbol and score travel with the
// rectangle so removing a block can never desynchronize them.
type Block struct {
	Rect   core.Rect
	Color  core.Color
	Symbol rune
	Points int
}

// Paddle is the player's bat. Only X changes during a session.
type Paddle struct {
	core.Rect
}

// NewPaddle centers a paddle horizontally, offset pixels above the bottom edge.
func NewPaddle(cfg config.Config) Paddle {
	w := float64(cfg.Paddle.Width)
	return Paddle{core.NewRect(
		math.Floor((float64(cfg.Screen.Width)-w)/2),
		float64(cfg.Screen.Height-cfg.Paddle.Offset),
		w,
		float64(cfg.Paddle.Height),
	)}
}

// Ball is a circle with a sub-pixel position and per-frame velocity.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Pixels per frame
	Radius float64
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.RectAround(b.Pos, b.Radius)
}

// Speed returns the magnitude of the ball's velocity.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}
