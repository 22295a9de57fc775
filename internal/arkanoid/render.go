package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// HUD text positions in world pixels.
var (
	scorePos = core.Vec{X: 20, Y: 20}
	livesPos = core.Vec{X: 20, Y: 50}
)

// Draw composes the scene on the host: background, blocks, paddle, ball,
// HUD and, when set, the end message. It does not present the frame.
func (s *Session) Draw(h core.Host) {
	h.Clear(s.palette.Background)

	for _, b := range s.blocks {
		h.DrawRect(b.Rect, b.Color)
	}

	h.DrawRect(s.paddle.Rect, s.palette.Paddle)

	// Circles are drawn on whole pixels
	center := core.Vec{X: math.Trunc(s.ball.Pos.X), Y: math.Trunc(s.ball.Pos.Y)}
	h.DrawCircle(center, s.ball.Radius, s.palette.Ball)

	h.DrawText(fmt.Sprintf("Score: %d", s.score), scorePos, false)
	h.DrawText(fmt.Sprintf("Lives: %d", s.lives), livesPos, false)

	if s.endMessage != "" {
		h.DrawText(s.endMessage, s.messagePos(), true)
	}
}

// messagePos places the end message slightly left of and above the center.
func (s *Session) messagePos() core.Vec {
	return core.Vec{X: s.width/2 - 140, Y: s.height/2 - 20}
}
