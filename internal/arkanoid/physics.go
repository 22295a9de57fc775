package arkanoid

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// TickResult describes what happened during one physics step.
type TickResult struct {
	LifeLost      bool   // Ball left the bottom of the screen
	PaddleHit     bool   // Ball bounced off the paddle
	Destroyed     *Block // Block removed this tick, if any
	Points        int    // Score gained this tick
	LevelComplete bool   // The last block went this tick
}

// Tick advances the ball by one frame and resolves collisions, in order:
// move, walls, bottom edge, paddle, blocks, win check.
//
// Wall bounces only flip velocity signs; the ball may overlap a wall for a
// frame. A lost ball ends the tick before paddle and block checks. At most
// one block is destroyed per tick.
func (s *Session) Tick() TickResult {
	var res TickResult
	s.tickCount++

	b := &s.ball
	b.Pos = b.Pos.Add(b.Vel)
	r := b.Rect()

	if r.Left() <= 0 || r.Right() >= s.width {
		b.Vel.X = -b.Vel.X
	}
	if r.Top() <= 0 {
		b.Vel.Y = -b.Vel.Y
	}

	if r.Top() > s.height {
		s.lives--
		s.resetBall()
		res.LifeLost = true
		return res
	}

	if r.Intersects(s.paddle.Rect) {
		BounceOffPaddle(b, s.paddle)
		res.PaddleHit = true
	}

	for i, blk := range s.blocks {
		if !r.Intersects(blk.Rect) {
			continue
		}
		s.score += blk.Points
		s.blocks = slices.Delete(s.blocks, i, i+1)
		b.Vel.Y = -b.Vel.Y

		res.Destroyed = &blk
		res.Points = blk.Points
		break
	}

	if len(s.blocks) == 0 && s.endMessage == "" {
		s.endMessage = s.cfg.Gameplay.LevelCompleteMessage
		s.phase = PhaseLevelComplete
		res.LevelComplete = true
	}

	return res
}

// BounceOffPaddle sends the ball upward at an angle proportional to how far
// from the paddle's center it hit, keeping its speed. A center hit goes
// straight up; an edge hit leaves at MaxBounceAngle.
func BounceOffPaddle(b *Ball, p Paddle) {
	offset := core.ClampF((b.Pos.X-p.CenterX())/(p.W/2), -1, 1)
	angle := offset * MaxBounceAngle
	speed := b.Speed()

	b.Vel = core.Vec{
		X: speed * math.Sin(angle),
		Y: -math.Abs(speed * math.Cos(angle)),
	}
}
