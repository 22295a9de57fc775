package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Run drives the session on host until the player quits or loses the last
// life. Each frame: poll events, apply input, step physics, draw, present
// and pace. On game over one more frame with the game-over message is shown
// and held for the configured delay.
//
// Clearing the level does not stop the loop; the ball keeps bouncing until
// the player quits or the ball is lost often enough.
//
// Host.Teardown runs exactly once if Host.Init succeeded.
func Run(s *Session, h core.Host) error {
	if err := h.Init(); err != nil {
		return fmt.Errorf("arkanoid: initializing display: %w", err)
	}
	defer h.Teardown()
	s.logger.Info("display initialized")

	if s.phase == PhaseInitializing {
		s.phase = PhasePlaying
	}
	s.running = true

	speed := float64(s.cfg.Paddle.Speed)
	for s.running {
		if s.quitRequested(h.PollEvents()) {
			s.logger.Debug("quit requested", "score", s.score, "tick", s.tickCount)
			s.running = false
			break
		}

		s.paddle = ApplyInput(s.paddle, h.HeldKeys(), speed, s.width)
		s.logTick(s.Tick())

		s.Draw(h)
		h.Present()
		h.TickClock(s.cfg.Screen.FPS)

		if s.lives <= 0 {
			s.endMessage = s.cfg.Gameplay.GameOverMessage
			s.phase = PhaseGameOver
			s.logger.Debug("game over", "score", s.score, "tick", s.tickCount)

			s.Draw(h)
			h.Present()
			h.Wait(s.cfg.Gameplay.GameOverDelayMS)
			s.running = false
		}
	}

	s.phase = PhaseTerminated
	return nil
}

// quitRequested reports whether events contain a quit or an Escape press.
func (s *Session) quitRequested(events []core.Event) bool {
	for _, ev := range events {
		switch {
		case ev.Type == core.EventQuit:
			return true
		case ev.Type == core.EventKeyDown && ev.Key == core.KeyEscape:
			return true
		}
	}
	return false
}

func (s *Session) logTick(res TickResult) {
	if res.LifeLost {
		s.logger.Debug("ball lost", "lives", s.lives, "tick", s.tickCount)
	}
	if res.Destroyed != nil {
		s.logger.Debug("block destroyed",
			"symbol", string(res.Destroyed.Symbol),
			"points", res.Points,
			"score", s.score,
			"remaining", len(s.blocks),
		)
	}
	if res.LevelComplete {
		s.logger.Info("level complete", "score", s.score, "tick", s.tickCount)
	}
}
