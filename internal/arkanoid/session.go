package arkanoid

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
)

// Phase is a state of the session's state machine.
type Phase string

// Session phases. LevelComplete keeps simulating until the player quits or
// runs out of lives.
const (
	PhaseInitializing  Phase = "initializing"
	PhasePlaying       Phase = "playing"
	PhaseLevelComplete Phase = "level_complete"
	PhaseGameOver      Phase = "game_over"
	PhaseTerminated    Phase = "terminated"
)

// Session owns all state of one game: entities, blocks, score and lives.
// It is not safe for concurrent use; the frame loop is its only user.
type Session struct {
	cfg     config.Config
	palette config.Palette
	width   float64
	height  float64
	logger  *log.Logger

	paddle Paddle
	ball   Ball
	blocks []Block

	phase      Phase
	score      int
	lives      int
	endMessage string
	running    bool
	tickCount  uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle and state transition events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session for the given level: it places the paddle and ball,
// builds the blocks and resets score, lives and the end message.
func New(cfg config.Config, grid level.Grid, opts ...Option) (*Session, error) {
	symbols, err := cfg.SymbolTable()
	if err != nil {
		return nil, fmt.Errorf("arkanoid: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("arkanoid: %w", err)
	}

	s := &Session{
		cfg:     cfg,
		palette: palette,
		width:   float64(cfg.Screen.Width),
		height:  float64(cfg.Screen.Height),
		logger:  log.New(io.Discard),
		phase:   PhaseInitializing,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("level loaded", "source", grid.Source, "rows", grid.Height(), "cols", grid.Width())

	s.prepareEntities()
	s.logger.Debug("entities prepared", "paddle_x", s.paddle.X, "lives", s.lives)

	s.blocks = BuildBlocks(grid.Rows, cfg.Blocks.Cell, symbols)
	s.logger.Info("blocks built", "count", len(s.blocks), "max_score", TotalPoints(s.blocks))

	return s, nil
}

// prepareEntities places the paddle and ball and resets the game state.
func (s *Session) prepareEntities() {
	s.paddle = NewPaddle(s.cfg)
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.endMessage = ""
	s.tickCount = 0
	s.resetBall()
}

// resetBall puts the ball at rest on top of the paddle with launch velocity.
func (s *Session) resetBall() {
	r := float64(s.cfg.Ball.Radius)
	s.ball = Ball{
		Pos:    core.Vec{X: s.paddle.CenterX(), Y: s.paddle.Top() - r},
		Vel:    core.Vec{X: s.cfg.Ball.VelocityX, Y: s.cfg.Ball.VelocityY},
		Radius: r,
	}
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the points collected so far.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// EndMessage returns the terminal message, or "" while the game is in progress.
func (s *Session) EndMessage() string {
	return s.endMessage
}

// Running reports whether the frame loop is active.
func (s *Session) Running() bool {
	return s.running
}

// Paddle returns the paddle.
func (s *Session) Paddle() Paddle {
	return s.paddle
}

// Ball returns the ball.
func (s *Session) Ball() Ball {
	return s.ball
}

// Blocks returns a copy of the remaining blocks in draw order.
func (s *Session) Blocks() []Block {
	return slices.Clone(s.blocks)
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}
