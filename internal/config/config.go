// Package config provides YAML-based game configuration loading for the
// arkanoid game: world dimensions, entity sizes, block layout, the level
// symbol table and host selection.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Config contains all configuration for a game session.
type Config struct {
	Screen   ScreenConfig            `yaml:"screen"`
	Paddle   PaddleConfig            `yaml:"paddle"`
	Ball     BallConfig              `yaml:"ball"`
	Blocks   Layout                  `yaml:"blocks"`
	Symbols  map[string]SymbolConfig `yaml:"symbols"`
	Gameplay GameplayConfig          `yaml:"gameplay"`
	Colors   ColorScheme             `yaml:"colors"`
	Host     HostConfig              `yaml:"host"`
	LogLevel string                  `yaml:"log_level"`
	LogFile  string                  `yaml:"log_file"` // Empty logs to stderr
}

// ScreenConfig defines the world size in pixels and the frame rate.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// PaddleConfig defines paddle geometry and movement speed.
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Offset int `yaml:"offset"` // Distance from the bottom edge to the paddle top
	Speed  int `yaml:"speed"`  // Pixels per frame
}

// BallConfig defines the ball radius and its launch velocity.
type BallConfig struct {
	Radius    int     `yaml:"radius"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// Layout defines block size and spacing in pixels.
type Layout struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Gap     int `yaml:"gap"`
	OriginX int `yaml:"origin_x"`
	OriginY int `yaml:"origin_y"`
}

// Cell returns the screen rectangle of the block at (row, col).
func (l Layout) Cell(row, col int) core.Rect {
	return core.NewRect(
		float64(l.OriginX+col*(l.Width+l.Gap)),
		float64(l.OriginY+row*(l.Height+l.Gap)),
		float64(l.Width),
		float64(l.Height),
	)
}

// SymbolConfig maps a level character to its block color and score.
type SymbolConfig struct {
	Color  string `yaml:"color"`
	Points int    `yaml:"points"`
}

// GameplayConfig defines lives and end-of-game behavior.
type GameplayConfig struct {
	Lives                int    `yaml:"lives"`
	GameOverDelayMS      int    `yaml:"game_over_delay_ms"`
	LevelCompleteMessage string `yaml:"level_complete_message"`
	GameOverMessage      string `yaml:"game_over_message"`
}

// ColorScheme names the palette colors of non-block elements.
type ColorScheme struct {
	Background string `yaml:"background"`
	Paddle     string `yaml:"paddle"`
	Ball       string `yaml:"ball"`
}

// HostConfig selects and tunes the graphics/input host.
type HostConfig struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	KeyHoldMS int    `yaml:"key_hold_ms"` // Terminal only: how long a press counts as held
}

// KeyHold returns the terminal key-hold window as a duration.
func (h HostConfig) KeyHold() time.Duration {
	return time.Duration(h.KeyHoldMS) * time.Millisecond
}

// Symbol is a resolved symbol table entry.
type Symbol struct {
	Color  core.Color
	Points int
}

// SymbolTable maps level characters to block metadata.
type SymbolTable map[rune]Symbol

// Palette holds the resolved colors of non-block elements.
type Palette struct {
	Background core.Color
	Paddle     core.Color
	Ball       core.Color
}

// SymbolTable resolves the configured symbols.
func (c Config) SymbolTable() (SymbolTable, error) {
	table := make(SymbolTable, len(c.Symbols))
	for key, sym := range c.Symbols {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("symbol %q: must be a single character", key)
		}
		if sym.Points < 0 {
			return nil, fmt.Errorf("symbol %q: negative points %d", key, sym.Points)
		}
		color, err := core.ParseColor(sym.Color)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", key, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		table[r] = Symbol{Color: color, Points: sym.Points}
	}
	return table, nil
}

// Palette resolves the configured element colors.
func (c Config) Palette() (Palette, error) {
	var p Palette
	for _, entry := range []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"paddle", c.Colors.Paddle, &p.Paddle},
		{"ball", c.Colors.Ball, &p.Ball},
	} {
		color, err := core.ParseColor(entry.src)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", entry.name, err)
		}
		*entry.dst = color
	}
	return p, nil
}

// Level returns the parsed log level, or log.InfoLevel if it is invalid.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate checks that the configuration describes a playable session.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("screen.fps", c.Screen.FPS)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.radius", c.Ball.Radius)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	positive("gameplay.lives", c.Gameplay.Lives)

	if c.Paddle.Width > c.Screen.Width {
		errs = append(errs, fmt.Errorf("paddle.width %d exceeds screen.width %d", c.Paddle.Width, c.Screen.Width))
	}
	if c.Blocks.Gap < 0 {
		errs = append(errs, fmt.Errorf("blocks.gap must not be negative, got %d", c.Blocks.Gap))
	}
	if c.Gameplay.GameOverDelayMS < 0 {
		errs = append(errs, errors.New("gameplay.game_over_delay_ms must not be negative"))
	}
	if c.Ball.VelocityX == 0 && c.Ball.VelocityY == 0 {
		errs = append(errs, errors.New("ball velocity must not be zero"))
	}
	if _, err := c.SymbolTable(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
