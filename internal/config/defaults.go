package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors the
// embedded defaults/arkanoid.yaml and is used when that fails to parse.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 15,
			Offset: 40,
			Speed:  7,
		},
		Ball: BallConfig{
			Radius:    8,
			VelocityX: 3,
			VelocityY: -5,
		},
		Blocks: Layout{
			Width:   64,
			Height:  24,
			Gap:     4,
			OriginX: 28,
			OriginY: 80,
		},
		Symbols: map[string]SymbolConfig{
			"#": {Color: "gray", Points: 10},
			"W": {Color: "white", Points: 50},
			"O": {Color: "orange", Points: 60},
			"C": {Color: "cyan", Points: 70},
			"G": {Color: "green", Points: 80},
			"R": {Color: "red", Points: 90},
			"B": {Color: "blue", Points: 100},
			"P": {Color: "magenta", Points: 110},
			"Y": {Color: "yellow", Points: 120},
			"S": {Color: "silver", Points: 150},
		},
		Gameplay: GameplayConfig{
			Lives:                3,
			GameOverDelayMS:      1500,
			LevelCompleteMessage: "LEVEL COMPLETE!",
			GameOverMessage:      "GAME OVER",
		},
		Colors: ColorScheme{
			Background: "black",
			Paddle:     "white",
			Ball:       "yellow",
		},
		Host: HostConfig{
			Name:      "terminal",
			Title:     "Arkanoid",
			KeyHoldMS: 180,
		},
		LogLevel: "info",
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
