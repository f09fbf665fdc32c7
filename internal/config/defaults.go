package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Bricks: BrickConfig{
			Width:      50,
			Height:     20,
			Rows:       3,
			Columns:    12,
			OffsetTop:  50,
			OffsetLeft: 70,
			Padding:    10,
			ShrinkMS:   200,
		},
		Ball: BallConfig{
			Width:        20,
			Height:       20,
			ServeOffset:  25,
			ServeVX:      150,
			ServeVY:      -150,
			WobbleFrames: []int{0, 1, 0, 2, 0, 1, 0, 2, 0},
			WobbleFPS:    24,
			WobbleRepeat: 2,
		},
		Paddle: PaddleConfig{
			Width:        104,
			Height:       24,
			BottomOffset: 5,
			SteerFactor:  5,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BrickPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
