// Package config provides YAML-based game configuration loading for breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all tunables for a breakout session.
// Distances are world units, velocities are world units per second.
type BreakoutConfig struct {
	World    WorldConfig    `yaml:"world"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// WorldConfig defines the play-field rectangle.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Padding    float64 `yaml:"padding"`
	ShrinkMS   int     `yaml:"shrink_ms"` // Duration of the hit animation
}

// BallConfig defines the ball sprite and its serve.
type BallConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ServeOffset  float64 `yaml:"serve_offset"` // Distance of the serve point above the bottom edge
	ServeVX      float64 `yaml:"serve_vx"`
	ServeVY      float64 `yaml:"serve_vy"`
	WobbleFrames []int   `yaml:"wobble_frames"`
	WobbleFPS    int     `yaml:"wobble_fps"`
	WobbleRepeat int     `yaml:"wobble_repeat"`
}

// PaddleConfig defines the paddle sprite and steering.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the paddle centre above the bottom edge
	SteerFactor  float64 `yaml:"steer_factor"`  // vx = -factor * (paddle.x - ball.x)
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// Validate reports every setting that would make a session unplayable.
func (c BreakoutConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("bricks.rows", float64(c.Bricks.Rows))
	positive("bricks.columns", float64(c.Bricks.Columns))
	positive("ball.width", c.Ball.Width)
	positive("ball.height", c.Ball.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("gameplay.lives", float64(c.Gameplay.Lives))

	if c.Bricks.Padding < 0 {
		errs = append(errs, fmt.Errorf("bricks.padding must not be negative, got %v", c.Bricks.Padding))
	}
	if c.Bricks.ShrinkMS < 0 {
		errs = append(errs, fmt.Errorf("bricks.shrink_ms must not be negative, got %d", c.Bricks.ShrinkMS))
	}
	if c.Gameplay.BrickPoints < 0 {
		errs = append(errs, fmt.Errorf("gameplay.brick_points must not be negative, got %d", c.Gameplay.BrickPoints))
	}
	if c.Ball.WobbleFPS < 0 || c.Ball.WobbleRepeat < 0 {
		errs = append(errs, errors.New("ball.wobble_fps and ball.wobble_repeat must not be negative"))
	}
	if c.World.Height > 0 && (c.Ball.ServeOffset <= 0 || c.Ball.ServeOffset >= c.World.Height) {
		errs = append(errs, fmt.Errorf("ball.serve_offset must be inside the world, got %v", c.Ball.ServeOffset))
	}

	return errors.Join(errs...)
}
