package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Physics is the engine the game delegates movement and collision detection
// to. The game only decides what collisions mean.
type Physics interface {
	// Integrate moves the ball by its velocity over dt seconds and bounces it
	// off the world edges the engine collides with.
	Integrate(ball *Ball, dt float64)

	// CollidePaddle reports whether the ball overlaps the paddle, separating
	// the ball and bouncing it when it does.
	CollidePaddle(ball *Ball, paddle *Paddle) bool

	// CollideBricks returns every alive brick the ball overlaps this tick,
	// separating and bouncing the ball off each.
	CollideBricks(ball *Ball, bricks []*Brick) []*Brick
}

// ArcadePhysics is a minimal axis-aligned physics engine: constant velocity,
// perfectly elastic bounces, immovable paddle and bricks.
type ArcadePhysics struct {
	World core.Bounds

	// CheckDown makes the bottom edge solid. Off by default so the ball can
	// leave the field below the paddle.
	CheckDown bool
}

// NewArcadePhysics creates an engine for a w×h world with an open bottom.
func NewArcadePhysics(w, h float64) *ArcadePhysics {
	return &ArcadePhysics{World: worldBounds(w, h)}
}

// Integrate implements Physics.
func (p *ArcadePhysics) Integrate(ball *Ball, dt float64) {
	if !ball.IsActive() || dt <= 0 {
		return
	}

	ball.Pos = ball.Pos.Add(ball.Vel.Scale(dt))

	b := ball.Bounds()
	switch {
	case b.X < p.World.X:
		ball.Pos.X = p.World.X + ball.W/2
		ball.Vel.X = math.Abs(ball.Vel.X)
	case b.Right() > p.World.Right():
		ball.Pos.X = p.World.Right() - ball.W/2
		ball.Vel.X = -math.Abs(ball.Vel.X)
	}

	switch {
	case b.Y < p.World.Y:
		ball.Pos.Y = p.World.Y + ball.H/2
		ball.Vel.Y = math.Abs(ball.Vel.Y)
	case p.CheckDown && b.Bottom() > p.World.Bottom():
		ball.Pos.Y = p.World.Bottom() - ball.H/2
		ball.Vel.Y = -math.Abs(ball.Vel.Y)
	}
}

// CollidePaddle implements Physics.
func (p *ArcadePhysics) CollidePaddle(ball *Ball, paddle *Paddle) bool {
	if !ball.IsActive() || !paddle.IsActive() {
		return false
	}
	other := paddle.Bounds()
	if !ball.Bounds().Overlaps(other) {
		return false
	}
	separate(ball, other)
	return true
}

// CollideBricks implements Physics. Overlaps are gathered before any
// separation so a ball straddling two bricks hits both.
func (p *ArcadePhysics) CollideBricks(ball *Ball, bricks []*Brick) []*Brick {
	if !ball.IsActive() {
		return nil
	}

	bb := ball.Bounds()
	var hits []*Brick
	for _, brick := range bricks {
		if brick.Alive && brick.IsActive() && bb.Overlaps(brick.Bounds()) {
			hits = append(hits, brick)
		}
	}

	for _, brick := range hits {
		separate(ball, brick.Bounds())
	}
	return hits
}

// separate pushes the ball out of an immovable box along the axis of least
// penetration and points its velocity away from the box on that axis.
func separate(ball *Ball, other core.Bounds) {
	dx, dy := ball.Bounds().Penetration(other)
	if dx <= 0 || dy <= 0 {
		return
	}

	c := other.Center()
	if dy <= dx {
		if ball.Pos.Y < c.Y {
			ball.Pos.Y -= dy
			ball.Vel.Y = -math.Abs(ball.Vel.Y)
		} else {
			ball.Pos.Y += dy
			ball.Vel.Y = math.Abs(ball.Vel.Y)
		}
		return
	}

	if ball.Pos.X < c.X {
		ball.Pos.X -= dx
		ball.Vel.X = -math.Abs(ball.Vel.X)
	} else {
		ball.Pos.X += dx
		ball.Vel.X = math.Abs(ball.Vel.X)
	}
}
