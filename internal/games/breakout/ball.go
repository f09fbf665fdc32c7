package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball is the ball sprite. Position is the centre.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2 // World units per second
	W, H   float64
	Wobble Animation

	active    bool
	destroyed bool
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Bounds {
	return core.CenteredBounds(b.Pos, b.W, b.H)
}

// MoveTo places the ball centre at (x, y).
func (b *Ball) MoveTo(x, y float64) {
	b.Pos = core.V(x, y)
}

// SetVelocity sets the ball velocity.
func (b *Ball) SetVelocity(vx, vy float64) {
	b.Vel = core.V(vx, vy)
}

// Destroy removes the ball from play for the rest of the session.
func (b *Ball) Destroy() {
	b.active = false
	b.destroyed = true
	b.Vel = core.Vec2{}
}

// IsActive reports whether the ball takes part in physics and collisions.
func (b *Ball) IsActive() bool {
	return b.active
}

// Destroyed reports whether Destroy has been called.
func (b *Ball) Destroyed() bool {
	return b.destroyed
}

// Paddle is the player's paddle. Position is the centre; Y never changes
// during play.
type Paddle struct {
	Pos       core.Vec2
	W, H      float64
	Immovable bool

	destroyed bool
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Bounds {
	return core.CenteredBounds(p.Pos, p.W, p.H)
}

// MoveTo places the paddle centre at (x, y).
func (p *Paddle) MoveTo(x, y float64) {
	p.Pos = core.V(x, y)
}

// SetVelocity is a no-op: the paddle is positioned directly from the pointer.
func (p *Paddle) SetVelocity(_, _ float64) {}

// Destroy removes the paddle from the scene.
func (p *Paddle) Destroy() {
	p.destroyed = true
}

// IsActive reports whether the paddle is in the scene.
func (p *Paddle) IsActive() bool {
	return !p.destroyed
}

// BallController owns the serve policy and the ball's lifecycle.
type BallController struct {
	ball  *Ball
	serve core.Vec2
}

// NewBallController creates a controller that serves from the given point.
func NewBallController(ball *Ball, serve core.Vec2) *BallController {
	return &BallController{ball: ball, serve: serve}
}

// ServePosition returns the launch point.
func (c *BallController) ServePosition() core.Vec2 {
	return c.serve
}

// Serve puts the ball on the launch point with the given velocity and arms
// it. A destroyed ball stays destroyed.
func (c *BallController) Serve(vel core.Vec2) {
	if c.ball.destroyed {
		return
	}
	c.ball.MoveTo(c.serve.X, c.serve.Y)
	c.ball.SetVelocity(vel.X, vel.Y)
	c.ball.active = true
}

// Stop zeroes the velocity but keeps the ball active.
func (c *BallController) Stop() {
	c.ball.SetVelocity(0, 0)
}

// Park stops the ball and returns it to the launch point.
func (c *BallController) Park() {
	c.Stop()
	c.ball.MoveTo(c.serve.X, c.serve.Y)
}

// Destroy deactivates the ball permanently. Calling it again is a no-op.
func (c *BallController) Destroy() {
	c.ball.Destroy()
}
