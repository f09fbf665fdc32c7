package breakout

// CollisionPolicy decides what a collision does to the game. It does not
// detect collisions; the Physics engine reports them.
type CollisionPolicy struct {
	SteerFactor float64 // Horizontal speed per unit of off-centre distance
	BrickPoints int     // Score for destroying a brick
	ShrinkTicks int     // Length of the brick hit animation
}

// PaddleOutcome is the result of the ball touching the paddle.
type PaddleOutcome struct {
	VelocityX float64 // New horizontal velocity; vertical is left to the engine
	Wobble    bool    // Play the ball's wobble animation
}

// PaddleHit steers the ball away from the paddle centre: the further off
// centre the hit, the faster the ball leaves sideways.
func (p CollisionPolicy) PaddleHit(paddleX, ballX float64) PaddleOutcome {
	return PaddleOutcome{
		VelocityX: -p.SteerFactor * (paddleX - ballX),
		Wobble:    true,
	}
}

// BrickOutcome is the result of the ball touching a brick.
type BrickOutcome struct {
	Destroy     bool
	Points      int
	ShrinkTicks int
}

// BrickHit returns what happens to an alive brick. A brick that was already
// hit yields nothing, so repeated overlaps during its animation are harmless.
func (p CollisionPolicy) BrickHit(b *Brick) BrickOutcome {
	if b == nil || !b.Alive {
		return BrickOutcome{}
	}
	return BrickOutcome{
		Destroy:     true,
		Points:      max(p.BrickPoints, 0),
		ShrinkTicks: p.ShrinkTicks,
	}
}
