package breakout

import "math"

// Snapshot contains the session state that matters for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Score   int
	Lives   int
	Playing bool

	BallX, BallY   float64
	BallVX, BallVY float64
	BallActive     bool
	WobbleFrame    int

	PaddleX float64

	// Brick states in row-major order
	Alive []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := g.bricks.Bricks()
	alive := make([]bool, len(bricks))
	for i, b := range bricks {
		alive[i] = b.Alive
	}

	return Snapshot{
		Tick:    uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:   g.phase.String(),
		Score:   g.board.Score(),
		Lives:   g.board.Lives(),
		Playing: g.playing,

		BallX:       g.ball.Pos.X,
		BallY:       g.ball.Pos.Y,
		BallVX:      g.ball.Vel.X,
		BallVY:      g.ball.Vel.Y,
		BallActive:  g.ball.IsActive(),
		WobbleFrame: g.ball.Wobble.Frame(),

		PaddleX: g.paddle.Pos.X,

		Alive: alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WobbleFrame) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Playing)
	h = h*31 + boolBit(snap.BallActive)

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}

	for _, a := range snap.Alive {
		h = h*31 + boolBit(a)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
