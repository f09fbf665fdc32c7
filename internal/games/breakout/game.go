// Package breakout implements a single-screen brick breaker: a ball bounces
// between the paddle and the walls, destroying a grid of bricks, until every
// brick is gone or every life is lost.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Phase is a state of the session.
type Phase int

const (
	PhaseIdle     Phase = iota // Start button shown, ball not served
	PhasePlaying               // Ball in play
	PhaseLifeLost              // Ball parked, waiting for a pointer press
	PhaseWon                   // All bricks destroyed (terminal)
	PhaseLost                  // No lives left (terminal)
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLifeLost:
		return "life_lost"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Overlay messages.
const (
	LifeLostMessage = "Life lost, click to continue"
	WonMessage      = "You won the game, congratulations!"
	LostMessage     = "You lost, game over!"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// HUD is the overlay text and widget visibility for the presentation layer.
type HUD struct {
	ScoreText   string
	LivesText   string
	StartButton bool   // Start button visible (Idle)
	LifeLost    bool   // "Life lost" message visible
	Message     string // Terminal notification, empty while the session runs
}

// Game is the session state machine. It owns the scoreboard and the phase,
// drives the scene objects and asks the Physics engine about overlaps.
type Game struct {
	fixedCfg      *config.BreakoutConfig
	customPhysics Physics

	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	physics Physics
	policy  CollisionPolicy

	// Scene
	ball   *Ball
	paddle *Paddle
	bricks *BrickField

	balls *BallController
	board *Scoreboard

	// Session state
	phase        Phase
	playing      bool
	showStart    bool
	showLifeLost bool
	outcome      core.Outcome
	tickCount    int
	events       []core.Event

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game that loads its configuration on Reset and uses the
// built-in arcade physics.
func New() *Game {
	return &Game{}
}

// NewWith creates a game with a fixed configuration and physics engine.
// A nil physics falls back to ArcadePhysics.
func NewWith(cfg config.BreakoutConfig, physics Physics) *Game {
	return &Game{fixedCfg: &cfg, customPhysics: physics}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a new session: fresh grid, full lives, ball waiting on the
// start button.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		g.cfg = cfg
	}

	w, h := g.cfg.World.Width, g.cfg.World.Height

	g.physics = g.customPhysics
	if g.physics == nil {
		g.physics = NewArcadePhysics(w, h)
	}

	g.policy = CollisionPolicy{
		SteerFactor: g.cfg.Paddle.SteerFactor,
		BrickPoints: g.cfg.Gameplay.BrickPoints,
		ShrinkTicks: msToTicks(g.cfg.Bricks.ShrinkMS, runtime.TickRate),
	}

	serve := core.V(w/2, h-g.cfg.Ball.ServeOffset)
	g.ball = &Ball{
		Pos:    serve,
		W:      g.cfg.Ball.Width,
		H:      g.cfg.Ball.Height,
		Wobble: NewAnimation(g.cfg.Ball.WobbleFrames, g.cfg.Ball.WobbleFPS, g.cfg.Ball.WobbleRepeat, runtime.TickRate),
	}
	g.paddle = &Paddle{
		Pos:       core.V(w/2, h-g.cfg.Paddle.BottomOffset),
		W:         g.cfg.Paddle.Width,
		H:         g.cfg.Paddle.Height,
		Immovable: true,
	}
	g.bricks = NewBrickField(LayoutFromConfig(g.cfg.Bricks))
	g.balls = NewBallController(g.ball, serve)
	g.board = NewScoreboard(g.cfg.Gameplay.Lives)

	g.phase = PhaseIdle
	g.playing = false
	g.showStart = true
	g.showLifeLost = false
	g.outcome = core.OutcomeNone
	g.tickCount = 0
	g.events = nil

	g.minScreenW = 30
	g.minScreenH = 10
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Resize follows a terminal resize without restarting the session. The
// pointer is mapped against the new width from the next tick on.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = screenW < g.minScreenW || screenH < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionRestart) && g.phase.Terminal() {
		g.Reset(g.runtime)
		return g.result()
	}

	g.tickCount++

	switch g.phase {
	case PhaseIdle:
		if in.Has(core.ActionStart) {
			g.Start()
		}
	case PhaseLifeLost:
		if in.Has(core.ActionPointerDown) {
			g.PointerDown()
		}
	case PhasePlaying:
		g.update(in)
	}

	// Cosmetic animations keep running after the session ends.
	g.bricks.Update()
	g.ball.Wobble.Advance()

	return g.result()
}

// Start handles the start button. Only valid while Idle.
func (g *Game) Start() bool {
	if g.phase != PhaseIdle {
		return false
	}
	g.showStart = false
	g.balls.Serve(g.serveVelocity())
	g.playing = true
	g.phase = PhasePlaying
	g.emit(core.EventStarted)
	return true
}

// PointerDown handles a pointer press. It only resumes play after a lost
// life; in every other phase it is ignored.
func (g *Game) PointerDown() bool {
	if g.phase != PhaseLifeLost {
		return false
	}
	g.showLifeLost = false
	g.balls.Serve(g.serveVelocity())
	g.phase = PhasePlaying
	g.emit(core.EventResumed)
	return true
}

// update runs one tick of play. The tick is split into sub-steps short
// enough that the ball cannot pass through the paddle or a brick between
// two collision checks.
func (g *Game) update(in core.InputFrame) {
	g.movePaddle(in.PointerX)

	remaining := 1 / float64(g.runtime.TickRate)
	for remaining > 0 && g.phase == PhasePlaying && g.ball.IsActive() {
		dt := g.subStep(remaining)
		remaining -= dt
		g.advance(dt)
	}
}

// advance integrates the ball over dt and resolves what it ran into.
func (g *Game) advance(dt float64) {
	g.physics.Integrate(g.ball, dt)

	if g.physics.CollidePaddle(g.ball, g.paddle) {
		g.handlePaddleHit()
	}

	for _, brick := range g.physics.CollideBricks(g.ball, g.bricks.Bricks()) {
		g.handleBrickHit(brick)
	}

	if g.ball.IsActive() && !worldBounds(g.cfg.World.Width, g.cfg.World.Height).Overlaps(g.ball.Bounds()) {
		g.ballLeftScreen()
	}
}

// subStep returns the longest slice of remaining during which the ball moves
// at most half the thinnest body it can hit.
func (g *Game) subStep(remaining float64) float64 {
	speed := max(math.Abs(g.ball.Vel.X), math.Abs(g.ball.Vel.Y))
	if speed == 0 {
		return remaining
	}
	limit := min(g.ball.W, g.ball.H, g.paddle.H, g.cfg.Bricks.Height) / 2
	if limit <= 0 {
		return remaining
	}
	return min(remaining, limit/speed)
}

// movePaddle follows the pointer. Before the first pointer reading the
// paddle sits in the middle of the field.
func (g *Game) movePaddle(pointerCells float64) {
	x := g.cfg.World.Width / 2
	if pointerCells > 0 && g.runtime.ScreenW > 0 {
		x = pointerCells * g.cfg.World.Width / float64(g.runtime.ScreenW)
	}
	g.paddle.MoveTo(x, g.paddle.Pos.Y)
}

func (g *Game) handlePaddleHit() {
	out := g.policy.PaddleHit(g.paddle.Pos.X, g.ball.Pos.X)
	g.ball.SetVelocity(out.VelocityX, g.ball.Vel.Y)
	if out.Wobble {
		g.ball.Wobble.Play()
	}
	g.emit(core.EventPaddleHit)
}

// handleBrickHit scores the brick right away and checks the win condition
// without waiting for the shrink animation.
func (g *Game) handleBrickHit(brick *Brick) {
	if g.phase != PhasePlaying {
		return
	}
	out := g.policy.BrickHit(brick)
	if !out.Destroy || !g.bricks.MarkDestroyed(brick, out.ShrinkTicks) {
		return
	}

	g.board.AddScore(out.Points)
	g.emit(core.EventBrickDestroyed)

	if g.bricks.AliveCount() == 0 {
		g.balls.Destroy()
		g.finish(PhaseWon, core.OutcomeWon, core.EventWon)
	}
}

func (g *Game) ballLeftScreen() {
	lives := g.board.LoseLife()
	g.balls.Stop()

	if lives > 0 {
		g.balls.Park()
		g.paddle.MoveTo(g.cfg.World.Width/2, g.cfg.World.Height-g.cfg.Paddle.BottomOffset)
		g.showLifeLost = true
		g.phase = PhaseLifeLost
		g.emit(core.EventLifeLost)
		return
	}

	g.balls.Destroy()
	g.finish(PhaseLost, core.OutcomeLost, core.EventLost)
}

// finish enters a terminal phase. The terminal event is raised once.
func (g *Game) finish(phase Phase, outcome core.Outcome, ev core.Event) {
	if g.phase.Terminal() {
		return
	}
	g.phase = phase
	g.outcome = outcome
	g.emit(ev)
}

func (g *Game) serveVelocity() core.Vec2 {
	return core.V(g.cfg.Ball.ServeVX, g.cfg.Ball.ServeVY)
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Playing reports whether the session has been started.
func (g *Game) Playing() bool {
	return g.playing
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Bricks returns the brick field.
func (g *Game) Bricks() *BrickField {
	return g.bricks
}

// Scoreboard returns the scoreboard.
func (g *Game) Scoreboard() *Scoreboard {
	return g.board
}

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// HUD returns the overlay state.
func (g *Game) HUD() HUD {
	h := HUD{
		ScoreText:   g.board.ScoreText(),
		LivesText:   g.board.LivesText(),
		StartButton: g.showStart,
		LifeLost:    g.showLifeLost,
	}
	switch g.outcome {
	case core.OutcomeWon:
		h.Message = WonMessage
	case core.OutcomeLost:
		h.Message = LostMessage
	}
	return h
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		Lives:    g.board.Lives(),
		Phase:    g.phase.String(),
		GameOver: g.phase.Terminal(),
		Outcome:  g.outcome,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
