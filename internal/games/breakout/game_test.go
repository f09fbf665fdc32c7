package breakout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// scriptedPhysics replays a fixed sequence of collision answers, one per call.
type scriptedPhysics struct {
	integrated  int
	onIntegrate func(ball *Ball)
	paddle      []bool
	bricks      [][]*Brick
}

func (s *scriptedPhysics) Integrate(ball *Ball, _ float64) {
	s.integrated++
	if s.onIntegrate != nil {
		s.onIntegrate(ball)
	}
}

func (s *scriptedPhysics) CollidePaddle(_ *Ball, _ *Paddle) bool {
	if len(s.paddle) == 0 {
		return false
	}
	hit := s.paddle[0]
	s.paddle = s.paddle[1:]
	return hit
}

func (s *scriptedPhysics) CollideBricks(_ *Ball, _ []*Brick) []*Brick {
	if len(s.bricks) == 0 {
		return nil
	}
	hits := s.bricks[0]
	s.bricks = s.bricks[1:]
	return hits
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func newTestGame(t *testing.T, cfg config.BreakoutConfig, physics Physics) *Game {
	t.Helper()
	g := NewWith(cfg, physics)
	g.Reset(testRuntime())
	return g
}

func frame(pointerX float64, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.PointerX = pointerX
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startGame starts a session with the pointer in the middle of an 80-column
// screen, which maps to x=400 on the default field.
func startGame(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(frame(40, core.ActionStart))
	if !res.Has(core.EventStarted) {
		t.Fatalf("Start did not emit EventStarted, events=%v", res.Events)
	}
}

// dropBall makes the next integration push the ball below the field.
func dropBall(p *scriptedPhysics) {
	p.onIntegrate = func(ball *Ball) {
		ball.MoveTo(ball.Pos.X, 700)
	}
}

func TestNewSession(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakoutConfig(), &scriptedPhysics{})

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Score = %d, want 0", state.Score)
	}
	if state.Lives != 3 {
		t.Errorf("Lives = %d, want 3", state.Lives)
	}
	if state.GameOver {
		t.Error("new session should not be over")
	}
	if g.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want idle", g.Phase())
	}
	if g.Playing() {
		t.Error("new session should not be playing")
	}
	if got := g.Bricks().AliveCount(); got != 36 {
		t.Errorf("AliveCount = %d, want 36", got)
	}
	if g.Ball().IsActive() {
		t.Error("ball should be inactive before start")
	}

	hud := g.HUD()
	if !hud.StartButton {
		t.Error("start button should be visible")
	}
	if hud.ScoreText != "Points: 0" || hud.LivesText != "Lives: 3" {
		t.Errorf("HUD = %q / %q", hud.ScoreText, hud.LivesText)
	}
	if hud.LifeLost || hud.Message != "" {
		t.Errorf("unexpected overlay: %+v", hud)
	}
}

func TestIdleIgnoresTicks(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)

	for i := 0; i < 10; i++ {
		res := g.Step(frame(10))
		if len(res.Events) != 0 {
			t.Fatalf("unexpected events in idle: %v", res.Events)
		}
	}

	if p.integrated != 0 {
		t.Errorf("integrated %d times while idle", p.integrated)
	}
	if g.Paddle().Pos.X != 400 {
		t.Errorf("paddle moved while idle: x=%v", g.Paddle().Pos.X)
	}
}

func TestStartServesBall(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)

	startGame(t, g)

	if g.Phase() != PhasePlaying {
		t.Fatalf("Phase = %v, want playing", g.Phase())
	}
	if !g.Playing() {
		t.Error("Playing() should be true after start")
	}
	if g.HUD().StartButton {
		t.Error("start button should be hidden after start")
	}

	ball := g.Ball()
	if !ball.IsActive() {
		t.Fatal("ball should be active after start")
	}
	if ball.Pos != core.V(400, 575) {
		t.Errorf("ball pos = %+v, want (400, 575)", ball.Pos)
	}
	if ball.Vel != core.V(150, -150) {
		t.Errorf("ball vel = %+v, want (150, -150)", ball.Vel)
	}
	if p.integrated != 0 {
		t.Errorf("start tick should not integrate, got %d", p.integrated)
	}

	g.Step(frame(40))
	if p.integrated != 1 {
		t.Errorf("integrated = %d after one playing tick, want 1", p.integrated)
	}
}

func TestPaddleFollowsPointer(t *testing.T) {
	tests := []struct {
		name     string
		pointerX float64
		want     float64
	}{
		{"no reading centres", 0, 400},
		{"negative centres", -3, 400},
		{"left quarter", 20, 200},
		{"middle", 40, 400},
		{"right edge", 80, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, config.DefaultBreakoutConfig(), &scriptedPhysics{})
			startGame(t, g)

			g.Step(frame(tt.pointerX))
			if got := g.Paddle().Pos.X; got != tt.want {
				t.Errorf("paddle x = %v, want %v", got, tt.want)
			}
			if got := g.Paddle().Pos.Y; got != 595 {
				t.Errorf("paddle y = %v, want 595", got)
			}
		})
	}
}

func TestPaddleHitSteersBall(t *testing.T) {
	tests := []struct {
		name  string
		ballX float64
		want  float64
	}{
		{"left of centre", 380, -100},
		{"dead centre", 400, 0},
		{"right of centre", 430, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPhysics{}
			g := newTestGame(t, config.DefaultBreakoutConfig(), p)
			startGame(t, g)

			p.onIntegrate = func(ball *Ball) {
				ball.MoveTo(tt.ballX, 570)
			}
			p.paddle = []bool{true}

			res := g.Step(frame(40))

			if got := g.Ball().Vel.X; got != tt.want {
				t.Errorf("vx = %v, want %v", got, tt.want)
			}
			if !res.Has(core.EventPaddleHit) {
				t.Error("expected EventPaddleHit")
			}
			if !g.Ball().Wobble.Playing() {
				t.Error("wobble should play after a paddle hit")
			}
		})
	}
}

func TestBrickHitScoresOnce(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	brick := g.Bricks().At(0, 0)
	p.bricks = [][]*Brick{{brick}, {brick}}

	res := g.Step(frame(40))
	if !res.Has(core.EventBrickDestroyed) {
		t.Error("expected EventBrickDestroyed")
	}
	res = g.Step(frame(40))
	if res.Has(core.EventBrickDestroyed) {
		t.Error("second hit on the same brick should not destroy it again")
	}

	if got := g.State().Score; got != 10 {
		t.Errorf("Score = %d, want 10", got)
	}
	if got := g.Bricks().AliveCount(); got != 35 {
		t.Errorf("AliveCount = %d, want 35", got)
	}
	if g.HUD().ScoreText != "Points: 10" {
		t.Errorf("ScoreText = %q", g.HUD().ScoreText)
	}
}

func TestTwoBricksInOneTick(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	p.bricks = [][]*Brick{{g.Bricks().At(3, 0), g.Bricks().At(4, 0)}}
	res := g.Step(frame(40))

	destroyed := 0
	for _, ev := range res.Events {
		if ev == core.EventBrickDestroyed {
			destroyed++
		}
	}
	if destroyed != 2 {
		t.Errorf("destroyed %d bricks, want 2", destroyed)
	}
	if got := g.State().Score; got != 20 {
		t.Errorf("Score = %d, want 20", got)
	}
}

func TestPaddleAndBrickInOneTick(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	p.onIntegrate = func(ball *Ball) {
		ball.MoveTo(380, 570)
	}
	p.paddle = []bool{true}
	p.bricks = [][]*Brick{{g.Bricks().At(0, 0)}}

	res := g.Step(frame(40))

	want := []core.Event{core.EventPaddleHit, core.EventBrickDestroyed}
	if len(res.Events) != len(want) {
		t.Fatalf("events = %v, want %v", res.Events, want)
	}
	for i, ev := range want {
		if res.Events[i] != ev {
			t.Errorf("events[%d] = %v, want %v", i, res.Events[i], ev)
		}
	}
	if got := g.Ball().Vel.X; got != -100 {
		t.Errorf("vx = %v, want -100", got)
	}
	if got := g.State().Score; got != 10 {
		t.Errorf("Score = %d, want 10", got)
	}
	if got := g.Bricks().AliveCount(); got != 35 {
		t.Errorf("AliveCount = %d, want 35", got)
	}
}

func TestBrickShrinkDuration(t *testing.T) {
	tests := []struct {
		name       string
		shrinkMS   int
		wantActive bool
	}{
		{"default shrink keeps the brick for a while", 200, true},
		{"zero shrink removes the brick the same tick", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultBreakoutConfig()
			cfg.Bricks.ShrinkMS = tt.shrinkMS

			p := &scriptedPhysics{}
			g := newTestGame(t, cfg, p)
			startGame(t, g)

			brick := g.Bricks().At(5, 1)
			p.bricks = [][]*Brick{{brick}}
			g.Step(frame(40))

			if brick.Alive {
				t.Error("brick should stop being alive on the hit")
			}
			if got := brick.IsActive(); got != tt.wantActive {
				t.Errorf("IsActive = %v, want %v", got, tt.wantActive)
			}
		})
	}
}

func TestLowTickRateBallStillHitsPaddle(t *testing.T) {
	for _, rate := range []int{1, 2, 10, 60} {
		t.Run(fmt.Sprintf("%d fps", rate), func(t *testing.T) {
			g := NewWith(config.DefaultBreakoutConfig(), nil)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: rate})
			startGame(t, g)

			// Straight down onto the paddle, fast enough at 1 fps to cover
			// several paddle heights in one tick.
			g.Ball().MoveTo(400, 450)
			g.Ball().SetVelocity(0, 300)

			hit := false
			for i := 0; i < 2*rate; i++ {
				res := g.Step(frame(40))
				if res.Has(core.EventLifeLost) {
					t.Fatal("ball passed through the paddle")
				}
				if res.Has(core.EventPaddleHit) {
					hit = true
					break
				}
			}

			if !hit {
				t.Fatal("ball never hit the paddle")
			}
			if g.Ball().Vel.Y >= 0 {
				t.Errorf("vy = %v, want the ball heading up", g.Ball().Vel.Y)
			}
			if g.Ball().Bounds().Bottom() > g.Paddle().Bounds().Y+1e-9 {
				t.Errorf("ball bottom %v below paddle top %v", g.Ball().Bounds().Bottom(), g.Paddle().Bounds().Y)
			}
			if got := g.State().Lives; got != 3 {
				t.Errorf("Lives = %d, want 3", got)
			}
		})
	}
}

func TestClearingAllBricksWins(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	for _, b := range g.Bricks().Bricks() {
		p.bricks = append(p.bricks, []*Brick{b})
	}

	wins := 0
	for i := 0; i < 36; i++ {
		res := g.Step(frame(40))
		for _, ev := range res.Events {
			if ev == core.EventWon {
				wins++
			}
		}
	}

	if wins != 1 {
		t.Errorf("EventWon raised %d times, want 1", wins)
	}
	state := g.State()
	if state.Score != 360 {
		t.Errorf("Score = %d, want 360", state.Score)
	}
	if !state.GameOver || state.Outcome != core.OutcomeWon {
		t.Errorf("state = %+v, want won", state)
	}
	if g.Phase() != PhaseWon {
		t.Errorf("Phase = %v, want won", g.Phase())
	}
	if !g.Ball().Destroyed() || g.Ball().IsActive() {
		t.Error("ball should be destroyed on win")
	}
	if g.HUD().Message != WonMessage {
		t.Errorf("Message = %q, want %q", g.HUD().Message, WonMessage)
	}

	// No further simulation or events.
	integrated := p.integrated
	for i := 0; i < 20; i++ {
		res := g.Step(frame(40, core.ActionStart, core.ActionPointerDown))
		if len(res.Events) != 0 {
			t.Fatalf("events after win: %v", res.Events)
		}
	}
	if p.integrated != integrated {
		t.Error("physics ran after the session ended")
	}
}

func TestBallOutLosesLife(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	g.Step(frame(10))
	if g.Paddle().Pos.X != 100 {
		t.Fatalf("paddle x = %v, want 100", g.Paddle().Pos.X)
	}

	dropBall(p)
	res := g.Step(frame(10))
	p.onIntegrate = nil

	if !res.Has(core.EventLifeLost) {
		t.Fatalf("expected EventLifeLost, got %v", res.Events)
	}
	if res.Has(core.EventLost) {
		t.Fatal("losing one of three lives should not end the game")
	}
	if g.Phase() != PhaseLifeLost {
		t.Errorf("Phase = %v, want life_lost", g.Phase())
	}
	if got := g.State().Lives; got != 2 {
		t.Errorf("Lives = %d, want 2", got)
	}

	ball := g.Ball()
	if !ball.Vel.IsZero() {
		t.Errorf("ball vel = %+v, want zero", ball.Vel)
	}
	if ball.Pos != core.V(400, 575) {
		t.Errorf("ball pos = %+v, want serve point", ball.Pos)
	}
	if g.Paddle().Pos.X != 400 {
		t.Errorf("paddle x = %v, want centred", g.Paddle().Pos.X)
	}

	hud := g.HUD()
	if !hud.LifeLost || hud.LivesText != "Lives: 2" {
		t.Errorf("HUD = %+v", hud)
	}

	// Dormant until the pointer is pressed.
	integrated := p.integrated
	for i := 0; i < 5; i++ {
		g.Step(frame(10, core.ActionStart))
	}
	if p.integrated != integrated || g.Phase() != PhaseLifeLost {
		t.Error("game advanced without a pointer press")
	}

	res = g.Step(frame(10, core.ActionPointerDown))
	if !res.Has(core.EventResumed) {
		t.Errorf("expected EventResumed, got %v", res.Events)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase = %v, want playing", g.Phase())
	}
	if ball.Vel != core.V(150, -150) {
		t.Errorf("ball vel = %+v, want (150, -150)", ball.Vel)
	}
	if g.HUD().LifeLost {
		t.Error("life lost message should be hidden after resume")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1

	p := &scriptedPhysics{}
	g := newTestGame(t, cfg, p)
	startGame(t, g)

	dropBall(p)
	res := g.Step(frame(40))

	if !res.Has(core.EventLost) {
		t.Fatalf("expected EventLost, got %v", res.Events)
	}
	if res.Has(core.EventLifeLost) {
		t.Error("final life should not raise EventLifeLost")
	}

	state := g.State()
	if state.Lives != 0 {
		t.Errorf("Lives = %d, want 0", state.Lives)
	}
	if !state.GameOver || state.Outcome != core.OutcomeLost {
		t.Errorf("state = %+v, want lost", state)
	}
	if !g.Ball().Destroyed() {
		t.Error("ball should be destroyed on loss")
	}
	if g.HUD().Message != LostMessage {
		t.Errorf("Message = %q", g.HUD().Message)
	}

	res = g.Step(frame(40, core.ActionPointerDown))
	if len(res.Events) != 0 || g.Phase() != PhaseLost {
		t.Error("pointer press after loss should be ignored")
	}
}

func TestLosingEveryLife(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	var events []core.Event
	for i := 0; i < 3; i++ {
		dropBall(p)
		res := g.Step(frame(40))
		events = append(events, res.Events...)
		p.onIntegrate = nil
		g.Step(frame(40, core.ActionPointerDown))
	}

	want := []core.Event{core.EventLifeLost, core.EventLifeLost, core.EventLost}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}
	if g.State().Lives != 0 {
		t.Errorf("Lives = %d, want 0", g.State().Lives)
	}
}

func TestActionsOutsideTheirPhaseAreIgnored(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)

	if g.PointerDown() {
		t.Error("PointerDown should be ignored while idle")
	}
	if g.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want idle", g.Phase())
	}

	startGame(t, g)
	g.Ball().MoveTo(300, 300)

	res := g.Step(frame(40, core.ActionStart, core.ActionPointerDown))
	if res.Has(core.EventStarted) || res.Has(core.EventResumed) {
		t.Errorf("unexpected events while playing: %v", res.Events)
	}
	if g.Ball().Pos != core.V(300, 300) {
		t.Error("ball was re-served while playing")
	}
	if g.Start() {
		t.Error("Start should be ignored while playing")
	}
}

func TestRestart(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1

	p := &scriptedPhysics{}
	g := newTestGame(t, cfg, p)
	startGame(t, g)

	p.bricks = [][]*Brick{{g.Bricks().At(0, 0)}}
	g.Step(frame(40))

	// Ignored while the session is running.
	g.Step(frame(40, core.ActionRestart))
	if g.State().Score != 10 {
		t.Fatal("restart should be ignored while playing")
	}

	dropBall(p)
	g.Step(frame(40))
	p.onIntegrate = nil
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(frame(40, core.ActionRestart))

	state := g.State()
	if state.Score != 0 || state.Lives != 1 || state.GameOver {
		t.Errorf("state after restart = %+v", state)
	}
	if g.Phase() != PhaseIdle || !g.HUD().StartButton {
		t.Error("restart should return to the start button")
	}
	if g.Bricks().AliveCount() != 36 {
		t.Errorf("AliveCount = %d, want 36", g.Bricks().AliveCount())
	}
	if g.Ball().Destroyed() || g.Ball().IsActive() {
		t.Error("restart should bring back an inactive ball")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := NewWith(config.DefaultBreakoutConfig(), &scriptedPhysics{})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60})

	g.Step(frame(10, core.ActionStart))
	if g.Phase() != PhaseIdle {
		t.Error("game should not start on a tiny screen")
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime()

	// Sweep the pointer across the screen after starting.
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		pointer := float64(1 + (i*3)%80)
		inputSequence[i] = frame(pointer)
		if i == 10 {
			inputSequence[i].Set(core.ActionStart)
		}
		if i%120 == 0 {
			inputSequence[i].Set(core.ActionPointerDown)
		}
	}

	run := func() Snapshot {
		g := NewWith(config.DefaultBreakoutConfig(), nil)
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Errorf("Determinism failed: ball positions differ")
	}
	if snap1.Tick == 0 {
		t.Error("no ticks simulated")
	}
}

func TestGameMetadata(t *testing.T) {
	g := New()
	if g.ID() != "breakout" {
		t.Errorf("ID = %q, want breakout", g.ID())
	}
	if g.Title() != "Breakout" {
		t.Errorf("Title = %q, want Breakout", g.Title())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		want     string
		terminal bool
	}{
		{PhaseIdle, "idle", false},
		{PhasePlaying, "playing", false},
		{PhaseLifeLost, "life_lost", false},
		{PhaseWon, "won", true},
		{PhaseLost, "lost", true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.phase.Terminal(); got != tt.terminal {
				t.Errorf("Terminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

func TestResizeKeepsSession(t *testing.T) {
	p := &scriptedPhysics{}
	g := newTestGame(t, config.DefaultBreakoutConfig(), p)
	startGame(t, g)

	p.bricks = [][]*Brick{{g.Bricks().At(0, 0)}}
	g.Step(frame(40))

	g.Resize(40, 20)
	g.Step(frame(10))

	if g.Phase() != PhasePlaying || g.State().Score != 10 {
		t.Errorf("resize restarted the session: %+v", g.State())
	}
	if got := g.Paddle().Pos.X; got != 200 {
		t.Errorf("paddle x = %v, want 200 on a 40-column screen", got)
	}

	g.Resize(10, 5)
	g.Step(frame(5))
	if g.Paddle().Pos.X != 200 {
		t.Error("game should pause while the screen is too small")
	}
}
