package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Body is the narrow set of commands the game issues to a scene object.
type Body interface {
	MoveTo(x, y float64)
	SetVelocity(vx, vy float64)
	Destroy()
	IsActive() bool
}

// Animation plays a fixed frame sequence, advanced once per tick.
type Animation struct {
	Frames     []int
	FrameTicks int // Ticks each frame stays on screen
	Repeat     int // Extra plays after the first

	tick    int
	playing bool
}

// NewAnimation builds an animation from a frame rate expressed in frames per
// second, converted to ticks at the given tick rate.
func NewAnimation(frames []int, fps, repeat, tickRate int) Animation {
	frameTicks := 1
	if fps > 0 && tickRate > fps {
		frameTicks = (tickRate + fps/2) / fps
	}
	return Animation{
		Frames:     append([]int(nil), frames...),
		FrameTicks: frameTicks,
		Repeat:     max(repeat, 0),
	}
}

// Play restarts the animation from its first frame.
func (a *Animation) Play() {
	if len(a.Frames) == 0 {
		return
	}
	a.tick = 0
	a.playing = true
}

// Playing reports whether the animation is running.
func (a *Animation) Playing() bool {
	return a.playing
}

// Advance moves the animation forward by one tick.
func (a *Animation) Advance() {
	if !a.playing {
		return
	}
	a.tick++
	if a.tick >= a.totalTicks() {
		a.playing = false
		a.tick = 0
	}
}

// Frame returns the frame index to draw. A stopped animation shows frame 0.
func (a *Animation) Frame() int {
	if !a.playing || len(a.Frames) == 0 {
		return 0
	}
	step := a.tick / max(a.FrameTicks, 1)
	return a.Frames[step%len(a.Frames)]
}

func (a *Animation) totalTicks() int {
	return len(a.Frames) * max(a.FrameTicks, 1) * (a.Repeat + 1)
}

// Tween shrinks a sprite's scale from 1 to 0 over a fixed number of ticks.
type Tween struct {
	total     int
	remaining int
	running   bool
	finished  bool
	done      func()
}

// Start begins the tween. onComplete runs once, on the tick the scale reaches 0.
// A zero-length tween completes on the first Advance.
func (t *Tween) Start(ticks int, onComplete func()) {
	t.total = max(ticks, 0)
	t.remaining = t.total
	t.running = true
	t.finished = false
	t.done = onComplete
}

// Running reports whether the tween is in progress.
func (t *Tween) Running() bool {
	return t.running
}

// Scale returns the current scale factor in [0, 1]: 1 before the tween
// starts, 0 once it has finished.
func (t *Tween) Scale() float64 {
	if t.finished {
		return 0
	}
	if !t.running || t.total == 0 {
		return 1
	}
	return float64(t.remaining) / float64(t.total)
}

// Advance moves the tween forward by one tick.
func (t *Tween) Advance() {
	if !t.running {
		return
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.running = false
		t.finished = true
		if t.done != nil {
			done := t.done
			t.done = nil
			done()
		}
	}
}

// msToTicks converts a duration in milliseconds to whole ticks, rounding up.
func msToTicks(ms, tickRate int) int {
	if ms <= 0 || tickRate <= 0 {
		return 0
	}
	return (ms*tickRate + 999) / 1000
}

// worldBounds returns the play-field rectangle.
func worldBounds(w, h float64) core.Bounds {
	return core.Bounds{X: 0, Y: 0, W: w, H: h}
}
