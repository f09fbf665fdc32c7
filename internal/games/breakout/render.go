package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs
const (
	BrickGlyph     = '█'
	CrackedGlyph   = '▓'
	CrumbleGlyph   = '░'
	PaddleGlyph    = '▀'
	HUDSeparator   = '─'
	startLabel     = "START"
	startHint      = "Click or press Space"
	minBoxTextPad  = 4
	hudRows        = 2 // Score/lives line plus separator
	paddleRowsFree = 1 // Bottom row is reserved for the paddle
)

// BallGlyphs maps wobble frames to ball glyphs.
var BallGlyphs = []rune{'●', '◐', '◑'}

// viewport maps world coordinates onto the screen area below the HUD. The
// paddle always sits on the bottom row; everything else is scaled into the
// rows above it.
type viewport struct {
	sx, sy float64
	top    int
	bottom int // Last row available to the field above the paddle
	width  int
}

func newViewport(world config.WorldConfig, dst *core.Screen) viewport {
	rows := max(dst.Height()-hudRows-paddleRowsFree, 1)
	return viewport{
		sx:     float64(dst.Width()) / world.Width,
		sy:     float64(rows) / world.Height,
		top:    hudRows,
		bottom: hudRows + rows - 1,
		width:  dst.Width(),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return core.Clamp(v.top+int(math.Floor(y*v.sy)), v.top, v.bottom)
}

// span returns the first and last column covered by b, at least one cell wide.
func (v viewport) span(b core.Bounds) (int, int) {
	x0 := v.col(b.X)
	x1 := int(math.Ceil(b.Right()*v.sx)) - 1
	if x1 < x0 {
		x1 = x0
	}
	return x0, x1
}

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := newViewport(g.cfg.World, dst)

	g.renderHUD(dst)
	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws points on the left, lives on the right and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.HUD()
	dst.DrawText(1, 0, hud.ScoreText)
	dst.DrawText(dst.Width()-len(hud.LivesText)-1, 0, hud.LivesText)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, HUDSeparator, core.ColorGray)
	}
}

// renderBricks draws every brick still in the scene. Hit bricks shrink
// around their centre until their tween ends.
func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	for _, brick := range g.bricks.Bricks() {
		if !brick.IsActive() {
			continue
		}

		scale := brick.Scale()
		glyph := BrickGlyph
		if !brick.Alive {
			if scale <= 0 {
				continue
			}
			glyph = CrackedGlyph
			if scale < 0.5 {
				glyph = CrumbleGlyph
			}
		}

		b := core.CenteredBounds(brick.Pos, brick.W*scale, brick.H*scale)
		x0, x1 := v.span(b)
		y := v.row(brick.Pos.Y)
		color := core.RowColors[brick.Row%len(core.RowColors)]
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	if !g.paddle.IsActive() {
		return
	}
	x0, x1 := v.span(g.paddle.Bounds())
	y := dst.Height() - 1
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, PaddleGlyph, core.ColorWhite)
	}
}

// renderBall draws the ball while it is in the scene. Off-field positions
// are clipped by the screen.
func (g *Game) renderBall(dst *core.Screen, v viewport) {
	if g.ball.Destroyed() {
		return
	}
	if g.phase == PhasePlaying && !worldBounds(g.cfg.World.Width, g.cfg.World.Height).Overlaps(g.ball.Bounds()) {
		return
	}
	frame := g.ball.Wobble.Frame()
	glyph := BallGlyphs[core.Clamp(frame, 0, len(BallGlyphs)-1)]
	dst.SetColored(v.col(g.ball.Pos.X), v.row(g.ball.Pos.Y), glyph, core.ColorCyan)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	hud := g.HUD()

	switch {
	case hud.StartButton:
		g.drawCenteredBox(dst, startLabel, startHint)
	case hud.LifeLost:
		dst.DrawTextCentered(dst.Height()/2, LifeLostMessage)
	case hud.Message != "":
		subtitle := fmt.Sprintf("%s  |  Press R to restart", hud.ScoreText)
		g.drawCenteredBox(dst, hud.Message, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+minBoxTextPad, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
