package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Layout describes the brick grid. Positions are brick centres.
type Layout struct {
	BrickWidth  float64
	BrickHeight float64
	Rows        int
	Columns     int
	TopOffset   float64
	LeftOffset  float64
	Padding     float64
}

// LayoutFromConfig extracts the grid layout from a configuration.
func LayoutFromConfig(cfg config.BrickConfig) Layout {
	return Layout{
		BrickWidth:  cfg.Width,
		BrickHeight: cfg.Height,
		Rows:        cfg.Rows,
		Columns:     cfg.Columns,
		TopOffset:   cfg.OffsetTop,
		LeftOffset:  cfg.OffsetLeft,
		Padding:     cfg.Padding,
	}
}

// Brick is a single brick. It stops counting towards the win as soon as it is
// hit (Alive goes false) and leaves the scene when its shrink tween ends.
type Brick struct {
	Row, Col  int
	Pos       core.Vec2
	W, H      float64
	Immovable bool
	Alive     bool

	shrink  Tween
	removed bool
}

// Bounds returns the brick's bounding box at full scale.
func (b *Brick) Bounds() core.Bounds {
	return core.CenteredBounds(b.Pos, b.W, b.H)
}

// Scale returns the current draw scale, 1 until hit and shrinking to 0 after.
func (b *Brick) Scale() float64 {
	if b.removed {
		return 0
	}
	return b.shrink.Scale()
}

// MoveTo places the brick centre at (x, y).
func (b *Brick) MoveTo(x, y float64) {
	b.Pos = core.V(x, y)
}

// SetVelocity is a no-op: bricks are immovable.
func (b *Brick) SetVelocity(_, _ float64) {}

// Destroy removes the brick from the scene immediately.
func (b *Brick) Destroy() {
	b.Alive = false
	b.removed = true
}

// IsActive reports whether the brick is still in the scene, including while
// its hit animation plays.
func (b *Brick) IsActive() bool {
	return !b.removed
}

// BrickField owns the grid of bricks for one session.
type BrickField struct {
	layout Layout
	bricks []*Brick // Row-major
}

// NewBrickField creates a field and fills it from the layout.
func NewBrickField(layout Layout) *BrickField {
	f := &BrickField{}
	f.Initialize(layout)
	return f
}

// Initialize discards any existing bricks and places a fresh grid.
func (f *BrickField) Initialize(layout Layout) {
	f.layout = layout
	rows, cols := max(layout.Rows, 0), max(layout.Columns, 0)
	f.bricks = make([]*Brick, 0, rows*cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := float64(c)*(layout.BrickWidth+layout.Padding) + layout.LeftOffset
			y := float64(r)*(layout.BrickHeight+layout.Padding) + layout.TopOffset
			f.bricks = append(f.bricks, &Brick{
				Row:       r,
				Col:       c,
				Pos:       core.V(x, y),
				W:         layout.BrickWidth,
				H:         layout.BrickHeight,
				Immovable: true,
				Alive:     true,
			})
		}
	}
}

// Layout returns the layout the field was built from.
func (f *BrickField) Layout() Layout {
	return f.layout
}

// Bricks returns all bricks in row-major order, including destroyed ones.
func (f *BrickField) Bricks() []*Brick {
	return f.bricks
}

// Len returns the grid size.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// At returns the brick at (col, row), or nil when outside the grid.
func (f *BrickField) At(col, row int) *Brick {
	if col < 0 || col >= f.layout.Columns || row < 0 || row >= f.layout.Rows {
		return nil
	}
	return f.bricks[row*f.layout.Columns+col]
}

// AliveCount returns the number of bricks not yet hit.
func (f *BrickField) AliveCount() int {
	count := 0
	for _, b := range f.bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// MarkDestroyed takes a brick out of the alive set and starts its shrink
// animation; the brick leaves the scene when the animation completes.
// Returns false if the brick was already destroyed.
func (f *BrickField) MarkDestroyed(b *Brick, shrinkTicks int) bool {
	if b == nil || !b.Alive {
		return false
	}
	b.Alive = false
	b.shrink.Start(shrinkTicks, func() {
		b.removed = true
	})
	return true
}

// Update advances every running shrink animation by one tick.
func (f *BrickField) Update() {
	for _, b := range f.bricks {
		b.shrink.Advance()
	}
}
