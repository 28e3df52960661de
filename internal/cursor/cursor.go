// Package cursor draws a custom pointer: a dot under the pointer and a ring
// that trails it on a spring.
package cursor

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/plexus/internal/field"
)

const (
	// MinViewportWidth is the narrowest viewport the cursor is shown on.
	MinViewportWidth = 768.0

	dotRadius    = 5.0
	ringRadius   = 20.0
	ringWidth    = 2.0
	ringSegments = 24

	pressedDotScale  = 1.5
	pressedRingScale = 0.8
)

var (
	dotColor  = field.Color{R: 0, G: 243, B: 255, A: 1}
	ringColor = field.Color{R: 0, G: 243, B: 255, A: 0.5}
)

type axis struct {
	pos, vel float64
}

// Cursor tracks the pointer and the trailing ring.
type Cursor struct {
	spring  harmonica.Spring
	x, y    axis
	target  field.Point
	visible bool
	pressed bool
	placed  bool
}

// New creates a cursor whose ring is updated fps times per second.
func New(fps int) *Cursor {
	if fps <= 0 {
		fps = 60
	}
	return &Cursor{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// Enabled reports whether the cursor should be shown for a viewport.
func Enabled(viewport field.Bounds) bool {
	return viewport.Width >= MinViewportWidth
}

// Move sets the pointer position. The first move places the ring directly
// under the pointer.
func (c *Cursor) Move(x, y float64) {
	c.target = field.Point{X: x, Y: y}
	c.visible = true
	if !c.placed {
		c.x = axis{pos: x}
		c.y = axis{pos: y}
		c.placed = true
	}
}

// Hide stops drawing until the next Move.
func (c *Cursor) Hide() { c.visible = false }

// SetPressed toggles the pressed look.
func (c *Cursor) SetPressed(pressed bool) { c.pressed = pressed }

// Visible reports whether the cursor is drawn.
func (c *Cursor) Visible() bool { return c.visible }

// Update advances the trailing ring one frame towards the pointer.
func (c *Cursor) Update() {
	if !c.placed {
		return
	}
	c.x.pos, c.x.vel = c.spring.Update(c.x.pos, c.x.vel, c.target.X)
	c.y.pos, c.y.vel = c.spring.Update(c.y.pos, c.y.vel, c.target.Y)
}

// Ring returns the centre of the trailing ring.
func (c *Cursor) Ring() field.Point {
	return field.Point{X: c.x.pos, Y: c.y.pos}
}

// Draw paints the dot and the ring onto s.
func (c *Cursor) Draw(s field.Surface) {
	if !c.visible {
		return
	}
	dr, rr := dotRadius, ringRadius
	if c.pressed {
		dr *= pressedDotScale
		rr *= pressedRingScale
	}

	ring := c.Ring()
	step := 2 * math.Pi / ringSegments
	for i := range ringSegments {
		a0, a1 := float64(i)*step, float64(i+1)*step
		s.StrokeLine(
			ring.X+rr*math.Cos(a0), ring.Y+rr*math.Sin(a0),
			ring.X+rr*math.Cos(a1), ring.Y+rr*math.Sin(a1),
			ringWidth, ringColor,
		)
	}
	s.FillCircle(c.target.X, c.target.Y, dr, dotColor)
}
