// Package canvas draws field primitives onto a grid of Unicode Braille
// characters so the particle field can run inside a terminal.
package canvas

import (
	"math"
	"strings"

	"github.com/olivier-w/plexus/internal/field"
)

// Default field units covered by one Braille dot. A terminal cell holds
// 2x4 dots, so a cell stands for a glyph of roughly 8x16 pixels.
const (
	PixelsPerDotX = 4.0
	PixelsPerDotY = 4.0
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Braille is a field.Surface backed by a cols x rows character grid.
// Each dot keeps the most opaque colour drawn onto it since the last Clear.
type Braille struct {
	cols, rows int
	dotW, dotH int
	scaleX     float64
	scaleY     float64
	dots       []field.Color
	profile    colorProfile
}

// New creates a canvas using the default dot scale and the terminal's colour profile.
func New(cols, rows int) *Braille {
	return NewWithScale(cols, rows, PixelsPerDotX, PixelsPerDotY)
}

// NewWithScale creates a canvas where one dot covers sx x sy field units.
func NewWithScale(cols, rows int, sx, sy float64) *Braille {
	if sx <= 0 {
		sx = PixelsPerDotX
	}
	if sy <= 0 {
		sy = PixelsPerDotY
	}
	b := &Braille{scaleX: sx, scaleY: sy, profile: currentColorProfile()}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates the grid. The canvas is left blank.
func (b *Braille) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	b.cols, b.rows = cols, rows
	b.dotW, b.dotH = cols*2, rows*4
	b.dots = make([]field.Color, b.dotW*b.dotH)
}

// Size returns the grid size in cells.
func (b *Braille) Size() (cols, rows int) { return b.cols, b.rows }

// Bounds returns the area the grid covers in field units.
func (b *Braille) Bounds() field.Bounds {
	return field.Bounds{
		Width:  float64(b.dotW) * b.scaleX,
		Height: float64(b.dotH) * b.scaleY,
	}
}

// Clear blanks every dot.
func (b *Braille) Clear() {
	clear(b.dots)
}

// FillCircle sets every dot whose centre lies inside the disc, and always
// the dot under the centre so that sub-dot particles stay visible.
func (b *Braille) FillCircle(x, y, r float64, c field.Color) {
	if !finite(x, y, r) || c.A <= 0 {
		return
	}
	cx, cy := x/b.scaleX, y/b.scaleY
	rx, ry := r/b.scaleX, r/b.scaleY

	b.plot(int(math.Floor(cx)), int(math.Floor(cy)), c)
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := int(math.Floor(cy - ry)); dy <= int(math.Floor(cy+ry)); dy++ {
		for dx := int(math.Floor(cx - rx)); dx <= int(math.Floor(cx+rx)); dx++ {
			nx := (float64(dx) + 0.5 - cx) / rx
			ny := (float64(dy) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				b.plot(dx, dy, c)
			}
		}
	}
}

// StrokeLine walks the segment one dot at a time. Width is below the dot
// resolution and ignored.
func (b *Braille) StrokeLine(x0, y0, x1, y1, _ float64, c field.Color) {
	if !finite(x0, y0, x1, y1) || c.A <= 0 {
		return
	}
	ax, ay := x0/b.scaleX, y0/b.scaleY
	bx, by := x1/b.scaleX, y1/b.scaleY
	dx, dy := bx-ax, by-ay

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if limit := 2 * (b.dotW + b.dotH); steps > limit {
		steps = limit
	}
	if steps == 0 {
		b.plot(int(math.Floor(ax)), int(math.Floor(ay)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.plot(int(math.Floor(ax+dx*t)), int(math.Floor(ay+dy*t)), c)
	}
}

func (b *Braille) plot(dx, dy int, c field.Color) {
	if dx < 0 || dy < 0 || dx >= b.dotW || dy >= b.dotH {
		return
	}
	i := dy*b.dotW + dx
	if c.A > b.dots[i].A {
		b.dots[i] = c
	}
}

func (b *Braille) dot(dx, dy int) field.Color {
	return b.dots[dy*b.dotW+dx]
}

// View renders the grid, one line per row.
func (b *Braille) View() string {
	rows := make([]string, b.rows)
	for row := range b.rows {
		var line strings.Builder
		state := newANSIState(b.profile)
		for col := range b.cols {
			var pattern uint
			var strongest field.Color
			for dx := range 2 {
				for dy := range 4 {
					d := b.dot(col*2+dx, row*4+dy)
					if d.A <= 0 {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if d.A > strongest.A {
						strongest = d
					}
				}
			}
			if pattern == 0 {
				line.WriteByte(' ')
				continue
			}
			state.set(&line, shade(strongest))
			line.WriteRune(rune(0x2800 + pattern))
		}
		state.reset(&line)
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
