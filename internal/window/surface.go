package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/plexus/internal/field"
)

var backgroundColor = color.RGBA{R: 10, G: 10, B: 18, A: 255}

// screenSurface draws onto the screen image of the frame being rendered.
// It is a no-op until the first Draw hands it an image.
type screenSurface struct {
	img *ebiten.Image
}

func (s *screenSurface) Clear() {
	if s.img == nil {
		return
	}
	s.img.Fill(backgroundColor)
}

func (s *screenSurface) FillCircle(x, y, r float64, c field.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), toNRGBA(c), true)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float64, c field.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(c), true)
}

func toNRGBA(c field.Color) color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// screenHost is the window's field.Host.
type screenHost struct {
	surface  *screenSurface
	viewport field.Bounds
}

func (h *screenHost) Surface(id string) (field.Surface, bool) {
	if id != field.SurfaceID {
		return nil, false
	}
	return h.surface, true
}

func (h *screenHost) Viewport() field.Bounds { return h.viewport }
