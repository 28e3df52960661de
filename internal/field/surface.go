package field

// Color is an RGB colour with an opacity in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Surface is a 2D drawing target. Coordinates are in field units.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// Host resolves drawing surfaces by identifier and reports the viewport size.
type Host interface {
	Surface(id string) (Surface, bool)
	Viewport() Bounds
}

type fadedSurface struct {
	Surface
	alpha float64
}

// Fade wraps s so that every opacity drawn through it is scaled by alpha.
// Alpha values at or above 1 return s unchanged.
func Fade(s Surface, alpha float64) Surface {
	if alpha >= 1 {
		return s
	}
	if alpha < 0 {
		alpha = 0
	}
	return fadedSurface{Surface: s, alpha: alpha}
}

func (f fadedSurface) FillCircle(x, y, r float64, c Color) {
	f.Surface.FillCircle(x, y, r, c.WithAlpha(c.A*f.alpha))
}

func (f fadedSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	f.Surface.StrokeLine(x0, y0, x1, y1, width, c.WithAlpha(c.A*f.alpha))
}
