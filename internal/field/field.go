package field

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultCount is the number of particles a field holds unless told otherwise.
	DefaultCount = 80
	// LinkDistance is the distance below which two particles are linked.
	LinkDistance = 120.0
	// LinkWidth is the stroke width of a link.
	LinkWidth = 0.5
)

// LinkColor is the link stroke at full opacity.
var LinkColor = Color{R: 0, G: 243, B: 255, A: 1}

// Link connects particles I and J (I < J).
type Link struct {
	I, J     int
	Distance float64
	Opacity  float64
}

// Field owns a fixed set of particles and advances them once per frame.
type Field struct {
	particles  []Particle
	bounds     Bounds
	pointer    Point
	hasPointer bool
}

type options struct {
	count int
	rng   *rand.Rand
}

// Option configures New and Mount.
type Option func(*options)

// WithCount sets the particle count. Negative values are treated as zero.
func WithCount(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.count = n
	}
}

// WithRand sets the random source used to place particles.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed places particles from a deterministic source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New creates a field of particles placed inside b.
func New(b Bounds, opts ...Option) *Field {
	o := options{count: DefaultCount}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	f := &Field{
		particles: make([]Particle, o.count),
		bounds:    b,
	}
	for i := range f.particles {
		f.particles[i] = NewParticle(b, o.rng)
	}
	return f
}

// Len returns the particle count, which never changes.
func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current particle states.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Bounds returns the current drawing area.
func (f *Field) Bounds() Bounds { return f.bounds }

// Resize updates the drawing area. Particles keep their positions.
func (f *Field) Resize(width, height float64) {
	f.bounds = Bounds{Width: width, Height: height}
}

// MovePointer records the pointer position.
func (f *Field) MovePointer(x, y float64) {
	f.pointer = Point{X: x, Y: y}
	f.hasPointer = true
}

// ClearPointer forgets the pointer; no force is applied until it moves again.
func (f *Field) ClearPointer() {
	f.hasPointer = false
}

// Pointer returns the pointer position and whether one is set.
func (f *Field) Pointer() (Point, bool) {
	return f.pointer, f.hasPointer
}

// Step advances every particle by one frame and draws the particles and
// their links onto s.
func (f *Field) Step(s Surface) {
	s.Clear()

	var pointer *Point
	if f.hasPointer {
		p := f.pointer
		pointer = &p
	}
	bounds := f.bounds

	for i := range f.particles {
		f.particles[i].Update(pointer, bounds)
		f.particles[i].Render(s)
	}

	f.eachLink(func(l Link) {
		a, b := &f.particles[l.I], &f.particles[l.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, LinkWidth, LinkColor.WithAlpha(l.Opacity))
	})
}

// Links returns every pair of particles currently closer than LinkDistance.
func (f *Field) Links() []Link {
	var links []Link
	f.eachLink(func(l Link) {
		links = append(links, l)
	})
	return links
}

func (f *Field) eachLink(fn func(Link)) {
	for i := range f.particles {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d < LinkDistance {
				fn(Link{I: i, J: j, Distance: d, Opacity: LinkOpacity(d)})
			}
		}
	}
}

// LinkOpacity is the fade for a link of length d: 1 at zero, 0 at LinkDistance.
func LinkOpacity(d float64) float64 {
	if d >= LinkDistance {
		return 0
	}
	return 1 - d/LinkDistance
}

// SurfaceID is the identifier hosts register the particle surface under.
const SurfaceID = "particleCanvas"

// Animation is a field bound to the surface it draws on.
type Animation struct {
	*Field
	surface Surface
	alpha   float64
}

// Mount resolves the surface id on host and creates a field sized to the
// host viewport. It returns nil when the host has no such surface.
func Mount(host Host, id string, opts ...Option) *Animation {
	s, ok := host.Surface(id)
	if !ok || s == nil {
		return nil
	}
	return &Animation{
		Field:   New(host.Viewport(), opts...),
		surface: s,
		alpha:   1,
	}
}

// SetOpacity scales everything the next frames draw. Used for the intro fade.
func (a *Animation) SetOpacity(alpha float64) {
	a.alpha = alpha
}

// Surface returns the surface the animation draws on.
func (a *Animation) Surface() Surface { return a.surface }

// Frame runs one simulation step on the mounted surface.
func (a *Animation) Frame() {
	a.Step(Fade(a.surface, a.alpha))
}
