package field

import (
	"math"
	"math/rand/v2"
)

const (
	// PointerRadius is the distance within which the pointer pushes particles away.
	PointerRadius = 150.0
	// PushGain scales the pointer displacement applied per frame.
	PushGain = 3.0

	minRadius = 1.0
	maxRadius = 4.0
	maxSpeed  = 0.25
)

// ParticleColor is the fill used for every particle.
var ParticleColor = Color{R: 0, G: 243, B: 255, A: 0.8}

// Point is a position in field units.
type Point struct {
	X, Y float64
}

// Bounds is the size of the drawing area in field units.
type Bounds struct {
	Width, Height float64
}

// Particle is a self-propelled point. Its velocity only ever changes sign.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NewParticle places a particle uniformly at random inside b.
func NewParticle(b Bounds, rng *rand.Rand) Particle {
	return Particle{
		X:      rng.Float64() * b.Width,
		Y:      rng.Float64() * b.Height,
		VX:     (rng.Float64()*2 - 1) * maxSpeed,
		VY:     (rng.Float64()*2 - 1) * maxSpeed,
		Radius: minRadius + rng.Float64()*(maxRadius-minRadius),
	}
}

// Update advances the particle by one frame. A nil pointer applies no force.
//
// The pointer push is a position offset, not an acceleration: it leaves the
// velocity untouched. Edges reflect the velocity only; the position is not
// clamped, so a particle can sit just outside b for a frame.
func (p *Particle) Update(pointer *Point, b Bounds) {
	if pointer != nil {
		dx := p.X - pointer.X
		dy := p.Y - pointer.Y
		distance := math.Hypot(dx, dy)
		if distance > 0 && distance < PointerRadius {
			force := (PointerRadius - distance) / PointerRadius
			p.X += dx / distance * force * PushGain
			p.Y += dy / distance * force * PushGain
		}
	}

	p.X += p.VX
	p.Y += p.VY

	if p.X > b.Width || p.X < 0 {
		p.VX = -p.VX
	}
	if p.Y > b.Height || p.Y < 0 {
		p.VY = -p.VY
	}
}

// Render draws the particle as a filled disc.
func (p *Particle) Render(s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, ParticleColor)
}
