package field

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestUpdateWithoutPointerAddsVelocity(t *testing.T) {
	p := Particle{X: 100.25, Y: 40.5, VX: 0.125, VY: -0.2, Radius: 2}
	want := Particle{X: p.X + p.VX, Y: p.Y + p.VY, VX: p.VX, VY: p.VY, Radius: 2}

	p.Update(nil, Bounds{Width: 800, Height: 600})
	if p != want {
		t.Fatalf("Update() = %+v, want %+v", p, want)
	}
}

func TestUpdateBouncesOffRightEdge(t *testing.T) {
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 799, Y: 300, VX: 2, VY: 0, Radius: 1}

	p.Update(nil, b)
	if p.X != 801 || p.Y != 300 {
		t.Fatalf("position after first step = (%v,%v), want (801,300)", p.X, p.Y)
	}
	if p.VX != -2 || p.VY != 0 {
		t.Fatalf("velocity after first step = (%v,%v), want (-2,0)", p.VX, p.VY)
	}

	p.Update(nil, b)
	if p.X != 799 {
		t.Fatalf("position after second step = %v, want 799", p.X)
	}
	if p.VX != -2 {
		t.Fatalf("velocity after second step = %v, want -2", p.VX)
	}
}

func TestUpdateBouncesOffEachEdge(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	tests := []struct {
		name   string
		p      Particle
		wantVX float64
		wantVY float64
	}{
		{"left", Particle{X: 0.5, Y: 50, VX: -1, VY: 0.1}, 1, 0.1},
		{"right", Particle{X: 99.5, Y: 50, VX: 1, VY: 0.1}, -1, 0.1},
		{"top", Particle{X: 50, Y: 0.5, VX: 0.1, VY: -1}, 0.1, 1},
		{"bottom", Particle{X: 50, Y: 99.5, VX: 0.1, VY: 1}, 0.1, -1},
		{"corner", Particle{X: 0.5, Y: 0.5, VX: -1, VY: -1}, 1, 1},
		{"inside", Particle{X: 50, Y: 50, VX: 1, VY: 1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			p.Update(nil, b)
			if p.VX != tt.wantVX || p.VY != tt.wantVY {
				t.Fatalf("velocity = (%v,%v), want (%v,%v)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestUpdateDoesNotClampPosition(t *testing.T) {
	p := Particle{X: 1, Y: 50, VX: -3, VY: 0}
	p.Update(nil, Bounds{Width: 100, Height: 100})
	if p.X != -2 {
		t.Fatalf("X = %v, want -2 (no clamping)", p.X)
	}
}

func TestUpdatePointerPushesAway(t *testing.T) {
	p := Particle{X: 150, Y: 100}
	pointer := Point{X: 100, Y: 100}

	p.Update(&pointer, Bounds{Width: 800, Height: 600})

	// distance 50: force (150-50)/150, along +x, times the gain.
	want := 150 + (100.0/150.0)*PushGain
	if math.Abs(p.X-want) > 1e-12 {
		t.Fatalf("X = %v, want %v", p.X, want)
	}
	if p.Y != 100 {
		t.Fatalf("Y = %v, want 100", p.Y)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("pointer push changed velocity to (%v,%v)", p.VX, p.VY)
	}
}

func TestUpdatePointerOutsideRadiusHasNoEffect(t *testing.T) {
	p := Particle{X: 300, Y: 300, VX: 0.1, VY: 0.1}
	pointer := Point{X: 300 + PointerRadius, Y: 300}

	want := Particle{X: p.X + p.VX, Y: p.Y + p.VY, VX: p.VX, VY: p.VY}

	p.Update(&pointer, Bounds{Width: 800, Height: 600})
	if p != want {
		t.Fatalf("Update() = %+v, want %+v", p, want)
	}
}

func TestUpdatePointerOnParticleAppliesNoForce(t *testing.T) {
	p := Particle{X: 200, Y: 200, VX: 0.2, VY: -0.1}
	pointer := Point{X: 200, Y: 200}
	wantX, wantY := p.X+p.VX, p.Y+p.VY

	p.Update(&pointer, Bounds{Width: 800, Height: 600})
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		t.Fatalf("position became non-finite: (%v,%v)", p.X, p.Y)
	}
	if p.X != wantX || p.Y != wantY {
		t.Fatalf("position = (%v,%v), want (%v,%v)", p.X, p.Y, wantX, wantY)
	}
}

func TestNewParticleRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	b := Bounds{Width: 320, Height: 200}
	for range 1000 {
		p := NewParticle(b, rng)
		if p.X < 0 || p.X > b.Width || p.Y < 0 || p.Y > b.Height {
			t.Fatalf("particle placed outside bounds: %+v", p)
		}
		if p.Radius < minRadius || p.Radius >= maxRadius {
			t.Fatalf("radius %v out of range", p.Radius)
		}
		if math.Abs(p.VX) > maxSpeed || math.Abs(p.VY) > maxSpeed {
			t.Fatalf("velocity (%v,%v) out of range", p.VX, p.VY)
		}
	}
}
