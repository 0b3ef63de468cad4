package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // ticks left
	Color  core.Color
}

// ParticleSystem owns transient effect particles.
type ParticleSystem struct {
	particles []Particle
	cfg       config.ParticleConfig
	rng       Rand
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig, rng Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 64),
		cfg:       cfg,
		rng:       rng,
	}
}

// Spawn appends count particles at (x, y), each with an independent random
// velocity within the configured spread and a random life.
// Once max_live particles are alive, further ones are dropped.
func (s *ParticleSystem) Spawn(x, y float64, color core.Color, count int) {
	spread := s.cfg.Spread
	for i := 0; i < count && !s.full(); i++ {
		s.particles = append(s.particles, Particle{
			X:     x,
			Y:     y,
			VX:    between(s.rng, -spread, spread),
			VY:    between(s.rng, -spread, spread),
			Life:  betweenInt(s.rng, s.cfg.MinLife, s.cfg.MaxLife),
			Color: color,
		})
	}
}

func (s *ParticleSystem) full() bool {
	return s.cfg.MaxLive > 0 && len(s.particles) >= s.cfg.MaxLive
}

// Update moves every particle one tick and drops the exhausted ones.
func (s *ParticleSystem) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Particles returns the live particles.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Reset drops every particle.
func (s *ParticleSystem) Reset() {
	s.particles = s.particles[:0]
}
