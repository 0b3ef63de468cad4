package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestParticleLifetime(t *testing.T) {
	cfg := testConfig().Particles
	// Intn(·) = 0 gives every particle the minimum life.
	ps := NewParticleSystem(cfg, &scriptedRand{})
	ps.Spawn(10, 10, core.ColorRed, 5)

	life := cfg.MinLife
	for i := 0; i < life-1; i++ {
		ps.Update()
	}
	if got := len(ps.Particles()); got != 5 {
		t.Fatalf("after %d ticks: %d particles, want 5", life-1, got)
	}

	ps.Update()
	if got := len(ps.Particles()); got != 0 {
		t.Errorf("after %d ticks: %d particles, want 0", life, got)
	}
}

func TestParticleSpawnVelocityBounded(t *testing.T) {
	cfg := testConfig().Particles
	rng := &scriptedRand{floats: []float64{0, 0.999, 0.25, 0.75}, ints: []int{3, 17}}
	ps := NewParticleSystem(cfg, rng)

	ps.Spawn(0, 0, core.ColorYellow, 20)

	for i, p := range ps.Particles() {
		if p.VX < -cfg.Spread || p.VX > cfg.Spread || p.VY < -cfg.Spread || p.VY > cfg.Spread {
			t.Errorf("particle %d velocity (%v, %v) outside spread %v", i, p.VX, p.VY, cfg.Spread)
		}
		if p.Life < cfg.MinLife || p.Life > cfg.MaxLife {
			t.Errorf("particle %d life %d outside [%d, %d]", i, p.Life, cfg.MinLife, cfg.MaxLife)
		}
		if p.Color != core.ColorYellow {
			t.Errorf("particle %d color = %v", i, p.Color)
		}
	}
}

func TestParticleMotion(t *testing.T) {
	cfg := testConfig().Particles
	ps := NewParticleSystem(cfg, constRand(1)) // both axes at +spread
	ps.Spawn(5, 5, core.ColorWhite, 1)

	ps.Update()

	p := ps.Particles()[0]
	if p.X != 5+cfg.Spread || p.Y != 5+cfg.Spread {
		t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, 5+cfg.Spread, 5+cfg.Spread)
	}
}

func TestParticleCap(t *testing.T) {
	tests := []struct {
		name    string
		maxLive int
		spawn   int
		want    int
	}{
		{"below cap", 10, 8, 8},
		{"capped", 10, 25, 10},
		{"unbounded", 0, 700, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig().Particles
			cfg.MaxLive = tt.maxLive
			ps := NewParticleSystem(cfg, &scriptedRand{})
			ps.Spawn(0, 0, core.ColorRed, tt.spawn)

			if got := len(ps.Particles()); got != tt.want {
				t.Errorf("particles = %d, want %d", got, tt.want)
			}

			ps.Reset()
			if len(ps.Particles()) != 0 {
				t.Error("Reset should drop every particle")
			}
		})
	}
}
