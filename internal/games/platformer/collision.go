package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Outcome summarizes what one collision pass did.
type Outcome struct {
	Bonus   int // score gained from stomps
	Stomps  int
	Pickups int
	Bonks   int
	Shrunk  bool
	Died    bool // terminal hazard contact; the run ends
}

// CollisionResolver tests the player against every active entity and applies
// the per-class outcome.
type CollisionResolver struct {
	combat    config.CombatConfig
	particles config.ParticleConfig
	inset     float64
	player    *PlayerController
}

// NewCollisionResolver creates a resolver. pc performs the size transitions.
func NewCollisionResolver(combat config.CombatConfig, particles config.ParticleConfig, hitboxInset float64, pc *PlayerController) *CollisionResolver {
	return &CollisionResolver{
		combat:    combat,
		particles: particles,
		inset:     hitboxInset,
		player:    pc,
	}
}

// Resolve runs the collision pass. Entities are deactivated in place and
// removed later by Cull. It stops at the first terminal contact.
func (r *CollisionResolver) Resolve(p *Player, entities []Entity, fx *ParticleSystem, theme Theme) Outcome {
	var out Outcome
	for i := range entities {
		e := &entities[i]
		if !e.Active {
			continue
		}
		if !p.HitBox(r.inset).Intersects(e.Box()) {
			continue
		}

		switch e.Class() {
		case ClassPickup:
			r.pickup(p, e, fx, theme, &out)
		case ClassPlatform:
			r.bonk(p, e, &out)
		case ClassHazard:
			if r.hazard(p, e, fx, theme, &out) {
				return out
			}
		}
	}
	return out
}

func (r *CollisionResolver) pickup(p *Player, e *Entity, fx *ParticleSystem, theme Theme, out *Outcome) {
	e.Active = false
	r.player.Grow(p)
	fx.Spawn(e.X+e.W/2, e.Y+e.H/2, theme.Accent, r.particles.PickupBurst)
	out.Pickups++
}

// bonk handles hitting a platform's underside while rising. Landing on top is
// the player controller's job.
func (r *CollisionResolver) bonk(p *Player, e *Entity, out *Outcome) {
	if p.VY < 0 && p.Y > e.Y {
		p.VY = r.combat.BonkVelocity
		out.Bonks++
	}
}

// hazard reports whether the contact was terminal.
func (r *CollisionResolver) hazard(p *Player, e *Entity, fx *ParticleSystem, theme Theme, out *Outcome) bool {
	if p.Invulnerable {
		return false
	}

	penetration := p.Y + p.H - e.Y
	if e.Stompable() && p.VY > 0 && penetration < r.combat.StompThreshold {
		e.Active = false
		p.VY = r.combat.StompBounce
		out.Bonus += r.combat.StompBonus
		out.Stomps++
		fx.Spawn(e.X+e.W/2, e.Y, theme.Hazard, r.particles.StompBurst)
		return false
	}

	if p.Big {
		r.player.Shrink(p)
		out.Shrunk = true
		return false
	}
	out.Died = true
	return true
}
