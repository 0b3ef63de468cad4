package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// WorldGenerator extends the world ahead of the camera.
type WorldGenerator struct {
	cfg        config.WorldConfig
	rng        Rand
	themes     *ThemeScheduler
	entities   *EntityManager
	difficulty *config.DifficultyManager
	cursor     float64 // rightmost generated world x; never decreases
}

// NewWorldGenerator creates a generator whose cursor starts at 0.
func NewWorldGenerator(cfg config.WorldConfig, rng Rand, themes *ThemeScheduler, entities *EntityManager, difficulty *config.DifficultyManager) *WorldGenerator {
	return &WorldGenerator{
		cfg:        cfg,
		rng:        rng,
		themes:     themes,
		entities:   entities,
		difficulty: difficulty,
	}
}

// Reset rewinds the cursor to the run start.
func (g *WorldGenerator) Reset() {
	g.cursor = 0
}

// Cursor returns the rightmost generated world x.
func (g *WorldGenerator) Cursor() float64 {
	return g.cursor
}

// Horizon returns the x the cursor must reach for the given camera.
func (g *WorldGenerator) Horizon(cameraX float64) float64 {
	return cameraX + g.cfg.ViewportW + g.cfg.HorizonMargin
}

// Fill generates world content until the cursor passes the horizon.
// score and ticks feed the difficulty manager.
func (g *WorldGenerator) Fill(cameraX float64, score, ticks int) {
	horizon := g.Horizon(cameraX)
	hazardChance := g.difficulty.HazardChance(g.cfg.HazardChance, score, ticks)
	stepMax := g.difficulty.StepMax(g.cfg.StepMax, g.cfg.StepMin, score, ticks)

	for g.cursor < horizon {
		x := g.cursor
		theme := g.themes.Theme()
		pastSafeZone := x > g.cfg.MinSpawnX

		if chance(g.rng, g.cfg.DecorationChance) {
			g.entities.AddDecoration(Decoration{X: x, Y: g.cfg.GroundLine, Motif: theme.Motif})
		}
		if pastSafeZone && chance(g.rng, hazardChance) {
			g.spawnHazard(x, theme, score, ticks)
		}
		if pastSafeZone && chance(g.rng, g.cfg.PlatformChance) {
			g.spawnPlatform(x)
		}

		g.cursor += between(g.rng, g.cfg.StepMin, stepMax)
		g.themes.Advance(g.cursor)
	}
}

func (g *WorldGenerator) spawnHazard(x float64, theme Theme, score, ticks int) {
	if len(theme.Hazards) == 0 {
		return
	}
	kind := theme.Hazards[g.rng.Intn(len(theme.Hazards))]
	tr := kind.traits()
	ground := g.cfg.GroundLine

	e := Entity{Kind: kind, X: x, W: tr.W, H: tr.H}
	switch tr.Motion {
	case MotionStationary:
		e.Y = ground - tr.Elevation - tr.H
	case MotionPatrol:
		e.Y = ground - tr.H
		e.VX = -g.difficulty.Speed(g.cfg.PatrolSpeed, score, ticks)
	case MotionFlying:
		e.Y = ground - between(g.rng, g.cfg.FlyerMinHeight, g.cfg.FlyerMaxHeight) - tr.H
		e.VX = -g.difficulty.Speed(g.cfg.FlyerSpeed, score, ticks)
	}
	g.entities.Spawn(e)
}

func (g *WorldGenerator) spawnPlatform(x float64) {
	block := KindPlatform.traits()
	height := between(g.rng, g.cfg.PlatformMinHeight, g.cfg.PlatformMaxHeight)
	top := g.cfg.GroundLine - height - block.H

	g.entities.Spawn(Entity{Kind: KindPlatform, X: x, Y: top, W: block.W, H: block.H})

	if chance(g.rng, g.cfg.PickupChance) {
		item := KindPickup.traits()
		g.entities.Spawn(Entity{
			Kind: KindPickup,
			X:    x + (block.W-item.W)/2,
			Y:    top - item.H,
			W:    item.W,
			H:    item.H,
		})
	}
}
