package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Snapshot is a read-only copy of the post-tick world, used by rendering
// and determinism tests.
type Snapshot struct {
	Tick        int
	Phase       core.Phase
	Paused      bool
	Score       int
	HighScore   int
	Player      Player
	Entities    []Entity
	Particles   []Particle
	Decorations []Decoration
	CameraX     float64
	Cursor      float64
	ThemeIndex  int
	Theme       Theme
	Progression bool    // difficulty progression enabled
	Level       float64 // difficulty level in [0,1]
}

// Snapshot returns a copy of the current state. Mutating it does not affect
// the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.ticks,
		Phase:     g.phase,
		Paused:    g.paused,
		Score:     g.score,
		HighScore: g.highScore,
		Player:    g.player,
		CameraX:   g.camera.X(),
	}
	if g.entities != nil {
		s.Entities = append([]Entity(nil), g.entities.Entities()...)
		s.Decorations = append([]Decoration(nil), g.entities.Decorations()...)
	}
	if g.particles != nil {
		s.Particles = append([]Particle(nil), g.particles.Particles()...)
	}
	if g.generator != nil {
		s.Cursor = g.generator.Cursor()
	}
	if g.themes != nil {
		s.ThemeIndex = g.themes.Index()
		s.Theme = g.themes.Theme()
	}
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		s.Progression = true
		s.Level = g.difficulty.Level(g.score, g.ticks)
	}
	return s
}
