// Package platformer implements an endless side-scrolling platformer.
// The player runs and jumps through procedurally generated themed terrain,
// stomping hazards and collecting pickups until a hazard ends the run.
package platformer

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game implements the platformer run lifecycle and the per-tick update.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	pending    *config.PlatformerConfig // applied at the next run start
	fixedCfg   bool                     // cfg was injected; Reset does not load files
	rng        Rand
	fixedRng   bool // rng was injected; Reset does not reseed
	difficulty *config.DifficultyManager

	controller *PlayerController
	resolver   *CollisionResolver
	entities   *EntityManager
	particles  *ParticleSystem
	themes     *ThemeScheduler
	generator  *WorldGenerator

	player    Player
	camera    Camera
	phase     core.Phase
	paused    bool
	ticks     int
	score     int
	bonus     int     // accumulated stomp bonuses of this run
	furthestX float64 // rightmost player x of this run
	highScore int     // best completed run; survives Reset
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// configured default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a game that loads its configuration on Reset and draws from
// a generator seeded by the runtime config.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration and randomness
// source. Neither is replaced by Reset.
func NewWithConfig(cfg config.PlatformerConfig, rng Rand) *Game {
	return &Game{
		cfg:      cfg,
		fixedCfg: true,
		rng:      rng,
		fixedRng: rng != nil,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Platformer"
}

// UseConfig replaces the configuration starting with the next run.
// The current run is never altered.
func (g *Game) UseConfig(cfg config.PlatformerConfig) {
	g.pending = &cfg
}

// Reset initializes the game and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			cfg = config.DefaultPlatformerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPlatformerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	if !g.fixedRng {
		seed := runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	g.build()
	g.newRun()
	g.phase = core.PhaseStart
}

// build wires the simulation components for the current config.
func (g *Game) build() {
	cfg := g.cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.controller = NewPlayerController(cfg.Physics, cfg.Player)
	g.resolver = NewCollisionResolver(cfg.Combat, cfg.Particles, cfg.Player.HitboxInset, g.controller)
	g.entities = NewEntityManager()
	g.particles = NewParticleSystem(cfg.Particles, g.rng)
	g.themes = NewThemeScheduler(cfg.World.ThemeDistance, g.rng)
	g.generator = NewWorldGenerator(cfg.World, g.rng, g.themes, g.entities, g.difficulty)
}

// newRun resets all per-run state and pre-generates the opening stretch.
// The randomness stream continues.
func (g *Game) newRun() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.build()
	}

	g.entities.Reset()
	g.particles.Reset()
	g.themes.Reset()
	g.generator.Reset()

	g.player = g.controller.Spawn(g.cfg.World.GroundLine)
	g.camera = NewCamera(g.cfg.Camera.LeadOffset)
	g.furthestX = g.player.X
	g.score = 0
	g.bonus = 0
	g.ticks = 0
	g.paused = false

	g.generator.Fill(g.camera.X(), 0, 0)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseStart:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.phase = core.PhasePlaying
		}
		return core.StepResult{State: g.State()}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.newRun()
			g.phase = core.PhasePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.tick(in) {
		return core.StepResult{State: g.State(), RunEnded: true}
	}
	return core.StepResult{State: g.State()}
}

// tick runs one simulation frame and reports whether the run ended.
func (g *Game) tick(in core.InputFrame) bool {
	g.ticks++
	world := g.cfg.World

	g.controller.Update(&g.player, ControlsFrom(in), world.GroundLine, g.entities.Platforms())
	g.camera.Track(g.player.X)
	g.generator.Fill(g.camera.X(), g.score, g.ticks)
	g.entities.Move()

	out := g.resolver.Resolve(&g.player, g.entities.Entities(), g.particles, g.themes.Theme())
	g.particles.Update()

	if out.Died {
		// The fatal tick keeps the distance score as it stood before
		// contact; stomps earlier in the same pass still count.
		g.bonus += out.Bonus
		g.score += out.Bonus
		g.phase = core.PhaseGameOver
		g.highScore = max(g.highScore, g.score)
		return true
	}

	g.bonus += out.Bonus
	g.syncScore()
	g.entities.Cull(g.camera.X(), world.CullMargin)
	return false
}

// syncScore derives the score from the furthest distance reached plus
// bonuses, so walking back never lowers it.
func (g *Game) syncScore() {
	g.furthestX = math.Max(g.furthestX, g.player.X)
	distance := int(math.Floor((g.furthestX - g.cfg.Player.StartX) / g.cfg.Score.DistanceUnit))
	g.score = max(distance, 0) + g.bonus
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	theme := ""
	if g.themes != nil {
		theme = g.themes.Theme().Name
	}
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Theme:     theme,
		Ticks:     g.ticks,
		Phase:     g.phase,
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.paused,
	}
}

var _ registry.Configurable = (*Game)(nil)

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
