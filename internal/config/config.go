// Package config provides YAML/TOML configuration loading and difficulty
// management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all tunable constants of the simulation.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	World      WorldConfig      `yaml:"world" toml:"world"`
	Combat     CombatConfig     `yaml:"combat" toml:"combat"`
	Particles  ParticleConfig   `yaml:"particles" toml:"particles"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Score      ScoreConfig      `yaml:"score" toml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PhysicsConfig defines horizontal and vertical motion of the player.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity" toml:"gravity"`
	JumpForce float64 `yaml:"jump_force" toml:"jump_force"` // negative = upward
	Accel     float64 `yaml:"accel" toml:"accel"`
	Friction  float64 `yaml:"friction" toml:"friction"` // per-tick multiplier when no direction is held
	MaxSpeed  float64 `yaml:"max_speed" toml:"max_speed"`
	Deadzone  float64 `yaml:"deadzone" toml:"deadzone"` // |vx| below this snaps to 0
}

// Size is a width/height preset.
type Size struct {
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// PlayerConfig defines the player's size presets and state timings.
type PlayerConfig struct {
	StartX            float64 `yaml:"start_x" toml:"start_x"`
	Small             Size    `yaml:"small" toml:"small"`
	Big               Size    `yaml:"big" toml:"big"`
	GrowNudge         float64 `yaml:"grow_nudge" toml:"grow_nudge"`     // upward y shift after a pickup
	ShrinkNudge       float64 `yaml:"shrink_nudge" toml:"shrink_nudge"` // downward y shift after losing size
	InvulnerableTicks int     `yaml:"invulnerable_ticks" toml:"invulnerable_ticks"`
	HitboxInset       float64 `yaml:"hitbox_inset" toml:"hitbox_inset"`
	PlatformInset     float64 `yaml:"platform_inset" toml:"platform_inset"`
	LandingEpsilon    float64 `yaml:"landing_epsilon" toml:"landing_epsilon"`
	AnimRate          float64 `yaml:"anim_rate" toml:"anim_rate"`
	AnimMinSpeed      float64 `yaml:"anim_min_speed" toml:"anim_min_speed"`
	AirPhase          float64 `yaml:"air_phase" toml:"air_phase"`
}

// WorldConfig defines the viewport and procedural generation.
type WorldConfig struct {
	ViewportW         float64 `yaml:"viewport_w" toml:"viewport_w"`
	ViewportH         float64 `yaml:"viewport_h" toml:"viewport_h"`
	GroundLine        float64 `yaml:"ground_line" toml:"ground_line"`
	HorizonMargin     float64 `yaml:"horizon_margin" toml:"horizon_margin"`
	CullMargin        float64 `yaml:"cull_margin" toml:"cull_margin"`
	MinSpawnX         float64 `yaml:"min_spawn_x" toml:"min_spawn_x"`
	StepMin           float64 `yaml:"step_min" toml:"step_min"`
	StepMax           float64 `yaml:"step_max" toml:"step_max"`
	DecorationChance  float64 `yaml:"decoration_chance" toml:"decoration_chance"`
	HazardChance      float64 `yaml:"hazard_chance" toml:"hazard_chance"`
	PlatformChance    float64 `yaml:"platform_chance" toml:"platform_chance"`
	PickupChance      float64 `yaml:"pickup_chance" toml:"pickup_chance"` // nested, per spawned platform
	PlatformMinHeight float64 `yaml:"platform_min_height" toml:"platform_min_height"`
	PlatformMaxHeight float64 `yaml:"platform_max_height" toml:"platform_max_height"`
	FlyerMinHeight    float64 `yaml:"flyer_min_height" toml:"flyer_min_height"`
	FlyerMaxHeight    float64 `yaml:"flyer_max_height" toml:"flyer_max_height"`
	PatrolSpeed       float64 `yaml:"patrol_speed" toml:"patrol_speed"`
	FlyerSpeed        float64 `yaml:"flyer_speed" toml:"flyer_speed"`
	ThemeDistance     float64 `yaml:"theme_distance" toml:"theme_distance"`
}

// CombatConfig defines collision outcomes.
type CombatConfig struct {
	StompThreshold float64 `yaml:"stomp_threshold" toml:"stomp_threshold"` // max penetration depth for a stomp
	StompBounce    float64 `yaml:"stomp_bounce" toml:"stomp_bounce"`
	StompBonus     int     `yaml:"stomp_bonus" toml:"stomp_bonus"`
	BonkVelocity   float64 `yaml:"bonk_velocity" toml:"bonk_velocity"`
}

// ParticleConfig defines visual-effect bursts.
type ParticleConfig struct {
	PickupBurst int     `yaml:"pickup_burst" toml:"pickup_burst"`
	StompBurst  int     `yaml:"stomp_burst" toml:"stomp_burst"`
	Spread      float64 `yaml:"spread" toml:"spread"`
	MinLife     int     `yaml:"min_life" toml:"min_life"`
	MaxLife     int     `yaml:"max_life" toml:"max_life"`
	MaxLive     int     `yaml:"max_live" toml:"max_live"` // pool cap; 0 means unbounded
}

// CameraConfig defines how far the camera trails the player.
type CameraConfig struct {
	LeadOffset float64 `yaml:"lead_offset" toml:"lead_offset"`
}

// ScoreConfig defines how distance converts to score.
type ScoreConfig struct {
	DistanceUnit float64 `yaml:"distance_unit" toml:"distance_unit"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to hazard speed at max difficulty
	ChanceIncrease  float64 `yaml:"chance_increase" toml:"chance_increase"`   // Added to hazard chance at max difficulty
	StepReduction   float64 `yaml:"step_reduction" toml:"step_reduction"`     // Removed from max step at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports every field that would break the simulation.
func (c PlatformerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	chance := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}
	ordered := func(lo, hi string, a, b float64) {
		if a > b {
			errs = append(errs, fmt.Errorf("%s (%v) must not exceed %s (%v)", lo, a, hi, b))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.max_speed", c.Physics.MaxSpeed)
	positive("physics.accel", c.Physics.Accel)
	if c.Physics.JumpForce >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_force must be negative (upward), got %v", c.Physics.JumpForce))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction >= 1 {
		errs = append(errs, fmt.Errorf("physics.friction must be within [0, 1), got %v", c.Physics.Friction))
	}
	positive("physics.deadzone", c.Physics.Deadzone)

	positive("player.small.w", c.Player.Small.W)
	positive("player.small.h", c.Player.Small.H)
	ordered("player.small.h", "player.big.h", c.Player.Small.H, c.Player.Big.H)
	ordered("player.small.w", "player.big.w", c.Player.Small.W, c.Player.Big.W)
	if c.Player.InvulnerableTicks <= 0 {
		errs = append(errs, fmt.Errorf("player.invulnerable_ticks must be positive, got %d", c.Player.InvulnerableTicks))
	}
	if c.Player.StartX < 0 {
		errs = append(errs, fmt.Errorf("player.start_x must not be negative, got %v", c.Player.StartX))
	}

	positive("world.viewport_w", c.World.ViewportW)
	positive("world.viewport_h", c.World.ViewportH)
	positive("world.ground_line", c.World.GroundLine)
	ordered("world.ground_line", "world.viewport_h", c.World.GroundLine, c.World.ViewportH)
	positive("world.step_min", c.World.StepMin)
	ordered("world.step_min", "world.step_max", c.World.StepMin, c.World.StepMax)
	ordered("world.platform_min_height", "world.platform_max_height", c.World.PlatformMinHeight, c.World.PlatformMaxHeight)
	ordered("world.flyer_min_height", "world.flyer_max_height", c.World.FlyerMinHeight, c.World.FlyerMaxHeight)
	positive("world.theme_distance", c.World.ThemeDistance)
	chance("world.decoration_chance", c.World.DecorationChance)
	chance("world.hazard_chance", c.World.HazardChance)
	chance("world.platform_chance", c.World.PlatformChance)
	chance("world.pickup_chance", c.World.PickupChance)

	if c.Particles.MinLife <= 0 || c.Particles.MinLife > c.Particles.MaxLife {
		errs = append(errs, fmt.Errorf("particles life range [%d, %d] is invalid", c.Particles.MinLife, c.Particles.MaxLife))
	}
	if c.Particles.MaxLive < 0 {
		errs = append(errs, fmt.Errorf("particles.max_live must not be negative, got %d", c.Particles.MaxLive))
	}
	positive("score.distance_unit", c.Score.DistanceUnit)

	return errors.Join(errs...)
}
