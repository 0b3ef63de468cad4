package config

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/BurntSushi/toml"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:   0.6,
			JumpForce: -12.5,
			Accel:     0.5,
			Friction:  0.8,
			MaxSpeed:  6.0,
			Deadzone:  0.1,
		},
		Player: PlayerConfig{
			StartX:            100,
			Small:             Size{W: 28, H: 36},
			Big:               Size{W: 32, H: 52},
			GrowNudge:         16,
			ShrinkNudge:       4,
			InvulnerableTicks: 90,
			HitboxInset:       4,
			PlatformInset:     4,
			LandingEpsilon:    6,
			AnimRate:          0.15,
			AnimMinSpeed:      0.5,
			AirPhase:          1.0,
		},
		World: WorldConfig{
			ViewportW:         800,
			ViewportH:         450,
			GroundLine:        400,
			HorizonMargin:     400,
			CullMargin:        200,
			MinSpawnX:         600,
			StepMin:           60,
			StepMax:           180,
			DecorationChance:  0.35,
			HazardChance:      0.3,
			PlatformChance:    0.2,
			PickupChance:      0.35,
			PlatformMinHeight: 60,
			PlatformMaxHeight: 100,
			FlyerMinHeight:    60,
			FlyerMaxHeight:    140,
			PatrolSpeed:       1.0,
			FlyerSpeed:        1.6,
			ThemeDistance:     3000,
		},
		Combat: CombatConfig{
			StompThreshold: 16,
			StompBounce:    -8,
			StompBonus:     100,
			BonkVelocity:   1.5,
		},
		Particles: ParticleConfig{
			PickupBurst: 16,
			StompBurst:  8,
			Spread:      3,
			MinLife:     20,
			MaxLife:     40,
			MaxLive:     512,
		},
		Camera: CameraConfig{
			LeadOffset: 250,
		},
		Score: ScoreConfig{
			DistanceUnit: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ChanceIncrease:  0.2,
				StepReduction:   40,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}

// DefaultTOML renders the default configuration as TOML.
func DefaultTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTOML(&buf, DefaultPlatformerConfig()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTOML writes cfg to w as TOML.
func EncodeTOML(w io.Writer, cfg PlatformerConfig) error {
	return toml.NewEncoder(w).Encode(cfg)
}
