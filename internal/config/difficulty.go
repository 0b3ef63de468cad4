package config

import "math"

// DifficultyManager calculates dynamic generation parameters based on score/time.
// When progression is disabled every method returns its base value scaled by
// the initial level only.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a hazard's base speed by the current level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// HazardChance raises the hazard spawn probability with the level, capped at 1.
func (d *DifficultyManager) HazardChance(baseChance float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(baseChance+level*d.cfg.Scaling.ChanceIncrease, 0.0, 1.0)
}

// StepMax shrinks the largest generation step with the level, never below stepMin.
func (d *DifficultyManager) StepMax(baseMax, stepMin float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return math.Max(stepMin, baseMax-level*d.cfg.Scaling.StepReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
