package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("DefaultPlatformerConfig() invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesHardcodedDefaults(t *testing.T) {
	got := embeddedDefault()
	want := DefaultPlatformerConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults drifted from DefaultPlatformerConfig()\n got: %+v\nwant: %+v", got, want)
	}
}

func TestLoadFileYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.9\nworld:\n  theme_distance: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("gravity = %v, expected 0.9", cfg.Physics.Gravity)
	}
	if cfg.World.ThemeDistance != 500 {
		t.Errorf("theme_distance = %v, expected 500", cfg.World.ThemeDistance)
	}
	// Untouched fields keep their defaults
	if cfg.Physics.MaxSpeed != DefaultPlatformerConfig().Physics.MaxSpeed {
		t.Errorf("max_speed = %v, expected default", cfg.Physics.MaxSpeed)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[combat]\nstomp_bonus = 250\n\n[player.big]\nw = 40\nh = 60\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Combat.StompBonus != 250 {
		t.Errorf("stomp_bonus = %d, expected 250", cfg.Combat.StompBonus)
	}
	if cfg.Player.Big.H != 60 || cfg.Player.Big.W != 40 {
		t.Errorf("big preset = %+v, expected 40x60", cfg.Player.Big)
	}
}

func TestDefaultTOMLRoundTrips(t *testing.T) {
	data, err := DefaultTOML()
	if err != nil {
		t.Fatalf("DefaultTOML() failed: %v", err)
	}

	var cfg PlatformerConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("default TOML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Error("default TOML does not decode back to the defaults")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"missing file", "absent.yaml", "", "failed to read"},
		{"bad yaml", "bad.yaml", "physics: [", "failed to parse"},
		{"unknown format", "cfg.json", "{}", "unsupported config format"},
		{"invalid values", "invalid.yaml", "physics:\n  jump_force: 3\nworld:\n  step_min: 0\n", "invalid config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if tc.content != "" {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadPlatformer(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.World.HazardChance = 1.5
	cfg.World.StepMin = 200 // above step_max
	cfg.Particles.MinLife = 0
	cfg.Particles.MaxLive = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, field := range []string{"world.hazard_chance", "world.step_min", "particles life", "particles.max_live"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %s", err, field)
		}
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	ApplyPlatformerPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPlatformerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPlatformerPreset(&cfg, ParsePreset("bogus"))
	if !reflect.DeepEqual(before, cfg) {
		t.Error("unknown preset should leave the config untouched")
	}
}

func TestDifficultyManagerDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultPlatformerConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.HazardChance(0.3, 100000, 100000); got != 0.3 {
		t.Errorf("HazardChance() = %v, expected base 0.3", got)
	}
	if got := d.Speed(1.0, 100000, 0); got != 1.0 {
		t.Errorf("Speed() = %v, expected base 1.0", got)
	}
	if got := d.StepMax(180, 60, 100000, 0); got != 180 {
		t.Errorf("StepMax() = %v, expected base 180", got)
	}
}

func TestDifficultyManagerProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, ChanceIncrease: 0.5, StepReduction: 200},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(500, 0); got != 0.5 {
		t.Errorf("Level(500) = %v, expected 0.5", got)
	}
	if got := d.Level(5000, 0); got != 1.0 {
		t.Errorf("Level beyond max_at = %v, expected 1.0", got)
	}
	if got := d.Speed(2.0, 1000, 0); got != 4.0 {
		t.Errorf("Speed() at max = %v, expected 4.0", got)
	}
	if got := d.HazardChance(0.8, 1000, 0); got != 1.0 {
		t.Errorf("HazardChance() should cap at 1, got %v", got)
	}
	if got := d.StepMax(180, 60, 1000, 0); got != 60 {
		t.Errorf("StepMax() should not go below step_min, got %v", got)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "platformer.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	abs, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != abs {
			t.Errorf("event for %q, expected %q", got, abs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}
