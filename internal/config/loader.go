package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const baseName = "platformer"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.{yaml,toml} ->
// ./configs/platformer.{yaml,toml} -> embedded default.
//
// Files are overlaid on the defaults, so a file only needs the fields it
// changes. A custom path that cannot be read, parsed or validated is an
// error; discovered files with problems are skipped.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// LoadFile reads a single YAML or TOML file, chosen by extension, on top of
// the defaults and validates the result.
func LoadFile(path string) (PlatformerConfig, error) {
	cfg := embeddedDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q for %s", ext, path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SearchPaths returns the discovered config locations in priority order.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade", "configs")
		paths = append(paths,
			filepath.Join(dir, baseName+".yaml"),
			filepath.Join(dir, baseName+".toml"),
		)
	}
	paths = append(paths,
		filepath.Join("configs", baseName+".yaml"),
		filepath.Join("configs", baseName+".toml"),
	)
	return paths
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is broken.
func embeddedDefault() PlatformerConfig {
	var cfg PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig()
	}
	return cfg
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
