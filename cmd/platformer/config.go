package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var (
	flagConfigFormat   string
	flagConfigResolved bool
	flagConfigCheck    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration",
	Long: `Print the default configuration, the configuration a run would use,
or validate a config file.

Config files are searched in this order:
  --config path
  ~/.arcade/configs/platformer.{yaml,toml}
  ./configs/platformer.{yaml,toml}
  built-in defaults

Examples:
  platformer config > configs/platformer.yaml
  platformer config --format toml
  platformer config --resolved --difficulty hard
  platformer config --check ./my-platformer.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the config after search paths and preset")
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file and exit")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (with --resolved)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (with --resolved)")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigCheck != "" {
		if _, err := config.LoadFile(flagConfigCheck); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("%s: ok\n", flagConfigCheck)
		return
	}

	if !flagConfigResolved {
		switch flagConfigFormat {
		case "yaml":
			os.Stdout.Write(config.DefaultYAML())
		case "toml":
			data, err := config.DefaultTOML()
			if err != nil {
				fatal("encoding defaults: %v", err)
			}
			os.Stdout.Write(data)
		default:
			fatal("unknown format %q", flagConfigFormat)
		}
		return
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPlatformerPreset(&cfg, preset)
	}

	switch flagConfigFormat {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			fatal("encoding config: %v", err)
		}
		_ = enc.Close()
	case "toml":
		if err := config.EncodeTOML(os.Stdout, cfg); err != nil {
			fatal("encoding config: %v", err)
		}
	default:
		fatal("unknown format %q", flagConfigFormat)
	}
}
