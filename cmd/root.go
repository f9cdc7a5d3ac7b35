package cmd

import (
	"fmt"
	"os"

	"region-cards/core/config"
	"region-cards/core/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "region-cards",
	Short: "Region flashcard dataset tool",
	Long: `Region Cards validates region/title JSON datasets and their images and
produces normalized records for building flashcards.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, matching what a CLI user expects
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", ".", "Directory holding .env / config.yaml")
	flags.String("dir", "", "Resources directory (overrides dataset.dir)")
	flags.String("items", "", "Items JSON file name (overrides dataset.items)")
	flags.String("titles", "", "Titles JSON file name (overrides dataset.titles)")
	flags.String("ext", "", "Image extension to cross-check (overrides dataset.image_ext)")
	flags.Bool("quick", true, "Log per-item warnings during verification (overrides dataset.quick)")
}

// loadRuntime loads configuration, applies command-line overrides and builds the logger.
func loadRuntime(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	if !cfg.Dataset.IsJSONFile() {
		return nil, nil, fmt.Errorf("invalid config: items (%s) and titles (%s) must be .json files", cfg.Dataset.Items, cfg.Dataset.Titles)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger.WithRunID(logg, uuid.NewString()), nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	overrides := map[string]*string{
		"dir":    &cfg.Dataset.Dir,
		"items":  &cfg.Dataset.Items,
		"titles": &cfg.Dataset.Titles,
		"ext":    &cfg.Dataset.ImageExt,
	}
	for name, target := range overrides {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = value
	}

	if flags.Changed("quick") {
		quick, err := flags.GetBool("quick")
		if err != nil {
			return err
		}
		cfg.Dataset.Quick = quick
	}

	return nil
}
