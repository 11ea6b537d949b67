package main

import (
	"mkg/internal/config"
	"mkg/internal/logging"
	"mkg/internal/version"

	"github.com/spf13/cobra"
)

var (
	// configFlag is the CLI --config flag value
	configFlag string
	// logLevelFlag overrides the configured log level
	logLevelFlag string
	// logFormatFlag overrides the configured log format
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "mkg",
	Short: "MKG - Market Knowledge Graph extractor",
	Long: `MKG reads financial news headlines and extracts a causal knowledge
graph linking macro events (employment data, rate decisions) through policy
mechanisms to asset price moves, with per-edge supporting evidence.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("MKG version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to a JSON config file (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: human or json")
}

// loadConfig reads the --config file and applies log flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}
	if logFormatFlag != "" {
		cfg.Logging.Format = logFormatFlag
	}
	return cfg, nil
}

// newLogger builds the logger described by the configuration.
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.LogLevel(cfg.Logging.Level),
	})
}
