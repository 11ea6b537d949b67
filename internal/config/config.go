// Package config holds the extraction run configuration: inclusion and
// event selection policies, direction resolver tuning, and output
// settings. Policy knobs only live here; the vocabulary itself is the
// lexicon's job.
package config

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"

	"mkg/internal/errors"
)

// Inclusion policies.
const (
	InclusionStrict  = "strict"
	InclusionRelaxed = "relaxed"
)

// Event selection policies.
const (
	SelectionPrimary = "primary"
	SelectionMulti   = "multi"
)

// Config represents the complete extraction configuration.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// LexiconPath points at a YAML lexicon file. Empty uses the
	// built-in vocabulary.
	LexiconPath string `json:"lexiconPath" mapstructure:"lexiconPath"`

	Extraction ExtractionConfig `json:"extraction" mapstructure:"extraction"`
	Direction  DirectionConfig  `json:"direction" mapstructure:"direction"`
	Output     OutputConfig     `json:"output" mapstructure:"output"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
}

// ExtractionConfig contains inclusion and edge policy settings.
type ExtractionConfig struct {
	// Inclusion gates edge creation: "strict" requires a causal
	// pattern match, "relaxed" accepts any event+asset co-occurrence.
	Inclusion string `json:"inclusion" mapstructure:"inclusion"`

	// EventSelection picks "primary" (one event per headline by
	// priority) or "multi" (every detected event builds edges).
	EventSelection string `json:"eventSelection" mapstructure:"eventSelection"`

	// EventPriority orders event ids for primary selection; the first
	// listed event present in a headline wins.
	EventPriority []string `json:"eventPriority" mapstructure:"eventPriority"`

	// EventEventEdges emits CO_OCCURRENCE edges between events
	// detected in the same headline (multi selection only).
	EventEventEdges bool `json:"eventEventEdges" mapstructure:"eventEventEdges"`

	// AssetAssetEdges emits correlation edges between assets detected
	// in the same headline.
	AssetAssetEdges bool `json:"assetAssetEdges" mapstructure:"assetAssetEdges"`

	// MarketFallback credits the lexicon's fallback asset when a
	// headline has an event but no asset mention.
	MarketFallback bool `json:"marketFallback" mapstructure:"marketFallback"`
}

// DirectionConfig tunes the per-asset direction resolver.
type DirectionConfig struct {
	// MinClauseLen drops clause fragments at or below this rune count
	// after trimming.
	MinClauseLen int `json:"minClauseLen" mapstructure:"minClauseLen"`

	// AfterBias scales the distance of movement indicators appearing
	// after an asset mention during proximity matching. Must be in
	// (0, 1]; lower values prefer trailing indicators more strongly.
	AfterBias float64 `json:"afterBias" mapstructure:"afterBias"`
}

// OutputConfig contains export settings.
type OutputConfig struct {
	Dir string `json:"dir" mapstructure:"dir"`

	// MaxEvidence bounds evidence records kept per edge in exports.
	// Zero keeps everything.
	MaxEvidence int `json:"maxEvidence" mapstructure:"maxEvidence"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Extraction: ExtractionConfig{
			Inclusion:       InclusionRelaxed,
			EventSelection:  SelectionMulti,
			EventPriority:   []string{"employment", "rate_cut", "rate_hike"},
			EventEventEdges: true,
			AssetAssetEdges: true,
			MarketFallback:  false,
		},
		Direction: DirectionConfig{
			MinClauseLen: 3,
			AfterBias:    0.9,
		},
		Output: OutputConfig{
			Dir:         "output",
			MaxEvidence: 10,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from a JSON file, merging it over the
// defaults. An empty path returns the defaults; a named file that does
// not exist is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.InputMissing, "config file %q not found", path)
		}
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("extraction.inclusion", def.Extraction.Inclusion)
	v.SetDefault("extraction.eventSelection", def.Extraction.EventSelection)
	v.SetDefault("extraction.eventPriority", def.Extraction.EventPriority)
	v.SetDefault("extraction.eventEventEdges", def.Extraction.EventEventEdges)
	v.SetDefault("extraction.assetAssetEdges", def.Extraction.AssetAssetEdges)
	v.SetDefault("extraction.marketFallback", def.Extraction.MarketFallback)
	v.SetDefault("direction.minClauseLen", def.Direction.MinClauseLen)
	v.SetDefault("direction.afterBias", def.Direction.AfterBias)
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("output.maxEvidence", def.Output.MaxEvidence)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Extraction.Inclusion {
	case InclusionStrict, InclusionRelaxed:
	default:
		return &ConfigError{Field: "extraction.inclusion", Message: "must be strict or relaxed"}
	}
	switch c.Extraction.EventSelection {
	case SelectionPrimary, SelectionMulti:
	default:
		return &ConfigError{Field: "extraction.eventSelection", Message: "must be primary or multi"}
	}
	if c.Direction.MinClauseLen < 0 {
		return &ConfigError{Field: "direction.minClauseLen", Message: "must not be negative"}
	}
	if c.Direction.AfterBias <= 0 || c.Direction.AfterBias > 1 {
		return &ConfigError{Field: "direction.afterBias", Message: "must be in (0, 1]"}
	}
	if c.Output.MaxEvidence < 0 {
		return &ConfigError{Field: "output.maxEvidence", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
