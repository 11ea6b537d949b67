package lexicon

import (
	"os"

	"gopkg.in/yaml.v3"

	"mkg/internal/errors"
)

// fileSchema mirrors the on-disk lexicon layout. Sections left out of
// the file inherit the built-in tables, so a file can override just
// the asset aliases without restating every causal rule.
type fileSchema struct {
	Version            string                 `yaml:"version"`
	Events             map[string]*Event      `yaml:"events"`
	Assets             map[string]*Asset      `yaml:"assets"`
	Mechanisms         map[string]*Mechanism  `yaml:"mechanisms"`
	MovementIndicators map[Bucket][]string    `yaml:"movement_indicators"`
	CausalPatterns     []*CausalRule          `yaml:"causal_patterns"`
	MarketContext      *marketContextOverride `yaml:"market_context"`
}

type marketContextOverride struct {
	FallbackAsset string `yaml:"fallback_asset"`
}

// Load reads a lexicon file and compiles it. The returned lexicon is
// ready for the engine.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.InputMissing, err, "read lexicon file")
	}
	return Parse(data)
}

// Parse builds a compiled lexicon from YAML bytes, overlaying the file
// on the built-in defaults.
func Parse(data []byte) (*Lexicon, error) {
	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.LexiconInvalid, err, "parse lexicon file")
	}

	lex := Default()
	if file.Version != "" {
		lex.Version = file.Version
	}
	if file.Events != nil {
		lex.Events = file.Events
	}
	if file.Assets != nil {
		lex.Assets = file.Assets
	}
	if file.Mechanisms != nil {
		lex.Mechanisms = file.Mechanisms
	}
	if file.MovementIndicators != nil {
		lex.Movement = file.MovementIndicators
	}
	if file.CausalPatterns != nil {
		lex.Causal = file.CausalPatterns
	}
	if file.MarketContext != nil {
		lex.FallbackAsset = file.MarketContext.FallbackAsset
	}

	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}
