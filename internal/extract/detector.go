// Package extract implements the headline extraction pipeline: entity
// detection, per-asset direction resolution, causal pattern
// classification, and candidate edge construction. The Engine ties
// the stages together over a corpus and hands the aggregate to the
// exporters.
package extract

import (
	"mkg/internal/lexicon"
)

// Detection is everything found in a single lowercased headline.
type Detection struct {
	Events     []string
	Assets     []string
	Mechanisms []string

	// Strength holds the qualifier reading per event, for events that
	// define qualifiers and headlines that trip them.
	Strength map[string]string
}

// HasEvents reports whether any event was detected.
func (d Detection) HasEvents() bool { return len(d.Events) > 0 }

// HasAssets reports whether any asset was detected.
func (d Detection) HasAssets() bool { return len(d.Assets) > 0 }

// Detector finds events, assets and mechanisms in headlines.
type Detector struct {
	lex *lexicon.Lexicon
}

// NewDetector returns a detector over a compiled lexicon.
func NewDetector(lex *lexicon.Lexicon) *Detector {
	return &Detector{lex: lex}
}

// Detect scans one lowercased headline. Result slices follow the
// lexicon's sorted id order so repeated runs see identical ordering.
func (d *Detector) Detect(lower string) Detection {
	det := Detection{}

	for _, id := range d.lex.EventIDs() {
		if !d.lex.MatchEvent(id, lower) {
			continue
		}
		det.Events = append(det.Events, id)
		if s := d.lex.Strength(id, lower); s != "" {
			if det.Strength == nil {
				det.Strength = make(map[string]string)
			}
			det.Strength[id] = s
		}
	}

	for _, id := range d.lex.AssetIDs() {
		if d.lex.MatchAsset(id, lower) {
			det.Assets = append(det.Assets, id)
		}
	}

	for _, id := range d.lex.MechanismIDs() {
		if d.lex.MatchMechanism(id, lower) {
			det.Mechanisms = append(det.Mechanisms, id)
		}
	}

	return det
}
