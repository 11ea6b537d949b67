package lexicon

import (
	"testing"

	"mkg/internal/errors"
	"mkg/internal/graph"
)

func compiledDefault(t *testing.T) *Lexicon {
	t.Helper()
	lex := Default()
	if err := lex.Compile(); err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	return lex
}

func TestDefault_Compiles(t *testing.T) {
	lex := compiledDefault(t)
	if !lex.Compiled() {
		t.Error("Compiled() = false after successful Compile")
	}
	if len(lex.EventIDs()) != 3 {
		t.Errorf("got %d events, want 3", len(lex.EventIDs()))
	}
	for i := 1; i < len(lex.AssetIDs()); i++ {
		if lex.AssetIDs()[i-1] >= lex.AssetIDs()[i] {
			t.Fatalf("asset ids not sorted: %q before %q", lex.AssetIDs()[i-1], lex.AssetIDs()[i])
		}
	}
}

func TestMatchAsset(t *testing.T) {
	lex := compiledDefault(t)
	tests := []struct {
		name  string
		asset string
		text  string
		want  bool
	}{
		{"plain alias", "gold", "gold rises on jobs data", true},
		{"plural alias", "dollar", "dollars gain after payrolls", true},
		{"possessive alias", "dollar", "dollar's rally extends", true},
		{"multi word alias", "dow", "dow jones climbs", true},
		{"no partial word", "gold", "marigold festival draws crowds", false},
		{"unknown asset id", "palladium", "palladium gains", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.MatchAsset(tt.asset, tt.text); got != tt.want {
				t.Errorf("MatchAsset(%q, %q) = %v, want %v", tt.asset, tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchEvent(t *testing.T) {
	lex := compiledDefault(t)
	tests := []struct {
		name  string
		event string
		text  string
		want  bool
	}{
		{"rate cut phrase", "rate_cut", "gold gains on fed cut hopes", true},
		{"employment keyword", "employment", "nonfarm payrolls beat forecasts", true},
		{"rate hike keyword", "rate_hike", "fed hike worries weigh on stocks", true},
		{"no event", "rate_cut", "oil steadies after opec meeting", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.MatchEvent(tt.event, tt.text); got != tt.want {
				t.Errorf("MatchEvent(%q, %q) = %v, want %v", tt.event, tt.text, got, tt.want)
			}
		})
	}
}

func TestAssetSpans_LongestAliasWins(t *testing.T) {
	lex := compiledDefault(t)
	spans := lex.AssetSpans("dollar", "us dollar firms against yen")
	if len(spans) == 0 {
		t.Fatal("no spans found")
	}
	// "us dollar" is tried before "dollar"; the shorter alias still
	// reports its own span, so both offsets appear but the full alias
	// comes first.
	if spans[0] != [2]int{0, 9} {
		t.Errorf("first span = %v, want [0 9] for %q", spans[0], "us dollar")
	}
}

func TestMovementSpans(t *testing.T) {
	lex := compiledDefault(t)
	spans := lex.MovementSpans("dollar surges while gold retreats on jobs data")
	var got []string
	for _, s := range spans {
		got = append(got, s.Indicator+"/"+string(s.Direction))
	}
	want := map[string]graph.Direction{"surges": graph.Positive, "retreats": graph.Negative}
	found := 0
	for _, s := range spans {
		if d, ok := want[s.Indicator]; ok {
			found++
			if s.Direction != d {
				t.Errorf("indicator %q direction = %q, want %q", s.Indicator, s.Direction, d)
			}
		}
	}
	if found != 2 {
		t.Errorf("spans = %v, want surge and retreats present", got)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].End {
			t.Errorf("overlapping spans at %d: %v", i, spans)
		}
	}
}

func TestStrength(t *testing.T) {
	lex := compiledDefault(t)
	tests := []struct {
		name string
		text string
		want string
	}{
		{"strong reading", "strong jobs report lifts dollar", "strong"},
		{"weak reading", "disappointing jobs data hits stocks", "weak"},
		{"both reads mixed", "strong job gains but disappointing job openings", "mixed"},
		{"no qualifier", "jobs report due friday", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.Strength("employment", tt.text); got != tt.want {
				t.Errorf("Strength(employment, %q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Lexicon)
		wantCode errors.ErrorCode
	}{
		{
			name:     "no events",
			mutate:   func(l *Lexicon) { l.Events = nil },
			wantCode: errors.LexiconInvalid,
		},
		{
			name: "event without keywords",
			mutate: func(l *Lexicon) {
				l.Events["empty"] = &Event{DisplayName: "Empty"}
			},
			wantCode: errors.LexiconInvalid,
		},
		{
			name: "bad mechanism pattern",
			mutate: func(l *Lexicon) {
				l.Mechanisms["mech:broken"] = &Mechanism{Name: "Broken", Patterns: []string{"("}}
			},
			wantCode: errors.PatternInvalid,
		},
		{
			name: "bad causal pattern",
			mutate: func(l *Lexicon) {
				l.Causal = append(l.Causal, &CausalRule{Name: "broken", Pattern: "[", Priority: 1})
			},
			wantCode: errors.PatternInvalid,
		},
		{
			name:     "unknown fallback asset",
			mutate:   func(l *Lexicon) { l.FallbackAsset = "no_such_asset" },
			wantCode: errors.UnknownAsset,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := Default()
			tt.mutate(lex)
			err := lex.Compile()
			if err == nil {
				t.Fatal("Compile() succeeded, want error")
			}
			if got := errors.CodeOf(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	data := []byte(`
version: "2.0"
assets:
  gold:
    display_name: Gold
    type: Commodity
    keywords: [gold, bullion]
market_context:
  fallback_asset: gold
`)
	lex, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if lex.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", lex.Version)
	}
	if len(lex.Assets) != 1 {
		t.Errorf("got %d assets, want the file's single asset", len(lex.Assets))
	}
	// Events were not overridden, so the built-in tables remain.
	if !lex.HasEvent("employment") {
		t.Error("built-in employment event missing after overlay")
	}
	if lex.FallbackAsset != "gold" {
		t.Errorf("fallback asset = %q, want gold", lex.FallbackAsset)
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("events: [not a map"))
	if err == nil {
		t.Fatal("Parse() succeeded on malformed YAML")
	}
	if got := errors.CodeOf(err); got != errors.LexiconInvalid {
		t.Errorf("error code = %q, want %q", got, errors.LexiconInvalid)
	}
}
