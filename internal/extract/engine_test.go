package extract

import (
	"reflect"
	"testing"

	"mkg/internal/config"
	"mkg/internal/errors"
	"mkg/internal/graph"
	"mkg/internal/headline"
	"mkg/internal/lexicon"
	"mkg/internal/logging"
)

func newTestEngine(t *testing.T, mutate func(*config.Config)) *Engine {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	eng, err := NewEngine(testLexicon(t), cfg, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return eng
}

func titles(texts ...string) []headline.Headline {
	hs := make([]headline.Headline, len(texts))
	for i, text := range texts {
		hs[i] = headline.Headline{Text: text, Row: i + 1}
	}
	return hs
}

func findEdge(g *graph.Graph, source, target, relation string) *graph.AggregatedEdge {
	for _, e := range g.Edges {
		if e.Source == source && e.Target == target && e.Relation == relation {
			return e
		}
	}
	return nil
}

func TestNewEngine_FailsFast(t *testing.T) {
	lex := testLexicon(t)
	log := logging.NewDiscardLogger()

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		wantCode errors.ErrorCode
	}{
		{
			name:     "unknown event in priority list",
			mutate:   func(c *config.Config) { c.Extraction.EventPriority = []string{"gdp_report"} },
			wantCode: errors.UnknownEvent,
		},
		{
			name:     "invalid inclusion policy",
			mutate:   func(c *config.Config) { c.Extraction.Inclusion = "loose" },
			wantCode: errors.ConfigInvalid,
		},
		{
			name: "fallback enabled without lexicon support",
			mutate: func(c *config.Config) {
				c.Extraction.MarketFallback = true
			},
			wantCode: errors.ConfigInvalid,
		},
		{
			name: "primary selection with empty priority",
			mutate: func(c *config.Config) {
				c.Extraction.EventSelection = config.SelectionPrimary
				c.Extraction.EventPriority = nil
			},
			wantCode: errors.ConfigInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			_, err := NewEngine(lex, cfg, log)
			if err == nil {
				t.Fatal("NewEngine() succeeded, want error")
			}
			if got := errors.CodeOf(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestEngine_OpposingDirections(t *testing.T) {
	eng := newTestEngine(t, nil)
	res := eng.Run(titles("Dollar surges while gold retreats on strong jobs data"))

	pos := findEdge(res.Graph, "event:employment", "asset:dollar", graph.RelationPositivelyImpacts)
	if pos == nil {
		t.Fatal("missing employment -> dollar POSITIVELY_IMPACTS edge")
	}
	neg := findEdge(res.Graph, "event:employment", "asset:gold", graph.RelationNegativelyImpacts)
	if neg == nil {
		t.Fatal("missing employment -> gold NEGATIVELY_IMPACTS edge")
	}
	corr := findEdge(res.Graph, "asset:dollar", "asset:gold", graph.RelationNegativeCorrelation)
	if corr == nil {
		t.Fatal("missing dollar/gold NEGATIVE_CORRELATION edge")
	}
}

func TestEngine_AggregatesRepeatedHeadlines(t *testing.T) {
	eng := newTestEngine(t, nil)
	res := eng.Run(titles(
		"Dollar rises as hiring accelerates",
		"Dollar climbs as hiring improves",
	))

	edge := findEdge(res.Graph, "event:employment", "asset:dollar", graph.RelationPositivelyImpacts)
	if edge == nil {
		t.Fatal("missing employment -> dollar edge")
	}
	if edge.EvidenceCount != 2 {
		t.Errorf("evidence count = %d, want 2", edge.EvidenceCount)
	}
	if edge.DominantDirection != graph.Positive {
		t.Errorf("dominant direction = %q, want positive", edge.DominantDirection)
	}
}

func TestEngine_StrictPolicyGates(t *testing.T) {
	strict := newTestEngine(t, func(c *config.Config) {
		c.Extraction.Inclusion = config.InclusionStrict
	})

	// Asset without any event: nothing under strict, regardless of
	// alias presence.
	res := strict.Run(titles("Market closed for holiday"))
	if len(res.Graph.Edges) != 0 {
		t.Errorf("strict produced %d edges for event-free headline, want 0", len(res.Graph.Edges))
	}
	if res.Stats.Extracted != 0 {
		t.Errorf("strict extracted = %d, want 0", res.Stats.Extracted)
	}

	// Event plus asset plus causal language passes the gate.
	res = strict.Run(titles("Stocks rose on jobs report"))
	if len(res.Graph.Edges) == 0 {
		t.Error("strict produced no edges for a causal headline")
	}
}

func TestEngine_RelaxedIncludesCooccurrence(t *testing.T) {
	relaxed := newTestEngine(t, nil)
	// No causal verb, but event and asset co-occur.
	res := relaxed.Run(titles("Gold, jobless claims in focus"))
	edge := findEdge(res.Graph, "event:employment", "asset:gold", graph.RelationIndirectlyAffects)
	if edge == nil {
		t.Fatal("relaxed policy dropped an event+asset co-occurrence")
	}
	if edge.PrimaryPattern != FallbackPattern {
		t.Errorf("pattern = %q, want %q", edge.PrimaryPattern, FallbackPattern)
	}
}

func TestEngine_EventSelectionPolicies(t *testing.T) {
	text := "Rate cut talk grows after layoffs mount"

	multi := newTestEngine(t, nil)
	res := multi.Run(titles(text))
	if findEdge(res.Graph, "event:employment", "event:rate_cut", graph.RelationCoOccurrence) == nil {
		t.Error("multi selection missing event CO_OCCURRENCE edge")
	}

	primary := newTestEngine(t, func(c *config.Config) {
		c.Extraction.EventSelection = config.SelectionPrimary
	})
	res = primary.Run(titles(text))
	for _, e := range res.Graph.Edges {
		if e.SourceType == graph.EntityEvent && e.TargetType == graph.EntityEvent {
			t.Errorf("primary selection emitted event-event edge %s -> %s", e.Source, e.Target)
		}
		if e.Source == "event:rate_cut" {
			t.Errorf("primary selection kept non-primary event edge %s -> %s", e.Source, e.Target)
		}
	}
}

func TestEngine_MechanismRouting(t *testing.T) {
	eng := newTestEngine(t, nil)
	res := eng.Run(titles("Gold flat as weak jobs data lifts rate cut hopes"))

	if findEdge(res.Graph, "event:employment", "mech:rate_cut_bets", graph.RelationTriggers) == nil {
		t.Fatal("missing employment -> rate_cut_bets TRIGGERS edge")
	}
	// Gold reads neutral from the text, but a weak employment print
	// with dovish repricing favors safe havens.
	if findEdge(res.Graph, "mech:rate_cut_bets", "asset:gold", graph.RelationPositivelyImpacts) == nil {
		t.Fatal("missing rate_cut_bets -> gold POSITIVELY_IMPACTS edge")
	}
	// The mechanism layer replaces the direct event -> asset path.
	for _, e := range res.Graph.Edges {
		if e.Source == "event:employment" && e.Target == "asset:gold" {
			t.Errorf("unexpected direct edge alongside mechanism routing: %s", e.Relation)
		}
	}
}

func TestEngine_MechanismEdgesOncePerHeadline(t *testing.T) {
	eng := newTestEngine(t, nil)
	// One event, one mechanism, two assets: every mechanism edge must
	// still carry exactly one evidence record for the one headline.
	res := eng.Run(titles("Dollar and gold rise ahead of jobs report"))

	triggers := findEdge(res.Graph, "event:employment", "mech:ahead_of_jobs_report", graph.RelationTriggers)
	if triggers == nil {
		t.Fatal("missing employment -> ahead_of_jobs_report TRIGGERS edge")
	}
	if triggers.EvidenceCount != 1 {
		t.Errorf("TRIGGERS evidence count = %d, want 1", triggers.EvidenceCount)
	}
	for _, asset := range []string{"asset:dollar", "asset:gold"} {
		impact := findEdge(res.Graph, "mech:ahead_of_jobs_report", asset, graph.RelationPositivelyImpacts)
		if impact == nil {
			t.Fatalf("missing ahead_of_jobs_report -> %s edge", asset)
		}
		if impact.EvidenceCount != 1 {
			t.Errorf("%s evidence count = %d, want 1", asset, impact.EvidenceCount)
		}
	}
}

func TestEngine_MarketFallback(t *testing.T) {
	lex := lexicon.Default()
	lex.FallbackAsset = "market_general"
	if err := lex.Compile(); err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Extraction.MarketFallback = true
	eng, err := NewEngine(lex, cfg, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	res := eng.Run(titles("Payrolls beat expectations"))
	edge := findEdge(res.Graph, "event:employment", "asset:market_general", graph.RelationPositivelyImpacts)
	if edge == nil {
		t.Fatal("fallback asset not credited for asset-free event headline")
	}
}

func TestEngine_Stats(t *testing.T) {
	eng := newTestEngine(t, nil)
	res := eng.Run(titles(
		"Dollar surges while gold retreats on strong jobs data", // event + assets
		"Gold ticks higher",             // asset only
		"Rate cut expected next month",  // event only
		"Weather fine across the plains", // neither
		"",                              // skipped
	))
	s := res.Stats
	if s.TotalHeadlines != 5 {
		t.Errorf("TotalHeadlines = %d, want 5", s.TotalHeadlines)
	}
	if s.WithEvents != 2 {
		t.Errorf("WithEvents = %d, want 2", s.WithEvents)
	}
	if s.WithAssets != 2 {
		t.Errorf("WithAssets = %d, want 2", s.WithAssets)
	}
	if s.WithBoth != 1 {
		t.Errorf("WithBoth = %d, want 1", s.WithBoth)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	corpus := titles(
		"Dollar surges while gold retreats on strong jobs data",
		"Stocks rally on rate cut hopes",
		"Gold climbs as bonds fall on weak jobs report",
		"Vix spikes as stocks sink after weak jobs report",
	)
	a := newTestEngine(t, nil).Run(corpus)
	b := newTestEngine(t, nil).Run(corpus)
	if !reflect.DeepEqual(a.Graph, b.Graph) {
		t.Error("identical runs produced different graphs")
	}
	if !reflect.DeepEqual(a.Stats, b.Stats) {
		t.Error("identical runs produced different stats")
	}
}
