package extract

import (
	"strings"

	"mkg/internal/config"
	"mkg/internal/errors"
	"mkg/internal/graph"
	"mkg/internal/headline"
	"mkg/internal/lexicon"
	"mkg/internal/logging"
)

// Stats counts what happened to a corpus during extraction.
type Stats struct {
	TotalHeadlines int `json:"total_headlines"`
	WithEvents     int `json:"with_events"`
	WithAssets     int `json:"with_assets"`
	WithBoth       int `json:"with_both"`
	Extracted      int `json:"extracted"`
	RawEdges       int `json:"raw_edges"`
}

// Result is the outcome of one extraction run.
type Result struct {
	Graph *graph.Graph
	Stats Stats
}

// Engine runs the extraction pipeline over headline corpora.
type Engine struct {
	lex        *lexicon.Lexicon
	cfg        *config.Config
	log        *logging.Logger
	detector   *Detector
	resolver   *Resolver
	classifier *Classifier
}

// NewEngine wires the pipeline and cross-checks the configuration
// against the lexicon so bad ids fail here rather than mid-run.
func NewEngine(lex *lexicon.Lexicon, cfg *config.Config, log *logging.Logger) (*Engine, error) {
	if !lex.Compiled() {
		return nil, errors.New(errors.InternalError, "lexicon is not compiled")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid, err, "validate config")
	}
	for _, id := range cfg.Extraction.EventPriority {
		if !lex.HasEvent(id) {
			return nil, errors.Newf(errors.UnknownEvent, "event priority names unknown event %q", id)
		}
	}
	if cfg.Extraction.EventSelection == config.SelectionPrimary && len(cfg.Extraction.EventPriority) == 0 {
		return nil, errors.New(errors.ConfigInvalid, "primary event selection requires a non-empty event priority list")
	}
	if cfg.Extraction.MarketFallback && lex.FallbackAsset == "" {
		return nil, errors.New(errors.ConfigInvalid, "market fallback enabled but lexicon names no fallback asset")
	}

	return &Engine{
		lex:        lex,
		cfg:        cfg,
		log:        log,
		detector:   NewDetector(lex),
		resolver:   NewResolver(lex, cfg.Direction.MinClauseLen, cfg.Direction.AfterBias),
		classifier: NewClassifier(lex),
	}, nil
}

// Run extracts a knowledge graph from the corpus.
func (e *Engine) Run(headlines []headline.Headline) *Result {
	agg := graph.NewAggregator(e.cfg.Output.MaxEvidence)
	stats := Stats{TotalHeadlines: len(headlines)}

	for _, h := range headlines {
		text := strings.TrimSpace(h.Text)
		if text == "" {
			e.log.Debug("skipping empty headline", map[string]interface{}{"row": h.Row})
			continue
		}
		e.processHeadline(h, strings.ToLower(text), agg, &stats)
	}

	e.log.Info("extraction finished", map[string]interface{}{
		"headlines": stats.TotalHeadlines,
		"extracted": stats.Extracted,
		"raw_edges": stats.RawEdges,
		"edges":     agg.Len(),
	})

	return &Result{Graph: agg.Finalize(), Stats: stats}
}

func (e *Engine) processHeadline(h headline.Headline, lower string, agg *graph.Aggregator, stats *Stats) {
	det := e.detector.Detect(lower)
	if det.HasEvents() {
		stats.WithEvents++
	}
	if det.HasAssets() {
		stats.WithAssets++
	}
	if det.HasEvents() && det.HasAssets() {
		stats.WithBoth++
	}
	if !det.HasEvents() && !det.HasAssets() {
		return
	}

	pattern, matched := e.classifier.Classify(lower)
	if e.cfg.Extraction.Inclusion == config.InclusionStrict {
		// Strict inclusion wants demonstrated causality: an event, an
		// asset, and causal language.
		if !det.HasEvents() || !det.HasAssets() || !matched {
			return
		}
	}

	events := e.selectEvents(det.Events)
	assets := det.Assets
	directions := e.resolver.Resolve(lower, assets)

	if len(assets) == 0 && e.cfg.Extraction.MarketFallback && det.HasEvents() {
		fallback := e.lex.FallbackAsset
		assets = []string{fallback}
		directions[fallback] = e.resolver.ClauseDirection(lower)
	}

	before := agg.Len()
	emitted := false
	evidence := func(dir graph.Direction) graph.Evidence {
		return graph.Evidence{
			Title:     h.Text,
			Date:      h.Date,
			URL:       h.URL,
			Direction: dir,
			Pattern:   pattern,
		}
	}

	if e.cfg.Extraction.EventEventEdges && e.cfg.Extraction.EventSelection == config.SelectionMulti {
		for i := 0; i < len(events); i++ {
			for j := i + 1; j < len(events); j++ {
				agg.Add(graph.CandidateEdge{
					Source:     graph.QualifiedID(graph.EntityEvent, events[i]),
					SourceType: graph.EntityEvent,
					Target:     graph.QualifiedID(graph.EntityEvent, events[j]),
					TargetType: graph.EntityEvent,
					Relation:   graph.RelationCoOccurrence,
					Direction:  graph.Neutral,
					Pattern:    pattern,
					Evidence:   evidence(graph.Neutral),
				})
				stats.RawEdges++
				emitted = true
			}
		}
	}

	if len(events) > 0 && len(assets) > 0 {
		headlineDir := e.resolver.ClauseDirection(lower)
		if len(det.Mechanisms) > 0 {
			// Mechanism layer present: route the causal path through it
			// instead of linking events to assets directly. Each pair is
			// emitted once per headline so evidence counts stay one per
			// contributing headline.
			for _, event := range events {
				for _, mech := range det.Mechanisms {
					agg.Add(graph.CandidateEdge{
						Source:     graph.QualifiedID(graph.EntityEvent, event),
						SourceType: graph.EntityEvent,
						Target:     mech,
						TargetType: graph.EntityMechanism,
						Relation:   graph.RelationTriggers,
						Direction:  headlineDir,
						Pattern:    pattern,
						Evidence:   evidence(headlineDir),
					})
					stats.RawEdges++
				}
			}
			for _, mech := range det.Mechanisms {
				for _, asset := range assets {
					dir := e.assetDirection(lower, asset, events, det, directions)
					agg.Add(graph.CandidateEdge{
						Source:     mech,
						SourceType: graph.EntityMechanism,
						Target:     graph.QualifiedID(graph.EntityAsset, asset),
						TargetType: graph.EntityAsset,
						Relation:   graph.ImpactRelation(dir),
						Direction:  dir,
						Pattern:    pattern,
						Evidence:   evidence(dir),
					})
					stats.RawEdges++
				}
			}
		} else {
			for _, event := range events {
				for _, asset := range assets {
					dir := e.resolver.Adjust(lower, asset, directions[asset])
					dir = e.strengthAdjust(event, asset, det, dir)
					agg.Add(graph.CandidateEdge{
						Source:     graph.QualifiedID(graph.EntityEvent, event),
						SourceType: graph.EntityEvent,
						Target:     graph.QualifiedID(graph.EntityAsset, asset),
						TargetType: graph.EntityAsset,
						Relation:   graph.ImpactRelation(dir),
						Direction:  dir,
						Pattern:    pattern,
						Evidence:   evidence(dir),
					})
					stats.RawEdges++
				}
			}
		}
		emitted = true
	}

	if e.cfg.Extraction.AssetAssetEdges && len(assets) > 1 {
		for i := 0; i < len(assets); i++ {
			for j := i + 1; j < len(assets); j++ {
				d1 := directions[assets[i]]
				d2 := directions[assets[j]]
				relation := graph.RelationCoOccurrence
				if d1 != graph.Neutral && d2 != graph.Neutral {
					if d1 == d2 {
						relation = graph.RelationPositiveCorrelation
					} else {
						relation = graph.RelationNegativeCorrelation
					}
				}
				agg.Add(graph.CandidateEdge{
					Source:     graph.QualifiedID(graph.EntityAsset, assets[i]),
					SourceType: graph.EntityAsset,
					Target:     graph.QualifiedID(graph.EntityAsset, assets[j]),
					TargetType: graph.EntityAsset,
					Relation:   relation,
					Direction:  graph.Neutral,
					Pattern:    pattern,
					Evidence:   evidence(graph.Neutral),
				})
				stats.RawEdges++
				emitted = true
			}
		}
	}

	if emitted {
		stats.Extracted++
		e.log.Debug("headline extracted", map[string]interface{}{
			"row":    h.Row,
			"events": len(events),
			"assets": len(assets),
			"edges":  agg.Len() - before,
		})
	}
}

// selectEvents applies the event selection policy.
func (e *Engine) selectEvents(detected []string) []string {
	if e.cfg.Extraction.EventSelection != config.SelectionPrimary || len(detected) <= 1 {
		return detected
	}
	present := make(map[string]bool, len(detected))
	for _, id := range detected {
		present[id] = true
	}
	for _, id := range e.cfg.Extraction.EventPriority {
		if present[id] {
			return []string{id}
		}
	}
	// Nothing in the priority list matched; keep the first detected.
	return detected[:1]
}

// assetDirection resolves an asset's final direction for mechanism
// routing: inverse adjustment first, then the first detected event
// whose strength reading fills a still-neutral direction.
func (e *Engine) assetDirection(lower, asset string, events []string, det Detection, directions map[string]graph.Direction) graph.Direction {
	dir := e.resolver.Adjust(lower, asset, directions[asset])
	for _, event := range events {
		if adjusted := e.strengthAdjust(event, asset, det, dir); adjusted != dir {
			return adjusted
		}
	}
	return dir
}

// strengthAdjust fills in a direction from the event's qualifier
// reading when the text itself left the asset neutral. Weak readings
// with dovish repricing favor safe-haven assets and hurt the dollar;
// strong readings with hawkish repricing do the opposite.
func (e *Engine) strengthAdjust(event, asset string, det Detection, dir graph.Direction) graph.Direction {
	if dir != graph.Neutral {
		return dir
	}
	strength := det.Strength[event]
	if strength == "" || strength == "mixed" {
		return dir
	}

	dovish := containsAny(det.Mechanisms, "mech:rate_cut_bets", "mech:dovish_repricing")
	hawkish := containsAny(det.Mechanisms, "mech:rate_hike_bets", "mech:hawkish_repricing")

	switch {
	case strength == "weak" && dovish:
		if asset == "dollar" {
			return graph.Negative
		}
		if isSafeHaven(asset) {
			return graph.Positive
		}
	case strength == "strong" && hawkish:
		if asset == "dollar" {
			return graph.Positive
		}
		if isSafeHaven(asset) {
			return graph.Negative
		}
	}
	return dir
}

func isSafeHaven(asset string) bool {
	switch asset {
	case "gold", "bonds", "treasury", "bond_market", "safe_haven":
		return true
	}
	return false
}

func containsAny(list []string, wanted ...string) bool {
	for _, item := range list {
		for _, w := range wanted {
			if item == w {
				return true
			}
		}
	}
	return false
}
