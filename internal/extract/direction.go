package extract

import (
	"math"
	"regexp"
	"strings"

	"mkg/internal/graph"
	"mkg/internal/lexicon"
)

// clauseSeparators splits a headline into clauses at contrastive
// conjunctions and hard breaks. Multi-asset headlines usually describe
// each asset's move in its own clause.
var clauseSeparators = regexp.MustCompile(`\s+while\s+|\s+as\s+|\s+whereas\s+|\s+but\s+|\s+yet\s+|;\s*|,\s+and\s+`)

// Resolver assigns a ternary direction to each detected asset of a
// headline. Clause-local indicators win; assets whose clause carries
// no indicator fall back to character-offset proximity against the
// whole headline; anything still unresolved closes to neutral.
type Resolver struct {
	lex          *lexicon.Lexicon
	minClauseLen int
	afterBias    float64
}

// NewResolver builds a resolver. minClauseLen drops clause fragments
// at or below that length; afterBias scales the distance of
// indicators trailing an asset mention during proximity matching.
func NewResolver(lex *lexicon.Lexicon, minClauseLen int, afterBias float64) *Resolver {
	return &Resolver{lex: lex, minClauseLen: minClauseLen, afterBias: afterBias}
}

// Resolve maps every asset in assets to a direction for the
// lowercased headline. Every requested asset gets an entry.
func (r *Resolver) Resolve(lower string, assets []string) map[string]graph.Direction {
	directions := make(map[string]graph.Direction, len(assets))
	if len(assets) == 0 {
		return directions
	}

	clauses := r.split(lower)
	seen := make(map[string]bool, len(assets))

	for _, clause := range clauses {
		dir := r.ClauseDirection(clause)
		for _, id := range assets {
			if !r.lex.MatchAsset(id, clause) {
				continue
			}
			// Non-neutral readings overwrite an earlier neutral one;
			// a later neutral clause never downgrades.
			if _, ok := directions[id]; !ok || dir != graph.Neutral {
				directions[id] = dir
			}
			seen[id] = true
		}
	}

	// Single-clause headlines and assets outside every clause fall
	// back to proximity matching.
	needProximity := len(clauses) <= 1
	for _, id := range assets {
		if !seen[id] {
			needProximity = true
			break
		}
	}
	if needProximity {
		for id, dir := range r.byProximity(lower, assets) {
			if cur, ok := directions[id]; !ok || cur == graph.Neutral {
				directions[id] = dir
			}
		}
	}

	for _, id := range assets {
		if _, ok := directions[id]; !ok {
			directions[id] = graph.Neutral
		}
	}
	return directions
}

// split breaks the headline at clause separators and drops fragments
// too short to carry meaning.
func (r *Resolver) split(lower string) []string {
	parts := clauseSeparators.Split(lower, -1)
	var clauses []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) > r.minClauseLen {
			clauses = append(clauses, p)
		}
	}
	if len(clauses) == 0 {
		clauses = []string{lower}
	}
	return clauses
}

// ClauseDirection scores one clause: buckets are tried in precedence
// order and the first with a hit decides. No hit reads neutral.
func (r *Resolver) ClauseDirection(clause string) graph.Direction {
	for _, b := range lexicon.ClausePrecedence {
		if r.lex.BucketHit(b, clause) {
			return b.Direction()
		}
	}
	return graph.Neutral
}

// byProximity matches each asset to its nearest movement indicator by
// character span midpoints. Indicators after the asset mention have
// their distance scaled by afterBias, so "gold jumps" wins over a
// preceding indicator at equal distance.
func (r *Resolver) byProximity(lower string, assets []string) map[string]graph.Direction {
	out := make(map[string]graph.Direction)
	movements := r.lex.MovementSpans(lower)
	if len(movements) == 0 {
		return out
	}

	for _, id := range assets {
		spans := r.lex.AssetSpans(id, lower)
		if len(spans) == 0 {
			continue
		}
		best := graph.Neutral
		bestDist := math.Inf(1)
		for _, span := range spans {
			assetMid := float64(span[0]+span[1]) / 2
			for _, m := range movements {
				moveMid := float64(m.Start+m.End) / 2
				dist := math.Abs(assetMid - moveMid)
				if moveMid > assetMid {
					dist *= r.afterBias
				}
				if dist < bestDist {
					bestDist = dist
					best = m.Direction
				}
			}
		}
		if !math.IsInf(bestDist, 1) {
			out[id] = best
		}
	}
	return out
}

// adjacencyWindow is the widest gap, in characters, between an alias
// span and a movement indicator span for the two to count as talking
// about each other ("vix spikes", "fear gauge falls").
const adjacencyWindow = 10

// Adjust applies the inverse-asset correction: volatility-style
// assets move against the market read by default. A directional
// indicator right next to the asset's own alias is explicit evidence
// about that asset and suppresses the inversion.
func (r *Resolver) Adjust(lower, assetID string, dir graph.Direction) graph.Direction {
	asset, ok := r.lex.Assets[assetID]
	if !ok || !asset.Inverse || dir == graph.Neutral {
		return dir
	}
	movements := r.lex.MovementSpans(lower)
	for _, span := range r.lex.AssetSpans(assetID, lower) {
		for _, m := range movements {
			if m.Direction == graph.Neutral {
				continue
			}
			if spanGap(span[0], span[1], m.Start, m.End) <= adjacencyWindow {
				return dir
			}
		}
	}
	if dir == graph.Positive {
		return graph.Negative
	}
	return graph.Positive
}

// spanGap is the character distance between two half-open spans, zero
// when they touch or overlap.
func spanGap(aStart, aEnd, bStart, bEnd int) int {
	if aEnd <= bStart {
		return bStart - aEnd
	}
	if bEnd <= aStart {
		return aStart - bEnd
	}
	return 0
}
