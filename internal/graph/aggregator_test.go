package graph

import (
	"reflect"
	"testing"
)

func candidate(src, dst, rel string, dir Direction, pattern, title string) CandidateEdge {
	return CandidateEdge{
		Source:     src,
		SourceType: EntityEvent,
		Target:     dst,
		TargetType: EntityAsset,
		Relation:   rel,
		Direction:  dir,
		Pattern:    pattern,
		Evidence: Evidence{
			Title:     title,
			Direction: dir,
			Pattern:   pattern,
		},
	}
}

func TestAggregator_MergesByKey(t *testing.T) {
	agg := NewAggregator(0)
	agg.Add(candidate("event:employment", "asset:gold", RelationNegativelyImpacts, Negative, "explicit_on_after", "h1"))
	agg.Add(candidate("event:employment", "asset:gold", RelationNegativelyImpacts, Negative, "explicit_as", "h2"))
	agg.Add(candidate("event:employment", "asset:dollar", RelationPositivelyImpacts, Positive, "explicit_on_after", "h3"))

	if got := agg.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	g := agg.Finalize()
	if len(g.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(g.Edges))
	}
	// Sorted by source/target/relation: dollar before gold.
	gold := g.Edges[1]
	if gold.Target != "asset:gold" {
		t.Fatalf("edge order wrong: %q", gold.Target)
	}
	if gold.EvidenceCount != 2 || len(gold.Evidence) != 2 {
		t.Errorf("evidence: count=%d len=%d, want 2/2", gold.EvidenceCount, len(gold.Evidence))
	}
	if gold.DominantDirection != Negative {
		t.Errorf("dominant direction = %q, want negative", gold.DominantDirection)
	}
}

func TestAggregator_FirstSeenTieBreaks(t *testing.T) {
	tests := []struct {
		name        string
		candidates  []CandidateEdge
		wantDir     Direction
		wantPattern string
	}{
		{
			name: "direction tie keeps earlier direction",
			candidates: []CandidateEdge{
				candidate("a", "b", RelationIndirectlyAffects, Positive, "p1", "h1"),
				candidate("a", "b", RelationIndirectlyAffects, Negative, "p1", "h2"),
			},
			wantDir:     Positive,
			wantPattern: "p1",
		},
		{
			name: "pattern tie keeps earlier pattern",
			candidates: []CandidateEdge{
				candidate("a", "b", RelationIndirectlyAffects, Neutral, "late", "h1"),
				candidate("a", "b", RelationIndirectlyAffects, Neutral, "early", "h2"),
				candidate("a", "b", RelationIndirectlyAffects, Neutral, "early", "h3"),
			},
			wantDir:     Neutral,
			wantPattern: "early",
		},
		{
			name: "majority beats first seen",
			candidates: []CandidateEdge{
				candidate("a", "b", RelationIndirectlyAffects, Neutral, "p1", "h1"),
				candidate("a", "b", RelationIndirectlyAffects, Negative, "p2", "h2"),
				candidate("a", "b", RelationIndirectlyAffects, Negative, "p2", "h3"),
			},
			wantDir:     Negative,
			wantPattern: "p2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(0)
			for _, c := range tt.candidates {
				agg.Add(c)
			}
			g := agg.Finalize()
			if len(g.Edges) != 1 {
				t.Fatalf("got %d edges, want 1", len(g.Edges))
			}
			edge := g.Edges[0]
			if edge.DominantDirection != tt.wantDir {
				t.Errorf("dominant direction = %q, want %q", edge.DominantDirection, tt.wantDir)
			}
			if edge.PrimaryPattern != tt.wantPattern {
				t.Errorf("primary pattern = %q, want %q", edge.PrimaryPattern, tt.wantPattern)
			}
		})
	}
}

func TestAggregator_EvidenceCap(t *testing.T) {
	agg := NewAggregator(2)
	for i := 0; i < 5; i++ {
		agg.Add(candidate("a", "b", RelationCoOccurrence, Neutral, "", "h"))
	}
	g := agg.Finalize()
	edge := g.Edges[0]
	if len(edge.Evidence) != 2 {
		t.Errorf("retained evidence = %d, want 2", len(edge.Evidence))
	}
	if edge.EvidenceCount != 5 {
		t.Errorf("evidence count = %d, want 5", edge.EvidenceCount)
	}
}

func TestAggregator_NodeStats(t *testing.T) {
	agg := NewAggregator(0)
	agg.Add(candidate("event:employment", "asset:gold", RelationNegativelyImpacts, Negative, "", "h1"))
	agg.Add(candidate("event:employment", "asset:gold", RelationNegativelyImpacts, Negative, "", "h2"))
	agg.Add(candidate("event:employment", "asset:dollar", RelationPositivelyImpacts, Positive, "", "h3"))

	g := agg.Finalize()
	byID := make(map[string]*Node)
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	ev := byID["event:employment"]
	if ev == nil || ev.MentionCount != 3 {
		t.Fatalf("event node = %+v, want 3 mentions", ev)
	}
	gold := byID["asset:gold"]
	if gold.NegativeMentions != 2 || gold.DominantPolarity != Negative {
		t.Errorf("gold node = %+v, want 2 negative mentions, negative polarity", gold)
	}
	dollar := byID["asset:dollar"]
	if dollar.PositiveMentions != 1 || dollar.DominantPolarity != Positive {
		t.Errorf("dollar node = %+v, want positive polarity", dollar)
	}
}

func TestAggregator_Deterministic(t *testing.T) {
	build := func() *Graph {
		agg := NewAggregator(0)
		agg.Add(candidate("event:rate_cut", "asset:bonds", RelationPositivelyImpacts, Positive, "explicit_as", "h1"))
		agg.Add(candidate("event:employment", "asset:gold", RelationNegativelyImpacts, Negative, "explicit_on_after", "h2"))
		agg.Add(candidate("event:rate_cut", "asset:gold", RelationPositivelyImpacts, Positive, "explicit_as", "h3"))
		return agg.Finalize()
	}
	a, b := build(), build()
	if !reflect.DeepEqual(a, b) {
		t.Error("finalized graphs differ across identical runs")
	}
	for i := 1; i < len(a.Edges); i++ {
		prev, cur := a.Edges[i-1], a.Edges[i]
		if prev.Source > cur.Source {
			t.Errorf("edges not sorted by source: %q before %q", prev.Source, cur.Source)
		}
	}
}
