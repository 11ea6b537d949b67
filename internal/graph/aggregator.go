package graph

import "sort"

// Aggregator folds candidate edges into aggregated edges keyed by
// (source, target, relation). It preserves first-seen ordering for
// tie-breaks so the same corpus always produces the same graph.
type Aggregator struct {
	edges map[EdgeKey]*aggState
	order []EdgeKey

	maxEvidence int
}

type aggState struct {
	edge *AggregatedEdge

	directionCounts map[Direction]int
	directionOrder  []Direction
	patternCounts   map[string]int
	patternOrder    []string

	totalEvidence int
}

// NewAggregator returns an empty aggregator. maxEvidence bounds the
// number of evidence records retained per edge; zero or negative means
// unbounded. Counters keep counting past the cap.
func NewAggregator(maxEvidence int) *Aggregator {
	return &Aggregator{
		edges:       make(map[EdgeKey]*aggState),
		maxEvidence: maxEvidence,
	}
}

// Add folds one candidate edge into the aggregate.
func (a *Aggregator) Add(c CandidateEdge) {
	key := EdgeKey{Source: c.Source, Target: c.Target, Relation: c.Relation}
	st, ok := a.edges[key]
	if !ok {
		st = &aggState{
			edge: &AggregatedEdge{
				Source:     c.Source,
				SourceType: c.SourceType,
				Target:     c.Target,
				TargetType: c.TargetType,
				Relation:   c.Relation,
			},
			directionCounts: make(map[Direction]int),
			patternCounts:   make(map[string]int),
		}
		a.edges[key] = st
		a.order = append(a.order, key)
	}

	if a.maxEvidence <= 0 || len(st.edge.Evidence) < a.maxEvidence {
		st.edge.Evidence = append(st.edge.Evidence, c.Evidence)
	}
	st.totalEvidence++

	if _, seen := st.directionCounts[c.Direction]; !seen {
		st.directionOrder = append(st.directionOrder, c.Direction)
	}
	st.directionCounts[c.Direction]++

	if c.Pattern != "" {
		if _, seen := st.patternCounts[c.Pattern]; !seen {
			st.patternOrder = append(st.patternOrder, c.Pattern)
		}
		st.patternCounts[c.Pattern]++
	}
}

// Len reports the number of distinct edges accumulated so far.
func (a *Aggregator) Len() int { return len(a.edges) }

// Finalize computes per-edge summaries, folds node statistics, and
// returns the finished graph. Edges are ordered by source, then
// target, then relation; nodes by type, then id.
func (a *Aggregator) Finalize() *Graph {
	g := &Graph{}
	nodes := make(map[string]*Node)

	for _, key := range a.order {
		st := a.edges[key]
		edge := st.edge
		edge.EvidenceCount = st.totalEvidence
		edge.DominantDirection = dominant(st.directionCounts, st.directionOrder)
		edge.PrimaryPattern = primary(st.patternCounts, st.patternOrder)
		if len(st.patternCounts) > 0 {
			edge.PatternCounts = st.patternCounts
		}
		g.Edges = append(g.Edges, edge)

		src := touch(nodes, edge.Source, edge.SourceType)
		dst := touch(nodes, edge.Target, edge.TargetType)
		src.MentionCount += st.totalEvidence
		dst.MentionCount += st.totalEvidence
		for d, n := range st.directionCounts {
			count(dst, d, n)
		}
	}

	for _, n := range nodes {
		n.DominantPolarity = nodePolarity(n)
		g.Nodes = append(g.Nodes, n)
	}

	sort.SliceStable(g.Edges, func(i, j int) bool {
		ei, ej := g.Edges[i], g.Edges[j]
		if ei.Source != ej.Source {
			return ei.Source < ej.Source
		}
		if ei.Target != ej.Target {
			return ei.Target < ej.Target
		}
		return ei.Relation < ej.Relation
	})
	sort.SliceStable(g.Nodes, func(i, j int) bool {
		ni, nj := g.Nodes[i], g.Nodes[j]
		if ni.Type != nj.Type {
			return ni.Type < nj.Type
		}
		return ni.ID < nj.ID
	})
	return g
}

func touch(nodes map[string]*Node, id string, typ EntityType) *Node {
	n, ok := nodes[id]
	if !ok {
		n = &Node{ID: id, Type: typ}
		nodes[id] = n
	}
	return n
}

func count(n *Node, d Direction, by int) {
	switch d {
	case Positive:
		n.PositiveMentions += by
	case Negative:
		n.NegativeMentions += by
	default:
		n.NeutralMentions += by
	}
}

// dominant picks the highest-count direction; ties go to the direction
// seen first in the corpus.
func dominant(counts map[Direction]int, order []Direction) Direction {
	best := Neutral
	bestN := -1
	for _, d := range order {
		if counts[d] > bestN {
			best = d
			bestN = counts[d]
		}
	}
	return best
}

// primary picks the highest-count pattern with a first-seen tie-break.
func primary(counts map[string]int, order []string) string {
	best := ""
	bestN := 0
	for _, p := range order {
		if counts[p] > bestN {
			best = p
			bestN = counts[p]
		}
	}
	return best
}

func nodePolarity(n *Node) Direction {
	if n.PositiveMentions > n.NegativeMentions && n.PositiveMentions > n.NeutralMentions {
		return Positive
	}
	if n.NegativeMentions > n.PositiveMentions && n.NegativeMentions > n.NeutralMentions {
		return Negative
	}
	return Neutral
}
