// Package graph holds the knowledge-graph data model shared by the
// extraction engine and the exporters: candidate edges produced per
// headline, aggregated edges keyed by (source, target, relation), and
// the node/edge collections of the finalized graph.
package graph

// Direction is the ternary polarity of an asset's described movement.
type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
	Neutral  Direction = "neutral"
)

// EntityType identifies which layer of the graph an entity belongs to.
type EntityType string

const (
	EntityEvent     EntityType = "event"
	EntityMechanism EntityType = "mechanism"
	EntityAsset     EntityType = "asset"
)

// Relation names for aggregated edges.
const (
	RelationTriggers            = "TRIGGERS"
	RelationPositivelyImpacts   = "POSITIVELY_IMPACTS"
	RelationNegativelyImpacts   = "NEGATIVELY_IMPACTS"
	RelationIndirectlyAffects   = "INDIRECTLY_AFFECTS"
	RelationCoOccurrence        = "CO_OCCURRENCE"
	RelationPositiveCorrelation = "POSITIVE_CORRELATION"
	RelationNegativeCorrelation = "NEGATIVE_CORRELATION"
)

// ImpactRelation maps a direction to its impact relation name.
func ImpactRelation(d Direction) string {
	switch d {
	case Positive:
		return RelationPositivelyImpacts
	case Negative:
		return RelationNegativelyImpacts
	default:
		return RelationIndirectlyAffects
	}
}

// QualifiedID returns the prefixed node id used in the exported graph,
// e.g. "event:employment" or "asset:gold". Mechanism ids in the lexicon
// already carry their "mech:" prefix and are passed through unchanged.
func QualifiedID(typ EntityType, id string) string {
	switch typ {
	case EntityEvent:
		return "event:" + id
	case EntityAsset:
		return "asset:" + id
	default:
		return id
	}
}

// Evidence is a single headline supporting an edge.
type Evidence struct {
	Title     string    `json:"title"`
	Date      string    `json:"date,omitempty"`
	URL       string    `json:"url,omitempty"`
	Direction Direction `json:"direction"`
	Pattern   string    `json:"pattern,omitempty"`
}

// CandidateEdge is one relationship inferred from a single headline.
// Candidates are transient: the engine folds them into the Aggregator
// as soon as they are built.
type CandidateEdge struct {
	Source     string
	SourceType EntityType
	Target     string
	TargetType EntityType
	Relation   string
	Direction  Direction
	Pattern    string
	Evidence   Evidence
}

// EdgeKey identifies an aggregated edge.
type EdgeKey struct {
	Source   string
	Target   string
	Relation string
}

// AggregatedEdge merges all candidate edges sharing an EdgeKey.
// Summary fields are populated by Finalize.
type AggregatedEdge struct {
	Source     string     `json:"source"`
	SourceType EntityType `json:"source_type"`
	Target     string     `json:"target"`
	TargetType EntityType `json:"target_type"`
	Relation   string     `json:"relation"`

	Evidence      []Evidence `json:"evidence"`
	EvidenceCount int        `json:"evidence_count"`

	DominantDirection Direction      `json:"dominant_direction"`
	PrimaryPattern    string         `json:"primary_pattern,omitempty"`
	PatternCounts     map[string]int `json:"pattern_distribution,omitempty"`
}

// Key returns the edge's aggregation key.
func (e *AggregatedEdge) Key() EdgeKey {
	return EdgeKey{Source: e.Source, Target: e.Target, Relation: e.Relation}
}

// Node is one distinct event/mechanism/asset observed in the corpus,
// with counters folded from every finalized edge touching it.
type Node struct {
	ID   string     `json:"id"`
	Type EntityType `json:"type"`

	MentionCount     int `json:"mention_count"`
	PositiveMentions int `json:"positive_mentions"`
	NegativeMentions int `json:"negative_mentions"`
	NeutralMentions  int `json:"neutral_mentions"`

	DominantPolarity Direction `json:"dominant_polarity"`
}

// Graph is the finalized node/edge collection handed to exporters.
type Graph struct {
	Nodes []*Node
	Edges []*AggregatedEdge
}
