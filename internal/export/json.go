// Package export renders a finalized knowledge graph as JSON and CSV
// artifacts on disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"mkg/internal/errors"
	"mkg/internal/extract"
	"mkg/internal/graph"
	"mkg/internal/lexicon"
	"mkg/internal/version"
)

// Metadata describes one extraction run.
type Metadata struct {
	RunID          string        `json:"run_id"`
	GeneratedAt    string        `json:"generated_at"`
	Generator      string        `json:"generator"`
	LexiconVersion string        `json:"lexicon_version"`
	Extraction     extract.Stats `json:"extraction"`
	TotalNodes     int           `json:"total_nodes"`
	TotalEdges     int           `json:"total_edges"`
	TotalEvidence  int           `json:"total_evidence"`
}

// NodeRecord is one graph node as exported.
type NodeRecord struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Type  graph.EntityType `json:"type"`

	MentionCount     int             `json:"mention_count"`
	PositiveMentions int             `json:"positive_mentions"`
	NegativeMentions int             `json:"negative_mentions"`
	NeutralMentions  int             `json:"neutral_mentions"`
	DominantPolarity graph.Direction `json:"dominant_polarity"`
}

// EdgeRecord is one aggregated edge as exported, with a stable
// per-document id assigned in the graph's sorted edge order.
type EdgeRecord struct {
	EdgeID string `json:"id"`
	*graph.AggregatedEdge
}

// Document is the full JSON artifact of a run.
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Nodes    []*NodeRecord `json:"nodes"`
	Edges    []*EdgeRecord `json:"edges"`
}

// NewMetadata stamps a fresh run id and timestamp.
func NewMetadata(stats extract.Stats, lexVersion string) Metadata {
	return Metadata{
		RunID:          uuid.New().String(),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Generator:      "mkg " + version.Info(),
		LexiconVersion: lexVersion,
		Extraction:     stats,
	}
}

// Build assembles the export document. Node and edge totals are
// computed here; everything else in meta is taken as given.
func Build(g *graph.Graph, lex *lexicon.Lexicon, meta Metadata) *Document {
	meta.TotalNodes = len(g.Nodes)
	meta.TotalEdges = len(g.Edges)
	for _, e := range g.Edges {
		meta.TotalEvidence += e.EvidenceCount
	}

	doc := &Document{
		Metadata: meta,
		Nodes:    make([]*NodeRecord, 0, len(g.Nodes)),
		Edges:    make([]*EdgeRecord, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		doc.Nodes = append(doc.Nodes, &NodeRecord{
			ID:               n.ID,
			Label:            nodeLabel(lex, n.ID, n.Type),
			Type:             n.Type,
			MentionCount:     n.MentionCount,
			PositiveMentions: n.PositiveMentions,
			NegativeMentions: n.NegativeMentions,
			NeutralMentions:  n.NeutralMentions,
			DominantPolarity: n.DominantPolarity,
		})
	}
	for i, e := range g.Edges {
		doc.Edges = append(doc.Edges, &EdgeRecord{
			EdgeID:         fmt.Sprintf("edge:e%d", i+1),
			AggregatedEdge: e,
		})
	}
	return doc
}

// WriteJSON writes the document to path, creating parent directories
// as needed.
func WriteJSON(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ExportFailed, err, "encode graph document")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ExportFailed, err, "create output directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ExportFailed, err, "write graph document")
	}
	return nil
}

// nodeLabel resolves a qualified node id to its display name, falling
// back to the raw id when the lexicon does not know it.
func nodeLabel(lex *lexicon.Lexicon, id string, typ graph.EntityType) string {
	switch typ {
	case graph.EntityEvent:
		if ev, ok := lex.Events[strings.TrimPrefix(id, "event:")]; ok {
			return ev.DisplayName
		}
	case graph.EntityAsset:
		if a, ok := lex.Assets[strings.TrimPrefix(id, "asset:")]; ok {
			return a.DisplayName
		}
	case graph.EntityMechanism:
		if m, ok := lex.Mechanisms[id]; ok {
			return m.Name
		}
	}
	return id
}
