package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"mkg/internal/export"
	"mkg/internal/extract"
	"mkg/internal/headline"
	"mkg/internal/lexicon"

	"github.com/spf13/cobra"
)

var (
	extractLexicon   string // Path to a YAML lexicon overriding the built-in vocabulary
	extractOut       string // Output directory override
	extractInclusion string // Inclusion policy override
	extractSelection string // Event selection override
)

var extractCmd = &cobra.Command{
	Use:   "extract <corpus.csv>",
	Short: "Extract a knowledge graph from a headline corpus",
	Long: `Reads a CSV of news headlines, detects events, assets and policy
mechanisms, resolves per-asset movement direction, and writes the aggregated
graph as JSON plus edge and evidence CSVs.

Examples:
  mkg extract headlines.csv
  mkg extract headlines.csv --out run1
  mkg extract headlines.csv --inclusion strict
  mkg extract headlines.csv --lexicon custom.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractLexicon, "lexicon", "", "Path to a YAML lexicon file")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Output directory (default from config)")
	extractCmd.Flags().StringVar(&extractInclusion, "inclusion", "", "Inclusion policy: strict or relaxed")
	extractCmd.Flags().StringVar(&extractSelection, "selection", "", "Event selection: primary or multi")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if extractOut != "" {
		cfg.Output.Dir = extractOut
	}
	if extractInclusion != "" {
		cfg.Extraction.Inclusion = extractInclusion
	}
	if extractSelection != "" {
		cfg.Extraction.EventSelection = extractSelection
	}
	logger := newLogger(cfg)

	lexPath := extractLexicon
	if lexPath == "" {
		lexPath = cfg.LexiconPath
	}
	lex, err := loadLexicon(lexPath)
	if err != nil {
		return err
	}

	corpus, err := headline.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", map[string]interface{}{
		"path":      corpus.Path,
		"headlines": len(corpus.Headlines),
		"skipped":   corpus.Skipped,
	})

	engine, err := extract.NewEngine(lex, cfg, logger)
	if err != nil {
		return err
	}
	result := engine.Run(corpus.Headlines)

	doc := export.Build(result.Graph, lex, export.NewMetadata(result.Stats, lex.Version))
	jsonPath := filepath.Join(cfg.Output.Dir, "graph.json")
	edgesPath := filepath.Join(cfg.Output.Dir, "edges.csv")
	evidencePath := filepath.Join(cfg.Output.Dir, "evidence.csv")

	if err := export.WriteJSON(doc, jsonPath); err != nil {
		return err
	}
	if err := export.WriteEdgesCSV(doc, edgesPath); err != nil {
		return err
	}
	if err := export.WriteEvidenceCSV(doc, evidencePath); err != nil {
		return err
	}

	fmt.Printf("Extracted %d edges across %d nodes from %d headlines\n",
		doc.Metadata.TotalEdges, doc.Metadata.TotalNodes, result.Stats.TotalHeadlines)
	printSummary(doc, result.Stats)
	fmt.Printf("  graph:    %s\n", jsonPath)
	fmt.Printf("  edges:    %s\n", edgesPath)
	fmt.Printf("  evidence: %s\n", evidencePath)
	return nil
}

// printSummary reports coverage and per-relation tallies for the run.
func printSummary(doc *export.Document, stats extract.Stats) {
	fmt.Printf("\nCoverage: %d with events, %d with assets, %d with both, %d extracted\n",
		stats.WithEvents, stats.WithAssets, stats.WithBoth, stats.Extracted)

	relations := map[string]int{}
	for _, e := range doc.Edges {
		relations[e.Relation]++
	}
	order := make([]string, 0, len(relations))
	for rel := range relations {
		order = append(order, rel)
	}
	sort.Strings(order)
	fmt.Println("\nEdges by relation:")
	for _, rel := range order {
		fmt.Printf("  %-24s %d\n", rel, relations[rel])
	}

	types := map[string]int{}
	for _, n := range doc.Nodes {
		types[string(n.Type)]++
	}
	fmt.Println("Nodes by type:")
	for _, typ := range []string{"event", "mechanism", "asset"} {
		if types[typ] > 0 {
			fmt.Printf("  %-24s %d\n", typ, types[typ])
		}
	}
	fmt.Println()
}

// loadLexicon returns the built-in vocabulary when path is empty.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		lex := lexicon.Default()
		if err := lex.Compile(); err != nil {
			return nil, err
		}
		return lex, nil
	}
	return lexicon.Load(path)
}
