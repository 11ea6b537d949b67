package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mkg/internal/errors"
	"mkg/internal/graph"
)

const (
	titleSampleSize = 5
	titleMaxLen     = 80
)

// WriteEdgesCSV writes one row per aggregated edge with a short sample
// of supporting titles.
func WriteEdgesCSV(doc *Document, path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{
			"edge_id", "source", "source_type", "target", "target_type",
			"relation", "dominant_direction", "evidence_count",
			"primary_pattern", "evidence_titles",
		}); err != nil {
			return err
		}
		for _, e := range doc.Edges {
			row := []string{
				e.EdgeID,
				e.Source,
				string(e.SourceType),
				e.Target,
				string(e.TargetType),
				e.Relation,
				string(e.DominantDirection),
				strconv.Itoa(e.EvidenceCount),
				e.PrimaryPattern,
				titleSample(e.Evidence),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteEvidenceCSV writes one row per retained evidence item.
func WriteEvidenceCSV(doc *Document, path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{
			"edge_id", "source", "target", "relation",
			"title", "date", "url", "direction", "pattern",
		}); err != nil {
			return err
		}
		for _, e := range doc.Edges {
			for _, ev := range e.Evidence {
				row := []string{
					e.EdgeID,
					e.Source,
					e.Target,
					e.Relation,
					ev.Title,
					ev.Date,
					ev.URL,
					string(ev.Direction),
					ev.Pattern,
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeCSV(path string, fill func(*csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ExportFailed, err, "create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ExportFailed, err, "create csv file")
	}
	defer f.Close()

	if err := writeCSVTo(f, fill); err != nil {
		return errors.Wrapf(errors.ExportFailed, err, "write %s", filepath.Base(path))
	}
	return nil
}

func writeCSVTo(out io.Writer, fill func(*csv.Writer) error) error {
	w := csv.NewWriter(out)
	if err := fill(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// titleSample joins up to titleSampleSize evidence titles, each
// truncated to titleMaxLen runes.
func titleSample(evidence []graph.Evidence) string {
	titles := make([]string, 0, titleSampleSize)
	for _, ev := range evidence {
		if len(titles) == titleSampleSize {
			break
		}
		title := ev.Title
		if runes := []rune(title); len(runes) > titleMaxLen {
			title = string(runes[:titleMaxLen])
		}
		titles = append(titles, title)
	}
	return strings.Join(titles, " | ")
}
