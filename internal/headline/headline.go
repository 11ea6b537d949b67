// Package headline loads news headline corpora from CSV files. Column
// names vary between corpus exports, so the loader discovers the
// title, date and url columns instead of requiring a fixed layout.
package headline

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"mkg/internal/errors"
)

// Headline is one news headline with optional provenance.
type Headline struct {
	Text string
	Date string
	URL  string

	// Row is the 1-based data row the headline came from.
	Row int
}

// Corpus is an ordered headline collection plus where it came from.
type Corpus struct {
	Headlines []Headline

	Path        string
	TitleColumn string

	// Skipped counts rows dropped for an empty title cell.
	Skipped int
}

// Load reads a headline corpus from a CSV file.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.InputMissing, err, "open corpus file")
	}
	defer f.Close()

	corpus, err := Read(f)
	if err != nil {
		return nil, err
	}
	corpus.Path = path
	return corpus, nil
}

// Read parses CSV headline data from a reader. The first record is the
// header row.
func Read(r io.Reader) (*Corpus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.InputInvalid, "corpus file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(errors.InputInvalid, err, "read corpus header")
	}

	titleIdx := findColumn(header, "title", "headline")
	if titleIdx < 0 {
		// No recognizable title column: fall back to the third column
		// when present, first otherwise. Matches common corpus dumps
		// where the title sits after id and date.
		if len(header) > 2 {
			titleIdx = 2
		} else {
			titleIdx = 0
		}
	}
	dateIdx := findColumnPrefix(header, "date")
	urlIdx := findColumn(header, "url", "link")

	corpus := &Corpus{TitleColumn: header[titleIdx]}
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.InputInvalid, err, "read corpus row")
		}
		row++
		if titleIdx >= len(record) {
			corpus.Skipped++
			continue
		}
		text := strings.TrimSpace(record[titleIdx])
		if text == "" {
			corpus.Skipped++
			continue
		}
		h := Headline{Text: text, Row: row}
		if dateIdx >= 0 && dateIdx < len(record) {
			h.Date = strings.TrimSpace(record[dateIdx])
		}
		if urlIdx >= 0 && urlIdx < len(record) {
			h.URL = strings.TrimSpace(record[urlIdx])
		}
		corpus.Headlines = append(corpus.Headlines, h)
	}
	return corpus, nil
}

// findColumn returns the index of the first header whose lowercase
// name contains any of the wanted substrings, or -1.
func findColumn(header []string, wanted ...string) int {
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		for _, w := range wanted {
			if strings.Contains(name, w) {
				return i
			}
		}
	}
	return -1
}

// findColumnPrefix matches header names that equal or start with a
// wanted name. The date column needs the anchored match: "updated"
// contains "date" but is not one.
func findColumnPrefix(header []string, wanted ...string) int {
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		for _, w := range wanted {
			if strings.HasPrefix(name, w) {
				return i
			}
		}
	}
	return -1
}
