// Package csvio reads resource description CSV files into ordered
// rows for the transformation core.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/research-data-tools/depositcsv/meta"
)

// Options configures CSV reading.
type Options struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
	// StripHTML removes markup from description values, for CSVs
	// exported out of a CMS.
	StripHTML bool
}

// Read parses CSV input. The first line is the header; each following
// line becomes one row keyed by the header columns, values trimmed.
// Lines that are entirely empty are skipped. Rows may have fewer
// fields than the header (trailing columns absent) or more (extras
// ignored).
func Read(r io.Reader, opts *Options) ([]*meta.Row, error) {
	if opts == nil {
		opts = &Options{}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]*meta.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if blank(record) {
			continue
		}
		row := meta.NewRow()
		for i, col := range header {
			if col == "" {
				continue
			}
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if opts.StripHTML && col == "description" {
				value = meta.StripHTML(value)
			}
			row.Set(col, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile reads a CSV file from disk.
func ReadFile(path string, opts *Options) ([]*meta.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
