// Package tabular reads header-named CSV tables into loosely typed records
// with defensive per-field coercion. Malformed cells never fail a row:
// numeric accessors fall back to zero (or nil for optional fields) and text
// accessors fall back to the empty string, so callers always receive a full
// sequence of records for any file that could be opened.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one table row keyed by column header.
type Record map[string]string

// --------------------------------------------------------------------------
// Reading
// --------------------------------------------------------------------------

// ReadFile opens and reads a whole CSV table. The only failure mode is the
// file itself: open and read errors are returned, row-level problems are not.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a CSV table from r. The first line is the header; every later
// line becomes one Record. Short rows leave the trailing columns absent and
// long rows drop the extra cells.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				rec[col] = fields[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// --------------------------------------------------------------------------
// Coercion accessors
// --------------------------------------------------------------------------

// Text returns the trimmed value of col, or "" when the column is absent.
func (r Record) Text(col string) string {
	return strings.TrimSpace(r[col])
}

// TextPtr returns the trimmed value of col, or nil when blank or absent.
// Used for fields whose semantics distinguish "no value" from empty, such as
// match dates.
func (r Record) TextPtr(col string) *string {
	s := strings.TrimSpace(r[col])
	if s == "" {
		return nil
	}
	return &s
}

// Int parses col as an integer, returning 0 on absence or parse failure.
func (r Record) Int(col string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r[col]))
	if err != nil {
		return 0
	}
	return n
}

// IntPtr parses col as an integer, returning nil on absence or parse
// failure. Used for fields where zero is a legitimate value, such as a match
// point differential.
func (r Record) IntPtr(col string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(r[col]))
	if err != nil {
		return nil
	}
	return &n
}
