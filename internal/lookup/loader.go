// Package lookup loads the operator-supplied CSV table that maps
// (destination port, protocol) combinations to tags.
package lookup

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"flowtagger/internal/model"
)

var (
	// ErrRowTooShort reports a lookup row carrying fewer than the three
	// required fields (destination port, protocol, tag). A blank line counts
	// as a zero-field row.
	ErrRowTooShort = errors.New("lookup row has fewer than 3 fields")

	// ErrMissingHeader reports a lookup file with no rows at all, not even a
	// header.
	ErrMissingHeader = errors.New("lookup file has no header row")
)

// Table is the immutable in-memory lookup mapping. It is built once by Load
// and only read afterwards.
type Table struct {
	tags map[model.LookupKey]string
}

// Tag returns the tag assigned to key and whether the key is present.
func (t Table) Tag(key model.LookupKey) (string, bool) {
	tag, ok := t.tags[key]
	return tag, ok
}

// Len returns the number of distinct (port, protocol) entries.
func (t Table) Len() int {
	return len(t.tags)
}

// Load reads the lookup CSV at path into a Table. The first row is treated as
// a header and discarded without inspection; a file without even a header row
// fails with ErrMissingHeader. Each remaining row must carry at least
// destination port, protocol and tag; a blank line is a zero-field row and
// fails the load like any other short row, while columns beyond the third are
// ignored. The protocol field is lowercased before keying so matching is
// case-insensitive. When a (port, protocol) key repeats, the later row wins.
func Load(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open lookup file: %w", err)
	}
	defer file.Close()

	tags := make(map[model.LookupKey]string)
	scanner := bufio.NewScanner(file)
	row := 0
	for scanner.Scan() {
		row++
		if row == 1 {
			continue
		}
		record, err := parseRow(scanner.Text())
		if err != nil {
			return Table{}, fmt.Errorf("row %d of '%s': %w", row, path, err)
		}
		if len(record) < 3 {
			return Table{}, fmt.Errorf("row %d of '%s': %w", row, path, ErrRowTooShort)
		}
		key := model.LookupKey{Port: record[0], Protocol: strings.ToLower(record[1])}
		tags[key] = record[2]
	}
	if err := scanner.Err(); err != nil {
		return Table{}, fmt.Errorf("failed to read lookup file '%s': %w", path, err)
	}
	if row == 0 {
		return Table{}, fmt.Errorf("'%s': %w", path, ErrMissingHeader)
	}

	return Table{tags: tags}, nil
}

// parseRow splits a single CSV row into its fields. A blank line yields zero
// fields so it falls through to the same width check as any other short row.
func parseRow(line string) ([]string, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, nil
	}
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV row: %w", err)
	}
	return record, nil
}
