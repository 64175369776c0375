package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVLoader reads class indices from the first column of a CSV file.
// A non-numeric first record is treated as a header and skipped.
type CSVLoader struct{}

// CanLoad returns true if this loader can handle the file.
func (l *CSVLoader) CanLoad(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".csv"
}

// Load parses the CSV content.
func (l *CSVLoader) Load(path string, content []byte) ([]int, error) {
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var out []int
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("parsing %s: record %d: %w", path, i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
