package loader

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// JSONLoader reads a JSON array of class indices.
type JSONLoader struct{}

// CanLoad returns true if this loader can handle the file.
func (l *JSONLoader) CanLoad(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// Load parses a JSON array of numbers into class indices. Float entries
// must be integral.
func (l *JSONLoader) Load(path string, content []byte) ([]int, error) {
	var values []float64
	if err := json.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	out := make([]int, len(values))
	for i, v := range values {
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("parsing %s: entry %d is not an integer class index: %v", path, i, v)
		}
		out[i] = int(v)
	}
	return out, nil
}
