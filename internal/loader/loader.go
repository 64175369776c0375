// Package loader reads prediction and label sequences from files. Each
// supported format has its own Loader; dispatch is by file extension.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kmorrow/bayescm/internal/matrix"
)

// Loader defines the interface for reading a class-index sequence from
// one file format.
type Loader interface {
	// CanLoad returns true if this loader handles the file.
	CanLoad(path string) bool
	// Load parses content into a sequence of class indices.
	Load(path string, content []byte) ([]int, error)
}

// Load reads a file and parses it with the appropriate loader.
func Load(path string) ([]int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return getLoader(path).Load(path, content)
}

// LoadMatrix reads a file whose contents already encode a confusion
// matrix as a JSON 2D array of counts, for inputs tallied elsewhere.
func LoadMatrix(path string) (matrix.ConfusionMatrix, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return matrix.ConfusionMatrix{}, err
	}

	var cells [][]int
	if err := json.Unmarshal(content, &cells); err != nil {
		return matrix.ConfusionMatrix{}, fmt.Errorf("parsing %s as a matrix: %w", path, err)
	}
	return matrix.New(cells)
}

// getLoader returns the loader for a file based on its extension.
// Anything unrecognized is treated as whitespace-separated plain text.
func getLoader(path string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &JSONLoader{}
	case ".csv":
		return &CSVLoader{}
	default:
		return &PlainLoader{}
	}
}
