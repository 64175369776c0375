package loader

import (
	"fmt"
	"strconv"
	"strings"
)

// PlainLoader reads whitespace-separated class indices from plain text.
type PlainLoader struct{}

// CanLoad returns true; plain text is the fallback format.
func (l *PlainLoader) CanLoad(path string) bool {
	return true
}

// Load parses whitespace-separated integers.
func (l *PlainLoader) Load(path string, content []byte) ([]int, error) {
	fields := strings.Fields(string(content))
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: token %q is not a class index", path, f)
		}
		out[i] = v
	}
	return out, nil
}
