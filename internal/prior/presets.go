package prior

import (
	"embed"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetFS embed.FS

// Preset is one entry of the named prior catalog.
type Preset struct {
	Name        string  `yaml:"name"`
	Pseudocount float64 `yaml:"pseudocount"`
	Description string  `yaml:"description"`
}

var presets = map[string]Preset{}

func init() {
	data, err := presetFS.ReadFile("presets.yaml")
	if err != nil {
		return
	}

	var catalog struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return
	}

	for _, p := range catalog.Presets {
		presets[p.Name] = p
	}
}

// Presets returns the names of all catalog entries, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset for a name, if it exists.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}
