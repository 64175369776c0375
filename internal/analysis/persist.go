package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ArtifactName is the fixed, type-specific file name for a saved analysis.
const ArtifactName = "ConfusionAnalysis.json"

// Save writes the whole analysis (inputs and derived summary) to
// ArtifactName inside dir, creating dir if needed.
func (a *ConfusionAnalysis) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating artifact dir: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}

	path := filepath.Join(dir, ArtifactName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}
	a.log.Debugw("analysis saved", "path", path)
	return nil
}

// Load restores a saved analysis from ArtifactName inside dir. The
// restored object is fully usable: posterior estimation can be re-run
// against the persisted matrix and prior.
func Load(dir string, log *zap.SugaredLogger) (*ConfusionAnalysis, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	path := filepath.Join(dir, ArtifactName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}

	var a ConfusionAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}

	a.alpha = 1 - a.Confidence
	a.log = log
	log.Debugw("analysis loaded", "path", path)
	return &a, nil
}
