// Package prior resolves Dirichlet prior specifications into pseudocount
// vectors over the flattened confusion-matrix cells.
package prior

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPrior indicates a negative or unrecognized prior specification.
var ErrInvalidPrior = errors.New("invalid dirichlet prior")

// Spec is a tagged prior specification: either a raw scalar pseudocount
// applied uniformly to every cell, or the name of a preset from the
// catalog. Exactly one of the two forms is set.
type Spec struct {
	Scalar float64
	Name   string

	named bool
}

// Scalar builds a Spec from a raw pseudocount.
func Scalar(c float64) Spec {
	return Spec{Scalar: c}
}

// Named builds a Spec referring to a preset by name.
func Named(name string) Spec {
	return Spec{Name: name, named: true}
}

// Parse interprets a command-line prior argument: a numeric string is a
// scalar pseudocount, anything else a preset name.
func Parse(arg string) Spec {
	if c, err := strconv.ParseFloat(arg, 64); err == nil {
		return Scalar(c)
	}
	return Named(arg)
}

func (s Spec) String() string {
	if s.named {
		return s.Name
	}
	return strconv.FormatFloat(s.Scalar, 'g', -1, 64)
}

// Resolve turns a Spec into a pseudocount vector of length dim (one entry
// per flattened matrix cell). Scalars must be non-negative; names must
// exist in the preset catalog.
func Resolve(s Spec, dim int) ([]float64, error) {
	c := s.Scalar
	if s.named {
		preset, ok := presets[s.Name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q (available: %v)", ErrInvalidPrior, s.Name, Presets())
		}
		c = preset.Pseudocount
	}
	if c < 0 {
		return nil, fmt.Errorf("%w: pseudocount %v is negative", ErrInvalidPrior, c)
	}
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d", ErrInvalidPrior, dim)
	}
	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = c
	}
	return vec, nil
}
