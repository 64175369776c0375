package prior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ScalarRoundTrip(t *testing.T) {
	vec, err := Resolve(Scalar(0.5), 9)
	require.NoError(t, err)
	require.Len(t, vec, 9)
	for _, v := range vec {
		assert.Equal(t, 0.5, v)
	}
}

func TestResolve_ZeroScalar(t *testing.T) {
	vec, err := Resolve(Scalar(0), 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, vec)
}

func TestResolve_NegativeScalar(t *testing.T) {
	_, err := Resolve(Scalar(-1), 4)
	assert.ErrorIs(t, err, ErrInvalidPrior)
}

func TestResolve_Presets(t *testing.T) {
	tests := []struct {
		name        string
		pseudocount float64
	}{
		{"flat", 1.0},
		{"jeffreys", 0.5},
		{"weak", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := Resolve(Named(tt.name), 4)
			require.NoError(t, err)
			require.Len(t, vec, 4)
			for _, v := range vec {
				assert.Equal(t, tt.pseudocount, v)
			}
		})
	}
}

func TestResolve_UnknownPreset(t *testing.T) {
	_, err := Resolve(Named("bogus"), 4)
	assert.ErrorIs(t, err, ErrInvalidPrior)
}

func TestResolve_BadDimension(t *testing.T) {
	_, err := Resolve(Scalar(1), 0)
	assert.ErrorIs(t, err, ErrInvalidPrior)
}

func TestParse(t *testing.T) {
	assert.Equal(t, Scalar(0.25), Parse("0.25"))
	assert.Equal(t, Named("jeffreys"), Parse("jeffreys"))
}

func TestPresets_Sorted(t *testing.T) {
	assert.Equal(t, []string{"flat", "jeffreys", "weak"}, Presets())
}
