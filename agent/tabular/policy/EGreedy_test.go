package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestNewEGreedy(t *testing.T) {
	_, err := NewEGreedy(-0.1, rand.NewSource(1))
	assert.Error(t, err)

	_, err = NewEGreedy(1.1, rand.NewSource(1))
	assert.Error(t, err)

	_, err = NewEGreedy(0.5, nil)
	assert.Error(t, err)

	p, err := NewEGreedy(0.5, rand.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.Epsilon())
}

func TestProbabilities(t *testing.T) {
	p, err := NewEGreedy(0.3, rand.NewSource(1))
	require.NoError(t, err)

	values := mat.NewVecDense(3, []float64{1, 4, 4})
	probs := make([]float64, 3)
	p.Probabilities(values, probs)

	// Ties go to the lowest index
	assert.InDelta(t, 0.1, probs[0], 1e-12)
	assert.InDelta(t, 0.8, probs[1], 1e-12)
	assert.InDelta(t, 0.1, probs[2], 1e-12)

	assert.Panics(t, func() { p.Probabilities(values, make([]float64, 2)) })
}

func TestGreedySelection(t *testing.T) {
	p, err := NewEGreedy(0, rand.NewSource(7))
	require.NoError(t, err)

	values := mat.NewVecDense(4, []float64{-1, 2, 0.5, 2})
	for i := 0; i < 1000; i++ {
		require.Equal(t, 1, p.SelectAction(values))
	}
}
