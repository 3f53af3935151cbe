package matutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"single", []float64{-3}, 0},
		{"all zero", []float64{0, 0, 0, 0, 0, 0}, 0},
		{"unique max", []float64{1, 5, 2}, 1},
		{"ties to first", []float64{1, 5, 2, 5}, 1},
		{"negative", []float64{-4, -2, -2, -9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mat.NewVecDense(len(tt.values), tt.values)
			assert.Equal(t, tt.want, MaxVec(v))
		})
	}
}
