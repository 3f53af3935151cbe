// Package matutils implements helper functions for gonum matrices and
// vectors
package matutils

import (
	"gonum.org/v1/gonum/mat"
)

// MaxVec returns the index of the first occurrence of the maximum
// value in a vector
func MaxVec(values mat.Vector) int {
	max, idx := values.AtVec(0), 0
	numActions := values.Len()

	for i := 1; i < numActions; i++ {
		if values.AtVec(i) > max {
			max = values.AtVec(i)
			idx = i
		}
	}
	return idx
}
