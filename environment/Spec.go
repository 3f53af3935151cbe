package environment

import (
	"fmt"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion, an observation, or a discount
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	default:
		return "Discount"
	}
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type
// and bounds of an action, observation, or discount in an environment.
// Bounds are inclusive.
type Spec struct {
	Type       SpecType
	LowerBound float64
	UpperBound float64
	Cardinality
}

// NewSpec constructs a new environment specification
func NewSpec(t SpecType, lowerBound, upperBound float64,
	cardinality Cardinality) Spec {
	if lowerBound > upperBound {
		panic(fmt.Sprintf("lower bound %v must not exceed upper bound %v",
			lowerBound, upperBound))
	}
	return Spec{t, lowerBound, upperBound, cardinality}
}

// NewDiscreteSpec returns a specification of n enumerated values
// 0, 1, ..., n-1
func NewDiscreteSpec(t SpecType, n int) Spec {
	if n < 1 {
		panic(fmt.Sprintf("discrete spec must have at least one value, "+
			"got %v", n))
	}
	return NewSpec(t, 0, float64(n-1), Discrete)
}

// NewDiscreteSpecTo returns a specification of the enumerated values
// 0, 1, ..., upperBound. upperBound is rounded down.
func NewDiscreteSpecTo(t SpecType, upperBound float64) Spec {
	return NewDiscreteSpec(t, int(upperBound)+1)
}

// Size returns the number of values a discrete Spec enumerates. Size
// returns 0 for continuous specifications.
func (s Spec) Size() int {
	if s.Cardinality != Discrete {
		return 0
	}
	return int(s.UpperBound-s.LowerBound) + 1
}

func (s Spec) String() string {
	return fmt.Sprintf("%v Spec | %v  |  [%v, %v]", s.Type, s.Cardinality,
		s.LowerBound, s.UpperBound)
}
