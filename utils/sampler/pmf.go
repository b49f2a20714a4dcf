// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoItems        = errors.New("no items to sample")
	ErrInvalidWeight  = errors.New("weight must be finite and non-negative")
	ErrZeroWeightSum  = errors.New("weights sum to 0")
	ErrSubsetTooLarge = errors.New("subset size exceeds population")
	ErrEmptySubset    = errors.New("subset size must be positive")
	ErrLengthMismatch = errors.New("population and weights differ in length")
)

// QuadraticWeights returns w(i) = ((i+1)/n)^2 for i in [0, n).
//
// The items are mapped onto (0, 1] and the density y = x^2 is used as the
// weight, so later items are strictly more likely than earlier ones.
func QuadraticWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		x := float64(i+1) / float64(n)
		weights[i] = x * x
	}
	return weights
}

// UniformWeights returns n equal weights.
func UniformWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}

// NewPMF normalizes [weights] into a probability mass function.
//
// Returns an error if there are no weights, if any weight is negative or not
// finite, or if the weights sum to 0.
func NewPMF(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrNoItems
	}
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("%w: weights[%d] = %v", ErrInvalidWeight, i, weight)
		}
	}

	sum := floats.Sum(weights)
	if sum == 0 {
		return nil, ErrZeroWeightSum
	}
	if math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: weights overflow", ErrInvalidWeight)
	}

	pmf := make([]float64, len(weights))
	floats.ScaleTo(pmf, 1/sum, weights)
	return pmf, nil
}

// Population returns the indices [0, n).
func Population(n int) []int {
	population := make([]int, n)
	for i := range population {
		population[i] = i
	}
	return population
}
