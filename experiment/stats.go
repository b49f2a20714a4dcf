// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Summary compares observed selection counts against expected counts.
type Summary struct {
	// ChiSquared is Pearson's goodness of fit statistic.
	ChiSquared float64 `json:"chiSquared"`
	// DegreesOfFreedom is the number of items with a non-zero expectation,
	// minus one.
	DegreesOfFreedom int `json:"degreesOfFreedom"`
	// PValue is the probability of a statistic at least as large as
	// ChiSquared if the sampler reproduced the expected distribution.
	PValue float64 `json:"pValue"`
	// MaxRelativeDeviation is the largest |observed-expected|/expected.
	MaxRelativeDeviation float64 `json:"maxRelativeDeviation"`
}

// Summarize computes the goodness of fit of [observed] against [expected].
// Items that are not expected to be selected are skipped.
func Summarize(expected []float64, observed []uint64) Summary {
	var (
		s          Summary
		categories int
	)
	for i, e := range expected {
		if e <= 0 {
			continue
		}
		categories++

		diff := float64(observed[i]) - e
		s.ChiSquared += diff * diff / e
		s.MaxRelativeDeviation = math.Max(s.MaxRelativeDeviation, math.Abs(diff)/e)
	}

	s.DegreesOfFreedom = categories - 1
	if s.DegreesOfFreedom < 1 {
		s.PValue = 1
		return s
	}
	s.PValue = distuv.ChiSquared{K: float64(s.DegreesOfFreedom)}.Survival(s.ChiSquared)
	return s
}

// Summary of the result's histogram against its expectation.
func (r *Result) Summary() Summary {
	return Summarize(r.Expected, r.Histogram)
}
