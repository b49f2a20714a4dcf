// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// WeightedIndex selects one index with probability pmf[i] / sum(pmf) by
// streaming over the items once.
//
// After the first m items have been processed, item i < m is held with
// probability pmf[i] / sum(pmf[:m]). While the running sum is still 0 nothing
// can be accepted, but a draw is consumed anyway so that every item costs
// exactly one draw.
func WeightedIndex(pmf []float64, rand Rand) (int, error) {
	if len(pmf) == 0 {
		return -1, ErrNoItems
	}
	return weightedIndex(pmf, rand), nil
}

func weightedIndex(pmf []float64, rand Rand) int {
	var (
		weightSum float64
		chosen    = -1
	)
	for i, weight := range pmf {
		weightSum += weight
		var chance float64
		if weightSum > 0 {
			chance = weight / weightSum
		}
		if rand.Float64() < chance {
			chosen = i
		}
	}
	return chosen
}
