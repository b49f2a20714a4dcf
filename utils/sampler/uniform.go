// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// UniformIndex selects one index in [0, n) with probability 1/n by streaming
// over the items once.
//
// Item i replaces the held item when its draw is below 1/(i+1). Item i
// survives every later replacement with probability
// 1/(i+1) * (i+1)/(i+2) * ... * (n-1)/n = 1/n.
//
// Exactly n draws are consumed, regardless of the outcome.
func UniformIndex(n int, rand Rand) (int, error) {
	if n < 1 {
		return -1, ErrNoItems
	}
	return uniformIndex(n, rand), nil
}

func uniformIndex(n int, rand Rand) int {
	chosen := -1
	for i := 0; i < n; i++ {
		chance := 1 / float64(i+1)
		if rand.Float64() < chance {
			chosen = i
		}
	}
	return chosen
}
