// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// UniformSubsetIndex shuffles a copy of [population], streams the first [k]
// shuffled items through UniformIndex and returns the population element held
// at the chosen slot.
//
// Only a single representative is returned per call, not the full k-subset.
// Every element is returned with probability 1/len(population).
//
// [population] is not modified.
func UniformSubsetIndex(population []int, k int, rand Rand) (int, error) {
	if err := verifySubset(len(population), k); err != nil {
		return -1, err
	}

	shuffled := make([]int, len(population))
	copy(shuffled, population)
	Shuffle(shuffled, rand)

	slot := uniformIndex(k, rand)
	return shuffled[slot], nil
}

type weightedItem struct {
	index int
	pmf   float64
}

// WeightedSubsetIndex shuffles the (population, pmf) pairs and streams the
// whole shuffled sequence through WeightedIndex, returning the original
// population element of the winner.
//
// The scan is not limited to a subset of the shuffled sequence. The shuffle
// only decouples the positional order of the scan from the population order.
//
// [population] and [pmf] must have the same length and are not modified.
func WeightedSubsetIndex(population []int, pmf []float64, rand Rand) (int, error) {
	if len(population) == 0 {
		return -1, ErrNoItems
	}
	if len(population) != len(pmf) {
		return -1, fmt.Errorf("%w: %d items but %d weights", ErrLengthMismatch, len(population), len(pmf))
	}

	items := make([]weightedItem, len(population))
	for i, index := range population {
		items[i] = weightedItem{
			index: index,
			pmf:   pmf[i],
		}
	}
	Shuffle(items, rand)

	shuffledPMF := make([]float64, len(items))
	for i, item := range items {
		shuffledPMF[i] = item.pmf
	}
	slot := weightedIndex(shuffledPMF, rand)
	if slot < 0 {
		return -1, nil
	}
	return items[slot].index, nil
}

func verifySubset(n, k int) error {
	switch {
	case n < 1:
		return ErrNoItems
	case k < 1:
		return ErrEmptySubset
	case k > n:
		return fmt.Errorf("%w: %d > %d", ErrSubsetTooLarge, k, n)
	default:
		return nil
	}
}
