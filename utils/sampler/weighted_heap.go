// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"sort"
)

type weightedHeapElement struct {
	weight           float64
	cumulativeWeight float64
	index            int
}

// WeightedHeap samples an index with probability proportional to its weight
// by walking a heap of cumulative weights. Unlike [WeightedIndex] it needs
// every weight up front, and a single draw per sample.
type WeightedHeap struct {
	heap []weightedHeapElement
}

func NewWeightedHeap(weights []float64) (*WeightedHeap, error) {
	if len(weights) == 0 {
		return nil, ErrNoItems
	}

	heap := make([]weightedHeapElement, len(weights))
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("%w: weights[%d] = %v", ErrInvalidWeight, i, weight)
		}
		heap[i] = weightedHeapElement{
			weight:           weight,
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the top of the heap
	sort.SliceStable(heap, func(i, j int) bool {
		return heap[i].weight > heap[j].weight
	})

	// Initialize the heap
	for i := len(heap) - 1; i > 0; i-- {
		parentIndex := (i - 1) / 2
		heap[parentIndex].cumulativeWeight += heap[i].cumulativeWeight
	}
	switch total := heap[0].cumulativeWeight; {
	case total == 0:
		return nil, ErrZeroWeightSum
	case math.IsInf(total, 0):
		return nil, fmt.Errorf("%w: weights overflow", ErrInvalidWeight)
	}
	return &WeightedHeap{heap: heap}, nil
}

// Sample maps [u] in [0, 1) onto the cumulative weights.
func (s *WeightedHeap) Sample(u float64) int {
	value := u * s.heap[0].cumulativeWeight

	index := 0
	for {
		currentElement := s.heap[index]
		if value < currentElement.weight {
			return currentElement.index
		}
		value -= currentElement.weight

		// We shouldn't return the root, so check the left child
		index = index*2 + 1
		if index >= len(s.heap) {
			// Only reachable through rounding on the last level.
			return currentElement.index
		}

		rightIndex := index + 1
		if leftWeight := s.heap[index].cumulativeWeight; leftWeight <= value && rightIndex < len(s.heap) {
			// If the weight is greater than the left weight, you should move to
			// the right child
			value -= leftWeight
			index = rightIndex
		}
	}
}

// Index draws once from [rand] and returns the sampled index.
func (s *WeightedHeap) Index(rand Rand) int {
	return s.Sample(rand.Float64())
}
