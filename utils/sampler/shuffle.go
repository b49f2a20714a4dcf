// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Shuffle applies a uniformly random permutation to [elements] in place using
// the Fisher-Yates algorithm.
//
// len(elements)-1 integer draws are consumed.
func Shuffle[T any](elements []T, rand Rand) {
	for i := len(elements) - 1; i > 0; i-- {
		j := int(rand.Uint64Inclusive(uint64(i)))
		elements[i], elements[j] = elements[j], elements[i]
	}
}
