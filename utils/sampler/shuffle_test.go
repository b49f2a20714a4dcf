// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/reservoirbench/utils/sampler/samplertest"
)

func TestShuffleScripted(t *testing.T) {
	require := require.New(t)

	elements := []int{0, 1, 2, 3}
	rand := &samplertest.Rand{Uints: []uint64{0, 0, 0}}
	Shuffle(elements, rand)
	require.Equal([]int{1, 2, 3, 0}, elements)
	require.Equal(3, rand.UintsRead())
}

func TestShuffleTrivial(t *testing.T) {
	require := require.New(t)

	rand := &samplertest.Rand{}

	var empty []int
	Shuffle(empty, rand)
	require.Empty(empty)

	single := []string{"a"}
	Shuffle(single, rand)
	require.Equal([]string{"a"}, single)
	require.Zero(rand.UintsRead())
}

func TestShuffleUniform(t *testing.T) {
	require := require.New(t)

	const iterations = 60_000

	rand := NewRNG(DefaultSeed)
	counts := make(map[string]int)
	for i := 0; i < iterations; i++ {
		elements := []int{0, 1, 2}
		Shuffle(elements, rand)
		counts[fmt.Sprint(elements)]++
	}

	// All 3! orderings must appear equally often.
	require.Len(counts, 6)
	for permutation, count := range counts {
		require.InEpsilon(iterations/6, count, 0.05, "permutation %s", permutation)
	}
}
