// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// DefaultSeed is the seed MT19937 uses when it is never explicitly seeded.
const DefaultSeed uint64 = 5489

var (
	_ Rand = (*rng)(nil)
	_ Rand = (*CountingRand)(nil)
)

type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Rand is the stream of draws consumed by the samplers. Every call advances
// the underlying generator, so the order of calls determines the outcome.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Uint64Inclusive returns a uniform draw in [0, n].
	Uint64Inclusive(n uint64) uint64
}

// NewRNG returns a Rand backed by an MT19937 generator seeded with [seed].
//
// We don't use a cryptographically secure source of randomness here, as
// there's no need to ensure a truly random sampling.
func NewRNG(seed uint64) Rand {
	source := prng.NewMT19937()
	source.Seed(seed)
	return NewDeterministicRNG(source)
}

// NewDeterministicRNG wraps [source] without reseeding it.
func NewDeterministicRNG(source Source) Rand {
	return &rng{rng: source}
}

type rng struct {
	rng Source
}

// Float64 uses the top 53 bits of a draw so every value is exactly
// representable.
func (r *rng) Float64() float64 {
	return float64(r.rng.Uint64()>>11) / (1 << 53)
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
func (r *rng) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.rng.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := r.rng.Uint64()
		for v > n {
			v = r.rng.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1) is
	// less than or equal to MaxUint64 because the calculation would overflow.
	//
	// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// CountingRand forwards to a Rand and counts the draws taken from it.
type CountingRand struct {
	rand  Rand
	draws uint64
}

func NewCountingRand(rand Rand) *CountingRand {
	return &CountingRand{rand: rand}
}

func (c *CountingRand) Float64() float64 {
	c.draws++
	return c.rand.Float64()
}

func (c *CountingRand) Uint64Inclusive(n uint64) uint64 {
	c.draws++
	return c.rand.Uint64Inclusive(n)
}

// Draws returns the number of draws taken so far.
func (c *CountingRand) Draws() uint64 {
	return c.draws
}

// uint63 returns a random number in [0, MaxInt64]
func (r *rng) uint63() uint64 {
	return r.rng.Uint64() & math.MaxInt64
}
