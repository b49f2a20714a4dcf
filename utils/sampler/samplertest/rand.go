// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package samplertest

import "fmt"

// Rand implements sampler.Rand by replaying a fixed sequence of draws so
// tests can assert exact sampler decisions. It panics when a sequence is
// exhausted.
type Rand struct {
	Floats []float64
	Uints  []uint64

	floatsRead int
	uintsRead  int
}

func (r *Rand) Float64() float64 {
	if r.floatsRead >= len(r.Floats) {
		panic(fmt.Sprintf("scripted Float64 exhausted after %d draws", r.floatsRead))
	}
	f := r.Floats[r.floatsRead]
	r.floatsRead++
	return f
}

// Uint64Inclusive returns the next scripted value, which must be in [0, n].
func (r *Rand) Uint64Inclusive(n uint64) uint64 {
	if r.uintsRead >= len(r.Uints) {
		panic(fmt.Sprintf("scripted Uint64Inclusive exhausted after %d draws", r.uintsRead))
	}
	v := r.Uints[r.uintsRead]
	if v > n {
		panic(fmt.Sprintf("scripted draw %d exceeds bound %d", v, n))
	}
	r.uintsRead++
	return v
}

// FloatsRead returns the number of Float64 draws consumed.
func (r *Rand) FloatsRead() int {
	return r.floatsRead
}

// UintsRead returns the number of Uint64Inclusive draws consumed.
func (r *Rand) UintsRead() int {
	return r.uintsRead
}
