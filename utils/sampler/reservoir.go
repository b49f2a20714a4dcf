// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Reservoir keeps a uniform sample of up to a fixed number of elements from a
// stream of unknown length.
//
// See https://en.wikipedia.org/wiki/Reservoir_sampling#Simple:_Algorithm_R
type Reservoir[T any] struct {
	// Length of this slice is the desired output sample size.
	samples []T
	seen    int
	rand    Rand
}

// NewReservoir returns a Reservoir holding up to [size] elements that draws
// from [rand].
func NewReservoir[T any](size int, rand Rand) (*Reservoir[T], error) {
	if size < 1 {
		return nil, ErrEmptySubset
	}
	return &Reservoir[T]{
		samples: make([]T, size),
		rand:    rand,
	}, nil
}

// Add streams one element into the reservoir.
//
// Until the reservoir is full every element is kept and no draw is consumed.
// Afterwards the i-th element (0-based) replaces a uniformly chosen slot with
// probability size/(i+1), consuming one draw.
func (r *Reservoir[T]) Add(element T) {
	slot := r.seen
	r.seen++
	if slot >= len(r.samples) {
		slot = int(r.rand.Uint64Inclusive(uint64(r.seen - 1)))
		if slot >= len(r.samples) {
			return
		}
	}
	r.samples[slot] = element
}

// Samples returns the elements currently held. The result is read-only and
// is only valid until the next call to Add or Reset.
func (r *Reservoir[T]) Samples() []T {
	return r.samples[:min(r.seen, len(r.samples))]
}

// Seen returns the number of elements streamed since the last Reset.
func (r *Reservoir[T]) Seen() int {
	return r.seen
}

// Reset empties the reservoir so it can be reused for a new stream.
func (r *Reservoir[T]) Reset() {
	r.seen = 0
}
