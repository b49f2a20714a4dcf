// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"math"
	"time"
)

const defaultMaxSamples = 5

// A sample represents a completed amount and the timestamp of the sample
type sample struct {
	completed uint64
	timestamp time.Time
}

// EtaTracker estimates the remaining time of a job from its most recent
// progress samples.
type EtaTracker struct {
	samples        []sample
	samplePosition int
	totalSamples   int
	slowdownFactor float64
}

// NewEtaTracker creates a new EtaTracker that estimates the rate from the
// last [maxSamples] samples.
//
// [slowdownFactor] inflates early estimates: at 0% the raw estimate is
// multiplied by slowdownFactor, at 100% it is used as is, and the multiplier
// decreases linearly in between.
//
// If maxSamples is less than 2, it will default to 5
func NewEtaTracker(maxSamples int, slowdownFactor float64) *EtaTracker {
	if maxSamples < 2 {
		maxSamples = defaultMaxSamples
	}
	return &EtaTracker{
		samples:        make([]sample, maxSamples),
		slowdownFactor: slowdownFactor,
	}
}

// AddSample records that [completed] out of [target] units were done at
// [timestamp]. It returns the remaining time, rounded to the second, and the
// percentage complete, rounded to 2 decimal places.
//
// The remaining time is nil until enough samples have been recorded to
// measure a rate. The first sample should be at 0% progress to establish a
// baseline.
func (t *EtaTracker) AddSample(completed uint64, target uint64, timestamp time.Time) (*time.Duration, float64) {
	current := sample{
		completed: completed,
		timestamp: timestamp,
	}
	// save the oldest sample; this will not be used if we don't have enough samples
	t.samples[t.samplePosition] = current
	t.samplePosition = (t.samplePosition + 1) % len(t.samples)
	t.totalSamples++

	if t.totalSamples < len(t.samples) || target == 0 {
		return nil, 0
	}

	fractionComplete := float64(completed) / float64(target)
	percentComplete := math.Round(fractionComplete*10_000) / 100
	if completed >= target {
		var done time.Duration
		return &done, percentComplete
	}

	oldest := t.samples[t.samplePosition]
	elapsed := current.timestamp.Sub(oldest.timestamp)
	if elapsed <= 0 || current.completed <= oldest.completed {
		return nil, 0
	}
	rate := float64(current.completed-oldest.completed) / float64(elapsed)

	remaining := float64(target-completed) / rate
	adjustment := t.slowdownFactor - (t.slowdownFactor-1)*fractionComplete
	eta := time.Duration(remaining * adjustment).Round(time.Second)
	return &eta, percentComplete
}
