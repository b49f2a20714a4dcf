// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func TestEtaTracker(t *testing.T) {
	tracker := NewEtaTracker(3, 1.0)
	now := time.Now()
	target := uint64(1000)

	tests := []struct {
		name            string
		completed       uint64
		timestamp       time.Time
		expectedEta     *time.Duration
		expectedPercent float64
	}{
		{
			name:      "first sample is the baseline",
			completed: 0,
			timestamp: now,
		},
		{
			name:      "second sample has too little history",
			completed: 100,
			timestamp: now.Add(10 * time.Second),
		},
		{
			name:            "third sample measures 10 per second",
			completed:       200,
			timestamp:       now.Add(20 * time.Second),
			expectedEta:     durationPtr(80 * time.Second),
			expectedPercent: 20,
		},
		{
			name:            "fourth sample forgets the baseline and measures 15 per second",
			completed:       600,
			timestamp:       now.Add(40 * time.Second),
			expectedEta:     durationPtr(24 * time.Second),
			expectedPercent: 60,
		},
		{
			name:            "completed",
			completed:       1000,
			timestamp:       now.Add(50 * time.Second),
			expectedEta:     durationPtr(0),
			expectedPercent: 100,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			eta, percentComplete := tracker.AddSample(test.completed, target, test.timestamp)
			require.Equal(test.expectedEta, eta)
			require.Equal(test.expectedPercent, percentComplete)
		})
	}
}

func TestEtaTrackerSlowdownFactor(t *testing.T) {
	require := require.New(t)

	tracker := NewEtaTracker(2, 2.0)
	now := time.Now()

	_, _ = tracker.AddSample(0, 100, now)
	eta, percentComplete := tracker.AddSample(50, 100, now.Add(50*time.Second))

	// 50s remain, inflated by 2 - (2-1)*0.5.
	require.Equal(durationPtr(75*time.Second), eta)
	require.Equal(50.0, percentComplete)
}

func TestEtaTrackerStalled(t *testing.T) {
	require := require.New(t)

	tracker := NewEtaTracker(2, 1.0)
	now := time.Now()

	_, _ = tracker.AddSample(10, 100, now)
	eta, _ := tracker.AddSample(10, 100, now.Add(time.Minute))
	require.Nil(eta)

	eta, _ = tracker.AddSample(20, 100, now.Add(time.Minute))
	require.Nil(eta)
}

func TestNewEtaTrackerDefaultSamples(t *testing.T) {
	tracker := NewEtaTracker(0, 1.0)
	require.Len(t, tracker.samples, defaultMaxSamples)
}
