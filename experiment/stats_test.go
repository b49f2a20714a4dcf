// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := map[string]struct {
		expected []float64
		observed []uint64
		want     Summary
	}{
		"perfect fit": {
			expected: []float64{25, 25, 50},
			observed: []uint64{25, 25, 50},
			want: Summary{
				DegreesOfFreedom: 2,
				PValue:           1,
			},
		},
		"two categories": {
			expected: []float64{50, 50},
			observed: []uint64{60, 40},
			want: Summary{
				ChiSquared:           4,
				DegreesOfFreedom:     1,
				PValue:               0.0455003,
				MaxRelativeDeviation: 0.2,
			},
		},
		"unexpected items are skipped": {
			expected: []float64{0, 50, 50},
			observed: []uint64{0, 60, 40},
			want: Summary{
				ChiSquared:           4,
				DegreesOfFreedom:     1,
				PValue:               0.0455003,
				MaxRelativeDeviation: 0.2,
			},
		},
		"single category": {
			expected: []float64{10},
			observed: []uint64{7},
			want: Summary{
				ChiSquared:           0.9,
				DegreesOfFreedom:     0,
				PValue:               1,
				MaxRelativeDeviation: 0.3,
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			got := Summarize(test.expected, test.observed)
			require.InDelta(test.want.ChiSquared, got.ChiSquared, 1e-9)
			require.Equal(test.want.DegreesOfFreedom, got.DegreesOfFreedom)
			require.InDelta(test.want.PValue, got.PValue, 1e-6)
			require.InDelta(test.want.MaxRelativeDeviation, got.MaxRelativeDeviation, 1e-9)
		})
	}
}

func TestResultSummary(t *testing.T) {
	result := &Result{
		Expected:  []float64{50, 50},
		Histogram: []uint64{60, 40},
	}
	require.InDelta(t, 4, result.Summary().ChiSquared, 1e-9)
}
