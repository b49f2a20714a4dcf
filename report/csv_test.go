// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/reservoirbench/experiment"
)

func TestWriteCSV(t *testing.T) {
	tests := map[string]struct {
		result   *experiment.Result
		expected string
	}{
		"count only": {
			result: &experiment.Result{
				Name:      experiment.UniformName,
				CountOnly: true,
				Expected:  []float64{1.5, 1.5},
				Histogram: []uint64{2, 1},
			},
			expected: "\"Value\",\"Count\"\n" +
				"\"0\",\"2\"\n" +
				"\"1\",\"1\"\n",
		},
		"expected and actual": {
			result: &experiment.Result{
				Name:      experiment.WeightedName,
				Expected:  []float64{0.4, 2.5, 7.1},
				Histogram: []uint64{1, 2, 7},
			},
			expected: "\"Value\",\"Expected Count\",\"Actual Count\"\n" +
				"\"0\",\"0\",\"1\"\n" +
				"\"1\",\"3\",\"2\"\n" +
				"\"2\",\"7\",\"7\"\n",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			var buf bytes.Buffer
			require.NoError(WriteCSV(&buf, test.result))
			require.Equal(test.expected, buf.String())
		})
	}
}

func TestWriteCSVMalformed(t *testing.T) {
	err := WriteCSV(&bytes.Buffer{}, &experiment.Result{
		Expected:  []float64{1},
		Histogram: []uint64{1, 2},
	})
	require.ErrorIs(t, err, errMalformedResult)
}

func TestWriteRecordEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeRecord(w, []string{`a"b`, "c"})
	require.NoError(t, w.Flush())
	require.Equal(t, "\"a\"\"b\",\"c\"\n", buf.String())
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		trials   int
		expected string
	}{
		{
			name:     experiment.SubsetName,
			trials:   1_000,
			expected: "SubsetUniformReservoirSampling_1000.csv",
		},
		{
			name:     experiment.SubsetName,
			trials:   100_000,
			expected: "SubsetUniformReservoirSampling_100000.csv",
		},
		{
			name:     experiment.WeightedSubsetName,
			trials:   10_000,
			expected: "SubsetWeightedReservoirSampling_10000.csv",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := &experiment.Result{
				Name:   test.name,
				Trials: test.trials,
			}
			require.Equal(t, test.expected, FileName(result))
		})
	}
}

func TestCSVSinkWrite(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "out", "nested")
	sink := NewCSVSink(dir)

	result := &experiment.Result{
		Name:      experiment.WeightedSubsetName,
		Trials:    4,
		Expected:  []float64{1, 3},
		Histogram: []uint64{2, 2},
	}
	path, err := sink.Write(result)
	require.NoError(err)
	require.Equal(filepath.Join(dir, "SubsetWeightedReservoirSampling_4.csv"), path)

	info, err := os.Stat(dir)
	require.NoError(err)
	require.True(info.IsDir())

	contents, err := os.ReadFile(path)
	require.NoError(err)
	require.Equal("\"Value\",\"Expected Count\",\"Actual Count\"\n\"0\",\"1\",\"2\"\n\"1\",\"3\",\"2\"\n", string(contents))

	// A second run of the same experiment replaces the file.
	result.Expected = []float64{4}
	result.Histogram = []uint64{4}
	_, err = sink.Write(result)
	require.NoError(err)

	contents, err = os.ReadFile(path)
	require.NoError(err)
	require.Equal("\"Value\",\"Expected Count\",\"Actual Count\"\n\"0\",\"4\",\"4\"\n", string(contents))
}

func TestCSVSinkDirectoryIsAFile(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(os.WriteFile(dir, nil, 0o600))

	_, err := NewCSVSink(dir).Write(&experiment.Result{Name: experiment.UniformName, Trials: 1})
	require.ErrorContains(err, "creating output directory")
}

func TestCSVSinkWithRunner(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	runner := experiment.Runner{Sink: NewCSVSink(dir)}
	config := experiment.Config{
		Trials:     200,
		Items:      5,
		SubsetSize: 2,
		Seed:       3,
	}
	results, err := runner.Run(experiment.DefaultNames, config)
	require.NoError(err)
	require.Len(results, len(experiment.DefaultNames))

	entries, err := os.ReadDir(dir)
	require.NoError(err)
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	require.ElementsMatch([]string{
		"UniformReservoirSampling_200.csv",
		"WeightedReservoirSampling_200.csv",
		"SubsetUniformReservoirSampling_200.csv",
		"SubsetWeightedReservoirSampling_200.csv",
	}, names)
}
