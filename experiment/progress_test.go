// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/reservoirbench/utils/logging"
)

func TestConsoleProgress(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	progress := NewConsoleProgress(&buf)
	for _, percent := range []int{0, 1, 50, 99, 100} {
		progress.Update(percent)
	}
	require.Equal("\r0%\r1%\r50%\r99%\r100%\n", buf.String())
}

func TestConsoleProgressDuringRun(t *testing.T) {
	require := require.New(t)

	e, err := Lookup(UniformName)
	require.NoError(err)

	var buf bytes.Buffer
	_, err = Run(e, Config{Trials: 2, Items: 3, SubsetSize: 1}, NewConsoleProgress(&buf))
	require.NoError(err)
	require.Equal("\r0%\r50%\r100%\n", buf.String())
}

func TestLogProgress(t *testing.T) {
	require := require.New(t)

	var buf logBuffer
	log := logging.NewLogger("", logging.NewWrappedCore(logging.Debug, &buf, logging.JSON.ConsoleEncoder()))

	progress := NewLogProgress(log, 10)
	start := time.Unix(0, 0)
	calls := 0
	progress.now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls) * time.Second)
	}

	for percent := 0; percent <= 100; percent++ {
		progress.Update(percent)
	}

	out := buf.String()
	require.Equal(11, strings.Count(out, `"msg":"running trials"`))
	require.Equal(11, calls)
	require.Contains(out, `"percent":20,"eta":"8s"`)
	require.Contains(out, `"percent":100,"eta":"0s"`)
	require.NotContains(out, `"percent":15`)
}

func TestLogProgressSkippedPercentages(t *testing.T) {
	require := require.New(t)

	var buf logBuffer
	log := logging.NewLogger("", logging.NewWrappedCore(logging.Debug, &buf, logging.JSON.ConsoleEncoder()))

	progress := NewLogProgress(log, 25)
	for _, percent := range []int{0, 33, 66, 100} {
		progress.Update(percent)
	}
	require.Equal(4, strings.Count(buf.String(), `"msg":"running trials"`))
}

func TestMultiProgress(t *testing.T) {
	require := require.New(t)

	first := &recordingProgress{}
	second := &recordingProgress{}
	MultiProgress{first, NoProgress{}, second}.Update(42)
	require.Equal([]int{42}, first.updates)
	require.Equal([]int{42}, second.updates)
}
