// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allLevels = []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}

func TestAlignedString(t *testing.T) {
	require := require.New(t)

	for _, l := range allLevels {
		as := l.AlignedString()
		require.Len(as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			require.Equal(s[:alignedStringLen], as)
		default:
			require.Equal(s, as[:len(s)])
			require.Equal(as[len(s):], strings.Repeat(" ", alignedStringLen-len(s)))
		}
	}
}

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for _, l := range allLevels {
		parsed, err := ToLevel(strings.ToLower(l.String()))
		require.NoError(err)
		require.Equal(l, parsed)
	}

	_, err := ToLevel("loud")
	require.ErrorContains(err, "unknown log level")
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	// Levels are listed from least to most verbose.
	for i := 1; i < len(allLevels); i++ {
		require.Less(int(allLevels[i]), int(allLevels[i-1]))
	}
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Warn)
	require.NoError(err)
	require.Equal(`"WARN"`, string(b))

	var l Level
	require.NoError(json.Unmarshal([]byte(`"debug"`), &l))
	require.Equal(Debug, l)
}
