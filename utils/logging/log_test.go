// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLogLevelFiltering(t *testing.T) {
	require := require.New(t)

	var buf bufferCloser
	log := NewLogger("", NewWrappedCore(Info, &buf, Plain.ConsoleEncoder()))

	log.Debug("hidden")
	require.Empty(buf.String())
	require.False(log.Enabled(Debug))

	log.Info("shown")
	require.Contains(buf.String(), "shown")
	require.Contains(buf.String(), "INFO")

	buf.Reset()
	log.SetLevel(Debug)
	require.True(log.Enabled(Debug))
	log.Debug("now shown")
	require.Contains(buf.String(), "now shown")

	buf.Reset()
	log.SetLevel(Off)
	log.Fatal("never shown")
	require.Empty(buf.String())
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	var buf bufferCloser
	log := NewLogger("bench", NewWrappedCore(Info, &buf, JSON.ConsoleEncoder()))
	log.With(zap.String("experiment", "uniform")).Info("done", zap.Int("trials", 3))

	out := buf.String()
	require.Contains(out, `"experiment":"uniform"`)
	require.Contains(out, `"trials":3`)
	require.Contains(out, `"logger":"bench"`)
	require.Contains(out, `"level":"INFO"`)
}

func TestRecoverAndPanic(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))
	require.PanicsWithValue(t, "DON'T PANIC!", func() {
		log.RecoverAndPanic(func() {
			panic("DON'T PANIC!")
		})
	})
}

func TestNewLoggerFromConfigWritesFile(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.Directory = t.TempDir()

	log := NewLoggerFromConfig("bench", Discard, config)
	log.Info("written to disk", zap.Uint64("seed", 5489))
	log.Stop()

	contents, err := os.ReadFile(filepath.Join(config.Directory, "bench"+logFileExtension))
	require.NoError(err)
	require.Contains(string(contents), "written to disk")
	require.Contains(string(contents), `"seed":5489`)
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	var log Logger = NoLog{}
	log.Info("ignored")
	require.False(log.With(zap.Int("a", 1)).Enabled(Fatal))

	ran := false
	log.RecoverAndPanic(func() { ran = true })
	require.True(ran)
}
