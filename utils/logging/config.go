// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileExtension = ".log"

type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisplayLevel Level  `json:"displayLevel"`
	LogLevel     Level  `json:"logLevel"`
	LogFormat    Format `json:"logFormat"`
}

// DefaultConfig logs INFO to the display only.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   0,
		},
		DisplayLevel: Info,
		LogLevel:     Info,
		LogFormat:    Plain,
	}
}

// NewLoggerFromConfig returns a logger named [name] that displays to [display]
// and, if [config.Directory] is set, also writes JSON lines to a rotating
// file named after the logger.
func NewLoggerFromConfig(name string, display io.WriteCloser, config Config) Logger {
	cores := []WrappedCore{
		NewWrappedCore(config.DisplayLevel, display, config.LogFormat.ConsoleEncoder()),
	}
	if config.Directory != "" {
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, name+logFileExtension),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rotator, config.LogFormat.FileEncoder()))
	}
	return NewLogger(config.LogFormat.WrapPrefix(name), cores...)
}
