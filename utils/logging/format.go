// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Format modes available
const (
	Plain Format = iota
	Colors
	JSON
)

const (
	AutoString   = "auto"
	plainString  = "plain"
	colorsString = "colors"
	jsonString   = "json"

	termTimeFormat = "[01-02|15:04:05.000]"
)

var (
	FormatDescription = fmt.Sprintf(
		"The structure of log format. Defaults to %q which formats terminal-like logs when the output is a terminal. Otherwise, should be one of {%s, %s, %s}",
		AutoString,
		plainString,
		colorsString,
		jsonString,
	)

	errUnknownFormat = errors.New("unknown format")

	defaultEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	jsonEncoderConfig zapcore.EncoderConfig

	termTimeEncoder = zapcore.TimeEncoderOfLayout(termTimeFormat)
)

func init() {
	jsonEncoderConfig = defaultEncoderConfig
	jsonEncoderConfig.EncodeLevel = jsonLevelEncoder
	jsonEncoderConfig.EncodeTime = zapcore.EpochTimeEncoder
}

// Format determines how log lines are encoded.
type Format int

// ToFormat parses [h]. When [h] is "auto" the format depends on whether logs
// are displayed on a terminal.
func ToFormat(h string, display io.Writer) (Format, error) {
	switch strings.ToLower(h) {
	case AutoString:
		if !isTerminal(display) {
			return Plain, nil
		}
		return Colors, nil
	case plainString:
		return Plain, nil
	case colorsString:
		return Colors, nil
	case jsonString:
		return JSON, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, h)
	}
}

// isTerminal reports whether [w] is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (f Format) MarshalJSON() ([]byte, error) {
	switch f {
	case Plain:
		return []byte(`"` + plainString + `"`), nil
	case Colors:
		return []byte(`"` + colorsString + `"`), nil
	case JSON:
		return []byte(`"` + jsonString + `"`), nil
	default:
		return nil, errUnknownFormat
	}
}

// WrapPrefix formats the logger name shown before each console line.
func (f Format) WrapPrefix(prefix string) string {
	if prefix == "" || f == JSON {
		return prefix
	}
	return fmt.Sprintf("<%s>", prefix)
}

// ConsoleEncoder returns the encoder used for lines displayed to the
// operator.
func (f Format) ConsoleEncoder() zapcore.Encoder {
	switch f {
	case Colors:
		config := defaultEncoderConfig
		config.EncodeLevel = colorLevelEncoder
		config.EncodeTime = termTimeEncoder
		config.ConsoleSeparator = " "
		return zapcore.NewConsoleEncoder(config)
	case JSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig)
	default:
		config := defaultEncoderConfig
		config.EncodeTime = termTimeEncoder
		config.ConsoleSeparator = " "
		return zapcore.NewConsoleEncoder(config)
	}
}

// FileEncoder returns the encoder used for lines written to log files.
func (Format) FileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(jsonEncoderConfig)
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	level := Level(l)
	enc.AppendString(level.Color().Wrap(level.AlignedString()))
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
