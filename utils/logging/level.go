// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

const alignedStringLen = 5

// Level is ordered like zapcore.Level so it can be used as a zap level
// directly. Fatal is mapped onto DPanic, which only logs in production
// loggers, so that logging at Fatal never terminates the process.
type Level zapcore.Level

const (
	Verbo Level = Level(zapcore.DebugLevel) - 2
	Debug Level = Level(zapcore.DebugLevel) - 1
	Trace Level = Level(zapcore.DebugLevel)
	Info  Level = Level(zapcore.InfoLevel)
	Warn  Level = Level(zapcore.WarnLevel)
	Error Level = Level(zapcore.ErrorLevel)
	Fatal Level = Level(zapcore.DPanicLevel)
	Off   Level = Level(zapcore.FatalLevel) + 1
)

type levelInfo struct {
	name  string
	color Color
}

// Info uses the terminal's default color so it stays readable on light
// backgrounds.
var levels = map[Level]levelInfo{
	Off:   {name: "OFF", color: Reset},
	Fatal: {name: "FATAL", color: Red},
	Error: {name: "ERROR", color: Orange},
	Warn:  {name: "WARN", color: Yellow},
	Info:  {name: "INFO", color: Reset},
	Trace: {name: "TRACE", color: LightPurple},
	Debug: {name: "DEBUG", color: LightBlue},
	Verbo: {name: "VERBO", color: LightGreen},
}

// ToLevel parses a level name case insensitively.
func ToLevel(name string) (Level, error) {
	upper := strings.ToUpper(name)
	for l, info := range levels {
		if info.name == upper {
			return l, nil
		}
	}
	return Off, fmt.Errorf("unknown log level: %q", name)
}

func (l Level) Color() Color {
	if info, ok := levels[l]; ok {
		return info.color
	}
	return Reset
}

func (l Level) String() string {
	if info, ok := levels[l]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// AlignedString returns the level name padded or truncated to
// [alignedStringLen] characters so console columns line up.
func (l Level) AlignedString() string {
	s := l.String()
	if len(s) >= alignedStringLen {
		return s[:alignedStringLen]
	}
	return s + strings.Repeat(" ", alignedStringLen-len(s))
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*l, err = ToLevel(str)
	return err
}
