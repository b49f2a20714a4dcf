// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ava-labs/reservoirbench/utils/logging"
	"github.com/ava-labs/reservoirbench/utils/timer"
)

const (
	etaSamples        = 3
	etaSlowdownFactor = 1.0
)

var (
	_ Progress = NoProgress{}
	_ Progress = (*ConsoleProgress)(nil)
	_ Progress = (*LogProgress)(nil)
	_ Progress = MultiProgress(nil)
)

// Progress observes the fraction of completed trials. Percentages are
// reported in non-decreasing order, ending with 100.
type Progress interface {
	Update(percent int)
}

// NoProgress ignores every update.
type NoProgress struct{}

func (NoProgress) Update(int) {}

// ConsoleProgress overwrites a single terminal line with the current
// percentage.
type ConsoleProgress struct {
	w io.Writer
}

func NewConsoleProgress(w io.Writer) *ConsoleProgress {
	return &ConsoleProgress{w: w}
}

func (p *ConsoleProgress) Update(percent int) {
	if percent >= 100 {
		_, _ = fmt.Fprint(p.w, "\r100%\n")
		return
	}
	_, _ = fmt.Fprintf(p.w, "\r%d%%", percent)
}

// LogProgress logs every [interval] percentage points, with an estimate of
// the remaining time once enough updates have been observed.
type LogProgress struct {
	log      logging.Logger
	interval int
	next     int
	tracker  *timer.EtaTracker
	now      func() time.Time
}

func NewLogProgress(log logging.Logger, interval int) *LogProgress {
	return &LogProgress{
		log:      log,
		interval: max(interval, 1),
		tracker:  timer.NewEtaTracker(etaSamples, etaSlowdownFactor),
		now:      time.Now,
	}
}

func (p *LogProgress) Update(percent int) {
	if percent < p.next {
		return
	}
	p.next = (percent/p.interval + 1) * p.interval

	eta, _ := p.tracker.AddSample(uint64(percent), 100, p.now())
	fields := []zap.Field{zap.Int("percent", percent)}
	if eta != nil {
		fields = append(fields, zap.Duration("eta", *eta))
	}
	p.log.Debug("running trials", fields...)
}

// MultiProgress forwards every update to each of its observers.
type MultiProgress []Progress

func (m MultiProgress) Update(percent int) {
	for _, p := range m {
		p.Update(percent)
	}
}
