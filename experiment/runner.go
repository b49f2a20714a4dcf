// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/reservoirbench/utils/logging"
)

// Results with a p-value below this are reported as suspicious.
const suspiciousPValue = 0.001

var errNoSink = errors.New("no result sink configured")

// Sink persists a finished result and returns where it was written.
type Sink interface {
	Write(result *Result) (string, error)
}

// Runner runs experiments one after another, each with its own generator,
// and hands every result to the sink as soon as its trials finish.
type Runner struct {
	Log  logging.Logger
	Sink Sink
	// Metrics is optional.
	Metrics *Metrics
	// NewProgress is optional. It is called once per experiment and trial
	// count.
	NewProgress func(name string, trials int) Progress
}

// Run executes the named experiments in order. Each experiment runs once per
// entry of [trialCounts], in order, replacing [config.Trials]. Without trial
// counts every experiment runs once with [config.Trials]. Every name and
// every resulting config are verified before the first trial runs.
func (r *Runner) Run(names []string, config Config, trialCounts ...int) ([]*Result, error) {
	if r.Sink == nil {
		return nil, errNoSink
	}
	if len(trialCounts) == 0 {
		trialCounts = []int{config.Trials}
	}
	configs := make([]Config, len(trialCounts))
	for i, trials := range trialCounts {
		configs[i] = config
		configs[i].Trials = trials
		if err := configs[i].Verify(); err != nil {
			return nil, err
		}
	}
	experiments := make([]Experiment, len(names))
	for i, name := range names {
		e, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		experiments[i] = e
	}

	log := r.Log
	if log == nil {
		log = logging.NoLog{}
	}

	results := make([]*Result, 0, len(experiments)*len(configs))
	for _, e := range experiments {
		experimentLog := log.With(zap.String("experiment", e.Name))
		for _, config := range configs {
			result, err := r.run(experimentLog, e, config)
			if err != nil {
				return results, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (r *Runner) run(log logging.Logger, e Experiment, config Config) (*Result, error) {
	log.Info("running experiment",
		zap.Int("trials", config.Trials),
		zap.Int("items", config.Items),
		zap.Int("subsetSize", config.SubsetSize),
		zap.Uint64("seed", config.Seed),
	)

	var progress Progress = NoProgress{}
	if r.NewProgress != nil {
		progress = r.NewProgress(e.Name, config.Trials)
	}
	result, err := Run(e, config, progress)
	if err != nil {
		return nil, err
	}

	summary := result.Summary()
	log.Info("finished experiment",
		zap.Uint64("selections", result.Total()),
		zap.Uint64("draws", result.Draws),
		zap.Duration("duration", result.Duration),
		zap.Float64("chiSquared", summary.ChiSquared),
		zap.Int("degreesOfFreedom", summary.DegreesOfFreedom),
		zap.Float64("pValue", summary.PValue),
		zap.Float64("maxRelativeDeviation", summary.MaxRelativeDeviation),
	)
	if summary.PValue < suspiciousPValue {
		log.Warn("selection frequencies deviate from the expected distribution",
			zap.Float64("pValue", summary.PValue),
		)
	}
	if r.Metrics != nil {
		r.Metrics.Observe(result, summary)
	}

	path, err := r.Sink.Write(result)
	if err != nil {
		return nil, fmt.Errorf("writing %s results for %d trials: %w", e.Name, config.Trials, err)
	}
	log.Info("wrote results", zap.String("path", path))
	return result, nil
}
