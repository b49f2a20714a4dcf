// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ava-labs/reservoirbench/utils/sampler"
)

var (
	ErrNoTrials         = errors.New("trial count must be positive")
	ErrInvalidSelection = errors.New("trial selected an index outside the population")
)

// Config parameterizes a single experiment run.
type Config struct {
	Trials     int    `json:"trials"`
	Items      int    `json:"items"`
	SubsetSize int    `json:"subsetSize"`
	Seed       uint64 `json:"seed"`
}

// Verify rejects configurations that no sampler can run.
func (c Config) Verify() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: %d", ErrNoTrials, c.Trials)
	case c.Items < 1:
		return fmt.Errorf("%w: %d items", sampler.ErrNoItems, c.Items)
	case c.SubsetSize < 1:
		return fmt.Errorf("%w: %d", sampler.ErrEmptySubset, c.SubsetSize)
	case c.SubsetSize > c.Items:
		return fmt.Errorf("%w: %d > %d", sampler.ErrSubsetTooLarge, c.SubsetSize, c.Items)
	default:
		return nil
	}
}

// Result is the outcome of running an experiment.
type Result struct {
	Name       string
	CountOnly  bool
	Trials     int
	Items      int
	SubsetSize int
	Seed       uint64

	// Expected holds the un-rounded expected selection count of each item.
	Expected []float64
	// Histogram holds the observed selection count of each item.
	Histogram []uint64

	Draws    uint64
	Duration time.Duration
}

// ExpectedCounts returns the expected counts rounded to the nearest integer.
func (r *Result) ExpectedCounts() []uint64 {
	counts := make([]uint64, len(r.Expected))
	for i, expected := range r.Expected {
		counts[i] = uint64(math.Round(expected))
	}
	return counts
}

// Total returns the number of recorded selections.
func (r *Result) Total() uint64 {
	var total uint64
	for _, count := range r.Histogram {
		total += count
	}
	return total
}

// Run executes [e] with a generator seeded by [config.Seed].
func Run(e Experiment, config Config, progress Progress) (*Result, error) {
	return RunWithRand(e, config, sampler.NewRNG(config.Seed), progress)
}

// RunWithRand executes [config.Trials] trials of [e], drawing sequentially
// from [rand], and tallies the selected indices.
//
// [progress] is notified every time the completed percentage changes and
// once more with 100 after the last trial.
func RunWithRand(e Experiment, config Config, rand sampler.Rand, progress Progress) (*Result, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = NoProgress{}
	}

	pmf, err := sampler.NewPMF(e.Weights(config.Items))
	if err != nil {
		return nil, fmt.Errorf("building PMF of %s: %w", e.Name, err)
	}

	counting := sampler.NewCountingRand(rand)
	trial, err := e.NewTrial(
		Setup{
			Population: sampler.Population(config.Items),
			PMF:        pmf,
			SubsetSize: config.SubsetSize,
		},
		counting,
	)
	if err != nil {
		return nil, fmt.Errorf("preparing %s: %w", e.Name, err)
	}

	var (
		start       = time.Now()
		histogram   = make([]uint64, config.Items)
		selected    = make([]int, 0, e.selections(config))
		lastPercent = -1
		trials      = uint64(config.Trials)
	)
	for t := uint64(0); t < trials; t++ {
		if percent := int(100 * t / trials); percent != lastPercent {
			lastPercent = percent
			progress.Update(percent)
		}

		selected, err = trial(selected[:0])
		if err != nil {
			return nil, fmt.Errorf("%s trial %d: %w", e.Name, t, err)
		}
		for _, index := range selected {
			if index < 0 || index >= config.Items {
				return nil, fmt.Errorf("%w: %s trial %d selected %d of %d",
					ErrInvalidSelection, e.Name, t, index, config.Items)
			}
			histogram[index]++
		}
	}
	progress.Update(100)

	selectionsPerTrial := float64(e.selections(config))
	expected := make([]float64, config.Items)
	for i, p := range pmf {
		expected[i] = p * float64(config.Trials) * selectionsPerTrial
	}

	return &Result{
		Name:       e.Name,
		CountOnly:  e.CountOnly,
		Trials:     config.Trials,
		Items:      config.Items,
		SubsetSize: config.SubsetSize,
		Seed:       config.Seed,
		Expected:   expected,
		Histogram:  histogram,
		Draws:      counting.Draws(),
		Duration:   time.Since(start),
	}, nil
}
