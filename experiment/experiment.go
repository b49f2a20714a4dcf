// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/reservoirbench/utils/sampler"
)

const (
	UniformName        = "UniformReservoirSampling"
	WeightedName       = "WeightedReservoirSampling"
	SubsetName         = "SubsetUniformReservoirSampling"
	WeightedSubsetName = "SubsetWeightedReservoirSampling"
	InclusionName      = "ReservoirInclusion"
	WeightedHeapName   = "WeightedHeapSampling"
)

var (
	// DefaultNames are the experiments run when none are requested, in the
	// order they are run.
	DefaultNames = []string{
		UniformName,
		WeightedName,
		SubsetName,
		WeightedSubsetName,
	}

	ErrUnknownExperiment = errors.New("unknown experiment")

	registry = map[string]Experiment{
		UniformName: {
			Name:      UniformName,
			CountOnly: true,
			Weights:   sampler.UniformWeights,
			NewTrial:  newUniformTrial,
		},
		WeightedName: {
			Name:     WeightedName,
			Weights:  sampler.QuadraticWeights,
			NewTrial: newWeightedTrial,
		},
		SubsetName: {
			Name:     SubsetName,
			Weights:  sampler.UniformWeights,
			NewTrial: newSubsetTrial,
		},
		WeightedSubsetName: {
			Name:     WeightedSubsetName,
			Weights:  sampler.QuadraticWeights,
			NewTrial: newWeightedSubsetTrial,
		},
		InclusionName: {
			Name:               InclusionName,
			Weights:            sampler.UniformWeights,
			SelectionsPerTrial: subsetSizeSelections,
			NewTrial:           newInclusionTrial,
		},
		WeightedHeapName: {
			Name:     WeightedHeapName,
			Weights:  sampler.QuadraticWeights,
			NewTrial: newWeightedHeapTrial,
		},
	}
)

// Setup is the read-only state shared by every trial of an experiment.
type Setup struct {
	Population []int
	PMF        []float64
	SubsetSize int
}

// Trial runs one independent trial, appending the selected indices to [dst].
type Trial func(dst []int) ([]int, error)

// Experiment describes a sampler and the distribution it is expected to
// reproduce.
type Experiment struct {
	Name string
	// CountOnly results are reported without an expected count column.
	CountOnly bool
	// Weights returns the unnormalized target weights of n items.
	Weights func(n int) []float64
	// SelectionsPerTrial returns the number of indices each trial records.
	// Defaults to 1 when nil.
	SelectionsPerTrial func(Config) int
	// NewTrial builds the trial function from the experiment setup. Every
	// draw the trial makes is taken from [rand].
	NewTrial func(setup Setup, rand sampler.Rand) (Trial, error)
}

func (e Experiment) selections(config Config) int {
	if e.SelectionsPerTrial == nil {
		return 1
	}
	return e.SelectionsPerTrial(config)
}

// Lookup returns the registered experiment with the given name.
func Lookup(name string) (Experiment, error) {
	e, ok := registry[name]
	if !ok {
		return Experiment{}, fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
	}
	return e, nil
}

// Names returns the names of every registered experiment, sorted.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

func subsetSizeSelections(config Config) int {
	return config.SubsetSize
}

func newUniformTrial(setup Setup, rand sampler.Rand) (Trial, error) {
	n := len(setup.Population)
	return func(dst []int) ([]int, error) {
		chosen, err := sampler.UniformIndex(n, rand)
		return append(dst, chosen), err
	}, nil
}

func newWeightedTrial(setup Setup, rand sampler.Rand) (Trial, error) {
	return func(dst []int) ([]int, error) {
		chosen, err := sampler.WeightedIndex(setup.PMF, rand)
		return append(dst, chosen), err
	}, nil
}

func newSubsetTrial(setup Setup, rand sampler.Rand) (Trial, error) {
	return func(dst []int) ([]int, error) {
		chosen, err := sampler.UniformSubsetIndex(setup.Population, setup.SubsetSize, rand)
		return append(dst, chosen), err
	}, nil
}

func newWeightedSubsetTrial(setup Setup, rand sampler.Rand) (Trial, error) {
	return func(dst []int) ([]int, error) {
		chosen, err := sampler.WeightedSubsetIndex(setup.Population, setup.PMF, rand)
		return append(dst, chosen), err
	}, nil
}

func newInclusionTrial(setup Setup, rand sampler.Rand) (Trial, error) {
	reservoir, err := sampler.NewReservoir[int](setup.SubsetSize, rand)
	if err != nil {
		return nil, err
	}
	return func(dst []int) ([]int, error) {
		reservoir.Reset()
		for _, index := range setup.Population {
			reservoir.Add(index)
		}
		return append(dst, reservoir.Samples()...), nil
	}, nil
}

// newWeightedHeapTrial samples the same distribution as newWeightedTrial with
// every weight known up front, as a reference for the streaming sampler.
func newWeightedHeapTrial(setup Setup, rand sampler.Rand) (Trial, error) {
	heap, err := sampler.NewWeightedHeap(setup.PMF)
	if err != nil {
		return nil, err
	}
	return func(dst []int) ([]int, error) {
		return append(dst, heap.Index(rand)), nil
	}, nil
}
